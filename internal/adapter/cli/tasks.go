package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
	"github.com/gnsaved/kanban-board-showcase/internal/core/ports"
)

func (a *app) listCmd() *cobra.Command {
	var query, priority string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the board",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := domain.NewFilter(query, priority)
			if err != nil {
				return err
			}
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				return writeBoard(cmd.OutOrStdout(), e.Service.Snapshot(ctx, filter))
			})
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show tasks containing this text")
	cmd.Flags().StringVarP(&priority, "priority", "p", domain.PriorityAll, "Only show tasks with this priority (low, medium, high, all)")
	return cmd
}

func (a *app) addCmd() *cobra.Command {
	var description, priority, assignee, column string

	cmd := &cobra.Command{
		Use:   "add TITLE",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.NewTaskInput{
				Title:       args[0],
				Description: description,
				Assignee:    assignee,
			}
			var err error
			if input.Priority, err = domain.ParsePriority(priority); err != nil {
				return err
			}
			if input.Column, err = domain.ParseColumn(column); err != nil {
				return err
			}

			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				task, err := e.Service.AddTask(ctx, input)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s: %s\n", taskRef(task), task.Column, task.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(domain.PriorityMedium), "Priority (low, medium, high)")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "Assignee")
	cmd.Flags().StringVarP(&column, "column", "c", string(domain.ColumnTodo), "Column (todo, doing, done)")
	return cmd
}

func (a *app) editCmd() *cobra.Command {
	var title, description, priority, assignee string

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change the fields of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch domain.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = &title
			}
			if flags.Changed("description") {
				patch.Description = &description
			}
			if flags.Changed("assignee") {
				patch.Assignee = &assignee
			}
			if flags.Changed("priority") {
				parsed, err := domain.ParsePriority(priority)
				if err != nil {
					return err
				}
				patch.Priority = &parsed
			}
			if patch.IsEmpty() {
				return fmt.Errorf("nothing to change: pass at least one of --title, --description, --priority, --assignee")
			}

			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				current, err := resolveTask(ctx, e.Service, args[0])
				if err != nil {
					return err
				}
				task, err := e.Service.UpdateTask(ctx, current.ID, patch)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s: %s\n", taskRef(task), task.Title)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description, empty to clear")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (low, medium, high)")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "New assignee, empty to clear")
	return cmd
}

func (a *app) moveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move ID COLUMN",
		Short: "Move a task to another column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			column, err := domain.ParseColumn(args[1])
			if err != nil {
				return err
			}
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				current, err := resolveTask(ctx, e.Service, args[0])
				if err != nil {
					return err
				}
				task, err := e.Service.MoveTask(ctx, current.ID, column)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", taskRef(task), task.Column)
				return nil
			})
		},
	}
}

func (a *app) cycleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cycle ID",
		Short: "Move a task to the next column (done wraps to todo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				current, err := resolveTask(ctx, e.Service, args[0])
				if err != nil {
					return err
				}
				task, err := e.Service.CycleTask(ctx, current.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Moved %s from %s to %s\n", taskRef(task), current.Column, task.Column)
				return nil
			})
		},
	}
}

func (a *app) rmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				task, err := resolveTask(ctx, e.Service, args[0])
				if err != nil {
					return err
				}
				if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Delete %s %q?", taskRef(task), task.Title)) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				if err := e.Service.DeleteTask(ctx, task.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", taskRef(task))
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *app) reorderCmd() *cobra.Command {
	var todo, doing, done []string

	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Rearrange the whole board",
		Long: `reorder applies a complete arrangement of the board, top to bottom per column.
Tasks left out keep their column and go after the listed ones.

  board reorder --todo KB-003,KB-001 --doing KB-002 --done ""`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				board := e.Service.Snapshot(ctx, domain.Filter{})
				observed := domain.ObservedOrder{
					domain.ColumnTodo:  resolveIDs(board, todo),
					domain.ColumnDoing: resolveIDs(board, doing),
					domain.ColumnDone:  resolveIDs(board, done),
				}
				result, err := e.Service.Reconcile(ctx, observed)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Reordered board: %d changed, %d kept in place\n", result.Changed, result.Preserved)
				if len(result.Unknown) > 0 {
					fmt.Fprintf(out, "Ignored unknown tasks: %s\n", strings.Join(result.Unknown, ", "))
				}
				return nil
			})
		},
	}
	cmd.Flags().StringSliceVar(&todo, "todo", nil, "Ordered ids or keys for todo")
	cmd.Flags().StringSliceVar(&doing, "doing", nil, "Ordered ids or keys for doing")
	cmd.Flags().StringSliceVar(&done, "done", nil, "Ordered ids or keys for done")
	for _, name := range []string{"todo", "doing", "done"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove every task from the board",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes && !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Remove every task from the board?") {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}
			return a.withEngine(cmd, func(ctx context.Context, e *Engine) error {
				if err := e.Service.Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Board cleared.")
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// resolveTask finds a task by id, or by key ignoring case.
func resolveTask(ctx context.Context, svc ports.BoardService, ref string) (domain.Task, error) {
	board := svc.Snapshot(ctx, domain.Filter{})
	if task, ok := findTask(board, ref); ok {
		return task, nil
	}
	return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, ref)
}

func findTask(board domain.Snapshot, ref string) (domain.Task, bool) {
	ref = strings.TrimSpace(ref)
	for _, column := range domain.Columns {
		for _, task := range board.Column(column) {
			if task.ID == ref || (task.Key != "" && strings.EqualFold(task.Key, ref)) {
				return task, true
			}
		}
	}
	return domain.Task{}, false
}

// resolveIDs maps keys to ids. Unresolved references are passed through so
// the engine reports them as unknown.
func resolveIDs(board domain.Snapshot, refs []string) []string {
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ref = strings.TrimSpace(ref)
		if ref == "" {
			continue
		}
		if task, ok := findTask(board, ref); ok {
			ids = append(ids, task.ID)
			continue
		}
		ids = append(ids, ref)
	}
	return ids
}

func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func taskRef(task domain.Task) string {
	if task.Key != "" {
		return task.Key
	}
	return task.ID
}
