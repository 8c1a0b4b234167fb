package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/gnsaved/kanban-board-showcase/internal/core/domain"
)

func writeBoard(out io.Writer, board domain.Snapshot) error {
	if board.Filtering {
		fmt.Fprintln(out, "(filtered view)")
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, column := range domain.Columns {
		tasks := board.Column(column)
		header := fmt.Sprintf("%s (%d)", strings.ToUpper(string(column)), len(tasks))
		if column == domain.ColumnDoing && board.WIPBreached {
			header += fmt.Sprintf("  over WIP limit of %d", board.WIPLimit)
		}
		fmt.Fprintln(w, header)
		if len(tasks) == 0 {
			fmt.Fprintln(w, "  -")
		}
		for _, task := range tasks {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n",
				taskRef(task),
				task.Title,
				task.Priority,
				orDash(task.Assignee),
				humanize.Time(task.UpdatedAt),
			)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
