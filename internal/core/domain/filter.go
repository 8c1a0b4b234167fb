package domain

import "strings"

// PriorityAll is the filter value that accepts every priority.
const PriorityAll = "all"

// Filter narrows a board snapshot. The zero value matches every task.
type Filter struct {
	Query    string
	Priority Priority
}

// NewFilter builds a filter from raw UI values. An empty priority or "all"
// means any priority.
func NewFilter(query, priority string) (Filter, error) {
	filter := Filter{Query: strings.TrimSpace(query)}
	priority = strings.TrimSpace(priority)
	if priority == "" || strings.EqualFold(priority, PriorityAll) {
		return filter, nil
	}
	parsed, err := ParsePriority(priority)
	if err != nil {
		return Filter{}, err
	}
	filter.Priority = parsed
	return filter, nil
}

// Active reports whether the filter hides anything. Drag must be disabled
// while a filter is active.
func (f Filter) Active() bool {
	return strings.TrimSpace(f.Query) != "" || f.Priority != ""
}

// Match is a case-insensitive substring search across title, description,
// key and assignee combined with an exact priority match.
func (f Filter) Match(task Task) bool {
	if f.Priority != "" && task.Priority != f.Priority {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join([]string{task.Title, task.Description, task.Key, task.Assignee}, " "))
	return strings.Contains(haystack, query)
}

// Snapshot is the render-ready view of the board.
type Snapshot struct {
	Todo        []Task
	Doing       []Task
	Done        []Task
	Filtering   bool
	WIPLimit    int
	WIPBreached bool
}

func (s Snapshot) Column(column Column) []Task {
	switch column {
	case ColumnTodo:
		return s.Todo
	case ColumnDoing:
		return s.Doing
	case ColumnDone:
		return s.Done
	}
	return nil
}

// Snapshot copies the board through the filter. wipLimit <= 0 disables the
// WIP check, which always looks at the full doing column.
func (b *Board) Snapshot(filter Filter, wipLimit int) Snapshot {
	pick := func(column Column) []Task {
		lane := b.lanes[column.index()]
		out := make([]Task, 0, len(lane))
		for _, task := range lane {
			if filter.Match(task) {
				out = append(out, task)
			}
		}
		return out
	}

	doing := len(b.lanes[ColumnDoing.index()])
	return Snapshot{
		Todo:        pick(ColumnTodo),
		Doing:       pick(ColumnDoing),
		Done:        pick(ColumnDone),
		Filtering:   filter.Active(),
		WIPLimit:    wipLimit,
		WIPBreached: wipLimit > 0 && doing > wipLimit,
	}
}
