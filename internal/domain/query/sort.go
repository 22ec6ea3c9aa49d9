package query

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// ErrInvalidSortKey is returned when Sort is asked to order by an unknown field.
var ErrInvalidSortKey = errors.New("invalid sort parameter")

// Recognised sort keys and directions.
const (
	SortByDeadline = "deadline"
	SortByPriority = "priority"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Sort orders tasks by sortBy in the direction given by order. Any order
// other than "desc" (case-insensitive) sorts ascending. Ties keep their
// original relative order.
//
// A blank sortBy or blank order returns the tasks in their natural order.
// An unknown sortBy returns ErrInvalidSortKey.
func Sort(tasks []domain.Task, sortBy, order string) ([]domain.Task, error) {
	result := where(tasks, func(*domain.Task) bool { return true })

	if strings.TrimSpace(sortBy) == "" || strings.TrimSpace(order) == "" {
		return result, nil
	}

	var compare func(a, b domain.Task) int
	switch sortBy {
	case SortByDeadline:
		compare = func(a, b domain.Task) int { return a.Deadline.Compare(b.Deadline) }
	case SortByPriority:
		compare = func(a, b domain.Task) int { return cmp.Compare(a.Priority, b.Priority) }
	default:
		return nil, ErrInvalidSortKey
	}

	if strings.EqualFold(order, OrderDesc) {
		asc := compare
		compare = func(a, b domain.Task) int { return asc(b, a) }
	}

	slices.SortStableFunc(result, compare)
	return result, nil
}
