package query

import (
	"slices"
	"testing"
	"time"

	"github.com/phrazzld/tasks-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2030, 3, 10, 9, 0, 0, 0, time.UTC)

func ids(tasks []domain.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func TestByCompletion(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)

	done := ByCompletion(tasks, true)
	open := ByCompletion(tasks, false)

	for _, task := range done {
		assert.True(t, task.IsCompleted)
	}
	for _, task := range open {
		assert.False(t, task.IsCompleted)
	}
	assert.Contains(t, ids(open), 3)

	union := append(ids(done), ids(open)...)
	slices.Sort(union)
	assert.Equal(t, ids(tasks), union, "true and false partitions cover every task")
}

func TestByPriority(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)

	assert.Equal(t, []int{3, 6}, ids(ByPriority(tasks, 1)))
	assert.Equal(t, []int{5, 7}, ids(ByPriority(tasks, 5)))

	none := ByPriority(tasks, 42)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestByDeadlineDate(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)

	// Different time of day, same calendar date as the +1 day seeds.
	target := time.Date(2030, 3, 11, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, []int{3, 6}, ids(ByDeadlineDate(tasks, target)))

	assert.Empty(t, ByDeadlineDate(tasks, seedNow.AddDate(1, 0, 0)))
}

func TestByTags(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)

	both := ByTags(tasks, []string{"home", "groceries"})
	assert.Equal(t, []int{3}, ids(both))

	home := ByTags(tasks, []string{"home"})
	assert.Equal(t, []int{3, 4, 5}, ids(home))

	vet := ByTags(tasks, []string{"vet"})
	assert.NotContains(t, ids(vet), 3)
	assert.Equal(t, []int{5}, ids(vet))

	// Conjunctive, not disjunctive.
	assert.Empty(t, ByTags(tasks, []string{"vet", "groceries"}))

	// Matching is exact.
	assert.Empty(t, ByTags(tasks, []string{"Home"}))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)

	tests := []struct {
		name     string
		criteria Criteria
		expected []int
	}{
		{
			name:     "no criteria returns everything",
			criteria: Criteria{},
			expected: ids(tasks),
		},
		{
			name:     "completion only",
			criteria: Criteria{IsCompleted: ptr(true)},
			expected: []int{2, 5, 6, 8},
		},
		{
			name:     "completion and priority",
			criteria: Criteria{IsCompleted: ptr(false), Priority: ptr(4)},
			expected: []int{1, 4},
		},
		{
			name:     "tags narrowed by completion",
			criteria: Criteria{IsCompleted: ptr(true), Tags: []string{"family"}},
			expected: []int{5, 6},
		},
		{
			name:     "deadline date",
			criteria: Criteria{Deadline: ptr(seedNow.AddDate(0, 0, 2))},
			expected: []int{2, 5},
		},
		{
			name: "all four criteria",
			criteria: Criteria{
				IsCompleted: ptr(false),
				Priority:    ptr(1),
				Deadline:    ptr(seedNow.AddDate(0, 0, 1)),
				Tags:        []string{"home", "groceries"},
			},
			expected: []int{3},
		},
		{
			name:     "no match is empty not nil",
			criteria: Criteria{Priority: ptr(3), Tags: []string{"family"}},
			expected: []int{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := Filter(tasks, tc.criteria)
			require.NotNil(t, result)
			assert.Equal(t, tc.expected, ids(result))
		})
	}
}

func TestCriteriaIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{Tags: []string{}}.IsEmpty())
	assert.False(t, Criteria{Priority: ptr(2)}.IsEmpty())
}

func TestFilterDoesNotModifyInput(t *testing.T) {
	t.Parallel()

	tasks := domain.SeedTasks(seedNow)
	before := ids(tasks)

	_ = Filter(tasks, Criteria{IsCompleted: ptr(true)})
	_, _ = Sort(tasks, SortByPriority, OrderDesc)

	assert.Equal(t, before, ids(tasks))
}
