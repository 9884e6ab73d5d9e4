package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionKanban(t *testing.T) {
	tasks := []Task{
		{ID: "1", Completed: false},
		{ID: "2", Completed: true},
		{ID: "3", Completed: false},
	}

	board := PartitionKanban(tasks)

	require.Len(t, board.Todo, 2)
	require.Len(t, board.Done, 1)
	assert.Equal(t, "1", board.Todo[0].ID)
	assert.Equal(t, "3", board.Todo[1].ID)
	assert.Equal(t, "2", board.Done[0].ID)
}

func TestPartitionKanban_Empty(t *testing.T) {
	board := PartitionKanban(nil)
	assert.NotNil(t, board.Todo)
	assert.NotNil(t, board.Done)
	assert.Empty(t, board.Todo)
	assert.Empty(t, board.Done)
}

func TestGroupByDueDate(t *testing.T) {
	tasks := []Task{
		{ID: "a", DueDate: "2025-03-02"},
		{ID: "b", DueDate: ""},
		{ID: "c", DueDate: "2025-03-01"},
		{ID: "d", DueDate: "2025-03-02"},
		{ID: "e", DueDate: "not a date"},
	}

	cal := GroupByDueDate(tasks)

	require.Len(t, cal.Days, 2)
	assert.Equal(t, "2025-03-01", cal.Days[0].Date)
	assert.Equal(t, "2025-03-02", cal.Days[1].Date)
	require.Len(t, cal.Days[1].Tasks, 2)
	assert.Equal(t, "a", cal.Days[1].Tasks[0].ID)
	assert.Equal(t, "d", cal.Days[1].Tasks[1].ID)

	require.Len(t, cal.Unscheduled, 2)
	assert.Equal(t, "b", cal.Unscheduled[0].ID)
	assert.Equal(t, "e", cal.Unscheduled[1].ID)
}

func TestGroupByDueDate_UnpaddedDatesShareADay(t *testing.T) {
	cal := GroupByDueDate([]Task{
		{ID: "a", DueDate: "2025-3-1"},
		{ID: "b", DueDate: "2025-03-01"},
	})

	require.Len(t, cal.Days, 1)
	assert.Equal(t, "2025-03-01", cal.Days[0].Date)
	assert.Len(t, cal.Days[0].Tasks, 2)
	assert.Empty(t, cal.Unscheduled)
}

func TestCategoryColor(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"Work", "#3B82F6"},
		{"Personal", "#8B5CF6"},
		{"Shopping", "#EC4899"},
		{"Health", "#10B981"},
		{"General", "#6B7280"},
		{"Hobbies", "#6B7280"},
		{"", "#6B7280"},
		{"work", "#6B7280"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryColor(tt.category))
		})
	}
}
