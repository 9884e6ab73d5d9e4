package task

import (
	"testing"
	"time"
)

func TestComputeStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		tasks []Task
		want  Stats
	}{
		{
			name:  "empty list",
			tasks: nil,
			want:  Stats{},
		},
		{
			name: "buy milk is overdue",
			tasks: []Task{
				{Title: "Buy milk", DueDate: "2020-01-01"},
			},
			want: Stats{Total: 1, Open: 1, Overdue: 1},
		},
		{
			name: "due tomorrow is not overdue",
			tasks: []Task{
				{Title: "Tomorrow", DueDate: "2025-06-16"},
			},
			want: Stats{Total: 1, Open: 1},
		},
		{
			name: "due today is overdue once midnight has passed",
			tasks: []Task{
				{Title: "Today", DueDate: "2025-06-15"},
			},
			want: Stats{Total: 1, Open: 1, Overdue: 1},
		},
		{
			name: "completed tasks are never overdue or high priority",
			tasks: []Task{
				{Title: "Done", DueDate: "2020-01-01", Priority: PriorityHigh, Completed: true},
			},
			want: Stats{Total: 1, Completed: 1, CompletionRate: 100},
		},
		{
			name: "unparsable due dates are skipped",
			tasks: []Task{
				{Title: "Bad", DueDate: "tomorrow-ish"},
				{Title: "Worse", DueDate: "2020-13-45"},
			},
			want: Stats{Total: 2, Open: 2},
		},
		{
			name: "mixed list",
			tasks: []Task{
				{Title: "a", Priority: PriorityHigh},
				{Title: "b", Priority: PriorityHigh, Completed: true},
				{Title: "c", Priority: PriorityLow, DueDate: "2024-12-31"},
			},
			want: Stats{Total: 3, Completed: 1, Open: 2, Overdue: 1, HighPriority: 1, CompletionRate: 33.3},
		},
		{
			name:  "half rounds to even at 1 of 16",
			tasks: completedOf(1, 16),
			want:  Stats{Total: 16, Completed: 1, Open: 15, CompletionRate: 6.2},
		},
		{
			name:  "half rounds to even at 1 of 80",
			tasks: completedOf(1, 80),
			want:  Stats{Total: 80, Completed: 1, Open: 79, CompletionRate: 1.2},
		},
		{
			name:  "half rounds up to even at 3 of 16",
			tasks: completedOf(3, 16),
			want:  Stats{Total: 16, Completed: 3, Open: 13, CompletionRate: 18.8},
		},
		{
			name: "unpadded due date counts as overdue",
			tasks: []Task{
				{Title: "Old", DueDate: "2020-1-1"},
			},
			want: Stats{Total: 1, Open: 1, Overdue: 1},
		},
		{
			name: "rate rounds to one decimal",
			tasks: []Task{
				{Completed: true}, {Completed: true}, {},
			},
			want: Stats{Total: 3, Completed: 2, Open: 1, CompletionRate: 66.7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(tt.tasks, now)
			if got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func completedOf(done, total int) []Task {
	tasks := make([]Task, total)
	for i := 0; i < done; i++ {
		tasks[i].Completed = true
	}
	return tasks
}

func TestComputeStats_Invariants(t *testing.T) {
	now := time.Now()
	lists := [][]Task{
		{},
		{{Completed: true}},
		{{}, {}, {Completed: true}},
		{{Completed: true}, {Completed: true}},
	}

	for _, tasks := range lists {
		stats := ComputeStats(tasks, now)
		if stats.Completed+stats.Open != stats.Total {
			t.Errorf("completed(%d) + open(%d) != total(%d)", stats.Completed, stats.Open, stats.Total)
		}
		if stats.Total == 0 && stats.CompletionRate != 0 {
			t.Errorf("CompletionRate = %v for empty list, want 0", stats.CompletionRate)
		}
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		raw   string
		state DueState
	}{
		{"", DueNone},
		{"2025-01-31", DueValid},
		{"2020-1-1", DueValid},
		{"2020-01-1", DueValid},
		{"2025-02-30", DueInvalid},
		{"31/01/2025", DueInvalid},
		{"2025-01-31T10:00:00", DueInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := ParseDueDate(tt.raw, time.UTC)
			if got.State != tt.state {
				t.Errorf("ParseDueDate(%q).State = %v, want %v", tt.raw, got.State, tt.state)
			}
			if tt.raw == "2020-1-1" && !got.Date.Equal(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)) {
				t.Errorf("ParseDueDate(%q).Date = %v", tt.raw, got.Date)
			}
		})
	}
}
