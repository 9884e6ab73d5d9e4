package task

import (
	"math"
	"time"
)

// Stats are the dashboard counters derived from a task list.
type Stats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Open           int     `json:"open"`
	Overdue        int     `json:"overdue"`
	HighPriority   int     `json:"high_priority"`
	CompletionRate float64 `json:"completion_rate"`
}

// ComputeStats derives Stats from tasks as of now.
func ComputeStats(tasks []Task, now time.Time) Stats {
	stats := Stats{Total: len(tasks)}

	for _, t := range tasks {
		if t.Completed {
			stats.Completed++
			continue
		}
		if t.IsOverdue(now) {
			stats.Overdue++
		}
		if t.Priority == PriorityHigh {
			stats.HighPriority++
		}
	}

	stats.Open = stats.Total - stats.Completed
	if stats.Total > 0 {
		rate := float64(stats.Completed) / float64(stats.Total) * 100
		stats.CompletionRate = math.RoundToEven(rate*10) / 10
	}

	return stats
}
