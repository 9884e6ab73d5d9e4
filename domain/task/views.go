package task

import (
	"sort"
	"time"
)

// Kanban splits tasks into open and completed columns.
type Kanban struct {
	Todo []Task `json:"todo"`
	Done []Task `json:"done"`
}

// PartitionKanban groups tasks by completion, keeping document order.
func PartitionKanban(tasks []Task) Kanban {
	board := Kanban{Todo: []Task{}, Done: []Task{}}
	for _, t := range tasks {
		if t.Completed {
			board.Done = append(board.Done, t)
		} else {
			board.Todo = append(board.Todo, t)
		}
	}
	return board
}

// CalendarDay is every task due on one date.
type CalendarDay struct {
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}

// Calendar groups tasks by due date for display.
type Calendar struct {
	Days        []CalendarDay `json:"days"`
	Unscheduled []Task        `json:"unscheduled"`
}

// GroupByDueDate buckets tasks per valid due date in ascending order.
// Tasks without a usable due date land in Unscheduled.
func GroupByDueDate(tasks []Task) Calendar {
	cal := Calendar{Days: []CalendarDay{}, Unscheduled: []Task{}}
	byDate := make(map[string]int)

	for _, t := range tasks {
		due := ParseDueDate(t.DueDate, time.UTC)
		if due.State != DueValid {
			cal.Unscheduled = append(cal.Unscheduled, t)
			continue
		}
		key := due.Date.Format(DueDateLayout)
		idx, ok := byDate[key]
		if !ok {
			idx = len(cal.Days)
			byDate[key] = idx
			cal.Days = append(cal.Days, CalendarDay{Date: key})
		}
		cal.Days[idx].Tasks = append(cal.Days[idx].Tasks, t)
	}

	sort.SliceStable(cal.Days, func(i, j int) bool {
		return cal.Days[i].Date < cal.Days[j].Date
	})
	return cal
}

var categoryColors = map[string]string{
	CategoryWork:     "#3B82F6",
	CategoryPersonal: "#8B5CF6",
	CategoryShopping: "#EC4899",
	CategoryHealth:   "#10B981",
	CategoryGeneral:  "#6B7280",
}

// DefaultCategoryColor is used for any category outside the known set.
const DefaultCategoryColor = "#6B7280"

// CategoryColor returns the display color for a category.
func CategoryColor(category string) string {
	if color, ok := categoryColors[category]; ok {
		return color
	}
	return DefaultCategoryColor
}

// Categories lists the known category labels in display order.
func Categories() []string {
	return []string{CategoryWork, CategoryPersonal, CategoryShopping, CategoryHealth, CategoryGeneral}
}
