package report

import (
	"time"

	"github.com/NLynch19/Handover/internal/models"
)

// Summary holds the aggregate counts rendered into the narrative and
// the status chart.
type Summary struct {
	Total        int
	ByStatus     map[string]int
	ByDepartment map[string]int
	Overdue      int
}

// Summarize counts tasks per status and department. A task is overdue
// when its target finish has passed and it is not closed.
func Summarize(tasks []models.Task, now time.Time) Summary {
	s := Summary{
		Total:        len(tasks),
		ByStatus:     make(map[string]int),
		ByDepartment: make(map[string]int),
	}
	for _, task := range tasks {
		s.ByStatus[task.Status]++
		if task.Department != "" {
			s.ByDepartment[task.Department]++
		}
		if task.Status != models.StatusClosed &&
			!task.TargetFinish.IsZero() && task.TargetFinish.Before(now) {
			s.Overdue++
		}
	}
	return s
}
