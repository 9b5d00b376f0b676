package services

import (
	"strings"
	"time"

	"github.com/NLynch19/Handover/internal/models"
)

// Filter is a set of predicates combined with logical AND. Zero-valued
// fields are ignored.
type Filter struct {
	Department string
	Site       string
	Status     string
	DueFrom    time.Time
	DueTo      time.Time
	Query      string
}

func (f Filter) IsZero() bool {
	return f == Filter{}
}

func (f Filter) Matches(task models.Task) bool {
	if f.Department != "" && task.Department != f.Department {
		return false
	}
	if f.Site != "" && task.Site != f.Site {
		return false
	}
	if f.Status != "" && task.Status != f.Status {
		return false
	}
	if !f.DueFrom.IsZero() && task.TargetFinish.Before(f.DueFrom) {
		return false
	}
	if !f.DueTo.IsZero() && task.TargetFinish.After(f.DueTo) {
		return false
	}
	if f.Query != "" &&
		!strings.Contains(strings.ToLower(task.Description), strings.ToLower(f.Query)) {
		return false
	}
	return true
}

// ApplyFilter returns the subsequence of tasks satisfying the filter,
// preserving the original order. Pure function, idempotent.
func ApplyFilter(tasks []models.Task, f Filter) []models.Task {
	if f.IsZero() {
		return tasks
	}

	matched := make([]models.Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			matched = append(matched, task)
		}
	}
	return matched
}
