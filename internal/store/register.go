package store

import (
	"sync"

	"github.com/NLynch19/Handover/internal/models"
)

// Register is the in-memory MOC task table. Records keep their insertion
// order for display; ID uniqueness is the only structural invariant.
//
// The register is rewritten wholesale by uploads and persisted only on an
// explicit save or export, matching the workbook lifecycle.
type Register struct {
	mu     sync.Mutex
	tasks  []models.Task
	lastID int
}

func NewRegister() *Register {
	return &Register{}
}

// Add assigns the next free ID to the task and appends it. Any ID set by
// the caller is discarded, so duplicates can never enter through Add.
func (r *Register) Add(task models.Task) models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	task.ID = r.lastID
	r.tasks = append(r.tasks, task)
	return task
}

func (r *Register) Get(id int) (models.Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, task := range r.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

// Update replaces the record with the same ID in place and reports
// whether it existed.
func (r *Register) Update(task models.Task) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == task.ID {
			r.tasks[i] = task
			return true
		}
	}
	return false
}

// Delete removes the record with the given ID and reports whether it
// existed.
func (r *Register) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.tasks {
		if r.tasks[i].ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Replace swaps in a freshly loaded table and moves the ID high-water
// mark past the largest loaded ID.
func (r *Register) Replace(tasks []models.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = make([]models.Task, len(tasks))
	copy(r.tasks, tasks)

	r.lastID = 0
	for _, task := range tasks {
		if task.ID > r.lastID {
			r.lastID = task.ID
		}
	}
}

// Tasks returns a snapshot copy in insertion order.
func (r *Register) Tasks() []models.Task {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]models.Task, len(r.tasks))
	copy(tasks, r.tasks)
	return tasks
}

func (r *Register) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks = nil
	r.lastID = 0
}

func (r *Register) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.tasks)
}
