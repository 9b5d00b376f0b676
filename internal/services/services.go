package services

import (
	"errors"
	"io"

	"github.com/NLynch19/Handover/internal/models"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrInvalidDate     = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrMissingField    = errors.New("missing required field")
)

type TaskService interface {
	// CreateTask validates the form fields, assigns the next free ID
	// and appends the record to the register.
	//
	// It returns ErrMissingField, ErrInvalidDate, ErrInvalidStatus or
	// ErrInvalidProgress when the input is rejected.
	CreateTask(params TaskParams) (*models.Task, error)

	// GetTask returns the record with the given ID or ErrTaskNotFound.
	GetTask(id int) (*models.Task, error)

	// ListTasks returns the records satisfying every set predicate,
	// in register order. An empty filter returns the whole table.
	ListTasks(filter Filter) []models.Task

	// UpdateTask replaces the set fields of an existing record and
	// stamps its Last Update. It returns ErrTaskNotFound for an
	// unknown ID.
	UpdateTask(id int, params UpdateTaskParams) (*models.Task, error)

	// SetTaskStatus moves an existing record to one of the fixed
	// status values.
	SetTaskStatus(id int, status string) (*models.Task, error)

	// DeleteTask removes the record with the given ID or returns
	// ErrTaskNotFound.
	DeleteTask(id int) error

	// ClearTasks empties the register.
	ClearTasks()

	// ImportTasks replaces the register with the table parsed from an
	// uploaded workbook and returns the number of records loaded. The
	// register is untouched when the upload is rejected.
	ImportTasks(r io.Reader) (int, error)

	// ExportTasks writes the (optionally filtered) table as an .xlsx
	// document and returns the number of records written.
	ExportTasks(w io.Writer, filter Filter) (int, error)

	// SaveRegister persists the whole table to the session workbook.
	SaveRegister() error
}

type ReportService interface {
	// BuildReport renders the (optionally filtered) table into a Word
	// document with a summary table and a status-distribution chart.
	// It returns the document bytes and a generated file name.
	BuildReport(filter Filter) ([]byte, string, error)
}

type TaskParams struct {
	Area                 string
	Site                 string
	MOCNumber            string
	Department           string
	Contractor           string
	ProjectNumber        string
	ProjectName          string
	ProjectTitle         string
	ProjectManager       string
	Coordinator          string
	Description          string
	Deliverables         string
	DeliverablesLocation string
	TargetFinish         string
	Progress             int
	Condition            string
	ActionHolder         string
	Status               string
}

type UpdateTaskParams struct {
	Area                 *string
	Site                 *string
	MOCNumber            *string
	Department           *string
	Contractor           *string
	ProjectNumber        *string
	ProjectName          *string
	ProjectTitle         *string
	ProjectManager       *string
	Coordinator          *string
	Description          *string
	Deliverables         *string
	DeliverablesLocation *string
	TargetFinish         *string
	Progress             *int
	Condition            *string
	ActionHolder         *string
	Status               *string
}
