package models

import "time"

const (
	StatusOpen       = "Open"
	StatusInProgress = "In Progress"
	StatusClosed     = "Closed"
)

// Statuses lists every allowed STATUS value in display order.
var Statuses = []string{StatusOpen, StatusInProgress, StatusClosed}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

const (
	// DateLayout is used for Target Finish and Created columns.
	DateLayout = "2006-01-02"
	// TimestampLayout is used for the Last Update column.
	TimestampLayout = "2006-01-02 15:04"
)

// DateStamp truncates a moment to the precision the date columns are
// stored with. Stamps normalize to UTC so a record compares equal to
// itself after a workbook round trip.
func DateStamp(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MinuteStamp truncates a moment to the precision of the Last Update
// column.
func MinuteStamp(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// Task is one MOC handover record. IDs are assigned by the register
// and are unique within a workbook.
type Task struct {
	ID                   int
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
	TargetFinish         time.Time
	Progress             int
	Condition            string
	ActionHolder         string
	Status               string
	CreatedAt            time.Time
	LastUpdate           time.Time
}

// Columns is the fixed spreadsheet header, one entry per Task field,
// in the order rows are written and read.
var Columns = []string{
	"ID No",
	"AREA",
	"Site",
	"MOC No",
	"Assigned Dept",
	"Assigned Contractor",
	"Project Number",
	"Project Name",
	"Project Title",
	"Project Manager",
	"MOC Coordinator",
	"Brief Description",
	"Deliverables",
	"Deliverables Location",
	"Target Finish",
	"Progress",
	"Condition",
	"Action Holder",
	"STATUS",
	"Created",
	"Last Update",
}
