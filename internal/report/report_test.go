package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/NLynch19/Handover/internal/models"
)

func reportFixture(now time.Time) []models.Task {
	return []models.Task{
		{ID: 1, Department: "Electrical", Status: models.StatusOpen,
			TargetFinish: now.AddDate(0, 0, -5)},
		{ID: 2, Department: "Electrical", Status: models.StatusInProgress,
			TargetFinish: now.AddDate(0, 0, 10)},
		{ID: 3, Department: "Civil", Status: models.StatusClosed,
			TargetFinish: now.AddDate(0, 0, -30)},
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	s := Summarize(reportFixture(now), now)

	if s.Total != 3 {
		t.Errorf("Expected total 3, got %d", s.Total)
	}
	if s.ByStatus[models.StatusOpen] != 1 || s.ByStatus[models.StatusClosed] != 1 {
		t.Errorf("Unexpected status counts: %+v", s.ByStatus)
	}
	if s.ByDepartment["Electrical"] != 2 {
		t.Errorf("Expected 2 Electrical tasks, got %d", s.ByDepartment["Electrical"])
	}
}

func TestSummarizeOverdue(t *testing.T) {
	now := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	s := Summarize(reportFixture(now), now)

	// Task 3 is past due but closed, so only task 1 counts.
	if s.Overdue != 1 {
		t.Errorf("Expected 1 overdue task, got %d", s.Overdue)
	}
}

func TestSummarizeIgnoresUnsetTargetFinish(t *testing.T) {
	now := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)
	s := Summarize([]models.Task{{ID: 1, Status: models.StatusOpen}}, now)

	if s.Overdue != 0 {
		t.Errorf("Expected no overdue tasks for unset dates, got %d", s.Overdue)
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	doc, err := Build(reportFixture(now), now)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !bytes.HasPrefix(doc, []byte("PK")) {
		t.Error("Expected a zip-packaged document")
	}
}

func TestBuildEmptyTable(t *testing.T) {
	now := time.Date(2026, 8, 14, 12, 0, 0, 0, time.UTC)

	doc, err := Build(nil, now)
	if err != nil {
		t.Fatalf("Build failed for an empty table: %v", err)
	}
	if len(doc) == 0 {
		t.Error("Expected a non-empty document for an empty table")
	}
}

func TestStatusChart(t *testing.T) {
	png, err := StatusChart(Summary{
		Total:    2,
		ByStatus: map[string]int{models.StatusOpen: 1, models.StatusClosed: 1},
	})
	if err != nil {
		t.Fatalf("StatusChart failed: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("Expected PNG output")
	}
}
