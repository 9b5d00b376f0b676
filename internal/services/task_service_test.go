package services

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/NLynch19/Handover/internal/models"
	"github.com/NLynch19/Handover/internal/store"
)

const testSheet = "MOC Register"

func newTestService(t *testing.T) (TaskService, *store.Register) {
	t.Helper()
	register := store.NewRegister()
	path := filepath.Join(t.TempDir(), "register.xlsx")
	return NewTaskService(zerolog.Nop(), register, path, testSheet), register
}

func validParams() TaskParams {
	return TaskParams{
		Site:         "North Plant",
		Department:   "Electrical",
		Description:  "Replace MCC feeder breaker",
		ActionHolder: "J. Moreno",
		TargetFinish: "2026-09-30",
		Progress:     25,
		Status:       models.StatusInProgress,
	}
}

func TestCreateTask(t *testing.T) {
	svc, _ := newTestService(t)

	task, err := svc.CreateTask(validParams())
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.ID != 1 {
		t.Errorf("Expected ID 1, got %d", task.ID)
	}
	if task.CreatedAt.IsZero() || task.LastUpdate.IsZero() {
		t.Error("Expected Created and Last Update to be stamped")
	}
	if task.TargetFinish.Format(models.DateLayout) != "2026-09-30" {
		t.Errorf("Expected target finish 2026-09-30, got %v", task.TargetFinish)
	}
}

func TestCreateTaskDefaultsToOpen(t *testing.T) {
	svc, _ := newTestService(t)

	params := validParams()
	params.Status = ""
	task, err := svc.CreateTask(params)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.Status != models.StatusOpen {
		t.Errorf("Expected default status %q, got %q", models.StatusOpen, task.Status)
	}
}

func TestCreateTaskValidation(t *testing.T) {
	svc, register := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*TaskParams)
		want   error
	}{
		{"missing site", func(p *TaskParams) { p.Site = "" }, ErrMissingField},
		{"missing dept", func(p *TaskParams) { p.Department = "" }, ErrMissingField},
		{"missing description", func(p *TaskParams) { p.Description = "" }, ErrMissingField},
		{"missing action holder", func(p *TaskParams) { p.ActionHolder = "" }, ErrMissingField},
		{"malformed date", func(p *TaskParams) { p.TargetFinish = "30/09/2026" }, ErrInvalidDate},
		{"unknown status", func(p *TaskParams) { p.Status = "Pending" }, ErrInvalidStatus},
		{"progress too high", func(p *TaskParams) { p.Progress = 120 }, ErrInvalidProgress},
	}
	for _, tc := range cases {
		params := validParams()
		tc.mutate(&params)
		_, err := svc.CreateTask(params)
		if !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
	if register.Len() != 0 {
		t.Errorf("Expected rejected forms to leave the register empty, got %d tasks", register.Len())
	}
}

func TestUpdateTask(t *testing.T) {
	svc, _ := newTestService(t)
	created, _ := svc.CreateTask(validParams())

	progress := 80
	status := models.StatusClosed
	updated, err := svc.UpdateTask(created.ID, UpdateTaskParams{
		Progress: &progress,
		Status:   &status,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Progress != 80 || updated.Status != models.StatusClosed {
		t.Errorf("Expected progress 80 and status Closed, got %d, %s", updated.Progress, updated.Status)
	}
	if updated.Site != created.Site {
		t.Errorf("Expected unset fields to be preserved, site changed to %q", updated.Site)
	}
}

func TestUpdateTaskRejectsEmptyRequiredField(t *testing.T) {
	svc, _ := newTestService(t)
	created, _ := svc.CreateTask(validParams())

	empty := ""
	_, err := svc.UpdateTask(created.ID, UpdateTaskParams{Site: &empty})
	if !errors.Is(err, ErrMissingField) {
		t.Errorf("Expected ErrMissingField, got %v", err)
	}
}

func TestUpdateTaskUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateTask(42, UpdateTaskParams{})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestSetTaskStatusRejectsUnknownValue(t *testing.T) {
	svc, _ := newTestService(t)
	created, _ := svc.CreateTask(validParams())

	_, err := svc.SetTaskStatus(created.ID, "Done")
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("Expected ErrInvalidStatus, got %v", err)
	}
}

func TestDeleteTaskUnknownID(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.DeleteTask(42)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestImportReplacesRegister(t *testing.T) {
	svc, register := newTestService(t)
	_, _ = svc.CreateTask(validParams())

	var buf bytes.Buffer
	incoming := []models.Task{
		{ID: 10, Site: "South", Department: "Civil", Description: "Culvert tie-in",
			ActionHolder: "K. Osei", Status: models.StatusOpen},
	}
	if err := store.WriteWorkbook(incoming, &buf, testSheet); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	count, err := svc.ImportTasks(&buf)
	if err != nil {
		t.Fatalf("ImportTasks failed: %v", err)
	}
	if count != 1 || register.Len() != 1 {
		t.Errorf("Expected register replaced with 1 task, got count=%d len=%d", count, register.Len())
	}
	if task, ok := register.Get(10); !ok || task.Site != "South" {
		t.Errorf("Expected imported task 10, got %+v ok=%v", task, ok)
	}
}

func TestImportRejectsMalformedWorkbookUntouched(t *testing.T) {
	svc, register := newTestService(t)
	_, _ = svc.CreateTask(validParams())

	_, err := svc.ImportTasks(bytes.NewReader([]byte("not a workbook")))
	if err == nil {
		t.Fatal("Expected an error for a malformed upload")
	}
	if register.Len() != 1 {
		t.Errorf("Expected register untouched after rejected upload, got %d tasks", register.Len())
	}
}

func TestExportAppliesFilter(t *testing.T) {
	svc, _ := newTestService(t)
	_, _ = svc.CreateTask(validParams())

	other := validParams()
	other.Department = "Civil"
	_, _ = svc.CreateTask(other)

	var buf bytes.Buffer
	count, err := svc.ExportTasks(&buf, Filter{Department: "Civil"})
	if err != nil {
		t.Fatalf("ExportTasks failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("Expected 1 exported task, got %d", count)
	}

	tasks, err := store.ReadWorkbook(&buf, testSheet)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(tasks) != 1 || tasks[0].Department != "Civil" {
		t.Errorf("Expected only the Civil task in the export, got %+v", tasks)
	}
}

func TestSaveRegisterRoundTrip(t *testing.T) {
	register := store.NewRegister()
	path := filepath.Join(t.TempDir(), "register.xlsx")
	svc := NewTaskService(zerolog.Nop(), register, path, testSheet)

	created, err := svc.CreateTask(validParams())
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if err := svc.SaveRegister(); err != nil {
		t.Fatalf("SaveRegister failed: %v", err)
	}

	loaded, err := store.LoadWorkbook(path, testSheet)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if len(loaded) != 1 {
		t.Fatalf("Expected 1 task after reload, got %d", len(loaded))
	}
	if loaded[0] != *created {
		t.Errorf("Reloaded task differs:\n got %+v\nwant %+v", loaded[0], *created)
	}
}
