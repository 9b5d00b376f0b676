package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/NLynch19/Handover/internal/models"
)

var (
	ErrMissingColumn = errors.New("missing required column")
	ErrDuplicateID   = errors.New("duplicate task id")
)

// LoadWorkbook reads the register sheet from an .xlsx file. A missing
// file is not an error: a brand new session starts with an empty table.
func LoadWorkbook(path, sheet string) ([]models.Task, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readSheet(f, sheet)
}

// ReadWorkbook parses an uploaded .xlsx stream.
func ReadWorkbook(r io.Reader, sheet string) ([]models.Task, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readSheet(f, sheet)
}

// SaveWorkbook writes the whole table to an .xlsx file, one row per
// task, header in the fixed column order.
func SaveWorkbook(tasks []models.Task, path, sheet string) error {
	f, err := buildWorkbook(tasks, sheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	err = f.SaveAs(path)
	if err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// WriteWorkbook streams the table as an .xlsx document, used for
// download-style exports.
func WriteWorkbook(tasks []models.Task, w io.Writer, sheet string) error {
	f, err := buildWorkbook(tasks, sheet)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteTo(w)
	if err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildWorkbook(tasks []models.Task, sheet string) (*excelize.File, error) {
	f := excelize.NewFile()

	_, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	err = f.DeleteSheet("Sheet1")
	if err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	header := make([]any, len(models.Columns))
	for i, name := range models.Columns {
		header[i] = name
	}
	err = f.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, task := range tasks {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve cell: %w", err)
		}
		row := taskRow(task)
		err = f.SetSheetRow(sheet, cell, &row)
		if err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return f, nil
}

func taskRow(task models.Task) []any {
	return []any{
		strconv.Itoa(task.ID),
		task.Area,
		task.Site,
		task.MOCNumber,
		task.Department,
		task.Contractor,
		task.ProjectNumber,
		task.ProjectName,
		task.ProjectTitle,
		task.ProjectManager,
		task.Coordinator,
		task.Description,
		task.Deliverables,
		task.DeliverablesLocation,
		formatDate(task.TargetFinish, models.DateLayout),
		strconv.Itoa(task.Progress),
		task.Condition,
		task.ActionHolder,
		task.Status,
		formatDate(task.CreatedAt, models.DateLayout),
		formatDate(task.LastUpdate, models.TimestampLayout),
	}
}

func readSheet(f *excelize.File, sheet string) ([]models.Task, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	colIdx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		colIdx[name] = i
	}
	for _, name := range models.Columns {
		if _, ok := colIdx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	seen := make(map[int]struct{}, len(rows)-1)
	tasks := make([]models.Task, 0, len(rows)-1)
	for n, row := range rows[1:] {
		cell := func(name string) string {
			i := colIdx[name]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		if cell("ID No") == "" {
			// Trailing blank rows are common in hand-edited sheets.
			continue
		}

		task, err := parseTaskRow(cell)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		if _, ok := seen[task.ID]; ok {
			return nil, fmt.Errorf("row %d: %w: %d", n+2, ErrDuplicateID, task.ID)
		}
		seen[task.ID] = struct{}{}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func parseTaskRow(cell func(string) string) (models.Task, error) {
	id, err := strconv.Atoi(cell("ID No"))
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid ID No %q", cell("ID No"))
	}

	progress := 0
	if s := cell("Progress"); s != "" {
		progress, err = strconv.Atoi(s)
		if err != nil {
			return models.Task{}, fmt.Errorf("invalid Progress %q", s)
		}
	}

	targetFinish, err := parseDate(cell("Target Finish"), models.DateLayout)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid Target Finish %q", cell("Target Finish"))
	}
	createdAt, err := parseDate(cell("Created"), models.DateLayout)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid Created %q", cell("Created"))
	}
	lastUpdate, err := parseDate(cell("Last Update"), models.TimestampLayout)
	if err != nil {
		return models.Task{}, fmt.Errorf("invalid Last Update %q", cell("Last Update"))
	}

	return models.Task{
		ID:                   id,
		Area:                 cell("AREA"),
		Site:                 cell("Site"),
		MOCNumber:            cell("MOC No"),
		Department:           cell("Assigned Dept"),
		Contractor:           cell("Assigned Contractor"),
		ProjectNumber:        cell("Project Number"),
		ProjectName:          cell("Project Name"),
		ProjectTitle:         cell("Project Title"),
		ProjectManager:       cell("Project Manager"),
		Coordinator:          cell("MOC Coordinator"),
		Description:          cell("Brief Description"),
		Deliverables:         cell("Deliverables"),
		DeliverablesLocation: cell("Deliverables Location"),
		TargetFinish:         targetFinish,
		Progress:             progress,
		Condition:            cell("Condition"),
		ActionHolder:         cell("Action Holder"),
		Status:               cell("STATUS"),
		CreatedAt:            createdAt,
		LastUpdate:           lastUpdate,
	}, nil
}

func parseDate(s, layout string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(layout, s)
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
