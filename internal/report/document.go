package report

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/NLynch19/Handover/internal/models"
)

var tableHeader = []string{
	"ID No", "MOC No", "Assigned Dept", "Site",
	"Target Finish", "Action Holder", "Progress", "STATUS",
}

// Build renders the given (already filtered) table into a Word document:
// a heading, a short narrative, a summary table and, when the table is
// not empty, an embedded status-distribution chart.
func Build(tasks []models.Task, now time.Time) ([]byte, error) {
	summary := Summarize(tasks, now)

	w := docx.New().WithDefaultTheme()

	w.AddParagraph().AddText("MOC Handover Summary").Size("32").Bold()
	w.AddParagraph().AddText("Generated " + now.Format("2 January 2006 15:04")).Size("18")
	w.AddParagraph()

	for _, line := range narrative(summary) {
		w.AddParagraph().AddText(line)
	}
	w.AddParagraph()

	err := writeTable(w, tasks)
	if err != nil {
		return nil, err
	}

	if summary.Total > 0 {
		png, err := StatusChart(summary)
		if err != nil {
			return nil, err
		}
		w.AddParagraph()
		_, err = w.AddParagraph().AddInlineDrawing(png)
		if err != nil {
			return nil, fmt.Errorf("failed to embed status chart: %w", err)
		}
	}

	var buf bytes.Buffer
	_, err = w.WriteTo(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}
	return buf.Bytes(), nil
}

func narrative(summary Summary) []string {
	lines := []string{
		fmt.Sprintf("%d task(s) in scope: %d open, %d in progress, %d closed.",
			summary.Total,
			summary.ByStatus[models.StatusOpen],
			summary.ByStatus[models.StatusInProgress],
			summary.ByStatus[models.StatusClosed]),
	}
	if summary.Overdue > 0 {
		lines = append(lines, fmt.Sprintf("%d task(s) are past their target finish date.", summary.Overdue))
	}

	departments := make([]string, 0, len(summary.ByDepartment))
	for dept := range summary.ByDepartment {
		departments = append(departments, dept)
	}
	sort.Strings(departments)
	for _, dept := range departments {
		lines = append(lines, fmt.Sprintf("%s: %d task(s).", dept, summary.ByDepartment[dept]))
	}
	return lines
}

func writeTable(w *docx.Docx, tasks []models.Task) error {
	tbl := w.AddTable(len(tasks)+1, len(tableHeader), 0, nil)

	for j, name := range tableHeader {
		tbl.TableRows[0].TableCells[j].AddParagraph().AddText(name).Bold()
	}
	for i, task := range tasks {
		cells := tbl.TableRows[i+1].TableCells
		values := []string{
			strconv.Itoa(task.ID),
			task.MOCNumber,
			task.Department,
			task.Site,
			task.TargetFinish.Format(models.DateLayout),
			task.ActionHolder,
			strconv.Itoa(task.Progress) + "%",
			task.Status,
		}
		for j, value := range values {
			cells[j].AddParagraph().AddText(value)
		}
	}
	return nil
}
