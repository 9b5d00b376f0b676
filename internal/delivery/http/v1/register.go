package v1

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HandleImportRegister replaces the register with the table parsed from
// an uploaded workbook. A malformed file leaves the register untouched.
func (h *handlerImpl) HandleImportRegister(c *gin.Context) {
	fileHeader, err := c.FormFile("workbook")
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("no workbook in upload")
		abort(c, newBadRequestError(errMissingUploadFile.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to open uploaded workbook")
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	defer func() { _ = file.Close() }()

	count, err := h.tasks.ImportTasks(file)
	if err != nil {
		abort(c, newBadRequestError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": count})
}

// HandleExportRegister streams the current (optionally filtered) table
// as a downloadable workbook.
func (h *handlerImpl) HandleExportRegister(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abort(c, newBadRequestError(err.Error()))
		return
	}

	var buf bytes.Buffer
	_, err = h.tasks.ExportTasks(&buf, filter)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	name := fmt.Sprintf("moc-register-%s.xlsx", uuid.NewString()[:8])
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// HandleSaveRegister persists the whole table to the session workbook.
func (h *handlerImpl) HandleSaveRegister(c *gin.Context) {
	err := h.tasks.SaveRegister()
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}
	c.Status(http.StatusNoContent)
}
