package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// HandleReport renders the (optionally filtered) table into a Word
// summary document and streams it as a download.
func (h *handlerImpl) HandleReport(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abort(c, newBadRequestError(err.Error()))
		return
	}

	doc, name, err := h.reports.BuildReport(filter)
	if err != nil {
		abort(c, newStatusTextError(http.StatusInternalServerError))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, docxContentType, doc)
}
