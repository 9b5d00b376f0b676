package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NLynch19/Handover/internal/models"
)

// HandleIndex serves the entry form and register table page.
func (h *handlerImpl) HandleIndex(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abort(c, newBadRequestError(err.Error()))
		return
	}

	tasks := h.tasks.ListTasks(filter)
	rows := make([]taskResponse, len(tasks))
	for i := range tasks {
		rows[i] = newTaskResponse(&tasks[i])
	}

	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Tasks":    rows,
		"Statuses": models.Statuses,
	})
}
