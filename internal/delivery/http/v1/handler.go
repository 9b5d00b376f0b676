package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/NLynch19/Handover/internal/services"
)

type Handler interface {
	HandleIndex(c *gin.Context)

	HandleListTasks(c *gin.Context)
	HandleCreateTask(c *gin.Context)
	HandleGetTask(c *gin.Context)
	HandleUpdateTask(c *gin.Context)
	HandleSetTaskStatus(c *gin.Context)
	HandleDeleteTask(c *gin.Context)
	HandleClearTasks(c *gin.Context)

	HandleImportRegister(c *gin.Context)
	HandleExportRegister(c *gin.Context)
	HandleSaveRegister(c *gin.Context)

	HandleReport(c *gin.Context)
}

type handlerImpl struct {
	logger  zerolog.Logger
	tasks   services.TaskService
	reports services.ReportService
}

func New(
	logger zerolog.Logger,
	taskService services.TaskService,
	reportService services.ReportService,
) Handler {
	return &handlerImpl{
		logger:  logger,
		tasks:   taskService,
		reports: reportService,
	}
}
