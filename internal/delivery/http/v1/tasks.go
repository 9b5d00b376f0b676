package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NLynch19/Handover/internal/models"
	"github.com/NLynch19/Handover/internal/services"
)

type taskResponse struct {
	ID                   int    `json:"id"`
	Area                 string `json:"area"`
	Site                 string `json:"site"`
	MOCNumber            string `json:"moc_no"`
	Department           string `json:"assigned_dept"`
	Contractor           string `json:"assigned_contractor"`
	ProjectNumber        string `json:"project_number"`
	ProjectName          string `json:"project_name"`
	ProjectTitle         string `json:"project_title"`
	ProjectManager       string `json:"project_manager"`
	Coordinator          string `json:"moc_coordinator"`
	Description          string `json:"brief_description"`
	Deliverables         string `json:"deliverables"`
	DeliverablesLocation string `json:"deliverables_location"`
	TargetFinish         string `json:"target_finish"`
	Progress             int    `json:"progress"`
	Condition            string `json:"condition"`
	ActionHolder         string `json:"action_holder"`
	Status               string `json:"status"`
	Created              string `json:"created"`
	LastUpdate           string `json:"last_update"`
}

func newTaskResponse(task *models.Task) taskResponse {
	return taskResponse{
		ID:                   task.ID,
		Area:                 task.Area,
		Site:                 task.Site,
		MOCNumber:            task.MOCNumber,
		Department:           task.Department,
		Contractor:           task.Contractor,
		ProjectNumber:        task.ProjectNumber,
		ProjectName:          task.ProjectName,
		ProjectTitle:         task.ProjectTitle,
		ProjectManager:       task.ProjectManager,
		Coordinator:          task.Coordinator,
		Description:          task.Description,
		Deliverables:         task.Deliverables,
		DeliverablesLocation: task.DeliverablesLocation,
		TargetFinish:         task.TargetFinish.Format(models.DateLayout),
		Progress:             task.Progress,
		Condition:            task.Condition,
		ActionHolder:         task.ActionHolder,
		Status:               task.Status,
		Created:              task.CreatedAt.Format(models.DateLayout),
		LastUpdate:           task.LastUpdate.Format(models.TimestampLayout),
	}
}

type createTaskRequest struct {
	Area                 string `json:"area" form:"area"`
	Site                 string `json:"site" form:"site"`
	MOCNumber            string `json:"moc_no" form:"moc_no"`
	Department           string `json:"assigned_dept" form:"assigned_dept"`
	Contractor           string `json:"assigned_contractor" form:"assigned_contractor"`
	ProjectNumber        string `json:"project_number" form:"project_number"`
	ProjectName          string `json:"project_name" form:"project_name"`
	ProjectTitle         string `json:"project_title" form:"project_title"`
	ProjectManager       string `json:"project_manager" form:"project_manager"`
	Coordinator          string `json:"moc_coordinator" form:"moc_coordinator"`
	Description          string `json:"brief_description" form:"brief_description"`
	Deliverables         string `json:"deliverables" form:"deliverables"`
	DeliverablesLocation string `json:"deliverables_location" form:"deliverables_location"`
	TargetFinish         string `json:"target_finish" form:"target_finish"`
	Progress             int    `json:"progress" form:"progress"`
	Condition            string `json:"condition" form:"condition"`
	ActionHolder         string `json:"action_holder" form:"action_holder"`
	Status               string `json:"status" form:"status"`
}

func (h *handlerImpl) HandleCreateTask(c *gin.Context) {
	var req createTaskRequest
	err := c.ShouldBind(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind request body")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.CreateTask(services.TaskParams{
		Area:                 req.Area,
		Site:                 req.Site,
		MOCNumber:            req.MOCNumber,
		Department:           req.Department,
		Contractor:           req.Contractor,
		ProjectNumber:        req.ProjectNumber,
		ProjectName:          req.ProjectName,
		ProjectTitle:         req.ProjectTitle,
		ProjectManager:       req.ProjectManager,
		Coordinator:          req.Coordinator,
		Description:          req.Description,
		Deliverables:         req.Deliverables,
		DeliverablesLocation: req.DeliverablesLocation,
		TargetFinish:         req.TargetFinish,
		Progress:             req.Progress,
		Condition:            req.Condition,
		ActionHolder:         req.ActionHolder,
		Status:               req.Status,
	})
	if err != nil {
		h.abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(task))
}

func (h *handlerImpl) HandleListTasks(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		abort(c, newBadRequestError(err.Error()))
		return
	}

	tasks := h.tasks.ListTasks(filter)
	response := make([]taskResponse, len(tasks))
	for i := range tasks {
		response[i] = newTaskResponse(&tasks[i])
	}
	c.JSON(http.StatusOK, response)
}

func (h *handlerImpl) HandleGetTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	task, err := h.tasks.GetTask(id)
	if err != nil {
		h.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

type updateTaskRequest struct {
	Area                 *string `json:"area,omitempty"`
	Site                 *string `json:"site,omitempty"`
	MOCNumber            *string `json:"moc_no,omitempty"`
	Department           *string `json:"assigned_dept,omitempty"`
	Contractor           *string `json:"assigned_contractor,omitempty"`
	ProjectNumber        *string `json:"project_number,omitempty"`
	ProjectName          *string `json:"project_name,omitempty"`
	ProjectTitle         *string `json:"project_title,omitempty"`
	ProjectManager       *string `json:"project_manager,omitempty"`
	Coordinator          *string `json:"moc_coordinator,omitempty"`
	Description          *string `json:"brief_description,omitempty"`
	Deliverables         *string `json:"deliverables,omitempty"`
	DeliverablesLocation *string `json:"deliverables_location,omitempty"`
	TargetFinish         *string `json:"target_finish,omitempty"`
	Progress             *int    `json:"progress,omitempty"`
	Condition            *string `json:"condition,omitempty"`
	ActionHolder         *string `json:"action_holder,omitempty"`
	Status               *string `json:"status,omitempty"`
}

func (h *handlerImpl) HandleUpdateTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	var req updateTaskRequest
	err := c.ShouldBindJSON(&req)
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("failed to bind json")
		abort(c, newBadRequestError(errInvalidRequestBody.Error()))
		return
	}

	task, err := h.tasks.UpdateTask(id, services.UpdateTaskParams{
		Area:                 req.Area,
		Site:                 req.Site,
		MOCNumber:            req.MOCNumber,
		Department:           req.Department,
		Contractor:           req.Contractor,
		ProjectNumber:        req.ProjectNumber,
		ProjectName:          req.ProjectName,
		ProjectTitle:         req.ProjectTitle,
		ProjectManager:       req.ProjectManager,
		Coordinator:          req.Coordinator,
		Description:          req.Description,
		Deliverables:         req.Deliverables,
		DeliverablesLocation: req.DeliverablesLocation,
		TargetFinish:         req.TargetFinish,
		Progress:             req.Progress,
		Condition:            req.Condition,
		ActionHolder:         req.ActionHolder,
		Status:               req.Status,
	})
	if err != nil {
		h.abortServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleSetTaskStatus(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		abort(c, newBadRequestError("no status provided"))
		return
	}

	task, err := h.tasks.SetTaskStatus(id, status)
	if err != nil {
		h.abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTaskResponse(task))
}

func (h *handlerImpl) HandleDeleteTask(c *gin.Context) {
	id, ok := h.taskID(c)
	if !ok {
		return
	}

	err := h.tasks.DeleteTask(id)
	if err != nil {
		h.abortServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) HandleClearTasks(c *gin.Context) {
	h.tasks.ClearTasks()
	c.Status(http.StatusNoContent)
}

func (h *handlerImpl) taskID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.logger.Error().
			Str("id", c.Param("id")).
			Msg("invalid task id")
		abort(c, newBadRequestError(errInvalidTaskID.Error()))
		return 0, false
	}
	return id, true
}

func (h *handlerImpl) abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		abort(c, newNotFoundError(err.Error()))
	case errors.Is(err, services.ErrMissingField),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidProgress):
		abort(c, newBadRequestError(err.Error()))
	default:
		h.logger.Error().
			Err(err).
			Msg("task operation failed")
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}

func filterFromQuery(c *gin.Context) (services.Filter, error) {
	filter := services.Filter{
		Department: c.Query("assigned_dept"),
		Site:       c.Query("site"),
		Status:     c.Query("status"),
		Query:      c.Query("q"),
	}

	var err error
	filter.DueFrom, err = parseDateQuery(c.Query("due_from"))
	if err != nil {
		return services.Filter{}, err
	}
	filter.DueTo, err = parseDateQuery(c.Query("due_to"))
	if err != nil {
		return services.Filter{}, err
	}
	return filter, nil
}

func parseDateQuery(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(models.DateLayout, s)
}
