package services

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/NLynch19/Handover/internal/models"
	"github.com/NLynch19/Handover/internal/store"
)

type taskServiceImpl struct {
	logger       zerolog.Logger
	register     *store.Register
	workbookPath string
	sheet        string
}

func NewTaskService(
	logger zerolog.Logger,
	register *store.Register,
	workbookPath string,
	sheet string,
) TaskService {
	return &taskServiceImpl{
		logger:       logger,
		register:     register,
		workbookPath: workbookPath,
		sheet:        sheet,
	}
}

func (s *taskServiceImpl) CreateTask(params TaskParams) (*models.Task, error) {
	task, err := taskFromParams(params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("rejected task form")
		return nil, err
	}

	now := time.Now()
	task.CreatedAt = models.DateStamp(now)
	task.LastUpdate = models.MinuteStamp(now)

	created := s.register.Add(task)
	s.logger.Debug().
		Int("task_id", created.ID).
		Msg("appended task to register")

	s.logger.Info().
		Int("task_id", created.ID).
		Str("department", created.Department).
		Msg("created task")
	return &created, nil
}

func (s *taskServiceImpl) GetTask(id int) (*models.Task, error) {
	task, ok := s.register.Get(id)
	if !ok {
		s.logger.Error().
			Int("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}
	return &task, nil
}

func (s *taskServiceImpl) ListTasks(filter Filter) []models.Task {
	tasks := ApplyFilter(s.register.Tasks(), filter)
	s.logger.Debug().
		Int("count", len(tasks)).
		Msg("listed tasks")
	return tasks
}

func (s *taskServiceImpl) UpdateTask(id int, params UpdateTaskParams) (*models.Task, error) {
	task, ok := s.register.Get(id)
	if !ok {
		s.logger.Error().
			Int("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	err := applyUpdate(&task, params)
	if err != nil {
		s.logger.Error().
			Err(err).
			Int("task_id", id).
			Msg("rejected task update")
		return nil, err
	}
	task.LastUpdate = models.MinuteStamp(time.Now())

	if !s.register.Update(task) {
		// Deleted between the read and the write.
		return nil, ErrTaskNotFound
	}
	s.logger.Debug().
		Int("task_id", id).
		Msg("wrote task back to register")

	s.logger.Info().
		Int("task_id", id).
		Msg("updated task")
	return &task, nil
}

func (s *taskServiceImpl) SetTaskStatus(id int, status string) (*models.Task, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	task, ok := s.register.Get(id)
	if !ok {
		s.logger.Error().
			Int("task_id", id).
			Msg("task not found")
		return nil, ErrTaskNotFound
	}

	task.Status = status
	task.LastUpdate = models.MinuteStamp(time.Now())
	if !s.register.Update(task) {
		return nil, ErrTaskNotFound
	}

	s.logger.Info().
		Int("task_id", id).
		Str("status", status).
		Msg("updated task status")
	return &task, nil
}

func (s *taskServiceImpl) DeleteTask(id int) error {
	if !s.register.Delete(id) {
		s.logger.Error().
			Int("task_id", id).
			Msg("task not found")
		return ErrTaskNotFound
	}

	s.logger.Info().
		Int("task_id", id).
		Msg("deleted task")
	return nil
}

func (s *taskServiceImpl) ClearTasks() {
	s.register.Clear()
	s.logger.Info().Msg("cleared register")
}

func (s *taskServiceImpl) ImportTasks(r io.Reader) (int, error) {
	tasks, err := store.ReadWorkbook(r, s.sheet)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to parse uploaded workbook")
		return 0, err
	}

	s.register.Replace(tasks)
	s.logger.Info().
		Int("count", len(tasks)).
		Msg("imported register from upload")
	return len(tasks), nil
}

func (s *taskServiceImpl) ExportTasks(w io.Writer, filter Filter) (int, error) {
	tasks := ApplyFilter(s.register.Tasks(), filter)
	err := store.WriteWorkbook(tasks, w, s.sheet)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to write export workbook")
		return 0, err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Msg("exported register")
	return len(tasks), nil
}

func (s *taskServiceImpl) SaveRegister() error {
	tasks := s.register.Tasks()
	err := store.SaveWorkbook(tasks, s.workbookPath, s.sheet)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("path", s.workbookPath).
			Msg("failed to save register")
		return err
	}

	s.logger.Info().
		Int("count", len(tasks)).
		Str("path", s.workbookPath).
		Msg("saved register")
	return nil
}

func taskFromParams(params TaskParams) (models.Task, error) {
	required := []struct {
		name, value string
	}{
		{"site", params.Site},
		{"assigned dept", params.Department},
		{"brief description", params.Description},
		{"action holder", params.ActionHolder},
		{"target finish", params.TargetFinish},
	}
	for _, field := range required {
		if field.value == "" {
			return models.Task{}, fmt.Errorf("%w: %s", ErrMissingField, field.name)
		}
	}

	targetFinish, err := time.Parse(models.DateLayout, params.TargetFinish)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidDate, params.TargetFinish)
	}

	status := params.Status
	if status == "" {
		status = models.StatusOpen
	}
	if !models.ValidStatus(status) {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if params.Progress < 0 || params.Progress > 100 {
		return models.Task{}, ErrInvalidProgress
	}

	return models.Task{
		Area:                 params.Area,
		Site:                 params.Site,
		MOCNumber:            params.MOCNumber,
		Department:           params.Department,
		Contractor:           params.Contractor,
		ProjectNumber:        params.ProjectNumber,
		ProjectName:          params.ProjectName,
		ProjectTitle:         params.ProjectTitle,
		ProjectManager:       params.ProjectManager,
		Coordinator:          params.Coordinator,
		Description:          params.Description,
		Deliverables:         params.Deliverables,
		DeliverablesLocation: params.DeliverablesLocation,
		TargetFinish:         targetFinish,
		Progress:             params.Progress,
		Condition:            params.Condition,
		ActionHolder:         params.ActionHolder,
		Status:               status,
	}, nil
}

func applyUpdate(task *models.Task, params UpdateTaskParams) error {
	setString := func(dst *string, src *string, name string, required bool) error {
		if src == nil {
			return nil
		}
		if required && *src == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, name)
		}
		*dst = *src
		return nil
	}

	checks := []error{
		setString(&task.Area, params.Area, "area", false),
		setString(&task.Site, params.Site, "site", true),
		setString(&task.MOCNumber, params.MOCNumber, "moc no", false),
		setString(&task.Department, params.Department, "assigned dept", true),
		setString(&task.Contractor, params.Contractor, "assigned contractor", false),
		setString(&task.ProjectNumber, params.ProjectNumber, "project number", false),
		setString(&task.ProjectName, params.ProjectName, "project name", false),
		setString(&task.ProjectTitle, params.ProjectTitle, "project title", false),
		setString(&task.ProjectManager, params.ProjectManager, "project manager", false),
		setString(&task.Coordinator, params.Coordinator, "moc coordinator", false),
		setString(&task.Description, params.Description, "brief description", true),
		setString(&task.Deliverables, params.Deliverables, "deliverables", false),
		setString(&task.DeliverablesLocation, params.DeliverablesLocation, "deliverables location", false),
		setString(&task.Condition, params.Condition, "condition", false),
		setString(&task.ActionHolder, params.ActionHolder, "action holder", true),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	if params.TargetFinish != nil {
		targetFinish, err := time.Parse(models.DateLayout, *params.TargetFinish)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidDate, *params.TargetFinish)
		}
		task.TargetFinish = targetFinish
	}
	if params.Progress != nil {
		if *params.Progress < 0 || *params.Progress > 100 {
			return ErrInvalidProgress
		}
		task.Progress = *params.Progress
	}
	if params.Status != nil {
		if !models.ValidStatus(*params.Status) {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, *params.Status)
		}
		task.Status = *params.Status
	}
	return nil
}
