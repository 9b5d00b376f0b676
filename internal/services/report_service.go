package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/NLynch19/Handover/internal/report"
	"github.com/NLynch19/Handover/internal/store"
)

type reportServiceImpl struct {
	logger   zerolog.Logger
	register *store.Register
}

func NewReportService(
	logger zerolog.Logger,
	register *store.Register,
) ReportService {
	return &reportServiceImpl{
		logger:   logger,
		register: register,
	}
}

func (s *reportServiceImpl) BuildReport(filter Filter) ([]byte, string, error) {
	tasks := ApplyFilter(s.register.Tasks(), filter)

	doc, err := report.Build(tasks, time.Now())
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to build report")
		return nil, "", err
	}

	name := fmt.Sprintf("moc-summary-%s.docx", uuid.NewString()[:8])
	s.logger.Info().
		Int("count", len(tasks)).
		Str("file", name).
		Msg("built report")
	return doc, name, nil
}
