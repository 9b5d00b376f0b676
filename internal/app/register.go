package app

import (
	"github.com/NLynch19/Handover/internal/config"
	"github.com/NLynch19/Handover/internal/store"
)

var globalRegister *store.Register

// MustLoadRegister restores the task table from the session workbook.
// A missing file starts an empty session; a malformed one is fatal.
// Nothing is written back here: persistence happens only on explicit
// save or export.
func MustLoadRegister() {
	cfg := config.Global().Register

	tasks, err := store.LoadWorkbook(cfg.WorkbookPath, cfg.Sheet)
	if err != nil {
		globalLogger.Error().
			Err(err).
			Str("path", cfg.WorkbookPath).
			Msg("failed to load register workbook")
		panic(err)
	}

	globalRegister = store.NewRegister()
	globalRegister.Replace(tasks)

	globalLogger.Info().
		Int("count", len(tasks)).
		Str("path", cfg.WorkbookPath).
		Msg("loaded register")
}
