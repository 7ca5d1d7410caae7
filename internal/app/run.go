package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"stagehand/internal/config"
	"stagehand/internal/logging"
)

// Run builds the model from config and blocks until the UI exits.
func Run(cfg config.Config, logger logging.Logger) error {
	m, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			logger.Warn("close session store failed", logging.F("err", closeErr))
		}
	}()
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
