package cli

import (
	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/httpapi"
	"github.com/alexanderramin/workplan/internal/service"
)

// App holds the services CLI commands call into.
type App struct {
	Chat    service.ChatService
	Suggest service.SuggestService
	Export  service.ExportService
	// Audit is nil when no audit database is configured.
	Audit service.AuditService
	// Clock supplies the reference date (possibly pinned by config).
	Clock clock.Clock
	// WallClock measures audit ages. Nil falls back to the system clock.
	WallClock clock.Clock

	// Server backs the serve command; nil disables it.
	Server *httpapi.Server

	// IsInteractive reports whether output goes to a terminal. Nil means no.
	IsInteractive func() bool

	// Configure, when set, is called with the --config value before any
	// subcommand runs and fills in the fields above.
	Configure func(configPath string) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) now() clock.Clock {
	if a.Clock == nil {
		return clock.RealClock{}
	}
	return a.Clock
}

func (a *App) wall() clock.Clock {
	if a.WallClock == nil {
		return clock.RealClock{}
	}
	return a.WallClock
}
