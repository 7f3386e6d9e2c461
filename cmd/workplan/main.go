package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/workplan/internal/cli"
	"github.com/alexanderramin/workplan/internal/cli/formatter"
	"github.com/alexanderramin/workplan/internal/clock"
	"github.com/alexanderramin/workplan/internal/config"
	"github.com/alexanderramin/workplan/internal/db"
	"github.com/alexanderramin/workplan/internal/httpapi"
	"github.com/alexanderramin/workplan/internal/intelligence"
	"github.com/alexanderramin/workplan/internal/llm"
	"github.com/alexanderramin/workplan/internal/repository"
	"github.com/alexanderramin/workplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var database *sql.DB
	defer func() {
		if database != nil {
			database.Close()
		}
	}()

	app := &cli.App{}

	// Detect an interactive terminal for spinners and colour.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
	if !app.IsInteractive() {
		formatter.DisableColor()
	}

	app.Configure = func(configPath string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		logger := cfg.Log.NewLogger(os.Stderr)
		slog.SetDefault(logger)

		// The pinned clock only feeds the reference date given to the
		// generator and hints; audit rows and export names use wall time.
		clk, err := cfg.Clock()
		if err != nil {
			return err
		}
		wall := clock.RealClock{}
		observer := service.NewLogUseCaseObserver(logger)

		// A disabled generator leaves a nil client; every chat round then
		// answers with the fixed apology.
		var client llm.LLMClient
		if cfg.LLM.Enabled {
			var llmObserver llm.Observer = llm.NoopObserver{}
			if cfg.LLM.LogCalls {
				llmObserver = llm.NewLogObserver(logger)
			}
			client = llm.NewClient(cfg.LLM, llmObserver)
		}

		// Optional reconciliation audit log.
		var audit service.AuditService
		if cfg.Audit.DBPath != "" {
			database, err = db.OpenDB(cfg.Audit.DBPath)
			if err != nil {
				return fmt.Errorf("opening audit database: %w", err)
			}
			audit = service.NewAuditService(
				repository.NewSQLiteReconciliationRepo(database),
				db.NewSQLiteUnitOfWork(database),
				wall,
			)
		}

		chat := service.NewChatService(intelligence.NewPlanChatService(client), clk, audit, observer)
		suggest := service.NewSuggestService(observer)
		export := service.NewExportService(wall, observer)

		settings := httpapi.DefaultSettings()
		settings.Addr = cfg.Server.Addr
		settings.AllowedOrigins = cfg.Server.AllowedOrigins
		settings.ReadTimeout = cfg.Server.ReadTimeout
		settings.WriteTimeout = cfg.Server.WriteTimeout

		app.Chat = chat
		app.Suggest = suggest
		app.Export = export
		app.Audit = audit
		app.Clock = clk
		app.WallClock = wall
		app.Server = httpapi.NewServer(settings, httpapi.Services{
			Chat:    chat,
			Suggest: suggest,
			Export:  export,
		}, httpapi.WithLogger(logger))
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
