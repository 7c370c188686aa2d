package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskboard/config"
	"taskboard/internal/calendarsync"
	dashboardVM "taskboard/internal/dashboard/viewmodel"
	"taskboard/internal/task/repository"
	"taskboard/internal/task/repository/rest"
	"taskboard/internal/taskdetail"
	detailVM "taskboard/internal/taskdetail/viewmodel"
	listVM "taskboard/internal/tasklist/viewmodel"
	"taskboard/internal/tui"
	"taskboard/pkg/datemath"
	"taskboard/pkg/gcalendar"
	"taskboard/pkg/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.ValidateClient(); err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// 2. Logger: the terminal belongs to the UI, so logs go to a file or nowhere.
	var logger log.Logger
	if cfg.Logger.File != "" {
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: false,
			OutputPaths:  []string{cfg.Logger.File},
		})
	} else {
		logger = log.NewNop()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting taskboard against %s", cfg.API.BaseURL)

	// 3. Gateway
	dates := datemath.NewParserIn(loc)
	gw := rest.New(rest.NewClient(repository.ClientOptions{
		BaseURL:     cfg.API.BaseURL,
		AccessToken: cfg.API.AccessToken,
		Timeout:     cfg.API.Timeout,
	}), logger)

	// 4. Optional calendar export
	var exporter tui.Exporter
	if cfg.Calendar.Enabled() {
		cal, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Calendar.CredentialsPath, cfg.Calendar.TokenPath)
		if err != nil {
			logger.Warnf(ctx, "Calendar export disabled: %v", err)
		} else {
			calDates := dates
			if cfg.Calendar.Timezone != "" && cfg.Calendar.Timezone != cfg.Timezone {
				if p, err := datemath.NewParser(cfg.Calendar.Timezone); err == nil {
					calDates = p
				} else {
					logger.Warnf(ctx, "Calendar timezone ignored: %v", err)
				}
			}
			exporter = calendarsync.NewExporter(cal, cfg.Calendar.CalendarID, calDates, logger)
			logger.Infof(ctx, "Calendar export enabled for %s", cfg.Calendar.CalendarID)
		}
	}

	// 5. View models + terminal UI
	return tui.Run(ctx, tui.Options{
		List:      listVM.New(logger, gw, dates),
		Dashboard: dashboardVM.New(logger, gw, dates, time.Now),
		NewDetail: func(id string, onDeleted func(string)) taskdetail.ViewModel {
			return detailVM.New(logger, gw, id, onDeleted)
		},
		Exporter: exporter,
		Dates:    dates,
		Now:      time.Now,
	})
}
