package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio/cmd/portfolio/ui"
	"portfolio/internal/carousel"
	"portfolio/internal/catalog"
	"portfolio/internal/logging"
	"portfolio/internal/ux"
	"portfolio/internal/watch"
)

// runInteractive runs the carousel until the viewer quits, with the item
// and preferences files watched alongside.
func runInteractive(cmd *cobra.Command, args []string) error {
	boot := logging.For(logger, logging.CategoryBoot)

	items, err := catalog.Resolve(cfg.Catalog.ItemsPath)
	if err != nil {
		return err
	}

	prefs := ux.NewPreferencesManager(cfg.Preferences.Path)
	if err := prefs.Load(); err != nil {
		boot.Warn("ignoring unreadable preferences", zap.Error(err))
	}
	if cfg.UI.Theme != "" && cfg.UI.Theme != string(ux.ThemeSystem) && prefs.Get().Theme == ux.ThemeSystem {
		theme, _ := ux.ParseTheme(cfg.UI.Theme)
		prefs.SetTheme(theme)
	}

	model := ui.NewModel(ui.Options{
		Items:             items,
		ControllerOptions: controllerOptions(),
		Prefs:             prefs,
		ReducedMotion:     cfg.Carousel.ReducedMotion,
		CellWidthPx:       cfg.CellWidth(),
		Logger:            logging.For(logger, logging.CategoryUI),
	})
	boot.Info("carousel starting",
		zap.Int("items", len(items)),
		zap.String("items_path", cfg.Catalog.ItemsPath),
		zap.Duration("interval", cfg.GetInterval()))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)
	runCtx, cancel := context.WithCancel(gctx)
	defer cancel()

	popts := []tea.ProgramOption{tea.WithContext(runCtx), tea.WithReportFocus()}
	if cfg.UI.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		popts = append(popts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, popts...)

	for _, w := range startWatchers(prefs, p) {
		g.Go(func() error {
			if err := w.Run(runCtx); err != nil {
				logger.Warn("watcher stopped", zap.String("path", w.Path()), zap.Error(err))
			}
			return nil
		})
	}

	var final tea.Model
	g.Go(func() error {
		defer cancel()
		m, err := p.Run()
		final = m
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	err = g.Wait()
	if m, ok := final.(ui.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	return err
}

// startWatchers creates the file watchers that feed the program. Watchers
// that cannot be created are logged and skipped.
func startWatchers(prefs *ux.PreferencesManager, p *tea.Program) []*watch.FileWatcher {
	var watchers []*watch.FileWatcher

	if cfg.Catalog.Watch && cfg.Catalog.ItemsPath != "" {
		w, err := catalog.Watch(cfg.Catalog.ItemsPath, logging.For(logger, logging.CategoryCatalog), func(items []carousel.Item) {
			p.Send(ui.ItemsReloadedMsg{Items: items})
		})
		if err != nil {
			logger.Warn("item watcher unavailable", zap.Error(err))
		} else {
			watchers = append(watchers, w)
		}
	}

	if err := os.MkdirAll(filepath.Dir(prefs.Path()), 0755); err != nil {
		logger.Warn("preferences directory unavailable", zap.Error(err))
		return watchers
	}
	w, err := prefs.Watch(logging.For(logger, logging.CategoryPrefs), func(pr *ux.Preferences) {
		p.Send(ui.PreferencesChangedMsg{Prefs: pr})
	})
	if err != nil {
		logger.Warn("preferences watcher unavailable", zap.Error(err))
	} else {
		watchers = append(watchers, w)
	}
	return watchers
}
