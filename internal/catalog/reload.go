package catalog

import (
	"go.uber.org/zap"

	"portfolio/internal/carousel"
	"portfolio/internal/watch"
)

// Watch returns a watcher that reloads the item file at path whenever it
// changes. Valid reloads go to onReload; invalid files are logged and the
// previous items stay in place.
func Watch(path string, logger *zap.Logger, onReload func([]carousel.Item)) (*watch.FileWatcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return watch.New(path, func(p string) {
		items, err := Load(p)
		if err != nil {
			logger.Warn("item reload rejected", zap.String("path", p), zap.Error(err))
			return
		}
		logger.Info("items reloaded", zap.String("path", p), zap.Int("count", len(items)))
		if onReload != nil {
			onReload(items)
		}
	}, watch.WithLogger(logger))
}
