package daemon

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"clausecheck/internal/config"
	"clausecheck/internal/logging"
	"clausecheck/internal/queue"
)

// settleDelay gives the writer time to finish before an inbox file is claimed.
const settleDelay = 500 * time.Millisecond

// inboxWatcher monitors the inbox directory for dropped elements documents
// and enqueues them for review.
type inboxWatcher struct {
	cfg    *config.Config
	store  *queue.Store
	logger *slog.Logger

	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

func newInboxWatcher(cfg *config.Config, store *queue.Store, logger *slog.Logger) *inboxWatcher {
	return &inboxWatcher{
		cfg:    cfg,
		store:  store,
		logger: logging.NewComponentLogger(logger, "inbox-watcher"),
	}
}

func (w *inboxWatcher) start(ctx context.Context) error {
	inbox := strings.TrimSpace(w.cfg.Paths.InboxDir)
	if inbox == "" {
		return nil
	}
	if err := os.MkdirAll(inbox, 0o755); err != nil {
		return fmt.Errorf("create inbox directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create inbox watcher: %w", err)
	}
	if err := watcher.Add(inbox); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch inbox directory: %w", err)
	}
	w.watcher = watcher

	// Pick up files dropped while the daemon was down.
	w.scanExisting(ctx, inbox)

	w.wg.Add(1)
	go w.run(ctx)
	w.logger.Info("inbox watcher started", logging.String("inbox", inbox))
	return nil
}

func (w *inboxWatcher) stop() {
	if w == nil || w.watcher == nil {
		return
	}
	_ = w.watcher.Close()
	w.wg.Wait()
	w.watcher = nil
}

func (w *inboxWatcher) run(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Rename) {
				continue
			}
			if !isElementsFile(event.Name) {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(settleDelay):
			}
			w.claim(ctx, event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("inbox watch error", logging.Error(err))
		}
	}
}

func (w *inboxWatcher) scanExisting(ctx context.Context, inbox string) {
	entries, err := os.ReadDir(inbox)
	if err != nil {
		w.logger.Warn("inbox scan failed", logging.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(inbox, entry.Name())
		if !isElementsFile(path) {
			continue
		}
		w.claim(ctx, path)
	}
}

// claim moves an inbox file into the data directory and enqueues a job for
// it. Files that vanished between the event and the claim are skipped.
func (w *inboxWatcher) claim(ctx context.Context, path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}

	destPath := filepath.Join(w.cfg.Paths.DataDir, filepath.Base(path))
	if _, err := os.Stat(destPath); err == nil {
		destPath = filepath.Join(w.cfg.Paths.DataDir,
			fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(path)))
	}
	if err := os.Rename(path, destPath); err != nil {
		w.logger.Warn("failed to move inbox file",
			logging.String("source", path),
			logging.Error(err),
		)
		return
	}

	existing, err := w.store.FindBySourcePath(ctx, destPath)
	if err == nil && existing != nil && !existing.Status.IsTerminal() {
		w.logger.Info("document already queued", logging.String("source", destPath))
		return
	}

	job, err := w.store.NewJob(ctx, destPath)
	if err != nil {
		w.logger.Error("failed to enqueue inbox document",
			logging.String("source", destPath),
			logging.Error(err),
		)
		return
	}
	w.logger.Info("inbox document queued",
		logging.Int64(logging.FieldJobID, job.ID),
		logging.String("source", destPath),
	)
}

func isElementsFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
