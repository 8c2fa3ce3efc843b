// Package watcher monitors a drop directory for new transcript files and
// hands them to a processing callback with bounded concurrency.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/talkvault/meetgest/internal/parser"
)

// Handler processes one newly created transcript file.
type Handler func(ctx context.Context, path string) error

// Watcher monitors a single input directory.
type Watcher struct {
	inputDir  string
	handler   Handler
	log       *slog.Logger
	fs        *fsnotify.Watcher
	semaphore chan struct{}
	wg        sync.WaitGroup

	// settleDelay gives writers time to finish before we read the file.
	settleDelay time.Duration
}

// New creates a watcher on inputDir. maxConcurrent bounds how many files
// are processed at once; values <= 0 default to 2.
func New(inputDir string, handler Handler, log *slog.Logger, maxConcurrent int) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(inputDir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	return &Watcher{
		inputDir:    inputDir,
		handler:     handler,
		log:         log,
		fs:          fs,
		semaphore:   make(chan struct{}, maxConcurrent),
		settleDelay: 500 * time.Millisecond,
	}, nil
}

// Start blocks, dispatching created files until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.log.Info("watching for transcripts", "dir", w.inputDir, "max_concurrent", cap(w.semaphore))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("waiting for in-flight files")
			w.wg.Wait()
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !parser.IsSupportedExtension(event.Name) {
				w.log.Debug("ignoring unsupported file", "path", event.Name)
				continue
			}
			w.log.Info("new transcript detected", "path", event.Name)

			// Give the writer time to finish.
			time.Sleep(w.settleDelay)

			select {
			case w.semaphore <- struct{}{}:
				w.wg.Add(1)
				go func(path string) {
					defer w.wg.Done()
					defer func() { <-w.semaphore }()
					if err := w.handler(ctx, path); err != nil {
						w.log.Error("failed to process file", "path", path, "error", err)
					}
				}(event.Name)
			case <-ctx.Done():
				return ctx.Err()
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

// Stop closes the underlying filesystem watcher.
func (w *Watcher) Stop() error {
	return w.fs.Close()
}
