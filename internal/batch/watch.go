package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"hiredocs/constants"
)

// Watch processes files dropped into dir as they arrive, until the context is
// cancelled. Rapid write bursts for the same file are coalesced with the
// configured debounce so half-written uploads are not picked up mid-copy.
func (p *Processor) Watch(ctx context.Context, dir string, kind constants.DocumentKind, jobDescription string) error {
	if err := os.MkdirAll(p.intake.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			p.logger.Warn("failed to close watcher", "error", cerr)
		}
	}()
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	p.logger.Info("watching for documents", "dir", dir, "kind", kind)

	debounce := p.intake.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	var mu sync.Mutex
	pending := map[string]struct{}{}
	var timer *time.Timer

	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for path := range pending {
			paths = append(paths, path)
			delete(pending, path)
		}
		mu.Unlock()

		for _, path := range paths {
			res, _ := p.processOne(ctx, path, kind, jobDescription)
			if res.Error != "" {
				p.logger.Error("watched document failed", "path", path,
					"error", res.Error, "requires_ocr", res.RequiresOCR)
				continue
			}
			p.logger.Info("watched document processed", "path", path, "output", res.OutputPath)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if constants.MapExtToFormat(filepath.Ext(ev.Name)) == "" {
				continue
			}
			mu.Lock()
			pending[ev.Name] = struct{}{}
			mu.Unlock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, flush)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.logger.Error("watcher error", "error", err)
		}
	}
}
