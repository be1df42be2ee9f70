package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Zachkp/portfolio/internal/logger"
)

const DefaultDebounce = 500 * time.Millisecond

// Watch calls onChange once per burst of changes under paths until ctx is
// done. Files are watched through their parent directory so editors that
// replace files on save are still seen; directories are watched recursively.
func Watch(ctx context.Context, paths []string, debounce time.Duration, log *logger.Logger, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	files := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		info, err := os.Stat(p)
		if err != nil {
			log.Warn("not watching missing path", map[string]any{"path": p})
			continue
		}
		if !info.IsDir() {
			files[p] = true
			if err := watcher.Add(filepath.Dir(p)); err != nil {
				return err
			}
			continue
		}
		if err := addTree(watcher, p, log); err != nil {
			return err
		}
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-fire:
			onChange()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(event.Name)
			if event.Has(fsnotify.Create) && isDir(name) {
				if err := addTree(watcher, name, log); err != nil {
					log.Warn("could not watch new directory", map[string]any{"path": name, "error": err.Error()})
				}
			}
			if !relevant(name, files, paths) {
				continue
			}
			log.Debug("change detected", map[string]any{"path": name, "op": event.Op.String()})

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", map[string]any{"error": err.Error()})
		}
	}
}

// relevant filters sibling files that share a directory with a watched file.
func relevant(name string, files map[string]bool, paths []string) bool {
	if files[name] {
		return true
	}
	for _, p := range paths {
		p = filepath.Clean(p)
		if files[p] {
			continue
		}
		if rel, err := filepath.Rel(p, name); err == nil && rel != ".." && !startsWithParent(rel) {
			return true
		}
	}
	return false
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}

func addTree(w *fsnotify.Watcher, root string, log *logger.Logger) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.Warn("walk failed", map[string]any{"path": path, "error": err.Error()})
			return nil
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
