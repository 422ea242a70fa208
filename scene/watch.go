package scene

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Logger is the subset of the application logger the watcher reports through.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type reload struct {
	cfg *Config
	err error
}

// Watcher reloads a scene file whenever it changes on disk. The file is parsed on
// the watcher's goroutine; the result waits in Poll until the frame loop picks it
// up, so lights are only ever touched by their owner.
type Watcher struct {
	path    string
	fs      *fsnotify.Watcher
	results chan reload
	done    chan struct{}
	wg      sync.WaitGroup
	log     Logger
}

// Watch starts watching path. The parent directory is watched so that editors
// replacing the file are noticed as well.
func Watch(path string, log Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("scene: watch %s: %w", path, err)
	}

	w := &Watcher{
		path:    abs,
		fs:      fs,
		results: make(chan reload, 1),
		done:    make(chan struct{}),
		log:     log,
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.log.Debugf("scene: %s changed (%s)", w.path, event.Op)
			cfg, err := Load(w.path)
			w.publish(reload{cfg: cfg, err: err})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warnf("scene: watcher: %v", err)
		}
	}
}

// publish replaces any result the frame loop has not picked up yet.
func (w *Watcher) publish(r reload) {
	for {
		select {
		case w.results <- r:
			return
		default:
		}
		select {
		case <-w.results:
		default:
		}
	}
}

// Poll returns the latest reloaded config, if any. A file that failed to parse is
// reported through err and leaves the current scene alone.
func (w *Watcher) Poll() (cfg *Config, err error) {
	select {
	case r := <-w.results:
		return r.cfg, r.err
	default:
		return nil, nil
	}
}

func (w *Watcher) Path() string { return w.path }

func (w *Watcher) Close() error {
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
