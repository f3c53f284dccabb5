package catalog

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalog file whenever it is written or recreated.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	updates chan []Entry
	errors  chan error
	done    chan struct{}
}

// Watch starts watching path. The directory is watched rather than the file so
// editors that replace the file on save are still seen.
func Watch(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path = filepath.Clean(path)
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsWatcher,
		path:    path,
		updates: make(chan []Entry, 4),
		errors:  make(chan error, 4),
		done:    make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	defer close(w.updates)
	defer close(w.errors)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.reload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		}
	}
}

// reload parses the file. A half-written file fails to parse and is picked
// up again by the next write event.
func (w *Watcher) reload() {
	entries, err := Load(w.path)
	w.send(entries, err)
}

func (w *Watcher) send(entries []Entry, err error) {
	if err != nil {
		select {
		case w.errors <- err:
		case <-w.done:
		}
		return
	}
	select {
	case w.updates <- entries:
	case <-w.done:
	}
}

// Updates returns the entries parsed after each change.
func (w *Watcher) Updates() <-chan []Entry {
	return w.updates
}

// Errors returns watch and parse errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		// Already closed
		return nil
	default:
		close(w.done)
	}
	return w.watcher.Close()
}
