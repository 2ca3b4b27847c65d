package workspace

import (
	"context"
	"io/fs"
	"time"
)

// DefaultPollInterval is how often a FileWatcher checks for changes.
const DefaultPollInterval = 1 * time.Second

// FileWatcher polls the workspace roots and reparses shaders whose
// modification time changed. OnChange is called with every reparsed
// file, and with a nil FileInfo for removed paths.
type FileWatcher struct {
	workspace    *Workspace
	pollInterval time.Duration
	modTimes     map[string]time.Time
	OnChange     func(path string, info *FileInfo)
}

func NewFileWatcher(w *Workspace) *FileWatcher {
	return &FileWatcher{
		workspace:    w,
		pollInterval: DefaultPollInterval,
		modTimes:     make(map[string]time.Time),
	}
}

// SetPollInterval changes the interval used by the next Run.
func (fw *FileWatcher) SetPollInterval(d time.Duration) {
	if d > 0 {
		fw.pollInterval = d
	}
}

// Start runs the watcher in a new goroutine until ctx is done.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.Run(ctx)
}

// Run scans once immediately, then on every tick until ctx is done.
func (fw *FileWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(fw.pollInterval)
	defer ticker.Stop()

	fw.Scan()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fw.Scan()
		}
	}
}

// Scan performs one poll and reports how many files changed.
func (fw *FileWatcher) Scan() int {
	changed := 0
	current := make(map[string]bool)

	for _, root := range fw.workspace.cfg.RootPaths() {
		err := fw.workspace.walk(root, func(path string, info fs.FileInfo) {
			current[path] = true

			lastMod, known := fw.modTimes[path]
			if known && !info.ModTime().After(lastMod) {
				return
			}
			fw.modTimes[path] = info.ModTime()
			if err := fw.workspace.ScanFile(path); err != nil {
				log.Warningf("reading %s: %s", path, err)
				return
			}
			changed++
			fw.notify(path, fw.workspace.GetFile(path))
		})
		if err != nil {
			log.Warningf("watching %s: %s", root, err)
		}
	}

	for path := range fw.modTimes {
		if !current[path] {
			delete(fw.modTimes, path)
			fw.workspace.RemoveFile(path)
			changed++
			fw.notify(path, nil)
		}
	}
	return changed
}

func (fw *FileWatcher) notify(path string, info *FileInfo) {
	if fw.OnChange != nil {
		fw.OnChange(path, info)
	}
}
