package codebase

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/tliron/commonlog"

	"github.com/NaridaL/glsl-language-toolkit-sub001/project"
)

// FileWatcher keeps a Codebase in sync with the shaders on disk. After a
// file has been rescanned or removed, the change callback receives its path
// together with the new state, or nil for a removed file.
type FileWatcher struct {
	codebase *Codebase
	w        *fsnotify.Watcher
	onChange func(path string, f *FileInfo)
	log      commonlog.Logger
	done     chan struct{}
}

func NewFileWatcher(c *Codebase, onChange func(path string, f *FileInfo)) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &FileWatcher{
		codebase: c,
		w:        w,
		onChange: onChange,
		log:      commonlog.GetLogger("glslkit.watcher"),
		done:     make(chan struct{}),
	}, nil
}

// Start watches the root directory and all of its subdirectories except
// hidden ones.
func (fw *FileWatcher) Start() error {
	if err := fw.addTree(fw.codebase.RootDir()); err != nil {
		fw.w.Close()
		return err
	}
	go fw.loop()
	return nil
}

// Stop ends the watch and waits for pending events to be handled.
func (fw *FileWatcher) Stop() error {
	err := fw.w.Close()
	<-fw.done
	return err
}

func (fw *FileWatcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == "node_modules") {
			return filepath.SkipDir
		}
		return fw.w.Add(path)
	})
}

func (fw *FileWatcher) loop() {
	defer close(fw.done)
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				return
			}
			fw.handle(ev)
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.log.Errorf("watch: %s", err)
		}
	}
}

func (fw *FileWatcher) handle(ev fsnotify.Event) {
	fw.log.Debugf("%s", ev)
	switch {
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		if project.IsShader(ev.Name) && fw.codebase.GetFile(ev.Name) != nil {
			fw.codebase.RemoveFile(ev.Name)
			fw.notify(ev.Name, nil)
		}
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		if ev.Has(fsnotify.Create) {
			if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
				if err := fw.addTree(ev.Name); err != nil {
					fw.log.Warningf("watch %s: %s", ev.Name, err)
				}
				return
			}
		}
		if !project.IsShader(ev.Name) {
			return
		}
		f, err := fw.codebase.ScanFile(ev.Name)
		if err != nil {
			fw.log.Warningf("%s", err)
			return
		}
		fw.notify(ev.Name, f)
	}
}

func (fw *FileWatcher) notify(path string, f *FileInfo) {
	if fw.onChange != nil {
		fw.onChange(path, f)
	}
}
