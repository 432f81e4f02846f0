// Package codebase keeps the parsed state of a set of shader files and
// serves it to the language server and the lint watcher.
package codebase

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/preproc"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/version"
	"github.com/NaridaL/glsl-language-toolkit-sub001/project"
)

// Codebase is safe for concurrent use. All parses share one parser, so
// updates are serialized.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
	engine  *parser.Parser
	fold    bool
	log     commonlog.Logger
}

// FileInfo is the state of one file after its latest update. It is never
// modified once published; an update replaces it.
type FileInfo struct {
	Path    string
	Content []byte
	Result  *parser.Result
	// Diagnostics are the lexer and parser errors in source order.
	Diagnostics []diag.Diagnostic
	Version     version.Directive
	// VersionErr is set when the #version directive is malformed.
	VersionErr error
	// Open is set while an editor owns the file content.
	Open  bool
	Lines *diag.LineIndex
}

type Option func(*Codebase)

// WithFolding removes line continuations before lexing.
func WithFolding(fold bool) Option {
	return func(c *Codebase) {
		c.fold = fold
	}
}

// New creates an empty codebase. A relative rootDir is made absolute so
// paths from disk scans, the watcher and the editor agree.
func New(rootDir string, opts ...Option) *Codebase {
	if abs, err := filepath.Abs(rootDir); err == nil {
		rootDir = abs
	}
	c := &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
		engine:  parser.New(),
		log:     commonlog.GetLogger("glslkit.codebase"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll parses every shader below the root directory. Files that cannot
// be read are logged and skipped.
func (c *Codebase) ScanAll() error {
	p, err := project.LoadFrom(c.rootDir)
	if err != nil {
		return err
	}
	files, err := p.ShaderFiles()
	if err != nil {
		return err
	}
	for _, path := range files {
		if _, err := c.ScanFile(path); err != nil {
			c.log.Warningf("%s", err)
		}
	}
	c.log.Infof("scanned %d shaders in %s", len(files), p.RootDir)
	return nil
}

// ScanFile reads path from disk and updates it, unless an editor has the
// file open.
func (c *Codebase) ScanFile(path string) (*FileInfo, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if f := c.files[path]; f != nil && f.Open {
		return f, nil
	}
	return c.updateFileLocked(path, content, false), nil
}

func (c *Codebase) UpdateFile(path string, content []byte) *FileInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	open := false
	if f := c.files[path]; f != nil {
		open = f.Open
	}
	return c.updateFileLocked(path, content, open)
}

// OpenFile updates path with editor content and keeps disk scans from
// replacing it until CloseFile.
func (c *Codebase) OpenFile(path string, content []byte) *FileInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.updateFileLocked(path, content, true)
}

// CloseFile hands path back to disk scans and rereads it. A file that no
// longer exists on disk is removed.
func (c *Codebase) CloseFile(path string) {
	c.mu.Lock()
	if f := c.files[path]; f != nil {
		copied := *f
		copied.Open = false
		c.files[path] = &copied
	}
	c.mu.Unlock()

	if _, err := c.ScanFile(path); err != nil {
		c.RemoveFile(path)
	}
}

func (c *Codebase) updateFileLocked(path string, content []byte, open bool) *FileInfo {
	var res *parser.Result
	if c.fold {
		res = preproc.ParseFolded(c.engine, path, content)
	} else {
		tokens, lexErrors := parser.Lex(content, path)
		res = c.engine.ParseTokens(content, tokens, lexErrors)
	}

	f := &FileInfo{
		Path:        path,
		Content:     content,
		Result:      res,
		Diagnostics: diag.FromResult(res),
		Open:        open,
		Lines:       diag.NewLineIndex(content),
	}
	f.Version, f.VersionErr = version.Detect(content)

	c.files[path] = f
	c.log.Debugf("parsed %s: %d tokens, %d diagnostics", path, len(res.Tokens), len(f.Diagnostics))
	return f
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Paths returns the paths of all known files in lexical order.
func (c *Codebase) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, 0, len(c.files))
	for path := range c.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// NodeAt returns the innermost node of path's syntax tree at a byte offset.
func (c *Codebase) NodeAt(path string, offset int) ast.Node {
	f := c.GetFile(path)
	if f == nil || f.Result.Unit == nil {
		return nil
	}
	return ast.NodeAt(f.Result.Unit, f.Result.Tokens, offset)
}
