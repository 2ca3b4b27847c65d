// Package workspace keeps the parsed shaders of a project in memory and
// reports their syntax errors.
package workspace

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/glslq/config"
	"github.com/dhamidi/glslq/format"
	"github.com/dhamidi/glslq/glsl/parser"
	"github.com/dhamidi/glslq/glsl/syntax"
)

var log = commonlog.GetLogger("glslq.workspace")

type Workspace struct {
	mu    sync.RWMutex
	cfg   *config.Config
	files map[string]*FileInfo
}

// FileInfo is the last parse of one file. Exactly one of AST and Err is
// set.
type FileInfo struct {
	Path     string
	Content  []byte
	AST      *syntax.TranslationUnit
	Comments []parser.Token
	Err      error
}

func New(cfg *config.Config) *Workspace {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Workspace{
		cfg:   cfg,
		files: make(map[string]*FileInfo),
	}
}

func (w *Workspace) Config() *config.Config {
	return w.cfg
}

// ScanAll parses every shader under the configured roots.
func (w *Workspace) ScanAll() error {
	var errs []error
	for _, root := range w.cfg.RootPaths() {
		err := w.walk(root, func(path string, _ fs.FileInfo) {
			if err := w.ScanFile(path); err != nil {
				errs = append(errs, err)
			}
		})
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// walk calls fn for every shader file under root, skipping hidden
// directories. Root may itself be a file.
func (w *Workspace) walk(root string, fn func(path string, info fs.FileInfo)) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if info.IsDir() {
			if path != root && strings.HasPrefix(info.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		rel := filepath.Base(path)
		if path != root {
			if r, err := filepath.Rel(root, path); err == nil {
				rel = r
			}
		}
		if w.cfg.IsShaderFile(rel) {
			fn(path, info)
		}
		return nil
	})
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

// UpdateFile parses content as the new text of path and returns the
// result.
func (w *Workspace) UpdateFile(path string, content []byte) *FileInfo {
	info := w.parse(path, content)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = info
	return info
}

func (w *Workspace) parse(path string, content []byte) *FileInfo {
	opts := append(w.cfg.ParserOptions(), parser.WithFile(path), parser.WithComments())
	p := parser.ParseTranslationUnit(bytes.NewReader(content), opts...)
	node, err := p.Finish()

	info := &FileInfo{Path: path, Content: content, Err: err}
	if err == nil {
		info.AST = node.(*syntax.TranslationUnit)
		info.Comments = p.Comments()
		log.Debugf("parsed %s: %d declarations", path, len(info.AST.Decls))
	} else {
		log.Debugf("parse failed: %s", err)
	}
	return info
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *FileInfo {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths returns the known files in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for path := range w.files {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// Diagnostics returns one diagnostic per file that failed to parse,
// sorted by path.
func (w *Workspace) Diagnostics() []Diagnostic {
	var diags []Diagnostic
	for _, path := range w.Paths() {
		if f := w.GetFile(path); f != nil && f.Err != nil {
			diags = append(diags, NewDiagnostic(path, f.Err))
		}
	}
	return diags
}

// Format returns the formatted text of a parsed file.
func (w *Workspace) Format(path string) ([]byte, error) {
	f := w.GetFile(path)
	if f == nil {
		return nil, os.ErrNotExist
	}
	if f.Err != nil {
		return nil, f.Err
	}
	var buf bytes.Buffer
	pp := format.NewGLSLPrettyPrinter(&buf, w.cfg.PrinterOptions()...)
	if err := pp.PrintWithComments(f.AST, f.Comments); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Symbols lists the file-scope declarations of a parsed file.
func (w *Workspace) Symbols(path string) []Symbol {
	f := w.GetFile(path)
	if f == nil || f.AST == nil {
		return nil
	}
	return Symbols(f.AST)
}
