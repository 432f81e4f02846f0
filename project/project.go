// Package project finds the GLSL shaders of a directory tree.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/ast"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/parser"
)

type Stage int

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageCompute
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageCompute:
		return "compute"
	default:
		return "unknown"
	}
}

// extensions maps shader file extensions to the stage they imply.
var extensions = map[string]Stage{
	".glsl": StageUnknown,
	".vert": StageVertex,
	".vs":   StageVertex,
	".frag": StageFragment,
	".fs":   StageFragment,
	".comp": StageCompute,
}

// IsShader reports whether path has a shader file extension.
func IsShader(path string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// StageOf returns the pipeline stage implied by the extension of path.
func StageOf(path string) Stage {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Project is a directory tree of shaders.
type Project struct {
	RootDir string
}

// Load uses the current directory as the project root.
func Load() (*Project, error) {
	return LoadFrom(".")
}

func LoadFrom(rootDir string) (*Project, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open project: %s is not a directory", rootDir)
	}
	abs, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	return &Project{RootDir: abs}, nil
}

// skipDir reports whether a directory is never searched for shaders.
func skipDir(name string) bool {
	return name != "." && (strings.HasPrefix(name, ".") || name == "node_modules")
}

// ShaderFiles returns all shader files below the root, recursively, in
// lexical order. Hidden directories and node_modules are skipped.
func (p *Project) ShaderFiles() ([]string, error) {
	var files []string

	err := filepath.WalkDir(p.RootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != p.RootDir && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsShader(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan shaders in %s: %w", p.RootDir, err)
	}

	sort.Strings(files)
	return files, nil
}

// Entrypoint is a shader file that defines main.
type Entrypoint struct {
	Path  string
	Stage Stage
	// Line is the line of the main definition.
	Line int
}

// FindEntrypoints returns every shader that defines a main function.
// Files that cannot be read are skipped; syntax errors elsewhere in a file
// do not hide its main.
func (p *Project) FindEntrypoints() ([]Entrypoint, error) {
	files, err := p.ShaderFiles()
	if err != nil {
		return nil, err
	}

	engine := parser.New()
	var entrypoints []Entrypoint
	for _, file := range files {
		src, err := os.ReadFile(file)
		if err != nil {
			continue
		}
		res := engine.Parse(src)
		if def := findMain(res.Unit); def != nil {
			entrypoints = append(entrypoints, Entrypoint{
				Path:  file,
				Stage: StageOf(file),
				Line:  def.Prototype.Name.Start.Line,
			})
		}
	}

	return entrypoints, nil
}

func findMain(unit *ast.TranslationUnit) *ast.FunctionDefinition {
	if unit == nil {
		return nil
	}
	for _, d := range unit.Decls {
		def, ok := d.(*ast.FunctionDefinition)
		if ok && def.Prototype != nil && def.Prototype.Name.Literal == "main" {
			return def
		}
	}
	return nil
}
