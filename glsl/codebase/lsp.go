package codebase

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/diag"
	"github.com/NaridaL/glsl-language-toolkit-sub001/glsl/errcode"
)

const lsName = "glslkit"

// RootEnv overrides the workspace root sent by the client.
const RootEnv = "GLSLKIT_ROOT"

type LSPServer struct {
	codebase *Codebase
	handler  protocol.Handler
	server   *server.Server
	watcher  *FileWatcher
	version  string
	opts     []Option
	log      commonlog.Logger

	mu     sync.Mutex
	notify glsp.NotifyFunc
}

func NewLSPServer(version string, opts ...Option) *LSPServer {
	ls := &LSPServer{
		version: version,
		opts:    opts,
		log:     commonlog.GetLogger("glslkit.lsp"),
	}

	ls.handler = protocol.Handler{
		Initialize:                 ls.initialize,
		Initialized:                ls.initialized,
		Shutdown:                   ls.shutdown,
		SetTrace:                   ls.setTrace,
		TextDocumentDidOpen:        ls.textDocumentDidOpen,
		TextDocumentDidChange:      ls.textDocumentDidChange,
		TextDocumentDidClose:       ls.textDocumentDidClose,
		TextDocumentDidSave:        ls.textDocumentDidSave,
		TextDocumentHover:          ls.textDocumentHover,
		TextDocumentDocumentSymbol: ls.textDocumentDocumentSymbol,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

func (ls *LSPServer) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *LSPServer) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := "."
	if env := os.Getenv(RootEnv); env != "" {
		rootDir = env
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	} else if params.RootPath != nil && *params.RootPath != "" {
		rootDir = *params.RootPath
	}

	ls.codebase = New(rootDir, ls.opts...)
	ls.log.Infof("workspace root %s", ls.codebase.RootDir())

	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true
	capabilities.DocumentSymbolProvider = true

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *LSPServer) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	ls.mu.Lock()
	ls.notify = ctx.Notify
	ls.mu.Unlock()

	if err := ls.codebase.ScanAll(); err != nil {
		ls.log.Errorf("scan workspace: %s", err)
	}

	watcher, err := NewFileWatcher(ls.codebase, ls.fileChanged)
	if err != nil {
		ls.log.Errorf("watch workspace: %s", err)
		return nil
	}
	if err := watcher.Start(); err != nil {
		ls.log.Errorf("watch workspace: %s", err)
		return nil
	}
	ls.watcher = watcher
	return nil
}

// fileChanged publishes diagnostics for files changed on disk.
func (ls *LSPServer) fileChanged(path string, f *FileInfo) {
	ls.mu.Lock()
	notify := ls.notify
	ls.mu.Unlock()
	if notify == nil {
		return
	}
	ls.publish(notify, path, f)
}

func (ls *LSPServer) shutdown(ctx *glsp.Context) error {
	if ls.watcher != nil {
		if err := ls.watcher.Stop(); err != nil {
			ls.log.Warningf("stop watcher: %s", err)
		}
		ls.watcher = nil
	}
	return nil
}

func (ls *LSPServer) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *LSPServer) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	f := ls.codebase.OpenFile(path, []byte(params.TextDocument.Text))
	ls.publish(ctx.Notify, path, f)
	return nil
}

func (ls *LSPServer) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			f := ls.codebase.UpdateFile(path, []byte(textChange.Text))
			ls.publish(ctx.Notify, path, f)
		}
	}
	return nil
}

func (ls *LSPServer) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	ls.codebase.CloseFile(path)
	ls.publish(ctx.Notify, path, nil)
	return nil
}

func (ls *LSPServer) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil
	}
	var f *FileInfo
	if params.Text != nil {
		f = ls.codebase.UpdateFile(path, []byte(*params.Text))
	} else if f, err = ls.codebase.ScanFile(path); err != nil {
		return nil
	}
	ls.publish(ctx.Notify, path, f)
	return nil
}

func (ls *LSPServer) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil {
		return nil, nil
	}
	offset := f.Lines.OffsetUTF16(int(params.Position.Line), int(params.Position.Character))
	h, ok := ls.codebase.Hover(path, offset)
	if !ok {
		return nil, nil
	}
	r := toRange(f.Lines, h.Start, h.End)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: h.Text,
		},
		Range: &r,
	}, nil
}

func (ls *LSPServer) textDocumentDocumentSymbol(ctx *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	f := ls.codebase.GetFile(path)
	if f == nil {
		return nil, nil
	}
	return toDocumentSymbols(f.Lines, ls.codebase.Symbols(path)), nil
}

// publish sends the diagnostics of f. A nil f clears the diagnostics of
// path.
func (ls *LSPServer) publish(notify glsp.NotifyFunc, path string, f *FileInfo) {
	diagnostics := []protocol.Diagnostic{}
	if f != nil {
		diagnostics = toDiagnostics(f)
	}
	notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         pathToURI(path),
		Diagnostics: diagnostics,
	})
}

func toDiagnostics(f *FileInfo) []protocol.Diagnostic {
	source := lsName
	errorSeverity := protocol.DiagnosticSeverityError
	syntax, _ := errcode.Lookup("L0001")

	list := make([]protocol.Diagnostic, 0, len(f.Diagnostics)+1)
	for _, d := range f.Diagnostics {
		list = append(list, protocol.Diagnostic{
			Range:    toRange(f.Lines, d.Start.Offset, d.End.Offset),
			Severity: &errorSeverity,
			Code:     &protocol.IntegerOrString{Value: syntax.Code},
			Source:   &source,
			Message:  d.Message,
		})
	}
	if f.VersionErr != nil {
		warning := protocol.DiagnosticSeverityWarning
		list = append(list, protocol.Diagnostic{
			Range:    toRange(f.Lines, 0, 0),
			Severity: &warning,
			Source:   &source,
			Message:  f.VersionErr.Error(),
		})
	}
	return list
}

func toDocumentSymbols(ix *diag.LineIndex, symbols []Symbol) []protocol.DocumentSymbol {
	result := make([]protocol.DocumentSymbol, 0, len(symbols))
	for _, s := range symbols {
		ds := protocol.DocumentSymbol{
			Name:           s.Name,
			Kind:           toSymbolKind(s.Kind),
			Range:          toRange(ix, s.Start, s.End),
			SelectionRange: toRange(ix, s.NameStart, s.NameEnd),
		}
		if s.Detail != "" {
			detail := s.Detail
			ds.Detail = &detail
		}
		if len(s.Children) > 0 {
			ds.Children = toDocumentSymbols(ix, s.Children)
		}
		result = append(result, ds)
	}
	return result
}

func toSymbolKind(kind SymbolKind) protocol.SymbolKind {
	switch kind {
	case SymbolKindFunction:
		return protocol.SymbolKindFunction
	case SymbolKindVariable:
		return protocol.SymbolKindVariable
	case SymbolKindStruct:
		return protocol.SymbolKindStruct
	case SymbolKindBlock:
		return protocol.SymbolKindInterface
	case SymbolKindField:
		return protocol.SymbolKindField
	default:
		return protocol.SymbolKindNull
	}
}

// toPosition converts a byte offset to an LSP position: a 0-based line and
// a character offset in UTF-16 code units.
func toPosition(ix *diag.LineIndex, offset int) protocol.Position {
	line, char := ix.UTF16(offset)
	return protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(char)}
}

func toRange(ix *diag.LineIndex, start, end int) protocol.Range {
	return protocol.Range{Start: toPosition(ix, start), End: toPosition(ix, end)}
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", err
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func pathToURI(path string) protocol.DocumentUri {
	if !filepath.IsAbs(path) {
		return protocol.DocumentUri(path)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return protocol.DocumentUri(u.String())
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
