package lsp

import (
	"fmt"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"calc/internal/ast"
	"calc/internal/document"
	calcerrors "calc/internal/errors"
)

const serverName = "calc"

var log = commonlog.GetLogger("calc.lsp")

// CalcHandler implements the LSP server handlers for .calc documents
type CalcHandler struct {
	mu      sync.RWMutex
	content map[protocol.DocumentUri]string
	engine  document.Engine
	version string
}

// NewCalcHandler creates a handler that parses documents with engine.
func NewCalcHandler(engine document.Engine, version string) *CalcHandler {
	if engine == nil {
		engine = document.Handwritten
	}
	return &CalcHandler{
		content: make(map[protocol.DocumentUri]string),
		engine:  engine,
		version: version,
	}
}

// Handler wires the supported methods into a glsp protocol handler.
func (h *CalcHandler) Handler() *protocol.Handler {
	return &protocol.Handler{
		Initialize:                     h.Initialize,
		Initialized:                    h.Initialized,
		Shutdown:                       h.Shutdown,
		SetTrace:                       h.SetTrace,
		TextDocumentDidOpen:            h.TextDocumentDidOpen,
		TextDocumentDidChange:          h.TextDocumentDidChange,
		TextDocumentDidClose:           h.TextDocumentDidClose,
		TextDocumentHover:              h.TextDocumentHover,
		TextDocumentSemanticTokensFull: h.TextDocumentSemanticTokensFull,
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *CalcHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Infof("%s %s initializing", serverName, h.version)

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: true,
			SemanticTokensProvider: &protocol.SemanticTokensOptions{
				Legend: protocol.SemanticTokensLegend{
					TokenTypes:     SemanticTokenTypes,
					TokenModifiers: SemanticTokenModifiers,
				},
				Full: ptrBool(true),
			},
		},
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &h.version,
		},
	}, nil
}

func (h *CalcHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("%s initialized", serverName)
	return nil
}

func (h *CalcHandler) Shutdown(ctx *glsp.Context) error {
	log.Infof("%s shutting down", serverName)
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (h *CalcHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen stores the document and publishes its diagnostics
func (h *CalcHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Debugf("opened %s", params.TextDocument.URI)

	h.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

// TextDocumentDidChange applies the changes and republishes diagnostics
func (h *CalcHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Debugf("changed %s", params.TextDocument.URI)

	text, ok := h.text(params.TextDocument.URI)
	if !ok {
		return fmt.Errorf("document %s was not opened", params.TextDocument.URI)
	}

	for _, change := range params.ContentChanges {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case *protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		case protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, c)
		case *protocol.TextDocumentContentChangeEvent:
			text = applyChange(text, *c)
		}
	}

	h.update(ctx, params.TextDocument.URI, text)
	return nil
}

// TextDocumentDidClose forgets the document and clears its diagnostics
func (h *CalcHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Debugf("closed %s", params.TextDocument.URI)

	h.mu.Lock()
	delete(h.content, params.TextDocument.URI)
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, params.TextDocument.URI, []protocol.Diagnostic{})
	return nil
}

// TextDocumentHover shows the value and tree of the expression under the cursor
func (h *CalcHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	text, ok := h.text(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	line, ok := lineAt(text, int(params.Position.Line)+1)
	if !ok {
		return nil, nil
	}

	result := document.EvaluateLine(line, h.engine)

	var value string
	switch {
	case result.OK():
		value = fmt.Sprintf("= %v\n\n%s\n\n%s", result.Value, ast.Source(result.Tree), ast.Display(result.Tree, 0))
	case result.Diagnostic != nil:
		code := result.Diagnostic.Code
		value = fmt.Sprintf("%s\n\n%s: %s", result.Err, code, calcerrors.GetErrorDescription(code))
	default:
		value = result.Err.Error()
	}

	length := utf16Len(line.Text)
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: value,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: params.Position.Line, Character: 0},
			End:   protocol.Position{Line: params.Position.Line, Character: length},
		},
	}, nil
}

// TextDocumentSemanticTokensFull handles semantic token requests for the entire document
func (h *CalcHandler) TextDocumentSemanticTokensFull(ctx *glsp.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	text, ok := h.text(params.TextDocument.URI)
	if !ok {
		return nil, fmt.Errorf("document %s was not opened", params.TextDocument.URI)
	}

	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(collectSemanticTokens(text)),
	}, nil
}

func (h *CalcHandler) text(uri protocol.DocumentUri) (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	text, ok := h.content[uri]
	return text, ok
}

func (h *CalcHandler) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	h.mu.Lock()
	h.content[uri] = text
	h.mu.Unlock()

	results := document.Evaluate(text, h.engine)
	sendDiagnosticNotification(ctx, uri, ConvertResults(results))
}

// lineAt returns the expression on a 1-based line, if that line holds one.
func lineAt(text string, number int) (document.Line, bool) {
	for _, line := range document.Split(text) {
		if line.Number == number {
			return line, true
		}
	}
	return document.Line{}, false
}

// applyChange applies an incremental edit. Full sync is advertised, so this
// only runs for clients that send ranges anyway.
func applyChange(text string, change protocol.TextDocumentContentChangeEvent) string {
	if change.Range == nil {
		return change.Text
	}
	start := change.Range.Start.IndexIn(text)
	end := change.Range.End.IndexIn(text)
	if start > end || end > len(text) {
		return text
	}
	return text[:start] + change.Text + text[end:]
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.DocumentUri, diagnostics []protocol.Diagnostic) {
	log.Debugf("sending %d diagnostics for %s", len(diagnostics), uri)

	if ctx == nil || ctx.Notify == nil {
		return
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
