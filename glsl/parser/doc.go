// Package parser provides an error-tolerant lexer and recursive-descent
// parser for GLSL ES shading language source.
//
// # Overview
//
// Source text is lexed into a token sequence that always ends with a
// zero-width EOF token. Whitespace, comments and preprocessor directive lines
// never appear in it. The parser then builds an [ast.TranslationUnit] from
// the tokens.
//
//	┌─────────────┐     ┌─────────────┐     ┌──────────────────┐
//	│   Source    │────▶│    Lexer    │────▶│      Parser      │
//	│   (bytes)   │     │  (tokens)   │     │ (TranslationUnit)│
//	└─────────────┘     └─────────────┘     └──────────────────┘
//	                           │                      │
//	                           ▼                      ▼
//	                    ┌─────────────┐     ┌──────────────────┐
//	                    │LexicalError │     │ RecognitionError │
//	                    └─────────────┘     └──────────────────┘
//
// Neither stage stops at the first problem. The lexer records every run of
// characters that cannot start a token and continues after it. The parser
// records a RecognitionError, skips ahead to the next statement or
// declaration boundary, and keeps going, so one call reports errors in many
// functions.
//
// # Usage
//
//	res := parser.Parse(src, parser.WithFile("shader.frag"))
//	for _, err := range res.LexErrors {
//	    fmt.Println(err)
//	}
//	for _, err := range res.Errors {
//	    fmt.Println(err)
//	}
//	ast.Inspect(res.Unit, func(n ast.Node) bool { ... })
//
// A Parser may be reused with Reset or Parser.Parse. It is not safe for
// concurrent use.
//
// # Ambiguity
//
// GLSL cannot tell a constructor call from a function call, or a
// declaration from an expression statement, without a symbol table. The
// parser resolves both syntactically by trying the declaration (or the call
// header "type (") first and rewinding when it does not parse. After a
// rewind nothing of the failed attempt remains: position, errors and the
// rule stack are restored.
//
// # Spans
//
// Every node carries the inclusive range of token indices it consumed. A
// parent's span always covers the spans of its children.
package parser
