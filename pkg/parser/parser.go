// Package parser builds Lox ASTs from token streams with a hand-written
// recursive-descent parser. Parsing stops at the first error.
package parser

import (
	"errors"
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

// maxArgs bounds parameter and argument lists.
const maxArgs = 255

// ErrParse is wrapped by every parse error.
var ErrParse = errors.New("parse error")

// Error reports a syntax error with the offending token.
type Error struct {
	Line    int
	Where   string // "at end" or "at 'lexeme'"
	Message string
}

func (e *Error) Error() string {
	if e.Where == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("line %d %s: %s", e.Line, e.Where, e.Message)
}

func (e *Error) Unwrap() error { return ErrParse }

// classContext tracks what `this` and `super` may refer to inside a class body.
type classContext struct {
	hasSuper bool
	inMethod bool
	inStatic bool
}

// Parser consumes a token slice produced by the lexer.
type Parser struct {
	tokens  []lexer.Token
	current int

	fnDepth   int
	loopDepth int
	classes   []classContext
}

// New creates a parser over tokens. The slice must end with an EOF token.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, lexer.Token{Kind: lexer.EOF, Line: line})
	}
	return &Parser{tokens: tokens}
}

// Parse parses a whole program from tokens.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseSource scans and parses src. Lexical errors are returned unchanged.
func ParseSource(src string) (*ast.Program, error) {
	tokens, err := lexer.Scan(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseProgram parses declarations until EOF.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	program := ast.NewProgram(nil)
	program.SetLine(p.peek().Line)
	for !p.check(lexer.EOF) {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		program.Body = append(program.Body, stmt)
	}
	return program, nil
}

// ----------------------------------------------------------------------------
// Token navigation

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) advance() lexer.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.Kind) bool {
	return p.peek().Kind == kind
}

// match consumes the current token if it is any of kinds.
func (p *Parser) match(kinds ...lexer.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of kind or fails with msg.
func (p *Parser) expect(kind lexer.Kind, msg string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), msg)
}

// ----------------------------------------------------------------------------
// Error handling

func (p *Parser) errorAt(tok lexer.Token, msg string) error {
	where := fmt.Sprintf("at '%s'", tok.Lexeme)
	if tok.Kind == lexer.EOF {
		where = "at end"
	}
	return &Error{Line: tok.Line, Where: where, Message: msg}
}

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return p.errorAt(tok, fmt.Sprintf(format, args...))
}

func at[T ast.Node](node T, line int) T {
	node.SetLine(line)
	return node
}

func (p *Parser) currentClass() (classContext, bool) {
	if len(p.classes) == 0 {
		return classContext{}, false
	}
	return p.classes[len(p.classes)-1], true
}
