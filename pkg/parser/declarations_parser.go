package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

func (p *Parser) declaration() (ast.Statement, error) {
	switch {
	case p.match(lexer.Class):
		return p.classDeclaration()
	case p.check(lexer.Fn) && p.peekKindAt(1) == lexer.Identifier:
		p.advance()
		return p.function(false)
	case p.match(lexer.Let):
		return p.letDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) peekKindAt(offset int) lexer.Kind {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return lexer.EOF
	}
	return p.tokens[idx].Kind
}

// letDeclaration parses `let a, b = x, y;` after the `let` keyword.
func (p *Parser) letDeclaration() (*ast.LetDecl, error) {
	keyword := p.previous()
	var names []string
	for {
		name, err := p.expect(lexer.Identifier, "expected variable name")
		if err != nil {
			return nil, err
		}
		names = append(names, name.Lexeme)
		if !p.match(lexer.Comma) {
			break
		}
	}

	var initializers []ast.Expression
	if p.match(lexer.Equal) {
		for {
			expr, err := p.expression()
			if err != nil {
				return nil, err
			}
			initializers = append(initializers, expr)
			if !p.match(lexer.Comma) {
				break
			}
		}
		if len(initializers) != len(names) {
			return nil, p.errorf(keyword, "declaration binds %d names but has %d initializers", len(names), len(initializers))
		}
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after variable declaration"); err != nil {
		return nil, err
	}
	return at(ast.NewLetDecl(names, initializers), keyword.Line), nil
}

// function parses `name(params) { body }`; the leading keyword, if any, has
// already been consumed.
func (p *Parser) function(isStatic bool) (*ast.FunctionDecl, error) {
	name, err := p.expect(lexer.Identifier, "expected function name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftParen, "expected '(' after function name"); err != nil {
		return nil, err
	}
	var params []string
	if !p.check(lexer.RightParen) {
		for {
			if len(params) >= maxArgs {
				return nil, p.errorf(p.peek(), "can't have more than %d parameters", maxArgs)
			}
			param, err := p.expect(lexer.Identifier, "expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.RightParen, "expected ')' after parameters"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LeftBrace, "expected '{' before function body"); err != nil {
		return nil, err
	}

	outerLoops := p.loopDepth
	p.loopDepth = 0
	p.fnDepth++
	body, err := p.blockBody()
	p.fnDepth--
	p.loopDepth = outerLoops
	if err != nil {
		return nil, err
	}
	return at(ast.NewFunctionDecl(name.Lexeme, params, body, isStatic), name.Line), nil
}

// classDeclaration parses a class body after the `class` keyword.
func (p *Parser) classDeclaration() (*ast.ClassDecl, error) {
	name, err := p.expect(lexer.Identifier, "expected class name")
	if err != nil {
		return nil, err
	}

	var superclass *ast.Variable
	if p.match(lexer.Extends) {
		superName, err := p.expect(lexer.Identifier, "expected superclass name")
		if err != nil {
			return nil, err
		}
		if superName.Lexeme == name.Lexeme {
			return nil, p.errorAt(superName, "a class can't inherit from itself")
		}
		superclass = at(ast.NewVariable(superName.Lexeme), superName.Line)
	}
	if _, err := p.expect(lexer.LeftBrace, "expected '{' before class body"); err != nil {
		return nil, err
	}

	p.classes = append(p.classes, classContext{hasSuper: superclass != nil})
	defer func() { p.classes = p.classes[:len(p.classes)-1] }()

	var methods, statics []*ast.FunctionDecl
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		isStatic := p.match(lexer.Static)
		p.match(lexer.Fn)

		ctx := &p.classes[len(p.classes)-1]
		ctx.inMethod, ctx.inStatic = true, isStatic
		method, err := p.function(isStatic)
		ctx = &p.classes[len(p.classes)-1]
		ctx.inMethod, ctx.inStatic = false, false
		if err != nil {
			return nil, err
		}
		if isStatic {
			statics = append(statics, method)
		} else {
			methods = append(methods, method)
		}
	}
	if _, err := p.expect(lexer.RightBrace, "expected '}' after class body"); err != nil {
		return nil, err
	}
	return at(ast.NewClassDecl(name.Lexeme, superclass, methods, statics), name.Line), nil
}
