package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

func (p *Parser) statement() (ast.Statement, error) {
	switch {
	case p.match(lexer.Print):
		return p.printStatement()
	case p.match(lexer.If):
		return p.ifStatement()
	case p.match(lexer.While):
		return p.whileStatement()
	case p.match(lexer.For):
		return p.forStatement()
	case p.match(lexer.Return):
		return p.returnStatement()
	case p.match(lexer.Break):
		return p.loopControl(ast.NewBreak(), "break")
	case p.match(lexer.Continue):
		return p.loopControl(ast.NewContinue(), "continue")
	case p.match(lexer.LeftBrace):
		line := p.previous().Line
		body, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		return at(ast.NewBlock(body), line), nil
	default:
		return p.expressionStatement()
	}
}

// blockBody parses declarations up to the closing brace; the opening brace
// has been consumed.
func (p *Parser) blockBody() ([]ast.Statement, error) {
	var body []ast.Statement
	for !p.check(lexer.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.expect(lexer.RightBrace, "expected '}' after block"); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) printStatement() (ast.Statement, error) {
	line := p.previous().Line
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after value"); err != nil {
		return nil, err
	}
	return at(ast.NewPrint(value), line), nil
}

func (p *Parser) expressionStatement() (ast.Statement, error) {
	line := p.peek().Line
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after expression"); err != nil {
		return nil, err
	}
	return at(ast.NewExpressionStmt(expr), line), nil
}

func (p *Parser) ifStatement() (ast.Statement, error) {
	line := p.previous().Line
	if _, err := p.expect(lexer.LeftParen, "expected '(' after 'if'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "expected ')' after if condition"); err != nil {
		return nil, err
	}
	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(lexer.Else) {
		if elseBranch, err = p.statement(); err != nil {
			return nil, err
		}
	}
	return at(ast.NewIf(cond, then, elseBranch), line), nil
}

func (p *Parser) whileStatement() (ast.Statement, error) {
	line := p.previous().Line
	if _, err := p.expect(lexer.LeftParen, "expected '(' after 'while'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RightParen, "expected ')' after condition"); err != nil {
		return nil, err
	}
	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	return at(ast.NewWhile(cond, body, nil), line), nil
}

// forStatement desugars `for (init; cond; post) body` into
// `{ init; while (cond) body [post] }`.
func (p *Parser) forStatement() (ast.Statement, error) {
	line := p.previous().Line
	if _, err := p.expect(lexer.LeftParen, "expected '(' after 'for'"); err != nil {
		return nil, err
	}

	var initStmt ast.Statement
	var err error
	switch {
	case p.match(lexer.Semicolon):
	case p.match(lexer.Let):
		if initStmt, err = p.letDeclaration(); err != nil {
			return nil, err
		}
	default:
		if initStmt, err = p.expressionStatement(); err != nil {
			return nil, err
		}
	}

	var cond ast.Expression
	if !p.check(lexer.Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after loop condition"); err != nil {
		return nil, err
	}

	var post ast.Expression
	if !p.check(lexer.RightParen) {
		if post, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RightParen, "expected ')' after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.loopBody()
	if err != nil {
		return nil, err
	}
	if cond == nil {
		cond = at(ast.NewBooleanLiteral(true), line)
	}
	var loop ast.Statement = at(ast.NewWhile(cond, body, post), line)
	if initStmt != nil {
		loop = at(ast.NewBlock([]ast.Statement{initStmt, loop}), line)
	}
	return loop, nil
}

func (p *Parser) loopBody() (ast.Statement, error) {
	p.loopDepth++
	defer func() { p.loopDepth-- }()
	return p.statement()
}

func (p *Parser) returnStatement() (ast.Statement, error) {
	keyword := p.previous()
	if p.fnDepth == 0 {
		return nil, p.errorAt(keyword, "can't return from top-level code")
	}
	var value ast.Expression
	if !p.check(lexer.Semicolon) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after return value"); err != nil {
		return nil, err
	}
	return at(ast.NewReturn(value), keyword.Line), nil
}

func (p *Parser) loopControl(stmt ast.Statement, word string) (ast.Statement, error) {
	keyword := p.previous()
	if p.loopDepth == 0 {
		return nil, p.errorf(keyword, "can't use '%s' outside of a loop", word)
	}
	if _, err := p.expect(lexer.Semicolon, "expected ';' after '"+word+"'"); err != nil {
		return nil, err
	}
	return at(stmt, keyword.Line), nil
}
