package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/lexer"
)

var assignmentOperators = map[lexer.Kind]ast.AssignmentOperator{
	lexer.Equal:      ast.AssignmentAssign,
	lexer.PlusEqual:  ast.AssignmentAdd,
	lexer.MinusEqual: ast.AssignmentSub,
	lexer.StarEqual:  ast.AssignmentMul,
	lexer.SlashEqual: ast.AssignmentDiv,
}

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.pipe()
	if err != nil {
		return nil, err
	}
	op, ok := assignmentOperators[p.peek().Kind]
	if !ok {
		return expr, nil
	}
	opTok := p.advance()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}

	switch target := expr.(type) {
	case *ast.Variable:
		return at(ast.NewAssign(target.Name, op, value), opTok.Line), nil
	case *ast.Get:
		return at(ast.NewSet(target.Object, target.Name, op, value), opTok.Line), nil
	case *ast.Index:
		return at(ast.NewIndexAssign(target.Object, target.Index, op, value), opTok.Line), nil
	default:
		return nil, p.errorAt(opTok, "invalid assignment target")
	}
}

// pipe parses `value |> callee(args)`. A right-hand side that is not a call
// is invoked with the piped value as its only argument.
func (p *Parser) pipe() (ast.Expression, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Pipe) {
		line := p.previous().Line
		rhs, err := p.or()
		if err != nil {
			return nil, err
		}
		call, ok := rhs.(*ast.Call)
		if !ok {
			call = at(ast.NewCall(rhs, nil), rhs.Line())
		}
		if len(call.Arguments)+1 > maxArgs {
			return nil, p.errorf(p.previous(), "can't have more than %d arguments", maxArgs)
		}
		expr = at(ast.NewPipe(expr, call), line)
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expression, error) {
	return p.logical(lexer.Or, "or", p.and)
}

func (p *Parser) and() (ast.Expression, error) {
	return p.logical(lexer.And, "and", p.equality)
}

func (p *Parser) logical(kind lexer.Kind, operator string, next func() (ast.Expression, error)) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kind) {
		line := p.previous().Line
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = at(ast.NewLogical(operator, expr, right), line)
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(p.comparison, lexer.BangEqual, lexer.EqualEqual)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(p.term, lexer.Greater, lexer.GreaterEqual, lexer.Less, lexer.LessEqual)
}

func (p *Parser) term() (ast.Expression, error) {
	return p.binary(p.factor, lexer.Minus, lexer.Plus)
}

func (p *Parser) factor() (ast.Expression, error) {
	return p.binary(p.unary, lexer.Slash, lexer.Star)
}

// binary parses a left-associative chain of operators at one precedence level.
func (p *Parser) binary(next func() (ast.Expression, error), kinds ...lexer.Kind) (ast.Expression, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = at(ast.NewBinary(op.Lexeme, expr, right), op.Line)
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	if p.match(lexer.Bang, lexer.Minus) {
		op := p.previous()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return at(ast.NewUnary(ast.UnaryOperator(op.Lexeme), operand), op.Line), nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.LeftParen):
			line := p.previous().Line
			args, err := p.arguments(lexer.RightParen, "expected ')' after arguments")
			if err != nil {
				return nil, err
			}
			expr = at(ast.NewCall(expr, args), line)
		case p.match(lexer.Dot):
			name, err := p.expect(lexer.Identifier, "expected property name after '.'")
			if err != nil {
				return nil, err
			}
			expr = at(ast.NewGet(expr, name.Lexeme), name.Line)
		case p.match(lexer.LeftBracket):
			line := p.previous().Line
			index, err := p.expression()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RightBracket, "expected ']' after index"); err != nil {
				return nil, err
			}
			expr = at(ast.NewIndex(expr, index), line)
		default:
			return expr, nil
		}
	}
}

// arguments parses a comma-separated list up to closer. A trailing comma is
// accepted in array literals only.
func (p *Parser) arguments(closer lexer.Kind, msg string) ([]ast.Expression, error) {
	var args []ast.Expression
	for !p.check(closer) {
		if len(args) >= maxArgs {
			return nil, p.errorf(p.peek(), "can't have more than %d arguments", maxArgs)
		}
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(lexer.Comma) {
			break
		}
		if closer == lexer.RightParen && p.check(closer) {
			return nil, p.errorAt(p.peek(), "expected expression")
		}
	}
	if _, err := p.expect(closer, msg); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) primary() (ast.Expression, error) {
	tok := p.peek()
	if tok.Kind == lexer.EOF {
		return nil, p.errorAt(tok, "expected expression")
	}
	p.advance()
	switch tok.Kind {
	case lexer.Number:
		return at(ast.NewNumberLiteral(tok.Literal.(float64)), tok.Line), nil
	case lexer.String:
		return at(ast.NewStringLiteral(tok.Literal.(string)), tok.Line), nil
	case lexer.True:
		return at(ast.NewBooleanLiteral(true), tok.Line), nil
	case lexer.False:
		return at(ast.NewBooleanLiteral(false), tok.Line), nil
	case lexer.Nil:
		return at(ast.NewNilLiteral(), tok.Line), nil
	case lexer.Identifier:
		return at(ast.NewVariable(tok.Lexeme), tok.Line), nil
	case lexer.This:
		if ctx, ok := p.currentClass(); !ok || !ctx.inMethod {
			return nil, p.errorAt(tok, "can't use 'this' outside of a class")
		} else if ctx.inStatic {
			return nil, p.errorAt(tok, "can't use 'this' in a static method")
		}
		return at(ast.NewThis(), tok.Line), nil
	case lexer.Super:
		ctx, ok := p.currentClass()
		switch {
		case !ok || !ctx.inMethod:
			return nil, p.errorAt(tok, "can't use 'super' outside of a class")
		case !ctx.hasSuper:
			return nil, p.errorAt(tok, "can't use 'super' in a class with no superclass")
		case ctx.inStatic:
			return nil, p.errorAt(tok, "can't use 'super' in a static method")
		}
		if _, err := p.expect(lexer.Dot, "expected '.' after 'super'"); err != nil {
			return nil, err
		}
		method, err := p.expect(lexer.Identifier, "expected superclass method name")
		if err != nil {
			return nil, err
		}
		return at(ast.NewSuper(method.Lexeme), tok.Line), nil
	case lexer.LeftParen:
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RightParen, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return at(ast.NewGrouping(inner), tok.Line), nil
	case lexer.LeftBracket:
		elements, err := p.arguments(lexer.RightBracket, "expected ']' after array elements")
		if err != nil {
			return nil, err
		}
		return at(ast.NewArrayLiteral(elements), tok.Line), nil
	default:
		return nil, p.errorAt(tok, "expected expression")
	}
}
