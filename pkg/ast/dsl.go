package ast

// Literal helpers.

func Num(value float64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Nil() *NilLiteral {
	return NewNilLiteral()
}

func Arr(elements ...Expression) *ArrayLiteral {
	return NewArrayLiteral(elements)
}

// Expression helpers.

func ID(name string) *Variable {
	return NewVariable(name)
}

func Bin(operator string, left, right Expression) *Binary {
	return NewBinary(operator, left, right)
}

func Un(operator UnaryOperator, operand Expression) *Unary {
	return NewUnary(operator, operand)
}

func CallExpr(callee Expression, args ...Expression) *Call {
	return NewCall(callee, args)
}

func CallFn(name string, args ...Expression) *Call {
	return CallExpr(ID(name), args...)
}

func Assignment(name string, value Expression) *Assign {
	return NewAssign(name, AssignmentAssign, value)
}

func Member(object Expression, name string) *Get {
	return NewGet(object, name)
}

func At(object, index Expression) *Index {
	return NewIndex(object, index)
}

// Statement helpers.

func Let(name string, value Expression) *LetDecl {
	return NewLetDecl([]string{name}, []Expression{value})
}

func Expr(expr Expression) *ExpressionStmt {
	return NewExpressionStmt(expr)
}

func Out(expr Expression) *Print {
	return NewPrint(expr)
}

func Blk(body ...Statement) *Block {
	return NewBlock(body)
}

func Ret(value Expression) *Return {
	return NewReturn(value)
}

func Fn(name string, params []string, body ...Statement) *FunctionDecl {
	return NewFunctionDecl(name, params, body, false)
}

func Prog(body ...Statement) *Program {
	return NewProgram(body)
}
