package ast

// Statements

// LetDecl declares one or more names as a group. Initializers is either
// empty (every name starts as nil) or parallel to Names.
type LetDecl struct {
	nodeImpl
	statementMarker

	Names        []string     `json:"names"`
	Initializers []Expression `json:"initializers,omitempty"`
}

func NewLetDecl(names []string, initializers []Expression) *LetDecl {
	return &LetDecl{nodeImpl: newNodeImpl(NodeLetDecl), Names: names, Initializers: initializers}
}

type Block struct {
	nodeImpl
	statementMarker

	Body []Statement `json:"body"`
}

func NewBlock(body []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Body: body}
}

type If struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIf(condition Expression, then, elseBranch Statement) *If {
	return &If{nodeImpl: newNodeImpl(NodeIf), Condition: condition, Then: then, Else: elseBranch}
}

// While is also the target of for-loop desugaring; Increment then holds the
// for clause's post expression, which runs after the body and after continue.
type While struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
	Increment Expression `json:"increment,omitempty"`
}

func NewWhile(condition Expression, body Statement, increment Expression) *While {
	return &While{nodeImpl: newNodeImpl(NodeWhile), Condition: condition, Body: body, Increment: increment}
}

type FunctionDecl struct {
	nodeImpl
	statementMarker

	Name     string      `json:"name"`
	Params   []string    `json:"params"`
	Body     []Statement `json:"body"`
	IsStatic bool        `json:"isStatic,omitempty"`
}

func NewFunctionDecl(name string, params []string, body []Statement, isStatic bool) *FunctionDecl {
	return &FunctionDecl{nodeImpl: newNodeImpl(NodeFunctionDecl), Name: name, Params: params, Body: body, IsStatic: isStatic}
}

type ClassDecl struct {
	nodeImpl
	statementMarker

	Name          string          `json:"name"`
	Superclass    *Variable       `json:"superclass,omitempty"`
	Methods       []*FunctionDecl `json:"methods"`
	StaticMethods []*FunctionDecl `json:"staticMethods,omitempty"`
}

func NewClassDecl(name string, superclass *Variable, methods, staticMethods []*FunctionDecl) *ClassDecl {
	return &ClassDecl{nodeImpl: newNodeImpl(NodeClassDecl), Name: name, Superclass: superclass, Methods: methods, StaticMethods: staticMethods}
}

type Return struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturn(value Expression) *Return {
	return &Return{nodeImpl: newNodeImpl(NodeReturn), Value: value}
}

type Print struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrint(expr Expression) *Print {
	return &Print{nodeImpl: newNodeImpl(NodePrint), Expression: expr}
}

type ExpressionStmt struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStmt(expr Expression) *ExpressionStmt {
	return &ExpressionStmt{nodeImpl: newNodeImpl(NodeExpressionStmt), Expression: expr}
}

type Break struct {
	nodeImpl
	statementMarker
}

func NewBreak() *Break {
	return &Break{nodeImpl: newNodeImpl(NodeBreak)}
}

type Continue struct {
	nodeImpl
	statementMarker
}

func NewContinue() *Continue {
	return &Continue{nodeImpl: newNodeImpl(NodeContinue)}
}
