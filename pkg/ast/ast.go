package ast

type NodeType string

const (
	NodeProgram        NodeType = "Program"
	NodeNumberLiteral  NodeType = "NumberLiteral"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeNilLiteral     NodeType = "NilLiteral"
	NodeArrayLiteral   NodeType = "ArrayLiteral"
	NodeVariable       NodeType = "Variable"
	NodeAssign         NodeType = "Assign"
	NodeBinary         NodeType = "Binary"
	NodeLogical        NodeType = "Logical"
	NodeUnary          NodeType = "Unary"
	NodeCall           NodeType = "Call"
	NodePipe           NodeType = "Pipe"
	NodeGet            NodeType = "Get"
	NodeSet            NodeType = "Set"
	NodeIndex          NodeType = "Index"
	NodeIndexAssign    NodeType = "IndexAssign"
	NodeGrouping       NodeType = "Grouping"
	NodeThis           NodeType = "This"
	NodeSuper          NodeType = "Super"
	NodeLetDecl        NodeType = "LetDecl"
	NodeBlock          NodeType = "Block"
	NodeIf             NodeType = "If"
	NodeWhile          NodeType = "While"
	NodeFunctionDecl   NodeType = "FunctionDecl"
	NodeClassDecl      NodeType = "ClassDecl"
	NodeReturn         NodeType = "Return"
	NodePrint          NodeType = "Print"
	NodeExpressionStmt NodeType = "ExpressionStmt"
	NodeBreak          NodeType = "Break"
	NodeContinue       NodeType = "Continue"
)

type Node interface {
	NodeType() NodeType
	Line() int
	SetLine(line int)
	isNode()
}

type nodeImpl struct {
	Type       NodeType `json:"type"`
	SourceLine int      `json:"line,omitempty"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Line() int          { return n.SourceLine }
func (n *nodeImpl) SetLine(line int)  { n.SourceLine = line }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Literal interface {
	Expression
	literalNode()
}

type literalMarker struct{}

func (literalMarker) literalNode() {}

// Program is the root of a parsed source file.
type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Literals

type NumberLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
	literalMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

type ArrayLiteral struct {
	nodeImpl
	expressionMarker

	Elements []Expression `json:"elements"`
}

func NewArrayLiteral(elements []Expression) *ArrayLiteral {
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

// Expressions

type Variable struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewVariable(name string) *Variable {
	return &Variable{nodeImpl: newNodeImpl(NodeVariable), Name: name}
}

type AssignmentOperator string

const (
	AssignmentAssign AssignmentOperator = "="
	AssignmentAdd    AssignmentOperator = "+="
	AssignmentSub    AssignmentOperator = "-="
	AssignmentMul    AssignmentOperator = "*="
	AssignmentDiv    AssignmentOperator = "/="
)

// BinaryOperator returns the arithmetic operator a compound assignment
// applies, or "" for plain assignment.
func (op AssignmentOperator) BinaryOperator() string {
	switch op {
	case AssignmentAdd:
		return "+"
	case AssignmentSub:
		return "-"
	case AssignmentMul:
		return "*"
	case AssignmentDiv:
		return "/"
	default:
		return ""
	}
}

type Assign struct {
	nodeImpl
	expressionMarker

	Name     string             `json:"name"`
	Operator AssignmentOperator `json:"operator"`
	Value    Expression         `json:"value"`
}

func NewAssign(name string, operator AssignmentOperator, value Expression) *Assign {
	return &Assign{nodeImpl: newNodeImpl(NodeAssign), Name: name, Operator: operator, Value: value}
}

type Binary struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinary(operator string, left, right Expression) *Binary {
	return &Binary{nodeImpl: newNodeImpl(NodeBinary), Operator: operator, Left: left, Right: right}
}

type Logical struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"` // "and" or "or"
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewLogical(operator string, left, right Expression) *Logical {
	return &Logical{nodeImpl: newNodeImpl(NodeLogical), Operator: operator, Left: left, Right: right}
}

type UnaryOperator string

const (
	UnaryOperatorNegate UnaryOperator = "-"
	UnaryOperatorNot    UnaryOperator = "!"
)

type Unary struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnary(operator UnaryOperator, operand Expression) *Unary {
	return &Unary{nodeImpl: newNodeImpl(NodeUnary), Operator: operator, Operand: operand}
}

type Call struct {
	nodeImpl
	expressionMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCall(callee Expression, args []Expression) *Call {
	return &Call{nodeImpl: newNodeImpl(NodeCall), Callee: callee, Arguments: args}
}

// Pipe feeds Value into Call as its first argument.
type Pipe struct {
	nodeImpl
	expressionMarker

	Value Expression `json:"value"`
	Call  *Call      `json:"call"`
}

func NewPipe(value Expression, call *Call) *Pipe {
	return &Pipe{nodeImpl: newNodeImpl(NodePipe), Value: value, Call: call}
}

type Get struct {
	nodeImpl
	expressionMarker

	Object Expression `json:"object"`
	Name   string     `json:"name"`
}

func NewGet(object Expression, name string) *Get {
	return &Get{nodeImpl: newNodeImpl(NodeGet), Object: object, Name: name}
}

type Set struct {
	nodeImpl
	expressionMarker

	Object   Expression         `json:"object"`
	Name     string             `json:"name"`
	Operator AssignmentOperator `json:"operator"`
	Value    Expression         `json:"value"`
}

func NewSet(object Expression, name string, operator AssignmentOperator, value Expression) *Set {
	return &Set{nodeImpl: newNodeImpl(NodeSet), Object: object, Name: name, Operator: operator, Value: value}
}

type Index struct {
	nodeImpl
	expressionMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndex(object, index Expression) *Index {
	return &Index{nodeImpl: newNodeImpl(NodeIndex), Object: object, Index: index}
}

type IndexAssign struct {
	nodeImpl
	expressionMarker

	Object   Expression         `json:"object"`
	Index    Expression         `json:"index"`
	Operator AssignmentOperator `json:"operator"`
	Value    Expression         `json:"value"`
}

func NewIndexAssign(object, index Expression, operator AssignmentOperator, value Expression) *IndexAssign {
	return &IndexAssign{nodeImpl: newNodeImpl(NodeIndexAssign), Object: object, Index: index, Operator: operator, Value: value}
}

type Grouping struct {
	nodeImpl
	expressionMarker

	Inner Expression `json:"inner"`
}

func NewGrouping(inner Expression) *Grouping {
	return &Grouping{nodeImpl: newNodeImpl(NodeGrouping), Inner: inner}
}

type This struct {
	nodeImpl
	expressionMarker
}

func NewThis() *This {
	return &This{nodeImpl: newNodeImpl(NodeThis)}
}

type Super struct {
	nodeImpl
	expressionMarker

	Method string `json:"method"`
}

func NewSuper(method string) *Super {
	return &Super{nodeImpl: newNodeImpl(NodeSuper), Method: method}
}
