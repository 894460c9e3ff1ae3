package interpreter

import (
	"bytes"
	"context"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/runtime"
)

func TestMultiAssignmentSwapsThroughOuterBindings(t *testing.T) {
	program, err := parser.ParseSource(`
let foo, bar = "foo", "bar";
let bar, foo = foo, bar;
print foo + bar;
`)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	var buf bytes.Buffer
	interp := NewWithOptions(Options{Output: &buf})
	if err := interp.Interpret(program); err != nil {
		t.Fatalf("interpret failed: %v", err)
	}
	if got := buf.String(); got != "barfoo\n" {
		t.Fatalf("unexpected output %q", got)
	}
	if v := globalValue(t, interp, "bar"); v != (runtime.StringValue{Val: "foo"}) {
		t.Fatalf("bar: got %#v", v)
	}
	if v := globalValue(t, interp, "foo"); v != (runtime.StringValue{Val: "bar"}) {
		t.Fatalf("foo: got %#v", v)
	}
}

func TestLetWithoutInitializersBindsNil(t *testing.T) {
	out := runSource(t, `let a, b; print a; print b == nil;`)
	if out != "nil\ntrue\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestArrayAliasingSharesMutation(t *testing.T) {
	out := runSource(t, `
let arr = [1, 2, 3, 4];
let alias = arr;
for (let i = 0; i <= 2; i = i + 1) {
  alias[i] = arr[i] * 2;
}
print arr;
print alias == arr;
print [1] == [1];
`)
	if out != "[2, 4, 6, 4]\ntrue\nfalse\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestClosureCounterKeepsPrivateState(t *testing.T) {
	out := runSource(t, `
fn makeCounter() {
  let count = 0;
  fn inc() {
    count += 1;
    return count;
  }
  return inc;
}
let c = makeCounter();
print c();
print c();
let d = makeCounter();
print d();
print c();
`)
	if out != "1\n2\n1\n3\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestClosureCapturesDefinitionScope(t *testing.T) {
	out := runSource(t, `
let x = "global";
fn show() { print x; }
{
  let x = "block";
  show();
}
`)
	if out != "global\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPipeDesugarsToNestedCalls(t *testing.T) {
	out := runSource(t, `
fn mul(a, b) { return a * b; }
fn sub(a, b) { return a - b; }
fn inc(a) { return a + 1; }
print 2 |> mul(4) |> sub(1);
print sub(mul(2, 4), 1);
print 2 |> mul(4) |> sub(1) == sub(mul(2, 4), 1);
print 5 |> inc;
`)
	if out != "7\n7\ntrue\n6\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestPipeEvaluatesValueBeforeCallee(t *testing.T) {
	out := runSource(t, `
fn trace(label, v) { print label; return v; }
fn pick() { print "callee"; return trace; }
trace("value", 1) |> pick()("arg");
`)
	if out != "value\ncallee\n1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestMultiLevelSuperResolvesLexically(t *testing.T) {
	out := runSource(t, `
class A {
  greet() { print "A"; }
}
class B extends A {
  greet() { super.greet(); print "B"; }
}
class C extends B {
  greet() { super.greet(); print "C"; }
}
C().greet();
`)
	if out != "A\nB\nC\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStaticMethodsAreInherited(t *testing.T) {
	out := runSource(t, `
class Base {
  static square(n) { return n * n; }
}
class Subclass extends Base {}
print Subclass.square(2);
print Base.square(2) == Subclass.square(2);
print Subclass.square;
`)
	if out != "4\ntrue\n<fn square>\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInitializerAndFields(t *testing.T) {
	out := runSource(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
    return;
  }
  sum() { return this.x + this.y; }
}
let p = Point(1, 2);
print p.sum();
p.x += 10;
print p.x;
print p.init(5, 5) == p;
print p.x;
let m = p.sum;
print m();
`)
	if out != "3\n11\ntrue\n5\n10\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestInheritedInitializer(t *testing.T) {
	out := runSource(t, `
class Animal {
  init(name) { this.name = name; }
  speak() { return this.name + " makes a sound"; }
}
class Dog extends Animal {
  speak() { return super.speak() + " (woof)"; }
}
print Dog("Rex").speak();
`)
	if out != "Rex makes a sound (woof)\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestArithmeticAndConcatenation(t *testing.T) {
	out := runSource(t, `
print 1 + 2 * 3;
print (1 + 2) * 3;
print 10 / 4;
print 0.1 + 0.2;
print "n=" + 3;
print 1.5 + "x";
print "list " + [1, "a"];
print -(2 - 5);
print 7 >= 7 and 3 < 2;
`)
	want := "7\n9\n2.5\n0.30000000000000004\nn=3\n1.5x\nlist [1, a]\n3\nfalse\n"
	if out != want {
		t.Fatalf("unexpected output %q, want %q", out, want)
	}
}

func TestLogicalOperatorsYieldDecidingOperand(t *testing.T) {
	out := runSource(t, `
print nil or "default";
print "first" or "second";
print false and 1;
print 1 and 2;
print !nil;
print !0;
`)
	if out != "default\nfirst\nfalse\n2\ntrue\nfalse\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEqualitySemantics(t *testing.T) {
	out := runSource(t, `
fn f() {}
class K {}
print 1 == 1;
print "a" == "a";
print nil == false;
print 1 == "1";
print f == f;
print K == K;
print K() == K();
print clock == clock;
print len != clock;
`)
	if out != "true\ntrue\nfalse\nfalse\ntrue\ntrue\nfalse\ntrue\ntrue\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLoopsWithBreakAndContinue(t *testing.T) {
	out := runSource(t, `
for (let i = 0; i < 6; i += 1) {
  if (i == 1) continue;
  if (i == 4) break;
  print i;
}
let n = 0;
while (true) {
  n = n + 1;
  if (n < 3) { continue; }
  break;
}
print n;
`)
	if out != "0\n2\n3\n3\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestReturnUnwindsNestedLoops(t *testing.T) {
	out := runSource(t, `
fn find(xs, target) {
  for (let i = 0; i < len(xs); i = i + 1) {
    while (true) {
      if (xs[i] == target) return i;
      break;
    }
  }
  return -1;
}
print find([5, 6, 7], 7);
print find([5], 1);
fn nothing() {}
print nothing();
`)
	if out != "2\n-1\nnil\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCompoundIndexAssignment(t *testing.T) {
	out := runSource(t, `
let xs = [1, 2, 3];
xs[1] += 10;
xs[2] *= xs[2];
xs[0] -= 1;
xs[0] /= 2;
print xs;
let grid = [[1, 2], [3, 4]];
grid[1][0] = "x";
print grid;
`)
	if out != "[0, 12, 9]\n[[1, 2], [x, 4]]\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStringifyValues(t *testing.T) {
	out := runSource(t, `
fn named() {}
class Plain {}
class Fancy {
  init(v) { this.v = v; }
  toString() { return "Fancy(" + this.v + ")"; }
}
class Fancier extends Fancy {}
class Odd {
  toString() { return 42; }
}
print named;
print len;
print Plain;
print Plain();
print Fancy(1);
print Fancier(2);
print [Fancy(3), nil, true];
print Odd();
let self = [1];
self[0] = self;
print self;
`)
	want := "<fn named>\n<native fn len>\n<class Plain>\nPlain instance\nFancy(1)\nFancy(2)\n[Fancy(3), nil, true]\nOdd instance\n[[...]]\n"
	if out != want {
		t.Fatalf("unexpected output %q, want %q", out, want)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{7, "7"},
		{-3, "-3"},
		{0.5, "0.5"},
		{1e21, "1e+21"},
		{123456789, "123456789"},
		{2.25, "2.25"},
	}
	for _, tc := range cases {
		if got := formatNumber(tc.in); got != tc.want {
			t.Fatalf("formatNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
	out := runSource(t, `
let inf = 1;
for (let i = 0; i < 400; i += 1) inf = inf * 10;
print inf;
print -inf;
print inf - inf;
`)
	if out != "Infinity\n-Infinity\nNaN\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestNatives(t *testing.T) {
	out := runSource(t, `
print len([1, 2, 3]);
print len("héllo");
print len([]);
let t = clock();
print t > 0;
`)
	if out != "3\n6\n0\ntrue\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestEvaluateExpressionWithDSL(t *testing.T) {
	interp := New()
	env := interp.GlobalEnvironment()
	if _, err := interp.executeStatement(ast.Let("xs", ast.Arr(ast.Num(1), ast.Num(2))), env); err != nil {
		t.Fatalf("let failed: %v", err)
	}
	val, err := interp.evaluateExpression(ast.Bin("+", ast.At(ast.ID("xs"), ast.Num(1)), ast.CallFn("len", ast.ID("xs"))), env)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	if num, ok := val.(runtime.NumberValue); !ok || num.Val != 4 {
		t.Fatalf("expected number 4, got %#v", val)
	}
}

func TestReplStyleSessionsShareGlobals(t *testing.T) {
	var buf bytes.Buffer
	interp := NewWithOptions(Options{Output: &buf})
	for _, line := range []string{`let n = 1;`, `fn bump() { n = n + 1; }`, `bump(); bump();`, `print n;`} {
		program, err := parser.ParseSource(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if err := interp.Interpret(program); err != nil {
			t.Fatalf("interpret %q: %v", line, err)
		}
	}
	if buf.String() != "3\n" {
		t.Fatalf("unexpected output %q", buf.String())
	}
	expr, err := parser.ParseSource(`n * 2;`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	val, err := interp.Evaluate(context.Background(), expr.Body[0].(*ast.ExpressionStmt).Expression)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if s, err := interp.Stringify(val); err != nil || s != "6" {
		t.Fatalf("expected 6, got %q (%v)", s, err)
	}
}
