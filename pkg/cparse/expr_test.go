package cparse

import "testing"

func mustParseExpr(t *testing.T, input string) Expression {
	t.Helper()
	e, err := ParseExpression([]byte(input))
	if err != nil {
		t.Fatalf("ParseExpression(%q) failed: %s", input, err)
	}
	return e
}

func TestParseIdentifier(t *testing.T) {
	e := mustParseExpr(t, "x")
	id, ok := e.(IdentExpr)
	if !ok || string(id.Name) != "x" {
		t.Fatalf("got %#v, want IdentExpr{x}", e)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	e := mustParseExpr(t, "a+b*c")
	add, ok := e.(BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("top-level should be +, got %#v", e)
	}
	mul, ok := add.Snd.(BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("rhs of + should be *, got %#v", add.Snd)
	}

	e = mustParseExpr(t, "a*b+c")
	add, ok = e.(BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("top-level should be +, got %#v", e)
	}
	if _, ok := add.Fst.(BinaryExpr); !ok {
		t.Fatalf("lhs of + should be a binary *, got %#v", add.Fst)
	}

	e = mustParseExpr(t, "a<b==c")
	eq, ok := e.(BinaryExpr)
	if !ok || eq.Op != OpEq {
		t.Fatalf("top-level should be ==, got %#v", e)
	}
	if lt, ok := eq.Fst.(BinaryExpr); !ok || lt.Op != OpLt {
		t.Fatalf("lhs of == should be <, got %#v", eq.Fst)
	}
}

func TestLeftAssociativity(t *testing.T) {
	e := mustParseExpr(t, "a-b-c")
	outer, ok := e.(BinaryExpr)
	if !ok || outer.Op != OpSub {
		t.Fatalf("top should be -, got %#v", e)
	}
	inner, ok := outer.Fst.(BinaryExpr)
	if !ok || inner.Op != OpSub {
		t.Fatalf("(a-b-c) should be (a-b)-c, got %#v", e)
	}
	if _, ok := outer.Snd.(IdentExpr); !ok {
		t.Fatalf("rhs should be bare c, got %#v", outer.Snd)
	}

	e = mustParseExpr(t, "a[1][2]")
	outerSub, ok := e.(SubscriptExpr)
	if !ok {
		t.Fatalf("want SubscriptExpr, got %#v", e)
	}
	if _, ok := outerSub.Array.(SubscriptExpr); !ok {
		t.Fatalf("a[1][2] should be (a[1])[2], got %#v", outerSub.Array)
	}

	e = mustParseExpr(t, "a.b.c")
	m, ok := e.(MemberExpr)
	if !ok || string(m.Name) != "c" {
		t.Fatalf("want outer member .c, got %#v", e)
	}
	if inner, ok := m.Inner.(MemberExpr); !ok || string(inner.Name) != "b" {
		t.Fatalf("a.b.c should be (a.b).c, got %#v", m.Inner)
	}
}

func TestRightAssociativity(t *testing.T) {
	e := mustParseExpr(t, "a?b:c?d:e")
	outer, ok := e.(ConditionalExpr)
	if !ok {
		t.Fatalf("want ConditionalExpr, got %#v", e)
	}
	if _, ok := outer.Else.(ConditionalExpr); !ok {
		t.Fatalf("a?b:c?d:e should nest on the else side, got %#v", outer.Else)
	}

	e = mustParseExpr(t, "a=b=c")
	outerAssign, ok := e.(AssignExpr)
	if !ok || outerAssign.Op != AssignSimple {
		t.Fatalf("want AssignExpr(=), got %#v", e)
	}
	if _, ok := outerAssign.Rhs.(AssignExpr); !ok {
		t.Fatalf("a=b=c should nest on the rhs, got %#v", outerAssign.Rhs)
	}
}

func TestDecimalLiteralWithSurroundingWhitespace(t *testing.T) {
	e := mustParseExpr(t, "a + 2")
	add, ok := e.(BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("got %#v", e)
	}
	c, ok := add.Snd.(ConstantExpr)
	if !ok || c.Value.Value != 2 {
		t.Fatalf("rhs should be constant 2, got %#v", add.Snd)
	}
}

func TestDecimalLiteralExpression(t *testing.T) {
	e := mustParseExpr(t, "1+2*3")
	add, ok := e.(BinaryExpr)
	if !ok || add.Op != OpAdd {
		t.Fatalf("got %#v", e)
	}
	lhs, ok := add.Fst.(ConstantExpr)
	if !ok || lhs.Value.Value != 1 {
		t.Fatalf("lhs should be constant 1, got %#v", add.Fst)
	}
	mul, ok := add.Snd.(BinaryExpr)
	if !ok || mul.Op != OpMul {
		t.Fatalf("rhs should be 2*3, got %#v", add.Snd)
	}
}

func TestCallAndArgList(t *testing.T) {
	e := mustParseExpr(t, "f(a, b)")
	call, ok := e.(CallExpr)
	if !ok {
		t.Fatalf("got %#v", e)
	}
	if len(call.Args) != 2 {
		t.Fatalf("want 2 args, got %d", len(call.Args))
	}

	e = mustParseExpr(t, "f()")
	call, ok = e.(CallExpr)
	if !ok || call.Args != nil {
		t.Fatalf("f() should have nil Args, got %#v", call.Args)
	}
}

func TestUnaryPrefixOrder(t *testing.T) {
	e := mustParseExpr(t, "*p")
	u, ok := e.(UnaryExpr)
	if !ok || u.Op != OpIndirection {
		t.Fatalf("got %#v", e)
	}
}

func TestSizeofExprAndType(t *testing.T) {
	e := mustParseExpr(t, "sizeof x")
	if _, ok := e.(SizeofExprExpr); !ok {
		t.Fatalf("got %#v, want SizeofExprExpr", e)
	}

	e = mustParseExpr(t, "sizeof(int)")
	if _, ok := e.(SizeofTypeExpr); !ok {
		t.Fatalf("got %#v, want SizeofTypeExpr", e)
	}
}

func TestCommaExpression(t *testing.T) {
	e := mustParseExpr(t, "a,b")
	c, ok := e.(BinaryExpr)
	if !ok || c.Op != OpComma {
		t.Fatalf("got %#v", e)
	}
}

func TestParseExpressionFailureRestoresAndErrors(t *testing.T) {
	if _, err := ParseExpression([]byte("+ +")); err == nil {
		t.Fatalf("expected a parse error")
	}
}

// A consumed operator commits to a right operand: the parser never falls
// back to the shorter expression to its left.
func TestMatchedOperatorCommits(t *testing.T) {
	for _, input := range []string{"a +", "a ? b", "a ? b : ", "a =", "f(a,)"} {
		if _, err := ParseExpression([]byte(input)); err == nil {
			t.Errorf("ParseExpression(%q) should fail, not yield a prefix parse", input)
		}
	}
}

func TestCastExpression(t *testing.T) {
	e := mustParseExpr(t, "(int)x")
	c, ok := e.(CastExpr)
	if !ok {
		t.Fatalf("got %#v, want CastExpr", e)
	}
	if c.Type.Specs.Primitive != PrimInt {
		t.Fatalf("want int type-name, got %v", c.Type.Specs.Primitive)
	}
	if _, ok := c.Expr.(IdentExpr); !ok {
		t.Fatalf("want identifier operand, got %#v", c.Expr)
	}
}

func TestCompoundLiteral(t *testing.T) {
	e := mustParseExpr(t, "(int){1}")
	cl, ok := e.(CompoundLiteralExpr)
	if !ok {
		t.Fatalf("got %#v, want CompoundLiteralExpr", e)
	}
	if len(cl.Init) != 1 {
		t.Fatalf("want 1 initializer entry, got %d", len(cl.Init))
	}
}

// sizeof tries the unary-expression operand before the parenthesized
// type-name, so a compound literal after sizeof stays an expression.
func TestSizeofCompoundLiteralIsExprForm(t *testing.T) {
	e := mustParseExpr(t, "sizeof (int){1}")
	sz, ok := e.(SizeofExprExpr)
	if !ok {
		t.Fatalf("got %#v, want SizeofExprExpr", e)
	}
	if _, ok := sz.Inner.(CompoundLiteralExpr); !ok {
		t.Fatalf("want compound literal operand, got %#v", sz.Inner)
	}
}

func TestConditionalExpression(t *testing.T) {
	e := mustParseExpr(t, "a ? b : c")
	cond, ok := e.(ConditionalExpr)
	if !ok {
		t.Fatalf("got %#v, want ConditionalExpr", e)
	}
	if _, ok := cond.Cond.(IdentExpr); !ok {
		t.Fatalf("want identifier cond, got %#v", cond.Cond)
	}
}

func TestCompoundAssignmentOperators(t *testing.T) {
	cases := []struct {
		input string
		op    AssignOp
	}{
		{"a *= b", AssignMul},
		{"a <<= b", AssignShl},
		{"a |= b", AssignBitOr},
	}
	for _, tt := range cases {
		e := mustParseExpr(t, tt.input)
		a, ok := e.(AssignExpr)
		if !ok || a.Op != tt.op {
			t.Errorf("ParseExpression(%q) = %#v, want AssignExpr op %v", tt.input, e, tt.op)
		}
	}
}

func TestMemberDerefAndPostfixChain(t *testing.T) {
	e := mustParseExpr(t, "p->next->prev")
	outer, ok := e.(MemberDerefExpr)
	if !ok || string(outer.Name) != "prev" {
		t.Fatalf("got %#v, want outer ->prev", e)
	}
	if inner, ok := outer.Inner.(MemberDerefExpr); !ok || string(inner.Name) != "next" {
		t.Fatalf("want inner ->next, got %#v", outer.Inner)
	}

	e = mustParseExpr(t, "x++")
	u, ok := e.(UnaryExpr)
	if !ok || u.Op != OpPostInc {
		t.Fatalf("got %#v, want post-increment", e)
	}
}
