package cparse

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Pretty-printer
//
// A diagnostic walk over the AST; it never participates in parsing. The
// Visitor interface (one Visit<Type> method per concrete node, each node
// implementing Accept) covers the two sum types worth walking generically
// (Expression, Statement). The remaining shapes do not go through the
// visitor: declarators are printed by an ordinary recursive function, and
// specifiers, initializers and designations are left out of the output.

// Visitor is implemented by anything that wants to walk an Expression or
// Statement tree node-type-by-node-type.
type Visitor interface {
	VisitIdentExpr(*IdentExpr) interface{}
	VisitConstantExpr(*ConstantExpr) interface{}
	VisitUnaryExpr(*UnaryExpr) interface{}
	VisitBinaryExpr(*BinaryExpr) interface{}
	VisitCallExpr(*CallExpr) interface{}
	VisitCompoundLiteralExpr(*CompoundLiteralExpr) interface{}
	VisitSubscriptExpr(*SubscriptExpr) interface{}
	VisitMemberExpr(*MemberExpr) interface{}
	VisitMemberDerefExpr(*MemberDerefExpr) interface{}
	VisitSizeofExprExpr(*SizeofExprExpr) interface{}
	VisitSizeofTypeExpr(*SizeofTypeExpr) interface{}
	VisitCastExpr(*CastExpr) interface{}
	VisitConditionalExpr(*ConditionalExpr) interface{}
	VisitAssignExpr(*AssignExpr) interface{}

	VisitLabelStmt(*LabelStmt) interface{}
	VisitCaseStmt(*CaseStmt) interface{}
	VisitDefaultStmt(*DefaultStmt) interface{}
	VisitBlockStmt(*BlockStmt) interface{}
	VisitExprStmt(*ExprStmt) interface{}
	VisitIfStmt(*IfStmt) interface{}
	VisitSwitchStmt(*SwitchStmt) interface{}
	VisitWhileStmt(*WhileStmt) interface{}
	VisitDoWhileStmt(*DoWhileStmt) interface{}
	VisitForStmt(*ForStmt) interface{}
	VisitGotoStmt(*GotoStmt) interface{}
	VisitContinueStmt(*ContinueStmt) interface{}
	VisitBreakStmt(*BreakStmt) interface{}
	VisitReturnStmt(*ReturnStmt) interface{}
	VisitNullStmt(*NullStmt) interface{}
}

// Accept methods, one per concrete Expression variant.
func (n *IdentExpr) Accept(v Visitor) interface{}            { return v.VisitIdentExpr(n) }
func (n *ConstantExpr) Accept(v Visitor) interface{}         { return v.VisitConstantExpr(n) }
func (n *UnaryExpr) Accept(v Visitor) interface{}            { return v.VisitUnaryExpr(n) }
func (n *BinaryExpr) Accept(v Visitor) interface{}           { return v.VisitBinaryExpr(n) }
func (n *CallExpr) Accept(v Visitor) interface{}             { return v.VisitCallExpr(n) }
func (n *CompoundLiteralExpr) Accept(v Visitor) interface{}  { return v.VisitCompoundLiteralExpr(n) }
func (n *SubscriptExpr) Accept(v Visitor) interface{}        { return v.VisitSubscriptExpr(n) }
func (n *MemberExpr) Accept(v Visitor) interface{}           { return v.VisitMemberExpr(n) }
func (n *MemberDerefExpr) Accept(v Visitor) interface{}      { return v.VisitMemberDerefExpr(n) }
func (n *SizeofExprExpr) Accept(v Visitor) interface{}       { return v.VisitSizeofExprExpr(n) }
func (n *SizeofTypeExpr) Accept(v Visitor) interface{}       { return v.VisitSizeofTypeExpr(n) }
func (n *CastExpr) Accept(v Visitor) interface{}             { return v.VisitCastExpr(n) }
func (n *ConditionalExpr) Accept(v Visitor) interface{}      { return v.VisitConditionalExpr(n) }
func (n *AssignExpr) Accept(v Visitor) interface{}           { return v.VisitAssignExpr(n) }

// Accept methods, one per concrete Statement variant.
func (n *LabelStmt) Accept(v Visitor) interface{}    { return v.VisitLabelStmt(n) }
func (n *CaseStmt) Accept(v Visitor) interface{}     { return v.VisitCaseStmt(n) }
func (n *DefaultStmt) Accept(v Visitor) interface{}  { return v.VisitDefaultStmt(n) }
func (n *BlockStmt) Accept(v Visitor) interface{}    { return v.VisitBlockStmt(n) }
func (n *ExprStmt) Accept(v Visitor) interface{}     { return v.VisitExprStmt(n) }
func (n *IfStmt) Accept(v Visitor) interface{}       { return v.VisitIfStmt(n) }
func (n *SwitchStmt) Accept(v Visitor) interface{}   { return v.VisitSwitchStmt(n) }
func (n *WhileStmt) Accept(v Visitor) interface{}    { return v.VisitWhileStmt(n) }
func (n *DoWhileStmt) Accept(v Visitor) interface{}  { return v.VisitDoWhileStmt(n) }
func (n *ForStmt) Accept(v Visitor) interface{}      { return v.VisitForStmt(n) }
func (n *GotoStmt) Accept(v Visitor) interface{}     { return v.VisitGotoStmt(n) }
func (n *ContinueStmt) Accept(v Visitor) interface{} { return v.VisitContinueStmt(n) }
func (n *BreakStmt) Accept(v Visitor) interface{}    { return v.VisitBreakStmt(n) }
func (n *ReturnStmt) Accept(v Visitor) interface{}   { return v.VisitReturnStmt(n) }
func (n *NullStmt) Accept(v Visitor) interface{}     { return v.VisitNullStmt(n) }

// acceptExpr/acceptStmt dispatch a value held behind the Expression/
// Statement marker interfaces to its Accept method by taking its address;
// the parser stores these as values, not pointers, so a visitor-consuming
// caller goes through these helpers rather than a type assertion to a
// pointer-shaped interface.
func acceptExpr(e Expression, v Visitor) interface{} {
	switch n := e.(type) {
	case IdentExpr:
		return n.Accept(v)
	case ConstantExpr:
		return n.Accept(v)
	case UnaryExpr:
		return n.Accept(v)
	case BinaryExpr:
		return n.Accept(v)
	case CallExpr:
		return n.Accept(v)
	case CompoundLiteralExpr:
		return n.Accept(v)
	case SubscriptExpr:
		return n.Accept(v)
	case MemberExpr:
		return n.Accept(v)
	case MemberDerefExpr:
		return n.Accept(v)
	case SizeofExprExpr:
		return n.Accept(v)
	case SizeofTypeExpr:
		return n.Accept(v)
	case CastExpr:
		return n.Accept(v)
	case ConditionalExpr:
		return n.Accept(v)
	case AssignExpr:
		return n.Accept(v)
	default:
		return "<nil-expr>"
	}
}

func acceptStmt(st Statement, v Visitor) interface{} {
	switch n := st.(type) {
	case LabelStmt:
		return n.Accept(v)
	case CaseStmt:
		return n.Accept(v)
	case DefaultStmt:
		return n.Accept(v)
	case BlockStmt:
		return n.Accept(v)
	case ExprStmt:
		return n.Accept(v)
	case IfStmt:
		return n.Accept(v)
	case SwitchStmt:
		return n.Accept(v)
	case WhileStmt:
		return n.Accept(v)
	case DoWhileStmt:
		return n.Accept(v)
	case ForStmt:
		return n.Accept(v)
	case GotoStmt:
		return n.Accept(v)
	case ContinueStmt:
		return n.Accept(v)
	case BreakStmt:
		return n.Accept(v)
	case ReturnStmt:
		return n.Accept(v)
	case NullStmt:
		return n.Accept(v)
	default:
		return "<nil-stmt>"
	}
}

// Printer is a Visitor that renders a parenthesized s-expression rendering
// of an Expression or Statement tree, purely for diagnostic display (the
// PRINT_AST env var hook in cmd/cparse_repl).
type Printer struct{}

func (Printer) expr(e Expression) string {
	if e == nil {
		return ""
	}
	return acceptExpr(e, Printer{}).(string)
}

func (p Printer) VisitIdentExpr(n *IdentExpr) interface{} {
	return string(n.Name)
}

func (p Printer) VisitConstantExpr(n *ConstantExpr) interface{} {
	return string(n.Value.Lexeme)
}

var unaryOpText = map[UnaryOp]string{
	OpPostInc: "post++", OpPostDec: "post--",
	OpPreInc: "++", OpPreDec: "--",
	OpAddressOf: "&", OpIndirection: "*",
	OpUnaryPlus: "+", OpUnaryMinus: "-",
	OpBitwiseNot: "~", OpLogicalNot: "!",
}

func (p Printer) VisitUnaryExpr(n *UnaryExpr) interface{} {
	return fmt.Sprintf("(%s %s)", unaryOpText[n.Op], p.expr(n.Inner))
}

var binaryOpText = map[BinaryOp]string{
	OpMul: "*", OpDiv: "/", OpMod: "%", OpAdd: "+", OpSub: "-",
	OpShl: "<<", OpShr: ">>", OpLt: "<", OpGt: ">", OpLe: "<=", OpGe: ">=",
	OpEq: "==", OpNeq: "!=", OpBitAnd: "&", OpBitXor: "^", OpBitOr: "|",
	OpLogicalAnd: "&&", OpLogicalOr: "||", OpComma: ",",
}

func (p Printer) VisitBinaryExpr(n *BinaryExpr) interface{} {
	return fmt.Sprintf("(%s %s %s)", binaryOpText[n.Op], p.expr(n.Fst), p.expr(n.Snd))
}

func (p Printer) VisitCallExpr(n *CallExpr) interface{} {
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = p.expr(a)
	}
	return fmt.Sprintf("(call %s %s)", p.expr(n.Func), strings.Join(args, " "))
}

func (p Printer) VisitCompoundLiteralExpr(n *CompoundLiteralExpr) interface{} {
	return fmt.Sprintf("(compound-literal %s)", p.typeName(n.Type))
}

func (p Printer) VisitSubscriptExpr(n *SubscriptExpr) interface{} {
	return fmt.Sprintf("(subscript %s %s)", p.expr(n.Array), p.expr(n.Index))
}

func (p Printer) VisitMemberExpr(n *MemberExpr) interface{} {
	return fmt.Sprintf("(. %s %s)", p.expr(n.Inner), string(n.Name))
}

func (p Printer) VisitMemberDerefExpr(n *MemberDerefExpr) interface{} {
	return fmt.Sprintf("(-> %s %s)", p.expr(n.Inner), string(n.Name))
}

func (p Printer) VisitSizeofExprExpr(n *SizeofExprExpr) interface{} {
	return fmt.Sprintf("(sizeof %s)", p.expr(n.Inner))
}

func (p Printer) VisitSizeofTypeExpr(n *SizeofTypeExpr) interface{} {
	return fmt.Sprintf("(sizeof-type %s)", p.typeName(n.Type))
}

func (p Printer) VisitCastExpr(n *CastExpr) interface{} {
	return fmt.Sprintf("(cast %s %s)", p.typeName(n.Type), p.expr(n.Expr))
}

func (p Printer) VisitConditionalExpr(n *ConditionalExpr) interface{} {
	return fmt.Sprintf("(?: %s %s %s)", p.expr(n.Cond), p.expr(n.Then), p.expr(n.Else))
}

var assignOpText = map[AssignOp]string{
	AssignSimple: "=", AssignMul: "*=", AssignDiv: "/=", AssignMod: "%=",
	AssignAdd: "+=", AssignSub: "-=", AssignShl: "<<=", AssignShr: ">>=",
	AssignBitAnd: "&=", AssignBitXor: "^=", AssignBitOr: "|=",
}

func (p Printer) VisitAssignExpr(n *AssignExpr) interface{} {
	return fmt.Sprintf("(%s %s %s)", assignOpText[n.Op], p.expr(n.Lhs), p.expr(n.Rhs))
}

func (p Printer) typeName(tn TypeName) string {
	if tn.Declarator == nil {
		return "type"
	}
	return "type " + p.declarator(tn.Declarator)
}

func (p Printer) declarator(d *Declarator) string {
	if d == nil {
		return ""
	}
	switch d.Kind {
	case DeclaratorPointer:
		return fmt.Sprintf("(ptr %s)", p.declarator(d.Inner))
	case DeclaratorIdentifier:
		return string(d.Name)
	case DeclaratorArray:
		return fmt.Sprintf("(array %s)", p.declarator(d.Inner))
	case DeclaratorFunction:
		return fmt.Sprintf("(func %s)", p.declarator(d.Inner))
	default:
		return "?"
	}
}

func (p Printer) stmt(st Statement) string {
	if st == nil {
		return ""
	}
	return acceptStmt(st, p).(string)
}

func (p Printer) VisitLabelStmt(n *LabelStmt) interface{} {
	return fmt.Sprintf("(label %s %s)", string(n.Label), p.stmt(n.Inner))
}

func (p Printer) VisitCaseStmt(n *CaseStmt) interface{} {
	return fmt.Sprintf("(case %s %s)", p.expr(n.Expr), p.stmt(n.Inner))
}

func (p Printer) VisitDefaultStmt(n *DefaultStmt) interface{} {
	return fmt.Sprintf("(default %s)", p.stmt(n.Inner))
}

func (p Printer) VisitBlockStmt(n *BlockStmt) interface{} {
	parts := make([]string, len(n.Statements))
	for i, st := range n.Statements {
		parts[i] = p.stmt(st)
	}
	return fmt.Sprintf("(block %s)", strings.Join(parts, " "))
}

func (p Printer) VisitExprStmt(n *ExprStmt) interface{} {
	return p.expr(n.Expr)
}

func (p Printer) VisitIfStmt(n *IfStmt) interface{} {
	if n.Else == nil {
		return fmt.Sprintf("(if %s %s)", p.expr(n.Cond), p.stmt(n.Then))
	}
	return fmt.Sprintf("(if %s %s %s)", p.expr(n.Cond), p.stmt(n.Then), p.stmt(n.Else))
}

func (p Printer) VisitSwitchStmt(n *SwitchStmt) interface{} {
	return fmt.Sprintf("(switch %s %s)", p.expr(n.Expr), p.stmt(n.Inner))
}

func (p Printer) VisitWhileStmt(n *WhileStmt) interface{} {
	return fmt.Sprintf("(while %s %s)", p.expr(n.Cond), p.stmt(n.Inner))
}

func (p Printer) VisitDoWhileStmt(n *DoWhileStmt) interface{} {
	return fmt.Sprintf("(do-while %s %s)", p.stmt(n.Inner), p.expr(n.Cond))
}

func (p Printer) VisitForStmt(n *ForStmt) interface{} {
	init := ""
	if n.InitDecl != nil {
		init = "decl"
	} else if n.InitExpr != nil {
		init = p.expr(n.InitExpr)
	}
	return fmt.Sprintf("(for %s %s %s %s)", init, p.expr(n.Test), p.expr(n.Post), p.stmt(n.Inner))
}

func (p Printer) VisitGotoStmt(n *GotoStmt) interface{} {
	return fmt.Sprintf("(goto %s)", string(n.Label))
}

func (p Printer) VisitContinueStmt(*ContinueStmt) interface{} { return "(continue)" }
func (p Printer) VisitBreakStmt(*BreakStmt) interface{}       { return "(break)" }

func (p Printer) VisitReturnStmt(n *ReturnStmt) interface{} {
	if n.Expr == nil {
		return "(return)"
	}
	return fmt.Sprintf("(return %s)", p.expr(n.Expr))
}

func (p Printer) VisitNullStmt(*NullStmt) interface{} { return "(null)" }

// Sprint renders any of the four top-level parse results for diagnostic
// display; unrecognized types render as Go's default %v.
func Sprint(node interface{}) string {
	p := Printer{}
	switch n := node.(type) {
	case Expression:
		return p.expr(n)
	case Statement:
		return p.stmt(n)
	case *Declaration:
		return fmt.Sprintf("(declaration %s)", p.typeName(TypeName{Specs: n.Specs}))
	case TranslationUnit:
		parts := make([]string, len(n))
		for i, item := range n {
			switch d := item.(type) {
			case *FunctionDef:
				parts[i] = fmt.Sprintf("(function %s %s)", p.declarator(d.Declarator), p.stmt(d.Body))
			case *Declaration:
				parts[i] = Sprint(d)
			}
		}
		return fmt.Sprintf("(unit %s)", strings.Join(parts, " "))
	default:
		return fmt.Sprintf("%v", node)
	}
}
