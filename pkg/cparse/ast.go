package cparse

// ----------------------------------------------------------------------------
// Lexical leaves
//
// Identifier and lexeme slices are never copied: they are sub-slices of the
// caller's input buffer (a []byte slice of a []byte slice shares the
// backing array), so they are valid for exactly as long as the input buffer
// the AST was parsed from is kept alive.

// ConstantKind distinguishes the three constant forms named by the grammar.
// Only ConstInteger is ever produced today; the other two exist so the AST
// shape matches the full grammar.
type ConstantKind int

const (
	ConstInteger ConstantKind = iota
	ConstFloat
	ConstCharacter
)

// Constant is a numeric or character literal. Lexeme is the raw source
// text; only decimal integer lexing is implemented.
type Constant struct {
	Kind   ConstantKind
	Lexeme []byte
	// Value holds the parsed magnitude for ConstInteger constants (decimal
	// only). It is the zero value for ConstFloat/ConstCharacter, which are
	// never produced by the parser but are kept in the type for shape
	// completeness.
	Value uint64
}

// ----------------------------------------------------------------------------
// Expressions
//
// Expression is a closed sum type realized, in the idiom the example repos
// use for their own AST sum types (e.g. pkg/asm.Statement, pkg/jack.
// Expression), as a marker interface implemented by one concrete struct per
// grammar alternative.
type Expression interface{ exprNode() }

type IdentExpr struct{ Name []byte }

type ConstantExpr struct{ Value Constant }

type UnaryOp int

const (
	OpPostInc UnaryOp = iota
	OpPostDec
	OpPreInc
	OpPreDec
	OpAddressOf
	OpIndirection
	OpUnaryPlus
	OpUnaryMinus
	OpBitwiseNot
	OpLogicalNot
)

type UnaryExpr struct {
	Op    UnaryOp
	Inner Expression
}

type BinaryOp int

const (
	OpMul BinaryOp = iota
	OpDiv
	OpMod
	OpAdd
	OpSub
	OpShl
	OpShr
	OpLt
	OpGt
	OpLe
	OpGe
	OpEq
	OpNeq
	OpBitAnd
	OpBitXor
	OpBitOr
	OpLogicalAnd
	OpLogicalOr
	OpComma
)

type BinaryExpr struct {
	Op       BinaryOp
	Fst, Snd Expression
}

// ArgumentList is a non-empty, ordered list of call arguments.
type ArgumentList []Expression

type CallExpr struct {
	Func Expression
	Args ArgumentList // nil if no argument list was present
}

type CompoundLiteralExpr struct {
	Type TypeName
	Init InitializerList
}

type SubscriptExpr struct {
	Array Expression
	Index Expression
}

type MemberExpr struct {
	Inner Expression
	Name  []byte
}

type MemberDerefExpr struct {
	Inner Expression
	Name  []byte
}

type SizeofExprExpr struct{ Inner Expression }

type SizeofTypeExpr struct{ Type TypeName }

type CastExpr struct {
	Type TypeName
	Expr Expression
}

type ConditionalExpr struct {
	Cond, Then, Else Expression
}

type AssignOp int

const (
	AssignSimple AssignOp = iota
	AssignMul
	AssignDiv
	AssignMod
	AssignAdd
	AssignSub
	AssignShl
	AssignShr
	AssignBitAnd
	AssignBitXor
	AssignBitOr
)

// AssignExpr is not restricted to lvalues on the left: that is a semantic
// concern out of scope for a syntax-only parser.
type AssignExpr struct {
	Op       AssignOp
	Lhs, Rhs Expression
}

func (IdentExpr) exprNode()           {}
func (ConstantExpr) exprNode()        {}
func (UnaryExpr) exprNode()           {}
func (BinaryExpr) exprNode()          {}
func (CallExpr) exprNode()            {}
func (CompoundLiteralExpr) exprNode() {}
func (SubscriptExpr) exprNode()       {}
func (MemberExpr) exprNode()          {}
func (MemberDerefExpr) exprNode()     {}
func (SizeofExprExpr) exprNode()      {}
func (SizeofTypeExpr) exprNode()      {}
func (CastExpr) exprNode()            {}
func (ConditionalExpr) exprNode()     {}
func (AssignExpr) exprNode()          {}

// ----------------------------------------------------------------------------
// Declaration specifiers

type StorageClassSet uint8

const (
	StorageTypedef StorageClassSet = 1 << iota
	StorageExtern
	StorageStatic
	StorageAuto
	StorageRegister
)

type FuncSpecifierSet uint8

const (
	FuncSpecInline FuncSpecifierSet = 1 << iota
)

type TypeQualifierSet uint8

const (
	QualConst TypeQualifierSet = 1 << iota
	QualRestrict
	QualVolatile
)

type PrimitiveTypeSet uint16

const (
	PrimVoid PrimitiveTypeSet = 1 << iota
	PrimChar
	PrimShort
	PrimInt
	PrimLong
	PrimLongLong
	PrimFloat
	PrimDouble
	PrimSigned
	PrimUnsigned
	PrimBool
	PrimComplex
)

// TypeSpecTag identifies which of the mutually exclusive type-specifier
// shapes a DeclSpecifiers carries.
type TypeSpecTag int

const (
	TypeSpecNone TypeSpecTag = iota
	TypeSpecPrimitive
	TypeSpecEnum
	TypeSpecStruct
	TypeSpecUnion
	TypeSpecTypedefName
)

// Enumerator is one entry of an enum body: a name and an optional constant
// expression.
type Enumerator struct {
	Name  []byte
	Value Expression // nil if absent
}

// StructMember is one member-list entry of a struct/union body.
type StructMember struct {
	Specs       DeclSpecifiers // specifier-qualifier list (no storage/func-spec bits)
	Declarators []StructDeclarator
}

// StructDeclarator is a single struct-declarator: a declarator, a bitfield
// width, or both. At least one is present.
type StructDeclarator struct {
	Declarator *Declarator // nil if absent
	Bitfield   Expression  // nil if absent
}

// DeclSpecifiers is the accumulator built by parseDeclarationSpecifiers /
// parseSpecifierQualifierList: storage class, function specifier and type
// qualifier bitsets, plus a single type-spec tag and its payload.
type DeclSpecifiers struct {
	Storage    StorageClassSet
	FuncSpec   FuncSpecifierSet
	Qualifiers TypeQualifierSet

	TypeSpec  TypeSpecTag
	Primitive PrimitiveTypeSet // valid iff TypeSpec == TypeSpecPrimitive

	// Tag is the optional enum/struct/union identifier (valid iff TypeSpec
	// is one of those three). TypedefName holds the identifier when
	// TypeSpec == TypeSpecTypedefName; no production emits that variant,
	// since the parser carries no typedef-name context.
	Tag         []byte
	EnumBody    []Enumerator   // nil if absent
	StructBody  []StructMember // nil if absent
	TypedefName []byte
}

// ----------------------------------------------------------------------------
// Declarators

type DeclaratorKind int

const (
	DeclaratorPointer DeclaratorKind = iota
	DeclaratorIdentifier
	DeclaratorArray
	DeclaratorFunction
)

// Declarator is one link of the outer-to-inner declarator chain. Only the
// fields relevant to Kind are meaningful.
type Declarator struct {
	Kind  DeclaratorKind
	Inner *Declarator // the declarator this node modifies; nil at the innermost link

	// DeclaratorPointer
	PointerQualifiers TypeQualifierSet

	// DeclaratorIdentifier
	Name []byte

	// DeclaratorArray
	ArrayStatic     bool
	ArrayVarLen     bool // the `*` VLA marker
	ArrayQualifiers TypeQualifierSet
	ArraySize       Expression // nil if absent

	// DeclaratorFunction
	HasEllipsis bool
	Params      []Parameter // nil if no parameter-type-list was present
}

// IsAbstract reports whether d names no identifier anywhere in its chain;
// nil counts as abstract (an entirely absent declarator).
func IsAbstract(d *Declarator) bool {
	for n := d; n != nil; n = n.Inner {
		if n.Kind == DeclaratorIdentifier {
			return false
		}
	}
	return true
}

// Parameter is one entry of a function declarator's parameter-type-list: a
// declaration-specifiers set plus an optional (possibly abstract)
// declarator.
type Parameter struct {
	Specs      DeclSpecifiers
	Declarator *Declarator // nil for an unnamed parameter with no declarator at all
}

// TypeName is a specifier-qualifier list plus an optional abstract
// declarator.
type TypeName struct {
	Specs      DeclSpecifiers
	Declarator *Declarator // nil if absent; must be abstract when present
}

// ----------------------------------------------------------------------------
// Initializers

// Initializer is either a plain expression or a brace-enclosed initializer
// list; realized as a marker interface the same way Expression/Statement
// are.
type Initializer interface{ initNode() }

type ExprInitializer struct{ Expr Expression }

type ListInitializer struct{ List InitializerList }

func (ExprInitializer) initNode() {}
func (ListInitializer) initNode() {}

// Designator is either `[const-expr]` or `.name`.
type Designator interface{ designatorNode() }

type IndexDesignator struct{ Index Expression }

type FieldDesignator struct{ Name []byte }

func (IndexDesignator) designatorNode() {}
func (FieldDesignator) designatorNode() {}

// Designation is a non-empty ordered sequence of designators.
type Designation []Designator

// InitializerListEntry pairs an optional designation with its initializer.
type InitializerListEntry struct {
	Designation Designation // nil if absent
	Init        Initializer
}

type InitializerList []InitializerListEntry

// ----------------------------------------------------------------------------
// Init-declarators and declarations

// InitDeclarator is a concrete (non-abstract) declarator with an optional
// initializer.
type InitDeclarator struct {
	Declarator *Declarator
	Init       Initializer // nil if absent
}

type Declaration struct {
	Specs           DeclSpecifiers
	InitDeclarators []InitDeclarator
}

// ----------------------------------------------------------------------------
// Statements

// Statement is a closed sum type over the C99 statement forms.
type Statement interface{ stmtNode() }

type LabelStmt struct {
	Label []byte
	Inner Statement
}

type CaseStmt struct {
	Expr  Expression
	Inner Statement
}

type DefaultStmt struct{ Inner Statement }

// BlockStmt is a (possibly empty) ordered sequence of statements making up
// a compound statement body.
type BlockStmt struct{ Statements []Statement }

type ExprStmt struct{ Expr Expression }

type IfStmt struct {
	Cond       Expression
	Then, Else Statement // Else is nil if absent
}

type SwitchStmt struct {
	Expr  Expression
	Inner Statement
}

type WhileStmt struct {
	Cond  Expression
	Inner Statement
}

type DoWhileStmt struct {
	Inner Statement
	Cond  Expression
}

// ForStmt's init clause is either a declaration or an expression, never
// both: at most one of InitDecl/InitExpr is set.
type ForStmt struct {
	InitDecl *Declaration
	InitExpr Expression
	Test     Expression
	Post     Expression
	Inner    Statement
}

type GotoStmt struct{ Label []byte }

type ContinueStmt struct{}

type BreakStmt struct{}

type ReturnStmt struct{ Expr Expression } // nil if bare `return;`

type NullStmt struct{}

func (LabelStmt) stmtNode()    {}
func (CaseStmt) stmtNode()     {}
func (DefaultStmt) stmtNode()  {}
func (BlockStmt) stmtNode()    {}
func (ExprStmt) stmtNode()     {}
func (IfStmt) stmtNode()       {}
func (SwitchStmt) stmtNode()   {}
func (WhileStmt) stmtNode()    {}
func (DoWhileStmt) stmtNode()  {}
func (ForStmt) stmtNode()      {}
func (GotoStmt) stmtNode()     {}
func (ContinueStmt) stmtNode() {}
func (BreakStmt) stmtNode()    {}
func (ReturnStmt) stmtNode()   {}
func (NullStmt) stmtNode()     {}

// ----------------------------------------------------------------------------
// Function definitions and translation units

type FunctionDef struct {
	Specs      DeclSpecifiers
	Declarator *Declarator // concrete (non-abstract)
	KRDecls    []Declaration // K&R-style parameter declarations; nil if absent
	Body       BlockStmt
}

// ExternalDecl is either a *FunctionDef or a *Declaration.
type ExternalDecl interface{ externalDeclNode() }

func (*FunctionDef) externalDeclNode() {}
func (*Declaration) externalDeclNode() {}

// TranslationUnit is the top-level non-empty sequence of external
// declarations.
type TranslationUnit []ExternalDecl
