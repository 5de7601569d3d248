package cparse

import "testing"

func TestAbstractnessInvariant(t *testing.T) {
	tn, err := ParseExpression([]byte("sizeof(int *)"))
	if err != nil {
		t.Fatalf("ParseExpression failed: %s", err)
	}
	sz, ok := tn.(SizeofTypeExpr)
	if !ok {
		t.Fatalf("got %#v, want SizeofTypeExpr", tn)
	}
	if !IsAbstract(sz.Type.Declarator) {
		t.Fatalf("a type-name's declarator must be abstract")
	}

	d := mustParseDecl(t, "int *p;")
	decl := d.InitDeclarators[0].Declarator
	if IsAbstract(decl) {
		t.Fatalf("an init-declarator's declarator must be concrete")
	}
}

func TestPointerDeclaratorWithQualifiers(t *testing.T) {
	d := mustParseDecl(t, "int *const p;")
	decl := d.InitDeclarators[0].Declarator
	if decl.Kind != DeclaratorPointer {
		t.Fatalf("want a pointer node wrapping the identifier, got %#v", decl)
	}
	if decl.PointerQualifiers != QualConst {
		t.Fatalf("want const pointer qualifier, got %v", decl.PointerQualifiers)
	}
	if decl.Inner == nil || decl.Inner.Kind != DeclaratorIdentifier || string(decl.Inner.Name) != "p" {
		t.Fatalf("want identifier p beneath the pointer, got %#v", decl.Inner)
	}
}

func TestAbstractArrayDeclaratorInTypeName(t *testing.T) {
	e, err := ParseExpression([]byte("sizeof(int[4])"))
	if err != nil {
		t.Fatalf("ParseExpression failed: %s", err)
	}
	sz, ok := e.(SizeofTypeExpr)
	if !ok {
		t.Fatalf("got %#v, want SizeofTypeExpr", e)
	}
	arr := sz.Type.Declarator
	if arr == nil || arr.Kind != DeclaratorArray {
		t.Fatalf("want an abstract array declarator, got %#v", arr)
	}
	if arr.Inner != nil {
		t.Fatalf("abstract array declarator should have no inner node, got %#v", arr.Inner)
	}
	if arr.ArraySize == nil {
		t.Fatalf("want an array size expression")
	}
}

func TestAbstractFunctionPointerTypeName(t *testing.T) {
	e, err := ParseExpression([]byte("sizeof(int (*)(void))"))
	if err != nil {
		t.Fatalf("ParseExpression failed: %s", err)
	}
	sz, ok := e.(SizeofTypeExpr)
	if !ok {
		t.Fatalf("got %#v, want SizeofTypeExpr", e)
	}
	fn := sz.Type.Declarator
	if fn == nil || fn.Kind != DeclaratorFunction {
		t.Fatalf("want a function declarator, got %#v", fn)
	}
	if fn.Inner == nil || fn.Inner.Kind != DeclaratorPointer {
		t.Fatalf("want a pointer beneath the function node, got %#v", fn.Inner)
	}
	if !IsAbstract(fn) {
		t.Fatalf("the whole chain must be abstract")
	}
}

func TestVLAStarCommitsInsideBrackets(t *testing.T) {
	d := mustParseDecl(t, "void f(int a[*]);")
	arr := d.InitDeclarators[0].Declarator.Params[0].Declarator
	if arr.Kind != DeclaratorArray || !arr.ArrayVarLen {
		t.Fatalf("want a VLA array declarator, got %#v", arr)
	}
	// A "*" inside brackets is the VLA marker, never the start of a size
	// expression: once matched, "]" must follow.
	if _, err := ParseDeclaration([]byte("void f(int a[*p]);")); err == nil {
		t.Fatalf("a[*p] should fail: '*' commits to the VLA form")
	}
}

func TestArrayDeclaratorStaticInsideBrackets(t *testing.T) {
	d := mustParseDecl(t, "void f(int a[static 10]);")
	fn := d.InitDeclarators[0].Declarator
	if fn.Kind != DeclaratorFunction {
		t.Fatalf("want function declarator, got %#v", fn)
	}
	param := fn.Params[0]
	arr := param.Declarator
	if arr.Kind != DeclaratorArray {
		t.Fatalf("want array declarator parameter, got %#v", arr)
	}
	if !arr.ArrayStatic {
		t.Fatalf("want array-static true for a[static 10]")
	}
	if arr.ArraySize == nil {
		t.Fatalf("want an array size expression")
	}
}

func TestFunctionDeclaratorEllipsis(t *testing.T) {
	d := mustParseDecl(t, "int printf(char *fmt, ...);")
	decl := d.InitDeclarators[0].Declarator
	if decl.Kind != DeclaratorFunction {
		t.Fatalf("want function declarator, got %#v", decl)
	}
	if !decl.HasEllipsis {
		t.Fatalf("want HasEllipsis true")
	}
	if len(decl.Params) != 1 {
		t.Fatalf("want 1 named parameter before the ellipsis, got %d", len(decl.Params))
	}
}

func TestUnnamedParameterIsAbstract(t *testing.T) {
	d := mustParseDecl(t, "int f(int);")
	fn := d.InitDeclarators[0].Declarator
	param := fn.Params[0]
	if param.Declarator != nil && !IsAbstract(param.Declarator) {
		t.Fatalf("unnamed parameter must be abstract")
	}
}
