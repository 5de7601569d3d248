package cparse

// ----------------------------------------------------------------------------
// Declaration specifiers. The production matches a single specifier token,
// recurses to collect the rest of the specifiers (a failed recursion
// contributes the empty set), and merges the first token into the result.
// A merge violation (a third "long", a second primitive keyword, a second
// type-spec) fails the whole call with the cursor restored, not merely the
// one keyword.

var storageClassKeywords = []struct {
	kw  string
	bit StorageClassSet
}{
	{"typedef", StorageTypedef},
	{"extern", StorageExtern},
	{"static", StorageStatic},
	{"auto", StorageAuto},
	{"register", StorageRegister},
}

var typeQualifierKeywords = []struct {
	kw  string
	bit TypeQualifierSet
}{
	{"const", QualConst},
	{"restrict", QualRestrict},
	{"volatile", QualVolatile},
}

// parseDeclarationSpecifiers parses a non-empty sequence of declaration
// specifiers.
func (s *scanner) parseDeclarationSpecifiers() (DeclSpecifiers, bool) {
	start := s.mark()

	if bit, ok := s.tryStorageClass(); ok {
		rest, _ := s.parseDeclarationSpecifiers()
		rest.Storage |= bit
		return rest, true
	}

	if s.tryFunctionSpecifier() {
		rest, _ := s.parseDeclarationSpecifiers()
		rest.FuncSpec |= FuncSpecInline
		return rest, true
	}

	if bit, ok := s.tryTypeQualifier(); ok {
		rest, _ := s.parseDeclarationSpecifiers()
		rest.Qualifiers |= bit
		return rest, true
	}

	if bit, ok := s.tryPrimitiveKeyword(); ok {
		rest, _ := s.parseDeclarationSpecifiers()
		merged, ok := mergePrimitive(rest, bit)
		if !ok {
			s.reset(start)
			return DeclSpecifiers{}, false
		}
		return merged, true
	}

	if s.keyword("enum") {
		specs, ok := s.parseEnumSpecifierTail()
		if !ok {
			s.reset(start)
			return DeclSpecifiers{}, false
		}
		return specs, true
	}

	isStruct := s.keyword("struct")
	if isStruct || s.keyword("union") {
		tag := TypeSpecStruct
		if !isStruct {
			tag = TypeSpecUnion
		}
		specs, ok := s.parseStructOrUnionTail(tag)
		if !ok {
			s.reset(start)
			return DeclSpecifiers{}, false
		}
		return specs, true
	}

	return DeclSpecifiers{}, false
}

// parseSpecifierQualifierList parses declaration specifiers and then
// rejects the result if any storage-class or function-specifier bit was
// consumed.
func (s *scanner) parseSpecifierQualifierList() (DeclSpecifiers, bool) {
	start := s.mark()
	specs, ok := s.parseDeclarationSpecifiers()
	if !ok || specs.Storage != 0 || specs.FuncSpec != 0 {
		s.reset(start)
		return DeclSpecifiers{}, false
	}
	return specs, true
}

func (s *scanner) tryStorageClass() (StorageClassSet, bool) {
	for _, entry := range storageClassKeywords {
		if s.keyword(entry.kw) {
			return entry.bit, true
		}
	}
	return 0, false
}

func (s *scanner) tryFunctionSpecifier() bool {
	return s.keyword("inline")
}

func (s *scanner) tryTypeQualifier() (TypeQualifierSet, bool) {
	for _, entry := range typeQualifierKeywords {
		if s.keyword(entry.kw) {
			return entry.bit, true
		}
	}
	return 0, false
}

// tryPrimitiveKeyword matches a single primitive-type keyword and returns
// its bit; merging is the caller's job.
func (s *scanner) tryPrimitiveKeyword() (PrimitiveTypeSet, bool) {
	for i, kw := range primitiveKeywords {
		if s.keyword(kw) {
			return primitiveBits[i], true
		}
	}
	return 0, false
}

// mergePrimitive merges one primitive-type bit into an accumulated
// specifier set, applying the long/long-long promotion rule, the
// one-primitive rule, and the type-spec-tag exclusivity rule.
func mergePrimitive(acc DeclSpecifiers, bit PrimitiveTypeSet) (DeclSpecifiers, bool) {
	switch acc.TypeSpec {
	case TypeSpecNone:
		acc.TypeSpec = TypeSpecPrimitive
		acc.Primitive = bit
		return acc, true
	case TypeSpecPrimitive:
		if bit == PrimLong {
			switch {
			case acc.Primitive&PrimLongLong != 0:
				// A third "long": fail.
				return DeclSpecifiers{}, false
			case acc.Primitive&PrimLong != 0:
				// "long" seen again sets long-long and clears nothing.
				acc.Primitive |= PrimLongLong
				return acc, true
			default:
				acc.Primitive |= PrimLong
				return acc, true
			}
		}
		// Any primitive already present blocks a further non-"long"
		// primitive keyword: the bitset models a single base-type slot
		// plus the two-deep "long" stack, not independently combinable
		// modifiers, so "int double" fails here.
		if acc.Primitive != 0 {
			return DeclSpecifiers{}, false
		}
		acc.Primitive |= bit
		return acc, true
	default:
		// A primitive cannot combine with enum/struct/union/typedef-name.
		return DeclSpecifiers{}, false
	}
}

// parseEnumSpecifierTail parses the remainder of an enum specifier after
// the "enum" keyword: an optional tag, an optional "{" enumerator-list
// [","] "}" body (at least one of the two required), then the rest of the
// declaration specifiers, which must not carry a type-spec of their own.
func (s *scanner) parseEnumSpecifierTail() (DeclSpecifiers, bool) {
	tag, hasTag := s.identifier()

	var body []Enumerator
	hasBody := false
	if s.punctuation("{") {
		list, ok := s.parseEnumeratorList()
		if !ok {
			return DeclSpecifiers{}, false
		}
		s.punctuation(",")
		if !s.punctuation("}") {
			return DeclSpecifiers{}, false
		}
		body = list
		hasBody = true
	}

	if !hasTag && !hasBody {
		return DeclSpecifiers{}, false
	}

	rest, _ := s.parseDeclarationSpecifiers()
	if rest.TypeSpec != TypeSpecNone {
		return DeclSpecifiers{}, false
	}

	rest.TypeSpec = TypeSpecEnum
	if hasTag {
		rest.Tag = tag
	}
	if hasBody {
		rest.EnumBody = body
	}
	return rest, true
}

// parseEnumeratorList parses a comma-separated, non-empty sequence of
// (name, optional constant-expression) pairs. A trailing comma is left for
// the enclosing body to consume.
func (s *scanner) parseEnumeratorList() ([]Enumerator, bool) {
	start := s.mark()
	first, ok := s.parseEnumerator()
	if !ok {
		s.reset(start)
		return nil, false
	}
	list := []Enumerator{first}
	for {
		save := s.mark()
		if !s.punctuation(",") {
			return list, true
		}
		next, ok := s.parseEnumerator()
		if !ok {
			s.reset(save)
			return list, true
		}
		list = append(list, next)
	}
}

func (s *scanner) parseEnumerator() (Enumerator, bool) {
	start := s.mark()
	name, ok := s.identifier()
	if !ok {
		s.reset(start)
		return Enumerator{}, false
	}
	var value Expression
	if s.punctuation("=") {
		v, ok := s.parseConstExpr()
		if !ok {
			s.reset(start)
			return Enumerator{}, false
		}
		value = v
	}
	return Enumerator{Name: name, Value: value}, true
}

// parseStructOrUnionTail parses the remainder of a struct/union specifier
// after its keyword: an optional tag, an optional "{" member-list "}" body
// (at least one required), then the rest of the declaration specifiers,
// which must not carry a type-spec of their own.
func (s *scanner) parseStructOrUnionTail(tag TypeSpecTag) (DeclSpecifiers, bool) {
	name, hasTag := s.identifier()

	var body []StructMember
	hasBody := false
	if s.punctuation("{") {
		list, ok := s.parseStructMemberList()
		if !ok || !s.punctuation("}") {
			return DeclSpecifiers{}, false
		}
		body = list
		hasBody = true
	}

	if !hasTag && !hasBody {
		return DeclSpecifiers{}, false
	}

	rest, _ := s.parseDeclarationSpecifiers()
	if rest.TypeSpec != TypeSpecNone {
		return DeclSpecifiers{}, false
	}

	rest.TypeSpec = tag
	if hasTag {
		rest.Tag = name
	}
	if hasBody {
		rest.StructBody = body
	}
	return rest, true
}

// parseStructMemberList parses a non-empty sequence of struct-declaration
// entries, each a specifier-qualifier-list followed by a struct-declarator
// list and ";".
func (s *scanner) parseStructMemberList() ([]StructMember, bool) {
	var members []StructMember
	for {
		start := s.mark()
		specs, ok := s.parseSpecifierQualifierList()
		if !ok {
			s.reset(start)
			break
		}
		decls, ok := s.parseStructDeclaratorList()
		if !ok || !s.punctuation(";") {
			s.reset(start)
			break
		}
		members = append(members, StructMember{Specs: specs, Declarators: decls})
	}
	if len(members) == 0 {
		return nil, false
	}
	return members, true
}

// parseStructDeclaratorList parses a comma-separated, non-empty sequence of
// struct-declarator entries. The "," commits to another entry.
func (s *scanner) parseStructDeclaratorList() ([]StructDeclarator, bool) {
	start := s.mark()
	first, ok := s.parseStructDeclarator()
	if !ok {
		s.reset(start)
		return nil, false
	}
	list := []StructDeclarator{first}
	for {
		if !s.punctuation(",") {
			return list, true
		}
		next, ok := s.parseStructDeclarator()
		if !ok {
			s.reset(start)
			return nil, false
		}
		list = append(list, next)
	}
}

// parseStructDeclarator parses an optional declarator, an optional
// ":" bitfield-constant-expression, requiring at least one of the two.
func (s *scanner) parseStructDeclarator() (StructDeclarator, bool) {
	start := s.mark()
	decl, hasDecl := s.parseDeclarator(nil)

	var bitfield Expression
	hasBitfield := false
	if s.punctuation(":") {
		e, ok := s.parseConstExpr()
		if !ok {
			s.reset(start)
			return StructDeclarator{}, false
		}
		bitfield = e
		hasBitfield = true
	}

	if !hasDecl && !hasBitfield {
		s.reset(start)
		return StructDeclarator{}, false
	}

	out := StructDeclarator{Bitfield: bitfield}
	if hasDecl {
		out.Declarator = decl
	}
	return out, true
}
