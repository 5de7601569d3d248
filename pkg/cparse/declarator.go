package cparse

// ----------------------------------------------------------------------------
// Declarators, parameter lists, and type-names.
//
// The engine takes a continuation argument prev representing the declarator
// built so far. With prev == nil the prefix cases (pointer, identifier)
// apply; the suffix cases (array, function, parenthesized declarator) apply
// regardless. An array or function suffix with no prefix underneath it is
// exactly how abstract declarators like "int[4]" or "int (*)(void)" arise.
// When nothing more matches, prev is the result; with no prefix matched and
// no prev, the production fails.

// parseDeclarator parses a (possibly abstract) declarator, continuing from
// prev. Concreteness is not enforced here; callers that require a concrete
// declarator (init-declarator, function definition) or an abstract one
// (type-name) check IsAbstract themselves.
func (s *scanner) parseDeclarator(prev *Declarator) (*Declarator, bool) {
	start := s.mark()

	if prev == nil {
		if s.punctuation("*") {
			quals := s.parseTypeQualifierSet()
			inner, _ := s.parseDeclarator(nil)
			node := &Declarator{Kind: DeclaratorPointer, PointerQualifiers: quals, Inner: inner}
			d, ok := s.parseDeclarator(node)
			if !ok {
				s.reset(start)
				return nil, false
			}
			return d, true
		}

		if name, ok := s.identifier(); ok {
			node := &Declarator{Kind: DeclaratorIdentifier, Name: name}
			d, ok := s.parseDeclarator(node)
			if !ok {
				s.reset(start)
				return nil, false
			}
			return d, true
		}
	}

	if s.punctuation("[") {
		node, ok := s.parseArrayInterior(prev)
		if !ok {
			s.reset(start)
			return nil, false
		}
		d, ok := s.parseDeclarator(node)
		if !ok {
			s.reset(start)
			return nil, false
		}
		return d, true
	}

	if s.punctuation("(") {
		// A parenthesized declarator is tried before the function suffix;
		// when it matches, the chain continues from it.
		if inner, ok := s.parseDeclarator(nil); ok {
			if !s.punctuation(")") {
				s.reset(start)
				return nil, false
			}
			d, ok := s.parseDeclarator(inner)
			if !ok {
				s.reset(start)
				return nil, false
			}
			return d, true
		}

		params, _ := s.parseParamList()

		ellipsis := false
		if s.punctuation(",") {
			if !s.punctuation("...") {
				s.reset(start)
				return nil, false
			}
			ellipsis = true
		}

		if !s.punctuation(")") {
			s.reset(start)
			return nil, false
		}

		node := &Declarator{
			Kind:        DeclaratorFunction,
			Inner:       prev,
			HasEllipsis: ellipsis,
			Params:      params,
		}
		d, ok := s.parseDeclarator(node)
		if !ok {
			s.reset(start)
			return nil, false
		}
		return d, true
	}

	if prev != nil {
		return prev, true
	}
	return nil, false
}

// parseArrayInterior parses the order-sensitive interior of "[...]" after
// the opening bracket has been consumed: an optional leading "static", an
// optional type-qualifier list, an optional trailing "static" (only if no
// leading one), an optional "*" VLA marker (only if no "static" at all), an
// optional assignment-expression size, then "]". A "*" that matched
// commits to the VLA form; "[*p]" is a failure, not a size expression.
func (s *scanner) parseArrayInterior(prev *Declarator) (*Declarator, bool) {
	isStatic := s.keyword("static")
	quals := s.parseTypeQualifierSet()
	if !isStatic && s.keyword("static") {
		isStatic = true
	}

	isVLA := false
	var size Expression
	if !isStatic && s.punctuation("*") {
		isVLA = true
	} else {
		if e, ok := s.parseAssignExpr(); ok {
			size = e
		}
	}

	if !s.punctuation("]") {
		return nil, false
	}

	return &Declarator{
		Kind:            DeclaratorArray,
		Inner:           prev,
		ArrayStatic:     isStatic,
		ArrayVarLen:     isVLA,
		ArrayQualifiers: quals,
		ArraySize:       size,
	}, true
}

// parseTypeQualifierSet greedily consumes zero or more type-qualifier
// keywords and ORs their bits together; it always succeeds (with a possibly
// empty set), matching the "qualifier*" shape used inside pointer and array
// declarator productions.
func (s *scanner) parseTypeQualifierSet() TypeQualifierSet {
	var quals TypeQualifierSet
	for {
		bit, ok := s.tryTypeQualifier()
		if !ok {
			return quals
		}
		quals |= bit
	}
}

// parseParamList parses a comma-separated sequence of parameter
// declarations (each declaration-specifiers plus an optional, possibly
// abstract, declarator). The separating "," is tentative here, unlike the
// argument-list comma: a "," not followed by another parameter is left
// unconsumed for the function suffix's ", ..." tail.
func (s *scanner) parseParamList() ([]Parameter, bool) {
	first, ok := s.parseParameter()
	if !ok {
		return nil, false
	}
	params := []Parameter{first}
	for {
		save := s.mark()
		if !s.punctuation(",") {
			return params, true
		}
		next, ok := s.parseParameter()
		if !ok {
			s.reset(save)
			return params, true
		}
		params = append(params, next)
	}
}

func (s *scanner) parseParameter() (Parameter, bool) {
	start := s.mark()
	specs, ok := s.parseDeclarationSpecifiers()
	if !ok {
		s.reset(start)
		return Parameter{}, false
	}
	decl, _ := s.parseDeclarator(nil)
	return Parameter{Specs: specs, Declarator: decl}, true
}

// parseTypeName parses a specifier-qualifier-list followed by an optional
// declarator, which must be abstract.
func (s *scanner) parseTypeName() (TypeName, bool) {
	start := s.mark()
	specs, ok := s.parseSpecifierQualifierList()
	if !ok {
		s.reset(start)
		return TypeName{}, false
	}
	decl, hasDecl := s.parseDeclarator(nil)
	if hasDecl && !IsAbstract(decl) {
		s.reset(start)
		return TypeName{}, false
	}
	tn := TypeName{Specs: specs}
	if hasDecl {
		tn.Declarator = decl
	}
	return tn, true
}
