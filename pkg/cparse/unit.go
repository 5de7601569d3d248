package cparse

// ----------------------------------------------------------------------------
// Declarations, function definitions, and translation units.

// parseDeclaration parses declaration-specifiers, a non-empty
// init-declarator list, and a trailing ";". A bare "int;" with no
// declarator is not a declaration.
func (s *scanner) parseDeclaration() (*Declaration, bool) {
	start := s.mark()
	specs, ok := s.parseDeclarationSpecifiers()
	if !ok {
		s.reset(start)
		return nil, false
	}
	decls, ok := s.parseInitDeclaratorList()
	if !ok || !s.punctuation(";") {
		s.reset(start)
		return nil, false
	}
	return &Declaration{Specs: specs, InitDeclarators: decls}, true
}

// parseInitDeclaratorList parses a comma-separated, non-empty sequence of
// init-declarators. The "," commits to another declarator: "int x, ;"
// fails the whole list.
func (s *scanner) parseInitDeclaratorList() ([]InitDeclarator, bool) {
	start := s.mark()
	first, ok := s.parseInitDeclarator()
	if !ok {
		s.reset(start)
		return nil, false
	}
	list := []InitDeclarator{first}
	for {
		if !s.punctuation(",") {
			return list, true
		}
		next, ok := s.parseInitDeclarator()
		if !ok {
			s.reset(start)
			return nil, false
		}
		list = append(list, next)
	}
}

// parseInitDeclarator parses a concrete (non-abstract) declarator with an
// optional "= initializer". A "=" whose initializer
// does not parse is tolerated: the declarator stands without one and the
// caller's ";" check decides the outcome.
func (s *scanner) parseInitDeclarator() (InitDeclarator, bool) {
	start := s.mark()
	decl, ok := s.parseDeclarator(nil)
	if !ok || IsAbstract(decl) {
		s.reset(start)
		return InitDeclarator{}, false
	}
	var init Initializer
	if s.punctuation("=") {
		if v, ok := s.parseInitializer(); ok {
			init = v
		}
	}
	return InitDeclarator{Declarator: decl, Init: init}, true
}

// parseFunctionDef parses declaration-specifiers, a concrete declarator, an
// optional K&R declaration list, and a compound-statement body.
func (s *scanner) parseFunctionDef() (*FunctionDef, bool) {
	start := s.mark()
	specs, ok := s.parseDeclarationSpecifiers()
	if !ok {
		s.reset(start)
		return nil, false
	}
	decl, ok := s.parseDeclarator(nil)
	if !ok || IsAbstract(decl) {
		s.reset(start)
		return nil, false
	}

	var krDecls []Declaration
	for {
		d, ok := s.parseDeclaration()
		if !ok {
			break
		}
		krDecls = append(krDecls, *d)
	}

	body, ok := s.parseCompoundStatementBlock()
	if !ok {
		s.reset(start)
		return nil, false
	}

	return &FunctionDef{Specs: specs, Declarator: decl, KRDecls: krDecls, Body: body}, true
}

// parseExternalDecl tries a function-definition first, then a declaration.
func (s *scanner) parseExternalDecl() (ExternalDecl, bool) {
	if fn, ok := s.parseFunctionDef(); ok {
		return fn, true
	}
	if decl, ok := s.parseDeclaration(); ok {
		return decl, true
	}
	return nil, false
}

// parseTranslationUnit parses a non-empty sequence of external
// declarations. It does not itself check for trailing input: callers
// (ParseTranslationUnit) are responsible for rejecting a non-empty
// remainder after the last item.
func (s *scanner) parseTranslationUnit() (TranslationUnit, bool) {
	var unit TranslationUnit
	for {
		decl, ok := s.parseExternalDecl()
		if !ok {
			break
		}
		unit = append(unit, decl)
	}
	if len(unit) == 0 {
		return nil, false
	}
	return unit, true
}
