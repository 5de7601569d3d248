// Package cparse implements a handwritten, predictive recursive-descent
// parser for a substantial subset of C99 (aligned with the N1256 draft).
//
// Given a flat byte buffer holding already-preprocessed source text, it
// produces an in-memory abstract syntax tree for a translation unit (or any
// of the smaller grammar entry points below), or reports that the input
// could not be parsed. The parser does no semantic analysis: every
// identifier is treated uniformly, so `T * x;` always parses as a binary
// multiplication expression, never as a pointer declaration, unless `T` is
// independently recognized as a primitive/enum/struct/union type.
package cparse

// ----------------------------------------------------------------------------
// Entry points
//
// These four functions are the only way to drive the parser from outside
// this package. Each takes the whole input as a byte slice and must consume
// all of it (trailing whitespace aside): a trailing garbage byte after an
// otherwise well-formed item is a failure, never a silently accepted
// prefix.

// atCleanEnd reports whether only whitespace remains before end of input.
func (s *scanner) atCleanEnd() bool {
	s.skipWhitespace()
	return s.atEnd()
}

// ParseExpression parses a single C expression (comma operator included).
func ParseExpression(input []byte) (Expression, error) {
	s := newScanner(input)
	expr, ok := s.parseExpr()
	if !ok || !s.atCleanEnd() {
		return nil, errParse("expression")
	}
	return expr, nil
}

// ParseStatement parses a single C statement.
func ParseStatement(input []byte) (Statement, error) {
	s := newScanner(input)
	stmt, ok := s.parseStatement()
	if !ok || !s.atCleanEnd() {
		return nil, errParse("statement")
	}
	return stmt, nil
}

// ParseDeclaration parses a single declaration (specifiers, init-declarator
// list, trailing semicolon).
func ParseDeclaration(input []byte) (*Declaration, error) {
	s := newScanner(input)
	decl, ok := s.parseDeclaration()
	if !ok || !s.atCleanEnd() {
		return nil, errParse("declaration")
	}
	return decl, nil
}

// ParseTranslationUnit parses a full translation unit: a non-empty sequence
// of function definitions and declarations.
func ParseTranslationUnit(input []byte) (TranslationUnit, error) {
	s := newScanner(input)
	unit, ok := s.parseTranslationUnit()
	if !ok {
		return nil, errParse("translation unit")
	}
	if !s.atCleanEnd() {
		return nil, errParse("translation unit: trailing input after last external declaration")
	}
	return unit, nil
}
