package cparse

import "testing"

func TestScannerPeekAdvance(t *testing.T) {
	s := newScanner([]byte("ab"))
	b, ok := s.peek()
	if !ok || b != 'a' {
		t.Fatalf("peek() = %q, %v", b, ok)
	}
	if s.pos != 0 {
		t.Fatalf("peek must not advance, pos = %d", s.pos)
	}
	b, ok = s.advance()
	if !ok || b != 'a' || s.pos != 1 {
		t.Fatalf("advance() = %q, %v, pos=%d", b, ok, s.pos)
	}
	s.advance()
	if _, ok := s.peek(); ok {
		t.Fatalf("peek at end should fail")
	}
	if _, ok := s.advance(); ok {
		t.Fatalf("advance at end should fail")
	}
}

func TestMatchLiteralRestoresOnFailure(t *testing.T) {
	s := newScanner([]byte("foobar"))
	if s.matchLiteral("foz") {
		t.Fatalf("matchLiteral should have failed")
	}
	if s.pos != 0 {
		t.Fatalf("cursor must be restored on mismatch, pos = %d", s.pos)
	}
	if !s.matchLiteral("foo") {
		t.Fatalf("matchLiteral(foo) should succeed")
	}
	if s.pos != 3 {
		t.Fatalf("cursor should advance past consumed literal, pos = %d", s.pos)
	}
}

func TestSkipWhitespace(t *testing.T) {
	s := newScanner([]byte("   \t\nx"))
	n := s.skipWhitespace()
	if n != 5 {
		t.Fatalf("skipWhitespace consumed %d bytes, want 5", n)
	}
	b, _ := s.peek()
	if b != 'x' {
		t.Fatalf("expected to stop at 'x', got %q", b)
	}
}

func TestDecimalNatOverflow(t *testing.T) {
	s := newScanner([]byte("99999999999999999999999"))
	if _, _, ok := s.decimalNat(); ok {
		t.Fatalf("decimalNat should fail on overflow")
	}
	if s.pos != 0 {
		t.Fatalf("cursor must be restored on overflow, pos = %d", s.pos)
	}
}

func TestDecimalNatValue(t *testing.T) {
	s := newScanner([]byte("12345 rest"))
	v, lexeme, ok := s.decimalNat()
	if !ok || v != 12345 || string(lexeme) != "12345" {
		t.Fatalf("decimalNat() = %d, %q, %v", v, lexeme, ok)
	}
}

// constant skips leading whitespace the way identifier and punctuation do,
// and restores the cursor in full when no digits follow.
func TestConstantSkipsWhitespace(t *testing.T) {
	s := newScanner([]byte("  42"))
	v, _, ok := s.constant()
	if !ok || v != 42 {
		t.Fatalf("constant() = %d, %v, want 42, true", v, ok)
	}

	s = newScanner([]byte("  x"))
	if _, _, ok := s.constant(); ok {
		t.Fatalf("constant() should fail on a non-digit")
	}
	if s.pos != 0 {
		t.Fatalf("cursor must be restored before the skipped whitespace, pos = %d", s.pos)
	}
}

// A reserved word is never accepted as an identifier, and a keyword match
// never swallows a longer identifier that merely starts with it.
func TestKeywordIdentifierDisjointness(t *testing.T) {
	for _, kw := range keywords {
		s := newScanner([]byte(kw))
		if _, ok := s.identifier(); ok {
			t.Errorf("identifier() accepted reserved keyword %q", kw)
		}
	}

	s := newScanner([]byte("inline"))
	if !s.keyword("inline") {
		t.Fatalf("keyword(inline) should match exactly")
	}

	s = newScanner([]byte("inlined"))
	if s.keyword("inline") {
		t.Fatalf("keyword(inline) must not swallow 'inlined'")
	}
	if s.pos != 0 {
		t.Fatalf("cursor must be restored, pos = %d", s.pos)
	}

	s = newScanner([]byte("inlined"))
	name, ok := s.identifier()
	if !ok || string(name) != "inlined" {
		t.Fatalf("identifier() = %q, %v, want \"inlined\", true", name, ok)
	}
}

func TestLongestMatchPunctuation(t *testing.T) {
	cases := []struct {
		input string
		short string
		long  string
	}{
		{"<<=", "<<", "<<="},
		{"<<", "<", "<<"},
		{"->", "-", "->"},
	}
	for _, tt := range cases {
		s := newScanner([]byte(tt.input))
		if s.punctuation(tt.short) {
			t.Errorf("punctuation(%q) on input %q should fail; longer match %q exists", tt.short, tt.input, tt.long)
		}
		s = newScanner([]byte(tt.input))
		if !s.punctuation(tt.long) {
			t.Errorf("punctuation(%q) on input %q should succeed", tt.long, tt.input)
		}
	}
}
