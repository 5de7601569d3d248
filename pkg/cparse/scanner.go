package cparse

// ----------------------------------------------------------------------------
// Scanner primitives
//
// scanner carries the entire observable state of a parse: a cursor into an
// immutable input buffer. Every production records s.pos on entry and
// restores it on failure; nothing else needs saving, which is what makes
// unbounded speculative lookahead cheap.
type scanner struct {
	input []byte
	pos   int
}

func newScanner(input []byte) *scanner {
	return &scanner{input: input}
}

// mark and reset are the save/restore pair every non-trivial production
// brackets its alternatives with.
func (s *scanner) mark() int     { return s.pos }
func (s *scanner) reset(pos int) { s.pos = pos }
func (s *scanner) atEnd() bool   { return s.pos >= len(s.input) }

// peek returns the next byte without advancing; ok is false at end of input.
func (s *scanner) peek() (b byte, ok bool) {
	if s.atEnd() {
		return 0, false
	}
	return s.input[s.pos], true
}

// advance returns and consumes the next byte; ok is false at end of input.
func (s *scanner) advance() (b byte, ok bool) {
	if s.atEnd() {
		return 0, false
	}
	b = s.input[s.pos]
	s.pos++
	return b, true
}

// matchByte consumes c if it is next; otherwise the cursor is untouched.
func (s *scanner) matchByte(c byte) bool {
	b, ok := s.peek()
	if !ok || b != c {
		return false
	}
	s.pos++
	return true
}

// matchLiteral consumes the exact byte sequence lit, restoring the cursor on
// any mismatch.
func (s *scanner) matchLiteral(lit string) bool {
	start := s.mark()
	for i := 0; i < len(lit); i++ {
		if !s.matchByte(lit[i]) {
			s.reset(start)
			return false
		}
	}
	return true
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' }

// skipWhitespace consumes a maximal run of space/tab/newline (and the other
// ASCII whitespace bytes); callers that tolerate zero-width whitespace
// ignore the returned count.
func (s *scanner) skipWhitespace() int {
	n := 0
	for {
		b, ok := s.peek()
		if !ok || !isSpace(b) {
			return n
		}
		s.pos++
		n++
	}
}

// isLetter reports ASCII A-Z, a-z or underscore.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}

// isDigit reports ASCII 0-9.
func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetterOrDigit(b byte) bool { return isLetter(b) || isDigit(b) }

// identRaw matches letter (letter|digit)* with no whitespace skip and no
// keyword check, returning a borrowed slice of the input.
func (s *scanner) identRaw() ([]byte, bool) {
	start := s.mark()
	b, ok := s.peek()
	if !ok || !isLetter(b) {
		return nil, false
	}
	s.pos++
	for {
		b, ok := s.peek()
		if !ok || !isLetterOrDigit(b) {
			break
		}
		s.pos++
	}
	return s.input[start:s.pos], true
}

// decimalNat matches a non-empty run of decimal digits and accumulates it
// into a uint64 with a range check before each multiply-add. Overflow is a
// hard failure for the production, not a silent wrap.
func (s *scanner) decimalNat() (value uint64, lexeme []byte, ok bool) {
	start := s.mark()
	b, peeked := s.peek()
	if !peeked || !isDigit(b) {
		return 0, nil, false
	}
	var v uint64
	for {
		b, peeked := s.peek()
		if !peeked || !isDigit(b) {
			break
		}
		digit := uint64(b - '0')
		const maxU64 = ^uint64(0)
		if v > (maxU64-digit)/10 {
			s.reset(start)
			return 0, nil, false
		}
		v = v*10 + digit
		s.pos++
	}
	return v, s.input[start:s.pos], true
}

// ----------------------------------------------------------------------------
// Frozen tables

// keywords is the reserved word set; identifiers equal to any of these are
// rejected by the identifier recognizer.
var keywords = []string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Bool", "_Complex", "_Imaginary",
}

// punctuators is the longest-match table; order is part of the contract
// ("<<=" must be tried before "<<" before "<"). The second "&" entry is
// unreachable and stays put so the table indexes remain stable.
var punctuators = []string{
	"%:%:", "%:", "%>", "<%", ":>", "<:", "##", "#", ",", "|=", "^=", "&=",
	">>=", "<<=", "-=", "+=",
	"%=", "/=", "*=", "==", "=", "...", ";", ":", "?", "||", "&&", "|", "^",
	"!=", "<=", ">=", "<<", ">>",
	"<", ">", "&", "/", "!", "~", "->", "--", "++", "-", "+", "*", "%", "&",
	".", "{", "}", "(", ")", "[", "]",
}

// primitiveKeywords is index-aligned with the bit order of PrimitiveTypeSet
// up through PrimComplex; both "long" entries are handled specially by
// mergePrimitive.
var primitiveKeywords = []string{
	"void", "char", "short", "int", "long", "long", "float", "double",
	"signed", "unsigned", "_Bool", "_Complex",
}

var primitiveBits = []PrimitiveTypeSet{
	PrimVoid, PrimChar, PrimShort, PrimInt, PrimLong, PrimLong, PrimFloat,
	PrimDouble, PrimSigned, PrimUnsigned, PrimBool, PrimComplex,
}

// ----------------------------------------------------------------------------
// Keyword / identifier / punctuation recognizers

func isReservedKeyword(word []byte) bool {
	for _, k := range keywords {
		if string(word) == k {
			return true
		}
	}
	return false
}

// keyword matches k as a whole word: skip whitespace, match the literal,
// then require end-of-input or a non-letter-non-digit boundary so "inline"
// does not swallow "inlined". On any failure the cursor is restored to the
// position before whitespace skipping.
func (s *scanner) keyword(k string) bool {
	start := s.mark()
	s.skipWhitespace()
	if !s.matchLiteral(k) {
		s.reset(start)
		return false
	}
	if b, ok := s.peek(); ok && isLetterOrDigit(b) {
		s.reset(start)
		return false
	}
	return true
}

// constant skips whitespace and reads a decimal integer constant via
// decimalNat. On failure the cursor is restored to the position before
// whitespace skipping, like the other token recognizers.
func (s *scanner) constant() (value uint64, lexeme []byte, ok bool) {
	start := s.mark()
	s.skipWhitespace()
	v, lex, ok := s.decimalNat()
	if !ok {
		s.reset(start)
		return 0, nil, false
	}
	return v, lex, true
}

// identifier skips whitespace, reads identRaw, and fails (restoring the
// cursor) if the slice is a reserved keyword.
func (s *scanner) identifier() ([]byte, bool) {
	start := s.mark()
	s.skipWhitespace()
	name, ok := s.identRaw()
	if !ok || isReservedKeyword(name) {
		s.reset(start)
		return nil, false
	}
	return name, true
}

// punctuation skips whitespace, then tries each punctuator table entry in
// the fixed order, succeeding only if the longest matching entry equals p.
// Matching any other entry first is a failure for this call, with the
// cursor restored.
func (s *scanner) punctuation(p string) bool {
	start := s.mark()
	s.skipWhitespace()
	for _, cand := range punctuators {
		if s.matchLiteral(cand) {
			if cand == p {
				return true
			}
			s.reset(start)
			return false
		}
	}
	s.reset(start)
	return false
}
