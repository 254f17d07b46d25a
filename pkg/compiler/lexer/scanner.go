package lexer

// Scanner performs lexical analysis on Monkey source.
type Scanner struct {
	source    string
	cursor    int
	line      int
	lineStart int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
	}
}

// Reset re-initializes the scanner with new source for pool reuse.
func (s *Scanner) Reset(source string) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
}

// Next returns the next token from the source. Once the input is exhausted
// every further call returns a KindEOF token.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	if s.cursor >= len(s.source) {
		return s.token(KindEOF, s.cursor, s.cursor)
	}

	start := s.cursor
	ch := s.source[s.cursor]

	if isLetter(ch) {
		return s.scanIdentifier()
	}
	if isDigit(ch) {
		return s.scanNumber()
	}

	// Two-character operators
	if s.peek() == '=' {
		switch ch {
		case '=':
			s.cursor += 2
			return s.token(KindEQ, start, s.cursor)
		case '!':
			s.cursor += 2
			return s.token(KindNotEQ, start, s.cursor)
		}
	}

	s.cursor++
	kind := KindIllegal
	switch ch {
	case '=':
		kind = KindAssign
	case '+':
		kind = KindPlus
	case '-':
		kind = KindMinus
	case '!':
		kind = KindBang
	case '*':
		kind = KindAsterisk
	case '/':
		kind = KindSlash
	case '<':
		kind = KindLT
	case '>':
		kind = KindGT
	case ',':
		kind = KindComma
	case ';':
		kind = KindSemicolon
	case '(':
		kind = KindLParen
	case ')':
		kind = KindRParen
	case '{':
		kind = KindLBrace
	case '}':
		kind = KindRBrace
	}

	return s.token(kind, start, s.cursor)
}

// Collect scans src up to and including the first EOF token.
func Collect(src string) []Token {
	s := NewScanner(src)
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

func (s *Scanner) token(kind Kind, start, end int) Token {
	return Token{
		Kind:    kind,
		Literal: s.source[start:end],
		Offset:  uint32(start),
		Line:    uint32(s.line),
		Column:  uint32(start - s.lineStart + 1),
	}
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if ch == ' ' || ch == '\t' || ch == '\r' {
			s.cursor++
		} else if ch == '\n' {
			s.cursor++
			s.line++
			s.lineStart = s.cursor
		} else {
			break
		}
	}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isLetter(s.source[s.cursor]) || isDigit(s.source[s.cursor])) {
		s.cursor++
	}
	return s.token(LookupIdent(s.source[start:s.cursor]), start, s.cursor)
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && isDigit(s.source[s.cursor]) {
		s.cursor++
	}
	return s.token(KindInt, start, s.cursor)
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
