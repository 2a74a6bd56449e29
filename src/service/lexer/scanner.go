// Package lexer turns C and C++ source buffers into raw tokens. It does not
// preprocess: directives come out as a hash followed by ordinary tokens, and
// comments are kept as tokens of their own.
package lexer

import (
	"bytes"

	"srcmetrics/src/model"
)

// Scanner performs lexical analysis on a single source buffer.
type Scanner struct {
	file      string
	source    []byte
	cursor    int
	line      int
	lineStart int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(file string, source []byte) *Scanner {
	s := &Scanner{}
	s.Reset(file, source)
	return s
}

// Reset re-initializes the scanner with new source.
func (s *Scanner) Reset(file string, source []byte) {
	s.file = file
	s.source = source
	s.cursor = 0
	s.line = 1
	s.lineStart = 0
}

// Next returns the next token. Once the buffer is exhausted every call
// returns a KindEOF token.
func (s *Scanner) Next() Token {
	s.skipWhitespace()

	start := s.cursor
	pos := s.position(start)
	if s.cursor >= len(s.source) {
		return Token{Kind: KindEOF, Pos: pos}
	}

	kind := s.scan()
	return Token{Kind: kind, Text: string(s.source[start:s.cursor]), Pos: pos}
}

func (s *Scanner) scan() Kind {
	ch := s.source[s.cursor]
	next := s.peek(1)

	switch {
	case ch == '/' && next == '/':
		s.skipLineComment()
		return KindComment
	case ch == '/' && next == '*':
		s.skipBlockComment()
		return KindComment
	case isDigit(ch) || (ch == '.' && isDigit(next)):
		s.scanNumber()
		return KindNumericConstant
	case ch == '"':
		s.scanQuoted('"')
		return KindStringLiteral
	case ch == '\'':
		s.scanQuoted('\'')
		return KindCharConstant
	case isIdentStart(ch):
		return s.scanIdentifierOrPrefixedLiteral()
	}

	for _, p := range punctuators {
		if bytes.HasPrefix(s.source[s.cursor:], p.text) {
			s.advance(len(p.text))
			return p.kind
		}
	}

	s.advance(1)
	return KindUnknown
}

func (s *Scanner) skipWhitespace() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' || ch == '\v' || ch == '\f':
			s.advance(1)
		case ch == '\\' && s.peek(1) == '\n':
			s.advance(2)
		case ch == '\\' && s.peek(1) == '\r' && s.peek(2) == '\n':
			s.advance(3)
		default:
			return
		}
	}
}

// skipLineComment stops before the newline that ends the comment. A
// backslash-newline splice continues the comment onto the next line.
func (s *Scanner) skipLineComment() {
	for s.cursor < len(s.source) {
		switch ch := s.source[s.cursor]; {
		case ch == '\\' && s.peek(1) == '\n':
			s.advance(2)
		case ch == '\\' && s.peek(1) == '\r' && s.peek(2) == '\n':
			s.advance(3)
		case ch == '\n':
			return
		default:
			s.advance(1)
		}
	}
}

func (s *Scanner) skipBlockComment() {
	s.advance(2) // Skip '/*'
	for s.cursor < len(s.source) {
		if s.source[s.cursor] == '*' && s.peek(1) == '/' {
			s.advance(2)
			return
		}
		s.advance(1)
	}
}

// scanNumber consumes a preprocessing number: digits, letters, periods,
// digit separators and signed exponents.
func (s *Scanner) scanNumber() {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		next := s.peek(1)
		switch {
		case (ch == 'e' || ch == 'E' || ch == 'p' || ch == 'P') && (next == '+' || next == '-'):
			s.advance(2)
		case isIdentChar(ch) || ch == '.':
			s.advance(1)
		case ch == '\'' && isIdentChar(next):
			s.advance(2)
		default:
			return
		}
	}
}

// scanQuoted consumes a string or character literal. An unterminated
// literal ends at the end of its line.
func (s *Scanner) scanQuoted(quote byte) {
	s.advance(1) // Skip opening quote
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		switch {
		case ch == '\\' && s.cursor+1 < len(s.source):
			s.advance(2)
		case ch == quote:
			s.advance(1)
			return
		case ch == '\n':
			return
		default:
			s.advance(1)
		}
	}
}

// scanRawString consumes R"delim(...)delim" starting at the opening quote.
func (s *Scanner) scanRawString() {
	open := bytes.IndexByte(s.source[s.cursor:], '(')
	if open < 0 || open > 17 {
		s.scanQuoted('"')
		return
	}
	delim := s.source[s.cursor+1 : s.cursor+open]
	closing := append(append([]byte{')'}, delim...), '"')

	end := bytes.Index(s.source[s.cursor+open:], closing)
	if end < 0 {
		s.advance(len(s.source) - s.cursor)
		return
	}
	s.advance(open + end + len(closing))
}

func (s *Scanner) scanIdentifierOrPrefixedLiteral() Kind {
	start := s.cursor
	for s.cursor < len(s.source) && isIdentChar(s.source[s.cursor]) {
		s.advance(1)
	}

	if s.cursor >= len(s.source) {
		return KindRawIdentifier
	}

	prefix := string(s.source[start:s.cursor])
	switch s.source[s.cursor] {
	case '"':
		if _, ok := rawStringPrefixes[prefix]; ok {
			s.scanRawString()
			return KindStringLiteral
		}
		if _, ok := encodingPrefixes[prefix]; ok {
			s.scanQuoted('"')
			return KindStringLiteral
		}
	case '\'':
		if _, ok := encodingPrefixes[prefix]; ok {
			s.scanQuoted('\'')
			return KindCharConstant
		}
	}

	return KindRawIdentifier
}

func (s *Scanner) advance(n int) {
	for i := 0; i < n && s.cursor < len(s.source); i++ {
		if s.source[s.cursor] == '\n' {
			s.line++
			s.lineStart = s.cursor + 1
		}
		s.cursor++
	}
}

func (s *Scanner) peek(n int) byte {
	if s.cursor+n >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+n]
}

func (s *Scanner) position(offset int) model.Position {
	return model.Position{
		File:   s.file,
		Offset: offset,
		Line:   s.line,
		Column: offset - s.lineStart + 1,
	}
}

var encodingPrefixes = map[string]struct{}{
	"L": {}, "u": {}, "U": {}, "u8": {},
}

var rawStringPrefixes = map[string]struct{}{
	"R": {}, "LR": {}, "uR": {}, "UR": {}, "u8R": {},
}

// punctuators is ordered longest first so the first prefix match wins.
var punctuators = []struct {
	text []byte
	kind Kind
}{
	{[]byte("<<="), KindLessLessEqual},
	{[]byte(">>="), KindGreaterGreaterEqual},
	{[]byte("<=>"), KindSpaceship},
	{[]byte("..."), KindEllipsis},
	{[]byte("->*"), KindArrowStar},
	{[]byte("::"), KindColonColon},
	{[]byte("->"), KindArrow},
	{[]byte("++"), KindPlusPlus},
	{[]byte("--"), KindMinusMinus},
	{[]byte("&&"), KindAmpAmp},
	{[]byte("||"), KindPipePipe},
	{[]byte("<<"), KindLessLess},
	{[]byte(">>"), KindGreaterGreater},
	{[]byte("<="), KindLessEqual},
	{[]byte(">="), KindGreaterEqual},
	{[]byte("=="), KindEqualEqual},
	{[]byte("!="), KindExclaimEqual},
	{[]byte("+="), KindPlusEqual},
	{[]byte("-="), KindMinusEqual},
	{[]byte("*="), KindStarEqual},
	{[]byte("/="), KindSlashEqual},
	{[]byte("%="), KindPercentEqual},
	{[]byte("&="), KindAmpEqual},
	{[]byte("|="), KindPipeEqual},
	{[]byte("^="), KindCaretEqual},
	{[]byte("##"), KindHashHash},
	{[]byte(".*"), KindPeriodStar},
	{[]byte("["), KindLSquare},
	{[]byte("]"), KindRSquare},
	{[]byte("("), KindLParen},
	{[]byte(")"), KindRParen},
	{[]byte("{"), KindLBrace},
	{[]byte("}"), KindRBrace},
	{[]byte("."), KindPeriod},
	{[]byte("&"), KindAmp},
	{[]byte("*"), KindStar},
	{[]byte("+"), KindPlus},
	{[]byte("-"), KindMinus},
	{[]byte("~"), KindTilde},
	{[]byte("!"), KindExclaim},
	{[]byte("/"), KindSlash},
	{[]byte("%"), KindPercent},
	{[]byte("<"), KindLess},
	{[]byte(">"), KindGreater},
	{[]byte("^"), KindCaret},
	{[]byte("|"), KindPipe},
	{[]byte("?"), KindQuestion},
	{[]byte(":"), KindColon},
	{[]byte(";"), KindSemi},
	{[]byte("="), KindEqual},
	{[]byte(","), KindComma},
	{[]byte("#"), KindHash},
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '$' || ch >= 0x80
}

func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
