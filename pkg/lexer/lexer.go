package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrLex is wrapped by every lexical error.
var ErrLex = errors.New("lex error")

// Error reports a lexical failure at a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *Error) Unwrap() error { return ErrLex }

// Scanner produces tokens from source text. Scanning stops at the first error.
type Scanner struct {
	src   string
	start int // start offset of the current lexeme
	pos   int // offset of the next unread byte
	line  int

	litBuf strings.Builder
}

// NewScanner creates a scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src, line: 1}
}

// Scan tokenizes the whole source. The returned slice always ends with EOF
// when err is nil.
func Scan(src string) ([]Token, error) {
	s := NewScanner(src)
	var tokens []Token
	for {
		tok, err := s.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

// Next returns the next token.
func (s *Scanner) Next() (Token, error) {
	if err := s.skipTrivia(); err != nil {
		return Token{}, err
	}
	s.start = s.pos
	if s.atEnd() {
		return Token{Kind: EOF, Line: s.line}, nil
	}

	ch := s.peekRune()
	switch {
	case isLetter(ch):
		return s.scanIdent(), nil
	case isDigit(ch):
		return s.scanNumber()
	case ch == '"':
		return s.scanString()
	}

	s.advance()
	switch ch {
	case '(':
		return s.make(LeftParen), nil
	case ')':
		return s.make(RightParen), nil
	case '[':
		return s.make(LeftBracket), nil
	case ']':
		return s.make(RightBracket), nil
	case '{':
		return s.make(LeftBrace), nil
	case '}':
		return s.make(RightBrace), nil
	case ',':
		return s.make(Comma), nil
	case '.':
		return s.make(Dot), nil
	case ';':
		return s.make(Semicolon), nil
	case '+':
		return s.makeEither('=', PlusEqual, Plus), nil
	case '-':
		return s.makeEither('=', MinusEqual, Minus), nil
	case '*':
		return s.makeEither('=', StarEqual, Star), nil
	case '/':
		return s.makeEither('=', SlashEqual, Slash), nil
	case '!':
		return s.makeEither('=', BangEqual, Bang), nil
	case '=':
		return s.makeEither('=', EqualEqual, Equal), nil
	case '<':
		return s.makeEither('=', LessEqual, Less), nil
	case '>':
		return s.makeEither('=', GreaterEqual, Greater), nil
	case '|':
		if s.match('>') {
			return s.make(Pipe), nil
		}
		return Token{}, s.errorf("unexpected character '|' (did you mean '|>'?)")
	}
	return Token{}, s.errorf("unexpected character %q", ch)
}

func (s *Scanner) make(kind Kind) Token {
	return Token{Kind: kind, Lexeme: s.src[s.start:s.pos], Line: s.line}
}

func (s *Scanner) makeEither(next byte, matched, plain Kind) Token {
	if s.match(next) {
		return s.make(matched)
	}
	return s.make(plain)
}

// skipTrivia skips whitespace and comments.
func (s *Scanner) skipTrivia() error {
	for !s.atEnd() {
		switch c := s.src[s.pos]; c {
		case ' ', '\t', '\r':
			s.pos++
		case '\n':
			s.line++
			s.pos++
		case '/':
			if s.peekAt(1) == '/' {
				for !s.atEnd() && s.src[s.pos] != '\n' {
					s.pos++
				}
				continue
			}
			if s.peekAt(1) == '*' {
				if err := s.skipBlockComment(); err != nil {
					return err
				}
				continue
			}
			return nil
		default:
			return nil
		}
	}
	return nil
}

func (s *Scanner) skipBlockComment() error {
	startLine := s.line
	s.pos += 2
	for !s.atEnd() {
		if s.src[s.pos] == '*' && s.peekAt(1) == '/' {
			s.pos += 2
			return nil
		}
		if s.src[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	return &Error{Line: startLine, Message: "unterminated block comment"}
}

func (s *Scanner) scanIdent() Token {
	for !s.atEnd() {
		ch := s.peekRune()
		if !isLetter(ch) && !isDigit(ch) {
			break
		}
		s.advance()
	}
	lexeme := s.src[s.start:s.pos]
	return Token{Kind: LookupKeyword(lexeme), Lexeme: lexeme, Line: s.line}
}

func (s *Scanner) scanNumber() (Token, error) {
	for !s.atEnd() && isDigit(rune(s.src[s.pos])) {
		s.pos++
	}
	// A fraction needs at least one digit after the dot.
	if !s.atEnd() && s.src[s.pos] == '.' && isDigit(rune(s.peekAt(1))) {
		s.pos++
		for !s.atEnd() && isDigit(rune(s.src[s.pos])) {
			s.pos++
		}
	}
	lexeme := s.src[s.start:s.pos]
	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Token{}, s.errorf("invalid number literal %q", lexeme)
	}
	return Token{Kind: Number, Lexeme: lexeme, Literal: val, Line: s.line}, nil
}

func (s *Scanner) scanString() (Token, error) {
	startLine := s.line
	s.pos++ // opening quote
	s.litBuf.Reset()
	for {
		if s.atEnd() {
			return Token{}, &Error{Line: startLine, Message: "unterminated string"}
		}
		c := s.src[s.pos]
		switch c {
		case '"':
			s.pos++
			return Token{
				Kind:    String,
				Lexeme:  s.src[s.start:s.pos],
				Literal: s.litBuf.String(),
				Line:    startLine,
			}, nil
		case '\n':
			s.line++
			s.litBuf.WriteByte(c)
			s.pos++
		case '\\':
			if s.pos+1 >= len(s.src) {
				return Token{}, &Error{Line: startLine, Message: "unterminated string"}
			}
			esc := s.src[s.pos+1]
			switch esc {
			case 'n':
				s.litBuf.WriteByte('\n')
			case 't':
				s.litBuf.WriteByte('\t')
			case 'r':
				s.litBuf.WriteByte('\r')
			case '"':
				s.litBuf.WriteByte('"')
			case '\\':
				s.litBuf.WriteByte('\\')
			default:
				return Token{}, s.errorf("unknown escape sequence '\\%c'", esc)
			}
			s.pos += 2
		default:
			s.litBuf.WriteByte(c)
			s.pos++
		}
	}
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *Scanner) peekAt(offset int) byte {
	if s.pos+offset >= len(s.src) {
		return 0
	}
	return s.src[s.pos+offset]
}

func (s *Scanner) peekRune() rune {
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r
}

func (s *Scanner) advance() {
	_, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.pos] != expected {
		return false
	}
	s.pos++
	return true
}

func (s *Scanner) errorf(format string, args ...any) error {
	return &Error{Line: s.line, Message: fmt.Sprintf(format, args...)}
}

func isLetter(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
