// Package scanner turns a source buffer into an ordered token stream in
// one pass, using one byte of lookahead and maximal munch. Lexical
// errors go through the diagnostic session; they never abort the
// process, and only an unterminated string stops the current scan.
package scanner

import (
	"strconv"

	"github.com/jsimmons/lax/pkg/diag"
	"github.com/jsimmons/lax/pkg/token"
)

// Scanner holds the state of one scan over one buffer. The buffer is
// borrowed read-only for the duration of the scan, and every emitted
// lexeme is a sub-slice of it; a Scanner is not safe for reuse across
// buffers and not safe for concurrent use.
type Scanner struct {
	sess    *diag.Session
	source  []byte
	start   int
	current int
	line    int
	tokens  []token.Token
}

// New creates a scanner over a borrowed source buffer. The caller must
// keep the buffer alive and unmodified for as long as any returned
// token is used.
func New(sess *diag.Session, source []byte) *Scanner {
	return &Scanner{
		sess:   sess,
		source: source,
		line:   1,
	}
}

// ScanTokens consumes the whole buffer and returns the token sequence,
// terminated by exactly one EOF token. Each call expects a fresh
// Scanner; partial or incremental invocation is not supported.
func (s *Scanner) ScanTokens() []token.Token {
scan:
	for !s.isAtEnd() {
		s.start = s.current
		switch c := s.advance(); c {
		case '(':
			s.addToken(token.LeftParen)
		case ')':
			s.addToken(token.RightParen)
		case '{':
			s.addToken(token.LeftBrace)
		case '}':
			s.addToken(token.RightBrace)
		case ',':
			s.addToken(token.Comma)
		case '.':
			s.addToken(token.Dot)
		case '-':
			s.addToken(token.Minus)
		case '+':
			s.addToken(token.Plus)
		case ';':
			s.addToken(token.Semicolon)
		case '*':
			s.addToken(token.Star)
		case '!':
			if s.match('=') {
				s.addToken(token.BangEqual)
			} else {
				s.addToken(token.Bang)
			}
		case '=':
			if s.match('=') {
				s.addToken(token.EqualEqual)
			} else {
				s.addToken(token.Equal)
			}
		case '<':
			if s.match('=') {
				s.addToken(token.LessEqual)
			} else {
				s.addToken(token.Less)
			}
		case '>':
			if s.match('=') {
				s.addToken(token.GreaterEqual)
			} else {
				s.addToken(token.Greater)
			}
		case '/':
			if s.match('/') {
				// Line comment: runs to the newline, which is left
				// for the next iteration to count
				for s.peek() != '\n' && !s.isAtEnd() {
					s.current++
				}
			} else {
				s.addToken(token.Slash)
			}
		case ' ', '\r', '\t':
			// Whitespace produces no token
		case '\n':
			s.line++
		case '"':
			if !s.scanString() {
				break scan
			}
		default:
			switch {
			case isDigit(c):
				s.scanNumber()
			case isAlpha(c):
				s.scanIdentifier()
			default:
				s.sess.Error(s.line, "unexpected character")
			}
		}
	}

	s.tokens = append(s.tokens, token.Token{Type: token.EOF, Line: s.line})
	return s.tokens
}

// scanString consumes a string literal after its opening quote. Returns
// false if the buffer ends before the closing quote, which terminates
// the scan.
func (s *Scanner) scanString() bool {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.current++
	}

	if s.isAtEnd() {
		s.sess.Error(s.line, "unterminated string")
		return false
	}

	// Closing quote
	s.current++

	s.tokens = append(s.tokens, token.Token{
		Type:   token.StringLit,
		Lexeme: s.source[s.start:s.current],
		Text:   s.source[s.start+1 : s.current-1],
		Line:   s.line,
	})
	return true
}

// scanNumber consumes a digit run with an optional fractional part. A
// trailing '.' with no digit after it is not consumed; it scans as its
// own Dot token on the next iteration.
func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.current++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.current++
		for isDigit(s.peek()) {
			s.current++
		}
	}

	value, err := strconv.ParseFloat(string(s.source[s.start:s.current]), 64)
	if err != nil {
		// No placeholder token; the span is dropped and scanning
		// resumes after it
		s.sess.Error(s.line, "could not parse number")
		return
	}

	s.tokens = append(s.tokens, token.Token{
		Type:   token.Number,
		Lexeme: s.source[s.start:s.current],
		Value:  value,
		Line:   s.line,
	})
}

// scanIdentifier consumes a maximal identifier run and classifies it
// through the keyword table
func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.current++
	}
	s.addToken(token.Lookup(s.source[s.start:s.current]))
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// peek returns the current byte without consuming it, or 0 at the end
// of the buffer
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the byte after the current one, or 0 past the end
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// advance consumes and returns the current byte
func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	return c
}

// match consumes the current byte only if it equals expected
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

// addToken materializes a payload-free token from the current span
func (s *Scanner) addToken(t token.Type) {
	s.tokens = append(s.tokens, token.Token{
		Type:   t,
		Lexeme: s.source[s.start:s.current],
		Line:   s.line,
	})
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
