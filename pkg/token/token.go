package token

import (
	"fmt"
	"strconv"
)

// Type represents the lexical category of a token
type Type int

const (
	// Single-character tokens
	LeftParen Type = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals
	Identifier
	StringLit
	Number

	// Keywords
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// EOF terminates every token sequence
	EOF
)

var typeNames = [...]string{
	LeftParen:    "LEFT_PAREN",
	RightParen:   "RIGHT_PAREN",
	LeftBrace:    "LEFT_BRACE",
	RightBrace:   "RIGHT_BRACE",
	Comma:        "COMMA",
	Dot:          "DOT",
	Minus:        "MINUS",
	Plus:         "PLUS",
	Semicolon:    "SEMICOLON",
	Slash:        "SLASH",
	Star:         "STAR",
	Bang:         "BANG",
	BangEqual:    "BANG_EQUAL",
	Equal:        "EQUAL",
	EqualEqual:   "EQUAL_EQUAL",
	Greater:      "GREATER",
	GreaterEqual: "GREATER_EQUAL",
	Less:         "LESS",
	LessEqual:    "LESS_EQUAL",
	Identifier:   "IDENTIFIER",
	StringLit:    "STRING",
	Number:       "NUMBER",
	And:          "AND",
	Class:        "CLASS",
	Else:         "ELSE",
	False:        "FALSE",
	Fun:          "FUN",
	For:          "FOR",
	If:           "IF",
	Nil:          "NIL",
	Or:           "OR",
	Print:        "PRINT",
	Return:       "RETURN",
	Super:        "SUPER",
	This:         "THIS",
	True:         "TRUE",
	Var:          "VAR",
	While:        "WHILE",
	EOF:          "EOF",
}

// String returns a string representation of the token type
func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "UNKNOWN"
	}
	return typeNames[t]
}

// Token represents a single token produced by the scanner.
//
// Lexeme and Text are views into the scanned source buffer, not copies;
// they are valid only as long as the caller keeps that buffer alive and
// unmodified. Lexeme is nil only for the EOF token.
type Token struct {
	Type Type
	// Lexeme is the exact slice of source bytes the token was lexed from
	Lexeme []byte
	// Text holds a string literal's content, quotes excluded
	Text []byte
	// Value holds a number literal's decoded value
	Value float64
	// Line is the 1-based source line the token was emitted on
	Line int
}

// String returns a human-readable rendering of the token for debugging
func (t Token) String() string {
	switch t.Type {
	case StringLit:
		return fmt.Sprintf("%s(%q)", t.Type, t.Text)
	case Number:
		return fmt.Sprintf("%s(%s)", t.Type, strconv.FormatFloat(t.Value, 'g', -1, 64))
	case EOF:
		return t.Type.String()
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Lexeme)
	}
}

var keywords = map[string]Type{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Lookup maps an identifier spelling to its reserved-keyword type.
// The match is exact; any other spelling is a plain Identifier.
func Lookup(ident []byte) Type {
	if t, ok := keywords[string(ident)]; ok {
		return t
	}
	return Identifier
}
