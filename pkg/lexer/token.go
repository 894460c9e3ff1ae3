// Package lexer turns Lox source text into a token stream.
package lexer

import "fmt"

// Kind identifies the lexical category of a token.
type Kind int

const (
	EOF Kind = iota

	// Literals
	Identifier
	String
	Number

	// Delimiters
	LeftParen    // (
	RightParen   // )
	LeftBracket  // [
	RightBracket // ]
	LeftBrace    // {
	RightBrace   // }
	Comma        // ,
	Dot          // .
	Semicolon    // ;

	// Operators
	Plus         // +
	Minus        // -
	Star         // *
	Slash        // /
	Bang         // !
	BangEqual    // !=
	Equal        // =
	EqualEqual   // ==
	Less         // <
	LessEqual    // <=
	Greater      // >
	GreaterEqual // >=
	PlusEqual    // +=
	MinusEqual   // -=
	StarEqual    // *=
	SlashEqual   // /=
	Pipe         // |>

	// Keywords
	And
	Break
	Class
	Continue
	Else
	Extends
	False
	Fn
	For
	If
	Let
	Nil
	Or
	Print
	Return
	Static
	Super
	This
	True
	While

	kindCount
)

var kindNames = [...]string{
	EOF: "end of file",

	Identifier: "identifier",
	String:     "string",
	Number:     "number",

	LeftParen:    "(",
	RightParen:   ")",
	LeftBracket:  "[",
	RightBracket: "]",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Semicolon:    ";",

	Plus:         "+",
	Minus:        "-",
	Star:         "*",
	Slash:        "/",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	PlusEqual:    "+=",
	MinusEqual:   "-=",
	StarEqual:    "*=",
	SlashEqual:   "/=",
	Pipe:         "|>",

	And:      "and",
	Break:    "break",
	Class:    "class",
	Continue: "continue",
	Else:     "else",
	Extends:  "extends",
	False:    "false",
	Fn:       "fn",
	For:      "for",
	If:       "if",
	Let:      "let",
	Nil:      "nil",
	Or:       "or",
	Print:    "print",
	Return:   "return",
	Static:   "static",
	Super:    "super",
	This:     "this",
	True:     "true",
	While:    "while",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

var keywords map[string]Kind

func init() {
	keywords = make(map[string]Kind, int(kindCount-And))
	for k := And; k < kindCount; k++ {
		keywords[kindNames[k]] = k
	}
}

// LookupKeyword maps an identifier to its keyword kind, or Identifier.
func LookupKeyword(name string) Kind {
	if k, ok := keywords[name]; ok {
		return k
	}
	return Identifier
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= And && k < kindCount
}

// Token is a single lexeme with its source line.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any // string for String, float64 for Number, nil otherwise
	Line    int
}

func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of file"
	case String:
		return fmt.Sprintf("%q", t.Literal)
	default:
		return t.Lexeme
	}
}
