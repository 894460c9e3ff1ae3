package lexer

import (
	"errors"
	"testing"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
	}{
		{"empty", "", []Kind{EOF}},
		{"ident", "foo_1", []Kind{Identifier, EOF}},
		{"number", "42", []Kind{Number, EOF}},
		{"float", "3.25", []Kind{Number, EOF}},
		{"number_then_dot", "1.foo", []Kind{Number, Dot, Identifier, EOF}},
		{"string", `"hi"`, []Kind{String, EOF}},
		{"pipe", "a |> f(1)", []Kind{Identifier, Pipe, Identifier, LeftParen, Number, RightParen, EOF}},
		{"compound", "x += 1 -= *= /=", []Kind{Identifier, PlusEqual, Number, MinusEqual, StarEqual, SlashEqual, EOF}},
		{"comparison", "< <= > >= == != !", []Kind{Less, LessEqual, Greater, GreaterEqual, EqualEqual, BangEqual, Bang, EOF}},
		{"delimiters", "()[]{},.;", []Kind{LeftParen, RightParen, LeftBracket, RightBracket, LeftBrace, RightBrace, Comma, Dot, Semicolon, EOF}},
		{"line_comment", "a // ignored |\nb", []Kind{Identifier, Identifier, EOF}},
		{"block_comment", "a /* x\ny */ b", []Kind{Identifier, Identifier, EOF}},
		{"keywords", "let fn if else while for return class extends super this static true false nil print and or break continue",
			[]Kind{Let, Fn, If, Else, While, For, Return, Class, Extends, Super, This, Static, True, False, Nil, Print, And, Or, Break, Continue, EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan(tt.src)
			if err != nil {
				t.Fatalf("Scan(%q) error: %v", tt.src, err)
			}
			got := kindsOf(tokens)
			if len(got) != len(tt.kinds) {
				t.Fatalf("Scan(%q) kinds = %v, want %v", tt.src, got, tt.kinds)
			}
			for i := range got {
				if got[i] != tt.kinds[i] {
					t.Fatalf("Scan(%q) token %d = %v, want %v", tt.src, i, got[i], tt.kinds[i])
				}
			}
		})
	}
}

func TestScanLiterals(t *testing.T) {
	tokens, err := Scan(`12.5 "a\tb\"c" name`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := tokens[0].Literal.(float64); !ok || v != 12.5 {
		t.Fatalf("number literal = %#v, want 12.5", tokens[0].Literal)
	}
	if s, ok := tokens[1].Literal.(string); !ok || s != "a\tb\"c" {
		t.Fatalf("string literal = %#v", tokens[1].Literal)
	}
	if tokens[2].Literal != nil || tokens[2].Lexeme != "name" {
		t.Fatalf("identifier token = %#v", tokens[2])
	}
}

func TestScanTracksLines(t *testing.T) {
	tokens, err := Scan("a\n\"multi\nline\"\n/* c\n */ b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantLines := []int{1, 2, 5, 5}
	for i, want := range wantLines {
		if tokens[i].Line != want {
			t.Fatalf("token %d (%v) line = %d, want %d", i, tokens[i], tokens[i].Line, want)
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated_string", "let a = 1;\nlet b = \"oops;", 2},
		{"unterminated_comment", "/* never\nends", 1},
		{"bad_character", "let a = 1;\n\nlet b = @;", 3},
		{"lone_bar", "a | b", 1},
		{"bad_escape", `"\q"`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scan(tt.src)
			if err == nil {
				t.Fatalf("expected error for %q", tt.src)
			}
			if !errors.Is(err, ErrLex) {
				t.Fatalf("expected ErrLex, got %v", err)
			}
			var lexErr *Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *Error, got %T", err)
			}
			if lexErr.Line != tt.line {
				t.Fatalf("error line = %d, want %d (%v)", lexErr.Line, tt.line, err)
			}
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	if LookupKeyword("class") != Class {
		t.Fatalf("class should be a keyword")
	}
	if LookupKeyword("klass") != Identifier {
		t.Fatalf("klass should be an identifier")
	}
	if !Static.IsKeyword() || Pipe.IsKeyword() {
		t.Fatalf("IsKeyword classification is wrong")
	}
}
