package scanner

import (
	"testing"

	"ziyy/token"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	s := New(src)
	var toks []token.Token
	for {
		tok, err := s.ScanToken()
		if err != nil {
			t.Fatalf("scan error: %v", err)
		}
		toks = append(toks, tok)
		if tok.Kind == token.Eof {
			break
		}
	}
	return toks
}

func TestScanPlainText(t *testing.T) {
	toks := scanAll(t, "hello")
	if len(toks) != 2 || toks[0].Kind != token.Text || toks[0].Content != "hello" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestScanOpenCloseTag(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []token.Kind
	}{
		{
			name: "simple bold",
			src:  "<b>x</b>",
			kinds: []token.Kind{
				token.Less, token.Keyword, token.Great,
				token.Text,
				token.LessSlash, token.Keyword, token.Great,
				token.Eof,
			},
		},
		{
			name: "self close",
			src:  "<br/>",
			kinds: []token.Kind{
				token.Less, token.Keyword, token.SlashGreat, token.Eof,
			},
		},
		{
			name: "attribute with string value",
			src:  `<c color="red">x</c>`,
			kinds: []token.Kind{
				token.Less, token.Keyword, token.Ident, token.Equal, token.String, token.Great,
				token.Text,
				token.LessSlash, token.Keyword, token.Great,
				token.Eof,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := scanAll(t, tt.src)
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tt.kinds), toks)
			}
			for i, k := range tt.kinds {
				if toks[i].Kind != k {
					t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestScanWhitespaceIsDistinctFromText(t *testing.T) {
	toks := scanAll(t, "a  b")
	want := []token.Kind{token.Text, token.Whitespace, token.Text, token.Eof}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanHexColor(t *testing.T) {
	toks := scanAll(t, `<c color=#f0a>x</c>`)
	var found bool
	for _, tok := range toks {
		if tok.Kind == token.HexColor {
			found = true
			if tok.Content != "f0a" {
				t.Errorf("got %q, want f0a", tok.Content)
			}
		}
	}
	if !found {
		t.Fatal("no HexColor token scanned")
	}
}

func TestScanEscapes(t *testing.T) {
	toks := scanAll(t, `\n\t\\`)
	want := []token.Kind{token.EscLF, token.EscTab, token.EscSlash, token.Eof}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens: %+v", len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestScanComment(t *testing.T) {
	toks := scanAll(t, "<!-- hi -->text")
	if toks[0].Kind != token.Comment || toks[0].Content != " hi " {
		t.Fatalf("unexpected comment token: %+v", toks[0])
	}
	if toks[1].Kind != token.Text || toks[1].Content != "text" {
		t.Fatalf("unexpected text token: %+v", toks[1])
	}
}

func TestScanOctalEscape(t *testing.T) {
	toks := scanAll(t, `\0101`)
	if len(toks) != 2 || toks[0].Kind != token.EscOctal || toks[0].Content != "A" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestScanOctalEscapeOutOfByteRangeErrors(t *testing.T) {
	s := New(`\0777`)
	_, err := s.ScanToken()
	if err == nil {
		t.Fatal("expected an out-of-range octal escape error")
	}
}

func TestScanUnterminatedStringErrors(t *testing.T) {
	s := New(`<c color="red>x`)
	var err error
	for {
		var tok token.Token
		tok, err = s.ScanToken()
		if err != nil || tok.Kind == token.Eof {
			break
		}
	}
	if err == nil {
		t.Fatal("expected an unterminated-string error")
	}
}
