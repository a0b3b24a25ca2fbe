package calc

import (
	"fmt"
	"testing"
)

// lexAll scans src to EOF, threading the previous token, and renders each
// token as "col:text".
func lexAll(src string) ([]string, error) {
	lx := NewLexer(src, DefaultCatalog())
	var toks []string
	var prev Token
	for {
		tok, err := lx.Next(prev)
		if err != nil {
			return toks, err
		}
		if tok.Kind == TokenEOF {
			return toks, nil
		}
		toks = append(toks, fmt.Sprintf("%d:%s", tok.Pos, tok))
		prev = tok
	}
}

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []string
		err    string
	}{
		// spaces
		{"", nil, ""},
		{" \t \r\n ", nil, ""},
		// numbers
		{"0", []string{"1:0"}, ""},
		{"3.14", []string{"1:3.14"}, ""},
		{"9876543210", []string{"1:9876543210"}, ""},
		{"1e+1", []string{"1:10"}, ""},
		{"2e-3", []string{"1:0.002"}, ""},
		{"1 0", []string{"1:1", "3:0"}, ""},
		// operators, unary vs binary
		{"2+3*4", []string{"1:2", "2:+", "3:3", "4:*", "5:4"}, ""},
		{"7%4", []string{"1:7", "2:%", "3:4"}, ""},
		{"2^3", []string{"1:2", "2:^", "3:3"}, ""},
		{"-3", []string{"1:@-", "2:3"}, ""},
		{"3- -4", []string{"1:3", "2:-", "4:@-", "5:4"}, ""},
		{"3+-4", []string{"1:3", "2:+", "3:@-", "4:4"}, ""},
		{"(-3)", []string{"1:(", "2:@-", "3:3", "4:)"}, ""},
		// parens, commas, functions
		{"(1)", []string{"1:(", "2:1", "3:)"}, ""},
		{"max(1, 2)", []string{"1:max", "4:(", "5:1", "6:,", "8:2", "9:)"}, ""},
		{"sqrt(16)", []string{"1:sqrt", "5:(", "6:16", "8:)"}, ""},
		// identifier truncation to the catalog name bound
		{"log10xyz(8)", []string{"1:log10", "9:(", "10:8", "11:)"}, ""},
		// errors
		{"$", nil, `1: invalid token "$"`},
		{"9 $", []string{"1:9"}, `3: invalid token "$"`},
		{"2**3", []string{"1:2", "2:*"}, `3: invalid token "*"`},
		{"1e", nil, `1: invalid number token "1e"`},
		{"foo(1)", nil, `1: undefined function "foo"`},
		{".5", nil, `1: invalid token "."`},
	}

	for _, c := range cases {
		toks, err := lexAll(c.src)
		if c.err == "" {
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
				continue
			}
		} else {
			if err == nil {
				t.Errorf("scanning %q: expected error %q, got none", c.src, c.err)
				continue
			}
			if err.Error() != c.err {
				t.Errorf("scanning %q: want error %q, got %q", c.src, c.err, err)
			}
		}
		if len(toks) != len(c.tokens) {
			t.Errorf("scanning %q: want tokens %q, got %q", c.src, c.tokens, toks)
			continue
		}
		for i, want := range c.tokens {
			if toks[i] != want {
				t.Errorf("scanning %q: token %d: want %q, got %q", c.src, i, want, toks[i])
			}
		}
	}
}

func TestLexPositionsAreRunes(t *testing.T) {
	// A multi-byte space must advance the column by one rune.
	toks, err := lexAll(" 1+2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"2:1", "3:+", "4:2"}
	if len(toks) != len(want) {
		t.Fatalf("want %q, got %q", want, toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Errorf("token %d: want %q, got %q", i, want[i], toks[i])
		}
	}
}
