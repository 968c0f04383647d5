package casing

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"initialize", []string{"initialize"}},
		{"My_Account", []string{"My", "Account"}},
		{"transferFrom", []string{"transfer", "From"}},
		{"user-stats", []string{"user", "stats"}},
		{"__leading__trailing__", []string{"leading", "trailing"}},
		{"HTTPServer", []string{"HTTP", "Server"}},
		{"XMLHttpRequest", []string{"XML", "Http", "Request"}},
		{"vec2Norm", []string{"vec2", "Norm"}},
		{"ABC1def", []string{"ABC1def"}},
		{"1st_place", []string{"1st", "place"}},
		{"aB", []string{"a", "B"}},
		{"set mint  fee", []string{"set", "mint", "fee"}},
	}
	for _, tt := range tests {
		got := Words(tt.in)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Words(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestLowerCamel(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"My_Account":     "myAccount",
		"T_Param":        "tParam",
		"initialize":     "initialize",
		"INITIALIZE":     "initialize",
		"Initialize":     "initialize",
		"set_mint_fee":   "setMintFee",
		"transferFrom":   "transferFrom",
		"HTTPServer":     "httpServer",
		"XMLHttpRequest": "xmlHttpRequest",
		"user-stats":     "userStats",
		"vec2Norm":       "vec2Norm",
		"1st_place":      "1stPlace",
		"GameState":      "gameState",
		"point_a_b":      "pointAb",
		"get_x_y":        "getXy",
		"1_z-b":          "1zb",
		"a_b_cd":         "aBCd",
	}
	for in, want := range tests {
		if got := LowerCamel(in); got != want {
			t.Errorf("LowerCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpperCamel(t *testing.T) {
	tests := map[string]string{
		"":                "",
		"arkham_protocol": "ArkhamProtocol",
		"my_account":      "MyAccount",
		"MyAccount":       "MyAccount",
		"HTTPServer":      "HttpServer",
		"counter":         "Counter",
		"token-swap":      "TokenSwap",
		"aB":              "Ab",
		"x_1_y":           "X1y",
	}
	for in, want := range tests {
		if got := UpperCamel(in); got != want {
			t.Errorf("UpperCamel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIdempotent(t *testing.T) {
	inputs := []string{
		"", "a", "A", "aB", "AB", "My_Account", "T_Param", "HTTPServer",
		"XMLHttpRequest", "set_mint_fee", "vec2Norm", "ABC1def", "x_1_y",
		"already camel", "__init__", "UPPER_SNAKE_CASE", "kebab-case-name",
		"mixedUP_case-Thing", "point_a_b", "get_x_y", "1_z-b", "a_b_c_d",
		"pointAB", "X1Y", "9_a9_B",
	}
	for _, in := range inputs {
		once := LowerCamel(in)
		if twice := LowerCamel(once); twice != once {
			t.Errorf("LowerCamel not idempotent for %q: %q then %q", in, once, twice)
		}
		up := UpperCamel(in)
		if again := UpperCamel(up); again != up {
			t.Errorf("UpperCamel not idempotent for %q: %q then %q", in, up, again)
		}
	}
}

func TestUpperOfLowerSharesWords(t *testing.T) {
	for _, in := range []string{"My_Account", "HTTPServer", "set_mint_fee", "counter"} {
		l := LowerCamel(in)
		if got, want := UpperCamel(l), UpperCamel(in); got != want {
			t.Errorf("UpperCamel(LowerCamel(%q)) = %q, want %q", in, got, want)
		}
	}
}

// TestIdempotentExhaustive covers every string of up to five runes over
// separators, digits and both cases.
func TestIdempotentExhaustive(t *testing.T) {
	const alphabet = "aB1_z"
	var walk func(prefix string, n int)
	walk = func(prefix string, n int) {
		checkIdempotent(t, prefix)
		if n == 0 {
			return
		}
		for _, r := range alphabet {
			walk(prefix+string(r), n-1)
		}
	}
	walk("", 5)
}

func FuzzIdempotent(f *testing.F) {
	for _, s := range []string{"point_a_b", "get_x_y", "1_z-b", "HTTPServer", "aB", "x_1_y", "zZ9 -bB"} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		// case mappings outside ASCII may change rune counts
		for i := 0; i < len(s); i++ {
			if s[i] >= utf8.RuneSelf {
				t.Skip()
			}
		}
		checkIdempotent(t, s)
	})
}

func checkIdempotent(t *testing.T, s string) {
	t.Helper()
	once := LowerCamel(s)
	if twice := LowerCamel(once); twice != once {
		t.Errorf("LowerCamel(%q) = %q, again %q", s, once, twice)
	}
	up := UpperCamel(s)
	if again := UpperCamel(up); again != up {
		t.Errorf("UpperCamel(%q) = %q, again %q", s, up, again)
	}
	if strings.ContainsFunc(once, isSep) {
		t.Errorf("LowerCamel(%q) = %q keeps a separator", s, once)
	}
}
