package render

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		misc        bool
		asterisks   bool
		underscores bool
		want        string
	}{
		{"plain text untouched", "hello world", true, true, true, "hello world"},
		{"asterisks", "a*b*c", false, true, false, `a\*b\*c`},
		{"underscores", "snake_case_name", false, false, true, `snake\_case\_name`},
		{"asterisks disabled", "a*b", false, false, false, "a*b"},
		{"misc brackets", "[link]", true, false, false, `\[link]`},
		{"misc hash", "# not a heading", true, false, false, `\# not a heading`},
		{"misc pipe", "a|b", true, false, false, `a\|b`},
		{"misc backslash", `a\b`, true, false, false, `a\\b`},
		{"misc ampersand and angle", "a&b<c", true, false, false, `a\&b\<c`},
		{"numbered list dot", "1. Item", true, false, false, `1\. Item`},
		{"numbered list paren", "2) Item", true, false, false, `2\) Item`},
		{"digit without marker", "v1 release", true, false, false, "v1 release"},
		{"everything", "*a* _b_ [c]", true, true, true, `\*a\* \_b\_ \[c]`},
		{"empty", "", true, true, true, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.input, tt.misc, tt.asterisks, tt.underscores)
			if got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEscapeNonASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"café", "caf&#233;"},
		{"日本", "&#26085;&#26412;"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := EscapeNonASCII(tt.input); got != tt.want {
			t.Errorf("EscapeNonASCII(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestChomp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		prefix  string
		suffix  string
		trimmed string
	}{
		{"no whitespace", "text", "", "", "text"},
		{"leading space", " text", " ", "", "text"},
		{"trailing space", "text ", "", " ", "text"},
		{"both", "  text  ", " ", " ", "text"},
		{"newlines count", "\ntext\n", " ", " ", "text"},
		{"whitespace only", "   ", " ", " ", ""},
		{"empty", "", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, suffix, trimmed := Chomp(tt.input)
			if prefix != tt.prefix || suffix != tt.suffix || trimmed != tt.trimmed {
				t.Errorf("Chomp(%q) = (%q, %q, %q), want (%q, %q, %q)",
					tt.input, prefix, suffix, trimmed, tt.prefix, tt.suffix, tt.trimmed)
			}
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"runs collapse", "a   b\t\tc", "a b c"},
		{"newlines kept", "a \n b", "a \n b"},
		{"nbsp", "a\u00a0\u00a0b", "a b"},
		{"ideographic space", "a\u3000b", "a b"},
		{"already single", "a b", "a b"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CollapseSpaces(tt.input); got != tt.want {
				t.Errorf("CollapseSpaces(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnderline(t *testing.T) {
	if got := Underline("Title", '='); got != "Title\n=====\n\n" {
		t.Errorf("Underline = %q", got)
	}
	if got := Underline("ab", '-'); got != "ab\n--\n\n" {
		t.Errorf("Underline = %q", got)
	}
	if got := Underline("   ", '='); got != "" {
		t.Errorf("Underline on whitespace = %q, want empty", got)
	}
}

func TestIndent(t *testing.T) {
	got := Indent("a\n\nb", 1, "    ")
	want := "    a\n\n    b"
	if got != want {
		t.Errorf("Indent = %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short line untouched", "one two", 20, "one two"},
		{"wraps at width", "aaa bbb ccc", 7, "aaa bbb\nccc"},
		{"long word stands alone", "aaaaaaaaaa bb", 5, "aaaaaaaaaa\nbb"},
		{"zero width disables", "a b c", 0, "a b c"},
		{"width counts runes not bytes", "ααα βββ γγγ", 7, "ααα βββ\nγγγ"},
		{"multibyte words wrap at rune width", "héllo wörld again", 11, "héllo wörld\nagain"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.input, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestLongestRun(t *testing.T) {
	tests := []struct {
		input string
		c     byte
		want  int
	}{
		{"a`b", '`', 1},
		{"a``b```c", '`', 3},
		{"abc", '`', 0},
	}
	for _, tt := range tests {
		if got := longestRun(tt.input, tt.c); got != tt.want {
			t.Errorf("longestRun(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
