// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "testing"

var isSafePrefixTests = []struct {
	link string
	ok   bool
}{
	{"http://x", true},
	{"HTTP://x", true},
	{"https://ok", true},
	{"http://", false},
	{"httpx", false},
	{"/x", true},
	{"/", false},
	{"ftp://f", true},
	{"FTP://F", true},
	{"mailto:me", true},
	{"MAILTO:me", true},
	{"javascript:x", false},
	{"http://!", false},
	{"", false},
}

func TestIsSafePrefix(t *testing.T) {
	for _, tt := range isSafePrefixTests {
		if ok := IsSafePrefix([]byte(tt.link)); ok != tt.ok {
			t.Errorf("IsSafePrefix(%q) = %v, want %v", tt.link, ok, tt.ok)
		}
	}
}

// matchTests use want == "" for no match; otherwise want is the
// substring the returned span must cover.
var matchWWWTests = []struct {
	text string
	pos  int
	want string
}{
	{"see www.example.com.", 4, "www.example.com"},
	{"www.example.com", 0, "www.example.com"},
	{"foo www.example.com", 4, "www.example.com"},
	{"-www.example.com", 1, "www.example.com"},
	{"xwww.example.com", 1, ""},
	{"say www.example.com, ok", 4, "www.example.com"},
	{"(www.example.com)", 1, "www.example.com"},
	{"www.x", 0, "www.x"}, // the dot in www. satisfies the domain check
	{"www.", 0, ""},
	{"see www", 4, ""},
}

func TestMatchWWW(t *testing.T) {
	for _, tt := range matchWWWTests {
		sp, ok := MatchWWW([]byte(tt.text), tt.pos, 0)
		checkMatch(t, "MatchWWW", tt.text, tt.pos, sp, ok, tt.want)
	}
}

var matchEmailTests = []struct {
	text string
	pos  int
	want string
}{
	{"contact me at a.b@example.com.", 17, "a.b@example.com"},
	{"mail x_1@example.com now", 8, "x_1@example.com"},
	{"a@b.c", 1, "a@b.c"},
	{"@example.com", 0, ""},
	{"a@b@c.com", 1, ""},
	{"a@b@c.com", 3, "b@c.com"},
	{"a@b.", 1, ""},
	{"a@b", 1, ""},
}

func TestMatchEmail(t *testing.T) {
	for _, tt := range matchEmailTests {
		sp, ok := MatchEmail([]byte(tt.text), tt.pos, 0)
		checkMatch(t, "MatchEmail", tt.text, tt.pos, sp, ok, tt.want)
	}
}

var matchURLTests = []struct {
	text  string
	pos   int
	flags Flags
	want  string
}{
	{"http://example.com", 4, 0, "http://example.com"},
	{"(http://example.com/foo)", 5, 0, "http://example.com/foo"},
	{"http://example.com/foo_(bar)", 4, 0, "http://example.com/foo_(bar)"},
	{"see http://example.com&amp;", 8, 0, "http://example.com"},
	{"x ftp://files.example.com, done", 5, 0, "ftp://files.example.com"},
	{"javascript://example.com", 10, 0, ""},
	{"http://foo", 4, 0, ""},
	{"http://foo", 4, ShortDomains, "http://foo"},
	{"http://foo bar", 4, ShortDomains, "http://foo"},
	{"http:/x", 4, 0, ""},
	{"see: nothing", 3, 0, ""},
}

func TestMatchURL(t *testing.T) {
	for _, tt := range matchURLTests {
		sp, ok := MatchURL([]byte(tt.text), tt.pos, tt.flags)
		checkMatch(t, "MatchURL", tt.text, tt.pos, sp, ok, tt.want)
	}
}

// MatchURL at a byte that is not ':' is a caller mistake;
// it must fail rather than read out of bounds.
func TestMatchURLDefensive(t *testing.T) {
	data := []byte("http://example.com")
	if _, ok := MatchURL(data, 0, 0); ok {
		t.Errorf("MatchURL at non-colon byte matched")
	}
	if _, ok := MatchURL(data, -1, 0); ok {
		t.Errorf("MatchURL at pos -1 matched")
	}
	if _, ok := MatchURL(data, len(data), 0); ok {
		t.Errorf("MatchURL past end of buffer matched")
	}
	if _, ok := MatchWWW(data, len(data)+3, 0); ok {
		t.Errorf("MatchWWW past end of buffer matched")
	}
	if _, ok := MatchEmail(data, -5, 0); ok {
		t.Errorf("MatchEmail at pos -5 matched")
	}
}

func checkMatch(t *testing.T, name, text string, pos int, sp Span, ok bool, want string) {
	t.Helper()
	if !ok {
		if want != "" {
			t.Errorf("%s(%q, %d) = no match, want %q", name, text, pos, want)
		}
		return
	}
	if want == "" {
		t.Errorf("%s(%q, %d) = %q, want no match", name, text, pos, text[sp.Start:sp.End])
		return
	}
	if sp.Start < 0 || sp.Start >= sp.End || sp.End > len(text) {
		t.Errorf("%s(%q, %d) = invalid span [%d, %d)", name, text, pos, sp.Start, sp.End)
		return
	}
	if got := text[sp.Start:sp.End]; got != want {
		t.Errorf("%s(%q, %d) = %q, want %q", name, text, pos, got, want)
	}
}

var trimDelimsTests = []struct {
	text string
	want string // "" for failure (span trimmed to empty)
}{
	{"http://example.com/foo", "http://example.com/foo"},
	{"http://example.com/foo).", "http://example.com/foo"},
	{"foo?!.,:", "foo"},
	{"foo&amp;", "foo"},
	{"foo;", "foo"},
	{"&amp;", ""},
	{"x<y", "x"},
	{"(foo)", "(foo)"},
	{"foo)", "foo"},
	{`foo"`, "foo"},
	{"foo'", "foo"},
	{"foo]", "foo"},
	{"foo}", "foo"},
	{"foo[bar]", "foo[bar]"},
}

func TestTrimDelims(t *testing.T) {
	for _, tt := range trimDelimsTests {
		link := Span{Start: 0, End: len(tt.text)}
		ok := trimDelims([]byte(tt.text), &link)
		if !ok {
			if tt.want != "" {
				t.Errorf("trimDelims(%q) failed, want %q", tt.text, tt.want)
			}
			continue
		}
		if got := tt.text[link.Start:link.End]; got != tt.want {
			t.Errorf("trimDelims(%q) = %q, want %q", tt.text, got, tt.want)
		}

		// Trimming is idempotent: a second pass must not move the span.
		again := link
		if ok2 := trimDelims([]byte(tt.text), &again); !ok2 || again != link {
			t.Errorf("trimDelims(%q) second pass = %v, %v, want %v, true", tt.text, again, ok2, link)
		}
	}
}
