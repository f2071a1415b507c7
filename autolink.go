// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

// A Span is a half-open byte range [Start, End) into a text buffer,
// identifying a matched link.
type Span struct {
	Start int
	End   int
}

// Flags configures the matchers.
type Flags int

const (
	// ShortDomains accepts a hostname without a dot,
	// such as http://localhost, in MatchURL.
	ShortDomains Flags = 1 << iota
)

// safePrefixes lists the URI prefixes that MatchURL will link.
// Anything else (javascript:, data:, ...) is rejected.
var safePrefixes = []string{
	"/",
	"http://",
	"https://",
	"ftp://",
	"mailto:",
}

// IsSafePrefix reports whether link begins with one of the recognized
// URI prefixes, compared ASCII case-insensitively, followed by at
// least one byte, the first of which is alphanumeric.
// "HTTP://x" is safe; "http://" alone and "httpx" are not.
func IsSafePrefix(link []byte) bool {
	for _, p := range safePrefixes {
		if len(link) > len(p) && foldPrefix(link, p) && isLetterDigit(link[len(p)]) {
			return true
		}
	}
	return false
}

// checkDomain scans a hostname starting at link.Start,
// setting link.End to the offset just past the last domain byte it accepts.
// Domain bytes are ASCII alphanumerics, '-', and '.'; the scan also stops
// at len(data)-1, leaving the final byte of the buffer to the caller's
// whitespace extension. Without allowShort the hostname must contain
// at least one dot.
func checkDomain(data []byte, link *Span, allowShort bool) bool {
	if link.Start >= len(data) || !isLetterDigit(data[link.Start]) {
		return false
	}
	np := 0
	i := link.Start + 1
	for ; i < len(data)-1; i++ {
		if data[i] == '.' {
			np++
		} else if !isLetterDigit(data[i]) && data[i] != '-' {
			break
		}
	}
	link.End = i
	if allowShort {
		return true
	}
	return np > 0
}

// trimDelims narrows link.End past trailing bytes that belong to the
// surrounding sentence rather than to the link: the punctuation
// ? ! . , : and ;, a trailing HTML character reference such as &amp;,
// and a final closing bracket or quote whose opener does not appear
// inside the span. An embedded '<' always ends the link early.
// trimDelims never moves link.End forward. It reports failure only
// when the span becomes empty.
func trimDelims(data []byte, link *Span) bool {
	for i := link.Start; i < link.End; i++ {
		if data[i] == '<' {
			link.End = i
			break
		}
	}

Trim:
	for link.End > link.Start {
		switch c := data[link.End-1]; c {
		case '?', '!', '.', ',', ':':
			link.End--

		case ';':
			// Possibly the tail of a character reference (&amp; &lt; ...):
			// walk back over the letters and see if they follow an ampersand.
			newEnd := link.End - 2
			for newEnd > 0 && isLetter(data[newEnd]) {
				newEnd--
			}
			if newEnd >= 0 && newEnd < link.End-2 && data[newEnd] == '&' {
				link.End = newEnd
			} else {
				link.End--
			}

		default:
			break Trim
		}
	}

	if link.End == link.Start {
		return false
	}

	// Try to match the final punctuation sign within the span.
	// A trailing ) that closes a ( appearing before the link is sentence
	// punctuation; a trailing ) whose ( is inside the span is part of the
	// link, as in http://example.com/foo_(bar).
	var copen byte
	cclose := data[link.End-1]
	switch cclose {
	case '"':
		copen = '"'
	case '\'':
		copen = '\''
	case ')':
		copen = '('
	case ']':
		copen = '['
	case '}':
		copen = '{'
	}

	if copen != 0 {
		opening, closing := 0, 0
		for i := link.Start; i < link.End; i++ {
			if data[i] == copen {
				opening++
			} else if data[i] == cclose {
				closing++
			}
		}
		if closing != opening {
			link.End--
		}
	}

	return true
}

// MatchWWW matches a www.-prefixed hostname beginning at data[pos].
// The byte before pos, if any, must be punctuation or white space:
// a www. glued to the tail of a word is not a link start.
// The hostname must contain a dot regardless of flags.
// On success it returns the span of the link.
func MatchWWW(data []byte, pos int, flags Flags) (Span, bool) {
	if pos < 0 || pos >= len(data) {
		return Span{}, false
	}
	if pos > 0 && !isPunct(data[pos-1]) && !isSpace(data[pos-1]) {
		return Span{}, false
	}
	if len(data)-pos < 4 || string(data[pos:pos+4]) != "www." {
		return Span{}, false
	}

	link := Span{Start: pos}
	if !checkDomain(data, &link, false) {
		return Span{}, false
	}
	for link.End < len(data) && !isSpace(data[link.End]) {
		link.End++
	}
	if !trimDelims(data, &link) {
		return Span{}, false
	}
	return link, true
}

// MatchEmail matches an email address around the '@' at data[pos].
// The local part extends backward over alphanumerics and . + - _;
// the domain extends forward over alphanumerics, - and _, with interior
// dots. Exactly one '@' and at least one domain dot are required.
// On success it returns the span of the address.
func MatchEmail(data []byte, pos int, flags Flags) (Span, bool) {
	if pos < 0 || pos >= len(data) {
		return Span{}, false
	}

	link := Span{Start: pos, End: pos}
	for link.Start > 0 {
		c := data[link.Start-1]
		if !isLetterDigit(c) && c != '.' && c != '+' && c != '-' && c != '_' {
			break
		}
		link.Start--
	}
	if link.Start == pos {
		return Span{}, false
	}

	nb, np := 0, 0
	for ; link.End < len(data); link.End++ {
		c := data[link.End]
		if isLetterDigit(c) {
			continue
		}
		if c == '@' {
			nb++
		} else if c == '.' && link.End < len(data)-1 {
			np++
		} else if c != '-' && c != '_' {
			break
		}
	}

	if link.End-pos < 2 || nb != 1 || np == 0 {
		return Span{}, false
	}
	if !trimDelims(data, &link) {
		return Span{}, false
	}
	return link, true
}

// MatchURL matches a scheme://host URL around the ':' at data[pos].
// The scheme extends backward over letters from pos and must pass
// IsSafePrefix; the hostname follows the "//". Calling MatchURL where
// data[pos] is not ':' is a mistake by the caller; it fails rather
// than reading out of bounds.
func MatchURL(data []byte, pos int, flags Flags) (Span, bool) {
	if pos < 0 || pos >= len(data) || data[pos] != ':' {
		return Span{}, false
	}
	if len(data)-pos < 4 || data[pos+1] != '/' || data[pos+2] != '/' {
		return Span{}, false
	}

	link := Span{Start: pos + 3}
	if !checkDomain(data, &link, flags&ShortDomains != 0) {
		return Span{}, false
	}
	for link.End < len(data) && !isSpace(data[link.End]) {
		link.End++
	}

	link.Start = pos
	for link.Start > 0 && isLetter(data[link.Start-1]) {
		link.Start--
	}
	if !IsSafePrefix(data[link.Start:]) {
		return Span{}, false
	}
	if !trimDelims(data, &link) {
		return Span{}, false
	}
	return link, true
}
