// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linkify finds bare URLs, www.-prefixed hostnames, and email
// addresses in plain text or HTML markup and wraps them in <a> tags.
//
// The package does not parse HTML or URIs. It scans bytes, using a
// small set of boundary heuristics to separate a link from the
// sentence around it: trailing punctuation is trimmed, a trailing
// character reference such as &amp; is dropped, and a closing bracket
// is kept only when its opener is inside the link. Input that is HTML
// is expected to be escaped already; no escaping is performed.
package linkify

import (
	"bytes"
	"strings"

	"golang.org/x/text/cases"
)

// A Mode selects which kinds of links a Linker rewrites.
type Mode int

const (
	All    Mode = iota // URLs, www hostnames, and email addresses
	URLs               // URLs and www hostnames only
	Emails             // email addresses only
)

// A Linker rewrites text, wrapping detected links in <a> tags.
// The zero value is ready to use and links everything.
type Linker struct {
	// Mode selects which kinds of links to rewrite.
	Mode Mode

	// ShortDomains accepts scheme://host URLs whose host has no dot,
	// such as http://localhost.
	ShortDomains bool

	// LinkAttr is copied verbatim into each generated tag after the
	// href attribute, e.g. `target="_blank"`. It is not sanitized.
	LinkAttr string

	// SkipTags lists HTML tags whose content is copied through with no
	// link detection. A nil list means the default: a, pre, code, kbd,
	// and script. Matching is case-insensitive and does not nest.
	SkipTags []string

	// Filter, if non-nil, is called with each link's URL;
	// its result replaces the link text inside the tag.
	Filter func(url string) string
}

var defaultSkipTags = []string{"a", "pre", "code", "kbd", "script"}

// Link returns text with every detected link wrapped in an <a> tag.
// If nothing matched, it returns text unchanged.
func (l *Linker) Link(text string) string {
	out, _ := l.LinkCount(text)
	return out
}

// LinkCount is like [Linker.Link] but also reports how many links
// were rewritten.
func (l *Linker) LinkCount(text string) (string, int) {
	data := []byte(text)
	skip := l.SkipTags
	if skip == nil {
		skip = defaultSkipTags
	}
	var flags Flags
	if l.ShortDomains {
		flags |= ShortDomains
	}

	var buf bytes.Buffer
	count := 0
	copied := 0 // data[:copied] is already in buf
	for i := 0; i < len(data); {
		var (
			sp     Span
			ok     bool
			scheme string
		)
		switch data[i] {
		case '<':
			i = skipTag(data, i, skip)
			continue
		case 'w':
			if l.Mode != Emails {
				sp, ok = MatchWWW(data, i, flags)
				scheme = "http://"
			}
		case ':':
			if l.Mode != Emails {
				sp, ok = MatchURL(data, i, flags)
			}
		case '@':
			if l.Mode != URLs {
				sp, ok = MatchEmail(data, i, flags)
				scheme = "mailto:"
			}
		}
		// The email and URL matchers walk backward from the trigger;
		// a span reaching into already-emitted output is discarded.
		if !ok || sp.Start < copied {
			i++
			continue
		}

		buf.Write(data[copied:sp.Start])
		match := string(data[sp.Start:sp.End])
		url := scheme + match
		buf.WriteString(`<a href="`)
		buf.WriteString(url)
		buf.WriteString(`"`)
		if l.LinkAttr != "" {
			buf.WriteString(" ")
			buf.WriteString(l.LinkAttr)
		}
		buf.WriteString(">")
		if l.Filter != nil {
			buf.WriteString(l.Filter(url))
		} else {
			buf.WriteString(match)
		}
		buf.WriteString("</a>")

		count++
		copied = sp.End
		i = sp.End
	}

	if count == 0 {
		return text, 0
	}
	buf.Write(data[copied:])
	return buf.String(), count
}

// skipTag returns the offset at which link scanning should resume
// after the '<' at data[i]. A tag whose name is in skip is skipped
// through its matching close tag; any other tag is skipped through
// its closing '>'. A '<' that does not start a tag is plain text.
func skipTag(data []byte, i int, skip []string) int {
	j := i + 1
	closing := false
	if j < len(data) && data[j] == '/' {
		closing = true
		j++
	}
	name, _, ok := scanTagName(data, j)
	if !ok {
		return i + 1
	}

	gt := bytes.IndexByte(data[i:], '>')
	if gt < 0 {
		return len(data)
	}
	end := i + gt + 1
	if closing || !tagListed(name, skip) {
		return end
	}

	// Skip to the close tag, case-insensitively.
	// An unclosed skip tag swallows the rest of the input.
	target := "</" + normalizeTag(name)
	for k := end; k < len(data); {
		m := indexFold(data[k:], target)
		if m < 0 {
			break
		}
		k += m + len(target)
		p := k
		for p < len(data) && isSpace(data[p]) {
			p++
		}
		if p < len(data) && data[p] == '>' {
			return p + 1
		}
	}
	return len(data)
}

// scanTagName parses a leading tag name from data[i:],
// returning the name and the end location.
func scanTagName(data []byte, i int) (name string, end int, ok bool) {
	if i >= len(data) || !isLetter(data[i]) {
		return "", 0, false
	}
	end = i + 1
	for end < len(data) && isLDH(data[end]) {
		end++
	}
	return string(data[i:end]), end, true
}

// tagListed reports whether name is in the skip list, ignoring case.
func tagListed(name string, skip []string) bool {
	name = normalizeTag(name)
	for _, s := range skip {
		if normalizeTag(s) == name {
			return true
		}
	}
	return false
}

// normalizeTag lower-cases a tag name for comparison.
// Standard HTML tag names are ASCII, but custom element names may not
// be, in which case we fall back to a full Unicode case fold.
func normalizeTag(s string) string {
	isLower := true
	hi := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			isLower = false
		}
		if c >= 0x80 {
			hi = true
		}
	}
	if hi {
		return cases.Fold().String(s)
	}
	if isLower {
		return s
	}
	return strings.ToLower(s)
}
