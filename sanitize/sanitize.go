// Package sanitize neutralizes untrusted text before it is stored or
// broadcast. The pipeline mirrors an escape-then-clean scheme: every
// HTML-significant character is escaped so the text cannot be read as
// markup, bare URLs and e-mail addresses become safe hyperlinks, and a
// final permissive cleaning pass guarantees nothing unsafe survives.
//
// Sanitize is idempotent: running it over its own output yields the same
// string. The escape step leaves existing entities and generated link
// markup alone instead of escaping blindly. Only anchors the linkifier
// itself could have produced count as generated: the visible text must
// resolve to the href. Anchor-shaped text typed by a user is escaped
// like any other text.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"mvdan.cc/xurls/v2"
)

var (
	// policy is the final cleaning pass. Only the anchors produced by
	// the linkifier are allowed through; everything else is stripped.
	policy = newPolicy()

	// anchorPattern recognizes link markup shaped like what this package
	// generates. The capture groups carry the href and the visible text
	// so a candidate can be checked against the linkifier's output forms.
	anchorPattern = regexp.MustCompile(`<a href="([^"<>]*)"(?: rel="nofollow")?>([^<>]*)</a>`)

	// entityPattern matches an already-escaped character reference.
	entityPattern = regexp.MustCompile(`^&(?:[a-zA-Z][a-zA-Z0-9]{1,31}|#[0-9]{1,7}|#[xX][0-9a-fA-F]{1,6});`)

	urlPattern   = xurls.Relaxed()
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowAttrs("href", "rel").OnElements("a")
	p.AllowStandardURLs()
	p.RequireNoFollowOnLinks(true)
	return p
}

// Sanitize returns text safe to embed verbatim in an HTML document body.
// Malformed input never fails the call: invalid UTF-8 is replaced before
// escaping, so the worst case degrades to escaping only.
func Sanitize(raw string) string {
	s := strings.ToValidUTF8(raw, "�")
	s = mapOutsideAnchors(s, escapeText)
	s = mapOutsideAnchors(s, linkify)
	return policy.Sanitize(s)
}

// mapOutsideAnchors applies fn to every segment of s that is not already
// generated link markup. Anchor-shaped text whose visible text does not
// resolve to its href cannot have come from the linkifier, so it is
// handed to fn along with the surrounding text.
func mapOutsideAnchors(s string, fn func(string) string) string {
	matches := anchorPattern.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return fn(s)
	}
	var b strings.Builder
	last := 0
	for _, m := range matches {
		if !generatedAnchor(s[m[2]:m[3]], s[m[4]:m[5]]) {
			continue
		}
		b.WriteString(fn(s[last:m[0]]))
		b.WriteString(s[m[0]:m[1]])
		last = m[1]
	}
	b.WriteString(fn(s[last:]))
	return b.String()
}

// generatedAnchor reports whether an anchor with this href and visible
// text could have come out of the linkifier, which only ever links a
// match to itself, to "http://" plus itself, or to "mailto:" plus
// itself. Anything else is user-typed text wearing an anchor shape.
func generatedAnchor(href, text string) bool {
	switch href {
	case text, "http://" + text, "mailto:" + text:
		return true
	}
	return false
}

// escapeText escapes HTML-significant characters, leaving character
// references that are already escaped as they are. The forms match what
// the cleaning pass itself emits, so repeated passes are stable.
func escapeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&#34;")
		case '\'':
			b.WriteString("&#39;")
		case '&':
			if entityPattern.MatchString(s[i:]) {
				b.WriteByte(c)
			} else {
				b.WriteString("&amp;")
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// linkify converts e-mail addresses first, then bare URLs, into anchor
// markup. It runs on escaped text, so matched substrings contain no raw
// markup characters.
func linkify(s string) string {
	s = emailPattern.ReplaceAllStringFunc(s, func(m string) string {
		return `<a href="mailto:` + m + `">` + m + `</a>`
	})
	return replaceOutsideAnchors(s, urlPattern, func(m string) string {
		href := m
		if !strings.Contains(href, "://") && !strings.HasPrefix(href, "mailto:") {
			href = "http://" + href
		}
		return `<a href="` + href + `">` + m + `</a>`
	})
}

// replaceOutsideAnchors is ReplaceAllStringFunc restricted to segments
// that the e-mail step did not already turn into anchors.
func replaceOutsideAnchors(s string, re *regexp.Regexp, fn func(string) string) string {
	return mapOutsideAnchors(s, func(seg string) string {
		return re.ReplaceAllStringFunc(seg, fn)
	})
}
