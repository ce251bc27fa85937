package viewmodel

import (
	"strings"

	"github.com/goliatone/go-layoutviz/pkg/viewnode"
)

// maxPermalinkLength is the exclusive upper bound on an encoded permalink.
// Longer encodings degrade to null so shared URLs stay within the limits
// browsers and proxies tolerate.
const maxPermalinkLength = 2000

const upperhex = "0123456789ABCDEF"

// permalinkNode derives the group's shareable permalink from its raw text.
// The permalink is best-effort decoration: opt-out and overflow both yield
// null rather than an error.
func permalinkNode(rawText string, omit bool) viewnode.Node {
	if omit {
		return viewnode.Null{}
	}
	encoded := encodePermalink(rawText)
	if len(encoded) >= maxPermalinkLength {
		return viewnode.Null{}
	}
	return viewnode.String(encoded)
}

// encodePermalink percent-encodes raw so that only ASCII alphanumerics
// survive unescaped. Every other byte becomes %XX with uppercase hex.
func encodePermalink(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isAlphanumeric(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}
	return b.String()
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
