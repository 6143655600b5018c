package xmlwriter

import (
	"fmt"
	"regexp"
	"strings"
)

// controlEscapes holds Excel's _xHHHH_ form for the characters below 0x20.
// Tab and newline are left alone in element text.
var controlEscapes = func() (out [0x20]string) {
	for c := range out {
		if c == '\t' || c == '\n' {
			continue
		}
		out[c] = fmt.Sprintf("_x%04X_", c)
	}
	return
}()

// excelEscapes matches literal strings which look like Excel's own control
// character escapes.
var excelEscapes = regexp.MustCompile(`(_x[0-9a-fA-F]{4}_)`)

func attributeEntity(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '"':
		return "&quot;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '\n':
		return "&#xA;"
	}
	return ""
}

// NOTE: double quotes and newlines are not escaped by Excel in element text.
func dataEntity(c byte) string {
	switch {
	case c == '&':
		return "&amp;"
	case c == '<':
		return "&lt;"
	case c == '>':
		return "&gt;"
	case c < 0x20:
		return controlEscapes[c]
	}
	return ""
}

func urlEntity(c byte) string {
	switch c {
	case '%':
		return "%25"
	case '"':
		return "%22"
	case ' ':
		return "%20"
	case '<':
		return "%3c"
	case '>':
		return "%3e"
	case '[':
		return "%5b"
	case ']':
		return "%5d"
	case '^':
		return "%5e"
	case '`':
		return "%60"
	case '{':
		return "%7b"
	case '}':
		return "%7d"
	}
	return ""
}

// escape replaces every byte for which entity returns non empty string. All
// escaped characters are ASCII so walking bytes never splits UTF-8 sequences.
// Input is returned as is when nothing has to be replaced.
func escape(s string, entity func(byte) string) string {
	first := -1
	for i := 0; i < len(s); i++ {
		if entity(s[i]) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s) + 16)
	sb.WriteString(s[:first])
	for i := first; i < len(s); i++ {
		if e := entity(s[i]); e != "" {
			sb.WriteString(e)
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// EscapeAttributes escapes attribute value the way Excel does.
func EscapeAttributes(s string) string {
	return escape(s, attributeEntity)
}

// EscapeData escapes element text the way Excel does: markup characters are
// replaced with entities and control characters (except tab and newline) with
// _xHHHH_ sequences.
func EscapeData(s string) string {
	return escape(s, dataEntity)
}

// EscapeURL percent-encodes the small set of characters Excel escapes in
// hyperlinks.
func EscapeURL(s string) string {
	return escape(s, urlEntity)
}

// EscapeEscapes protects literal "_xHHHH_" sequences in user text by encoding
// their leading underscore, so "_x0041_" becomes "_x005F_x0041_".
func EscapeEscapes(s string) string {
	if !strings.Contains(s, "_x") {
		return s
	}
	return excelEscapes.ReplaceAllString(s, "_x005F$1")
}
