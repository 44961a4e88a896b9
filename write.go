// FILE: configfile/write.go
package configfile

import (
	"bufio"
	"io"
	"strings"
)

// needsQuoting reports whether a token must be quoted to survive a
// round-trip through the parser.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " \t{}#\"")
}

// quoteToken renders a token in its on-disk form, quoting and doubling
// embedded quotes when necessary.
func quoteToken(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Write serializes the section's subtree as configuration text. Entries are
// emitted in declaration order, tags and subsections interleaved exactly as
// they were inserted, indented one tab per nesting level. The indentation is
// cosmetic; the parser ignores it.
func Write(w io.Writer, s *Section) error {
	bw := bufio.NewWriter(w)
	if err := writeSection(bw, s, 0); err != nil {
		return err
	}
	return bw.Flush()
}

func writeSection(bw *bufio.Writer, s *Section, depth int) error {
	indent := strings.Repeat("\t", depth)
	for _, e := range s.entries {
		if e.tv != nil {
			if _, err := bw.WriteString(indent + quoteToken(e.tv.Tag) + " " + quoteToken(e.tv.Value) + "\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := bw.WriteString(indent + quoteToken(e.sub.name) + " {\n"); err != nil {
			return err
		}
		if err := writeSection(bw, e.sub, depth+1); err != nil {
			return err
		}
		if _, err := bw.WriteString(indent + "}\n"); err != nil {
			return err
		}
	}
	return nil
}

// WriteString serializes the section's subtree to a string.
func WriteString(s *Section) string {
	var sb strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&sb, s)
	return sb.String()
}
