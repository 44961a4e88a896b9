// FILE: configfile/parse.go
package configfile

import (
	"bufio"
	"io"
	"strings"
)

// The text grammar is line-oriented: a section body is a sequence of
// entries, each either a subsection introducer "name {" followed by the
// subsection's entries and a closing "}", or a tag/value line "tag value".
// A '#' outside quotes starts a comment running to end of line. Tokens
// containing whitespace or one of the reserved characters { } # " are
// written quoted, with embedded quotes doubled.

type token struct {
	text string
	line int
	// punct is '{' or '}' for the structural tokens, 0 for names, tags,
	// and values (including quoted ones).
	punct byte
}

// tokenize splits one line into tokens, honoring quotes and comments.
// An unterminated quote is a syntax error; quoted tokens never span lines.
func tokenize(line string, lineNumber int, fileName string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '#':
			return tokens, nil
		case c == '{' || c == '}':
			tokens = append(tokens, token{text: string(c), line: lineNumber, punct: c})
			i++
		case c == '"':
			var sb strings.Builder
			i++
			closed := false
			for i < len(line) {
				if line[i] == '"' {
					if i+1 < len(line) && line[i+1] == '"' {
						sb.WriteByte('"')
						i += 2
						continue
					}
					i++
					closed = true
					break
				}
				sb.WriteByte(line[i])
				i++
			}
			if !closed {
				return nil, &MalformedFileError{File: fileName, Line: lineNumber, Msg: "unterminated quoted value"}
			}
			tokens = append(tokens, token{text: sb.String(), line: lineNumber})
		default:
			start := i
			for i < len(line) && !strings.ContainsRune(" \t\r{}#\"", rune(line[i])) {
				i++
			}
			tokens = append(tokens, token{text: line[start:i], line: lineNumber})
		}
	}
	return tokens, nil
}

// Parse reads configuration text from r and returns the resulting section
// tree. fileName is used only for error reporting. The returned tree's edit
// flags are clear.
func Parse(r io.Reader, fileName string) (*Section, error) {
	root := NewSection()
	current := root
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		tokens, err := tokenize(scanner.Text(), lineNumber, fileName)
		if err != nil {
			return nil, err
		}
		current, err = parseLine(current, tokens, fileName)
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if lineNumber == 0 {
		lineNumber = 1
	}
	if current.parent != nil {
		return nil, &MalformedFileError{File: fileName, Line: lineNumber, Msg: "unclosed section '" + current.name + "' at end of file"}
	}

	root.ClearEditFlag()
	return root, nil
}

// parseLine consumes one line's tokens against the current section and
// returns the section the next line starts in. Only the '{' and '}'
// structure tokens carry across lines; a tag/value entry must be complete
// on its own line, and an unquoted value that spills into further tokens is
// an error rather than a second bogus pair.
func parseLine(current *Section, tokens []token, fileName string) (*Section, error) {
	sawValue := false
	i := 0
	for i < len(tokens) {
		t := tokens[i]
		switch t.punct {
		case '{':
			return nil, &MalformedFileError{File: fileName, Line: t.line, Msg: "'{' without section name"}
		case '}':
			if current.parent == nil {
				return nil, &MalformedFileError{File: fileName, Line: t.line, Msg: "'}' without matching open section"}
			}
			current = current.parent
			i++
		default:
			if sawValue {
				return nil, &MalformedFileError{File: fileName, Line: t.line, Msg: "unexpected token '" + t.text + "' after value (quote values containing whitespace)"}
			}
			if i+1 >= len(tokens) {
				return nil, &MalformedFileError{File: fileName, Line: t.line, Msg: "tag '" + t.text + "' without value"}
			}
			next := tokens[i+1]
			switch next.punct {
			case '{':
				current = current.AddSubsection(t.text)
			case '}':
				return nil, &MalformedFileError{File: fileName, Line: next.line, Msg: "tag '" + t.text + "' without value"}
			default:
				current.AddTagValue(t.text, next.text)
				sawValue = true
			}
			i += 2
		}
	}
	return current, nil
}

// ParseString parses configuration text held in a string.
func ParseString(text string) (*Section, error) {
	return Parse(strings.NewReader(text), "<string>")
}
