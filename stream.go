// FILE: configfile/stream.go
package configfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// The stream codec transfers a section tree between cooperating processes
// over an ordered, reliable byte stream. Each section is written in
// preorder: name, tag-pair count followed by the ordered tag/value pairs,
// subsection count, then each subsection in order. Counts and string
// lengths are unsigned varints; strings are raw UTF-8 bytes.

func writeStreamString(bw *bufio.Writer, s string) error {
	if _, err := bw.Write(binary.AppendUvarint(nil, uint64(len(s)))); err != nil {
		return err
	}
	_, err := bw.WriteString(s)
	return err
}

func readStreamString(br *bufio.Reader) (string, error) {
	n, err := binary.ReadUvarint(br)
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(br, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func writeStreamCount(bw *bufio.Writer, n int) error {
	_, err := bw.Write(binary.AppendUvarint(nil, uint64(n)))
	return err
}

// WriteStream serializes the section's subtree onto w.
func WriteStream(w io.Writer, s *Section) error {
	bw := bufio.NewWriter(w)
	if err := writeStreamSection(bw, s); err != nil {
		return err
	}
	return bw.Flush()
}

func writeStreamSection(bw *bufio.Writer, s *Section) error {
	if err := writeStreamString(bw, s.name); err != nil {
		return err
	}
	tags := s.Tags()
	if err := writeStreamCount(bw, len(tags)); err != nil {
		return err
	}
	for _, tv := range tags {
		if err := writeStreamString(bw, tv.Tag); err != nil {
			return err
		}
		if err := writeStreamString(bw, tv.Value); err != nil {
			return err
		}
	}
	subs := s.Subsections()
	if err := writeStreamCount(bw, len(subs)); err != nil {
		return err
	}
	for _, sub := range subs {
		if err := writeStreamSection(bw, sub); err != nil {
			return err
		}
	}
	return nil
}

// ReadStream reconstructs a section tree previously written by WriteStream.
// The returned tree is an independent copy with clear edit flags; it shares
// no state with the sender's tree.
func ReadStream(r io.Reader) (*Section, error) {
	br := bufio.NewReader(r)
	root, err := readStreamSection(br, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read section stream: %w", err)
	}
	root.ClearEditFlag()
	return root, nil
}

func readStreamSection(br *bufio.Reader, parent *Section) (*Section, error) {
	name, err := readStreamString(br)
	if err != nil {
		return nil, err
	}
	s := newSection(parent, name)
	tagCount, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < tagCount; i++ {
		tag, err := readStreamString(br)
		if err != nil {
			return nil, err
		}
		value, err := readStreamString(br)
		if err != nil {
			return nil, err
		}
		s.entries = append(s.entries, entry{tv: &TagValue{Tag: tag, Value: value}})
	}
	subCount, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, err
	}
	for i := uint64(0); i < subCount; i++ {
		sub, err := readStreamSection(br, s)
		if err != nil {
			return nil, err
		}
		s.entries = append(s.entries, entry{sub: sub})
	}
	return s, nil
}
