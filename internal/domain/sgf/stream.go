package sgf

import "strings"

// escapedBreaks are removed from the input before streaming, longest first.
var escapedBreaks = []string{`\\n\\r`, `\\r\\n`, `\\r`, `\\n`}

// Stream is a byte cursor over cleaned SGF text with one byte of pushback.
type Stream struct {
	data []byte
	pos  int
}

// NewStream drops escaped line breaks from text and starts at offset 0.
func NewStream(text string) *Stream {
	return &Stream{data: []byte(clean(text))}
}

func clean(text string) string {
	for _, seq := range escapedBreaks {
		text = strings.ReplaceAll(text, seq, "")
	}
	return text
}

// AtEnd reports whether every byte has been consumed.
func (s *Stream) AtEnd() bool {
	return s.pos >= len(s.data)
}

// Next consumes one byte. ok is false once the input is exhausted.
func (s *Stream) Next() (c byte, ok bool) {
	if s.AtEnd() {
		return 0, false
	}
	c = s.data[s.pos]
	s.pos++
	return c, true
}

// PeekSkipWhitespace drops whitespace and returns the next significant byte
// without consuming it.
func (s *Stream) PeekSkipWhitespace() (byte, bool) {
	for {
		c, ok := s.Next()
		if !ok {
			return 0, false
		}
		if isSpace(c) {
			continue
		}
		s.pos--
		return c, true
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
