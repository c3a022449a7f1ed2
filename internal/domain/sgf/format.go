package sgf

import "strings"

// multiValueIDs hold a list of bracket groups rather than one value.
var multiValueIDs = map[string]struct{}{
	"AW": {}, "AB": {}, "AE": {}, "AR": {}, "CR": {},
	"DD": {}, "LB": {}, "LN": {}, "MA": {}, "SL": {},
	"SQ": {}, "TR": {}, "VW": {}, "TB": {}, "TW": {},
}

const groupBoundary = "]["

// propertyFormat decides where a bracketed value ends and how the raw bytes
// become a Value.
type propertyFormat interface {
	stillInside(c byte, raw []byte, s *Stream) bool
	transform(raw string) Value
}

func lookupFormat(id string) propertyFormat {
	id = strings.ToUpper(id)
	if id == "C" {
		return commentFormat{}
	}
	if _, ok := multiValueIDs[id]; ok {
		return multiValueFormat{}
	}
	return genericFormat{}
}

// IsMultiValue reports whether id is read as a list of bracket groups.
func IsMultiValue(id string) bool {
	_, ok := multiValueIDs[strings.ToUpper(id)]
	return ok
}

type commentFormat struct{}

func (commentFormat) stillInside(c byte, raw []byte, _ *Stream) bool {
	return c != ']' || (len(raw) > 0 && raw[len(raw)-1] == '\\')
}

func (commentFormat) transform(raw string) Value {
	return Single(strings.ReplaceAll(raw, `\]`, "]"))
}

type multiValueFormat struct{}

// A ']' followed by '[' is kept, so groups stay joined by "][".
func (multiValueFormat) stillInside(c byte, _ []byte, s *Stream) bool {
	if c != ']' {
		return true
	}
	next, ok := s.PeekSkipWhitespace()
	return ok && next == '['
}

func (multiValueFormat) transform(raw string) Value {
	return List(strings.Split(raw, groupBoundary)...)
}

type genericFormat struct{}

func (genericFormat) stillInside(c byte, _ []byte, _ *Stream) bool {
	return c != ']'
}

func (genericFormat) transform(raw string) Value {
	return Single(raw)
}
