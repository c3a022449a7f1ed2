package sgf

import (
	check "gopkg.in/check.v1"
)

type StreamS struct{}

var _ = check.Suite(&StreamS{})

func (s *StreamS) TestPeekPushesBackOneByte(c *check.C) {
	st := NewStream("  \n\t;x")
	b, ok := st.PeekSkipWhitespace()
	c.Assert(ok, check.Equals, true)
	c.Assert(b, check.Equals, byte(';'))

	b, ok = st.Next()
	c.Assert(ok, check.Equals, true)
	c.Assert(b, check.Equals, byte(';'))

	b, _ = st.Next()
	c.Assert(b, check.Equals, byte('x'))
	c.Assert(st.AtEnd(), check.Equals, true)

	_, ok = st.Next()
	c.Assert(ok, check.Equals, false)
}

func (s *StreamS) TestPeekAtEndOfWhitespace(c *check.C) {
	st := NewStream("   ")
	_, ok := st.PeekSkipWhitespace()
	c.Assert(ok, check.Equals, false)
	c.Assert(st.AtEnd(), check.Equals, true)
}

func (s *StreamS) TestCleanRemovesEscapedBreaks(c *check.C) {
	c.Assert(clean(`a\\n\\rb\\r\\nc\\rd\\ne`), check.Equals, "abcde")
	c.Assert(clean("a\nb"), check.Equals, "a\nb")
}

func (s *StreamS) TestFormatLookup(c *check.C) {
	c.Assert(lookupFormat("C"), check.FitsTypeOf, commentFormat{})
	c.Assert(lookupFormat("c"), check.FitsTypeOf, commentFormat{})
	c.Assert(lookupFormat("Lb"), check.FitsTypeOf, multiValueFormat{})
	c.Assert(lookupFormat("CA"), check.FitsTypeOf, genericFormat{})
}

func (s *StreamS) TestCommentStillInside(c *check.C) {
	f := commentFormat{}
	c.Assert(f.stillInside(']', []byte(`a\`), nil), check.Equals, true)
	c.Assert(f.stillInside(']', []byte("a"), nil), check.Equals, false)
	c.Assert(f.stillInside(']', nil, nil), check.Equals, false)
	c.Assert(f.stillInside('x', nil, nil), check.Equals, true)
}
