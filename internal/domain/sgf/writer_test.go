package sgf_test

import (
	"bytes"
	"errors"

	. "gopkg.in/check.v1"

	"sgf_keeper/internal/domain/sgf"
	sgferrors "sgf_keeper/internal/errors"
)

type WriterS struct{}

var _ = Suite(&WriterS{})

func (s *WriterS) TestIndentation(c *C) {
	cases := []struct {
		in, out string
	}{
		{"(;FF[4])", "(\n  ;FF[4]\n)"},
		{"(;FF[4]PW[Cho Chikun])", "(\n  ;FF[4]\n  PW[Cho Chikun]\n)"},
		{"(;FF[4];PB[qq])", "(\n  ;FF[4]\n  ;PB[qq]\n)"},
		{"(;FF[4](;PB[qq])(;PB[qa]))", "(\n  ;FF[4]\n  (\n    ;PB[qq]\n  )\n  (\n    ;PB[qa]\n  )\n)"},
	}
	for _, tc := range cases {
		col := mustParse(c, tc.in)
		c.Check(sgf.Write(col), Equals, tc.out, Commentf(tc.in))
		c.Check(sgf.WriteTree(col.Trees[0]), Equals, tc.out, Commentf(tc.in))
	}
}

func (s *WriterS) TestNestedBranches(c *C) {
	col := mustParse(c, "(;FF[4];B[aa](;W[bb](;B[cc])(;B[dd]))(;W[ee]))")
	expected := `(
  ;FF[4]
  ;B[aa]
  (
    ;W[bb]
    (
      ;B[cc]
    )
    (
      ;B[dd]
    )
  )
  (
    ;W[ee]
  )
)`
	c.Assert(sgf.Write(col), Equals, expected)
}

func (s *WriterS) TestMultiValueAndEmptyNode(c *C) {
	col := mustParse(c, "(;AB[aa] [bb];)")
	c.Assert(sgf.Write(col), Equals, "(\n  ;AB[aa][bb]\n  ;\n)")
}

func (s *WriterS) TestTwoTrees(c *C) {
	col := mustParse(c, "(;FF[4])(;FF[4])")
	c.Assert(sgf.Write(col), Equals, "(\n  ;FF[4]\n)\n(\n  ;FF[4]\n)")
}

func (s *WriterS) TestCommentReescaped(c *C) {
	col := mustParse(c, `(;C[a\]b])`)
	out := sgf.Write(col)
	c.Assert(out, Equals, "(\n  ;C[a\\]b]\n)")
	again := mustParse(c, out)
	c.Assert(again.Equal(col), Equals, true)
}

func (s *WriterS) TestRoundTrip(c *C) {
	inputs := []string{
		"(;FF[4])(;FF[4])",
		"(;FF[4]C[root](;B[aa];W[bb]C[x\\]y])(;B[cc]AB[a][b]))",
		`(;C[trailing\\]])`,
		readSample(c),
	}
	for _, in := range inputs {
		col := mustParse(c, in)
		out := sgf.Write(col)
		again := mustParse(c, out)
		c.Check(again.Equal(col), Equals, true, Commentf(in))
		c.Check(sgf.Write(again), Equals, out, Commentf(in))
	}
}

func (s *WriterS) TestWriteTo(c *C) {
	col := mustParse(c, "(;FF[4])")
	var buf bytes.Buffer
	n, err := sgf.WriteTo(&buf, col)
	c.Assert(err, IsNil)
	c.Assert(n, Equals, int64(buf.Len()))
	c.Assert(buf.String(), Equals, "(\n  ;FF[4]\n)")
}

func (s *WriterS) TestEmptyCollection(c *C) {
	col := mustParse(c, "garbage", sgf.Lax())
	c.Assert(col.Trees, HasLen, 0)
	c.Check(sgf.Write(col), Equals, "")

	_, err := sgf.Parse(sgf.Write(col))
	c.Check(errors.Is(err, sgferrors.ErrMalformedInput), Equals, true)

	again := mustParse(c, sgf.Write(col), sgf.Lax())
	c.Check(again.Equal(col), Equals, true)
}
