package sgf

import (
	"fmt"
	"io"

	sgferrors "sgf_keeper/internal/errors"
)

type options struct {
	strict bool
}

type Option func(*options)

// Strict selects the strict (default) or lax error policy.
func Strict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// Lax accepts any input and builds whatever tree shape it can.
func Lax() Option {
	return Strict(false)
}

// parser holds the state of one Parse call.
type parser struct {
	stream   *Stream
	strict   bool
	root     *Node
	current  *Node
	branches []*Node
}

// Parse reads SGF text into a Collection.
//
// In strict mode the input must open with "(;" and every ')' must close an
// open '('. A lax parse never fails: an extra ')' is ignored and branches
// still open at the end of input are kept as they are.
func Parse(text string, opts ...Option) (*Collection, error) {
	o := options{strict: true}
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkerFor(o.strict).check(text); err != nil {
		return nil, err
	}

	root := newNode()
	p := &parser{
		stream:  NewStream(text),
		strict:  o.strict,
		root:    root,
		current: root,
	}
	if err := p.run(); err != nil {
		return nil, err
	}

	c := &Collection{Trees: make([]*Tree, 0, len(root.children))}
	for _, n := range root.children {
		c.Trees = append(c.Trees, &Tree{Root: n})
	}
	return c, nil
}

// ParseReader reads r to the end and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sgf: %w", err)
	}
	return Parse(string(data), opts...)
}

func (p *parser) run() error {
	for !p.stream.AtEnd() {
		c, _ := p.stream.Next()
		switch c {
		case '(':
			p.openBranch()
		case ';':
			p.newNode()
			p.parseNodeData()
		case ')':
			if err := p.closeBranch(); err != nil {
				return err
			}
		}
	}
	if p.strict && len(p.branches) > 0 {
		return fmt.Errorf("%w: %d branch(es) left open at end of input",
			sgferrors.ErrUnbalancedBranch, len(p.branches))
	}
	return nil
}

func (p *parser) openBranch() {
	p.branches = append(p.branches, p.current)
}

func (p *parser) closeBranch() error {
	if len(p.branches) == 0 {
		if p.strict {
			return fmt.Errorf("%w: unexpected ')' at offset %d",
				sgferrors.ErrUnbalancedBranch, p.stream.pos-1)
		}
		return nil
	}
	last := len(p.branches) - 1
	p.current = p.branches[last]
	p.branches = p.branches[:last]
	return nil
}

func (p *parser) newNode() {
	n := newNode()
	p.current.addChild(n)
	p.current = n
}

func (p *parser) parseNodeData() {
	for p.stillInsideNode() {
		id := p.parseIdentity()
		p.current.set(id, p.parseValue(id))
	}
}

func (p *parser) stillInsideNode() bool {
	c, ok := p.stream.PeekSkipWhitespace()
	if !ok {
		return false
	}
	switch c {
	case ';', '(', ')':
		return false
	}
	return true
}

func (p *parser) parseIdentity() string {
	var id []byte
	for {
		c, ok := p.stream.Next()
		if !ok || c == '[' {
			break
		}
		if c != '\n' {
			id = append(id, c)
		}
	}
	return string(id)
}

func (p *parser) parseValue(id string) Value {
	format := lookupFormat(id)
	var raw []byte
	for {
		c, ok := p.stream.Next()
		if !ok || !format.stillInside(c, raw, p.stream) {
			break
		}
		raw = append(raw, c)
	}
	return format.transform(string(raw))
}
