package sgf

import (
	"fmt"
	"regexp"

	sgferrors "sgf_keeper/internal/errors"
)

var openingShape = regexp.MustCompile(`^\s*\(\s*;`)

// errorChecker runs once on the raw input before the stream is built.
type errorChecker interface {
	check(text string) error
}

type strictChecker struct{}

func (strictChecker) check(text string) error {
	if openingShape.MatchString(text) {
		return nil
	}
	head := text
	if len(head) > 2 {
		head = head[:2]
	}
	return fmt.Errorf("%w: the first two non-whitespace characters should be (; but they were %q instead",
		sgferrors.ErrMalformedInput, head)
}

type laxChecker struct{}

func (laxChecker) check(string) error { return nil }

func checkerFor(strict bool) errorChecker {
	if strict {
		return strictChecker{}
	}
	return laxChecker{}
}
