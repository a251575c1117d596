package model

import "github.com/pkg/errors"

var (
	ErrZeroDenominator  = errors.New("ratio denominator is zero")
	ErrNonPositiveRatio = errors.New("ratio is not strictly positive")
	ErrNonFiniteCents   = errors.New("cents value is not finite")
	ErrUnsetNote        = errors.New("note has no value")

	ErrMultilineDescription = errors.New("description spans more than one line")
	ErrCommentDescription   = errors.New("description starts with the comment marker")
)
