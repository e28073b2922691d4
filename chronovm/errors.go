package chronovm

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrDecode           = errors.New("decode error")
	ErrDivisionExponent = errors.New("negative division exponent")
	ErrStepLimit        = errors.New("step limit exceeded")
)

type DecodeError struct {
	PC      int
	Op      int
	Operand int
	Reason  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode at pc %d (op %d, operand %d): %s", e.PC, e.Op, e.Operand, e.Reason)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

type DivisionExponentError struct {
	Op       OpCode
	Exponent *big.Int
}

func (e *DivisionExponentError) Error() string {
	return fmt.Sprintf("%s: exponent %s", e.Op, e.Exponent)
}

func (e *DivisionExponentError) Is(target error) bool {
	return target == ErrDivisionExponent
}
