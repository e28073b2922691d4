package chronovm

import (
	"math/big"
	"strconv"
)

type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandLiteral
	OperandA
	OperandB
	OperandC
)

// Operand is a decoded operand. Combo operands are resolved to a literal or a
// register reference once, at decode time.
type Operand struct {
	Kind  OperandKind
	Value int // only meaningful for OperandLiteral
}

func Literal(v int) Operand {
	return Operand{
		Kind:  OperandLiteral,
		Value: v,
	}
}

func decodeCombo(raw int) (Operand, bool) {
	switch {
	case raw >= 0 && raw <= 3:
		return Literal(raw), true
	case raw == 4:
		return Operand{Kind: OperandA}, true
	case raw == 5:
		return Operand{Kind: OperandB}, true
	case raw == 6:
		return Operand{Kind: OperandC}, true
	}
	return Operand{}, false
}

// Resolve returns the operand value against regs. The result must not be mutated.
func (o Operand) Resolve(regs *Registers) *big.Int {
	switch o.Kind {
	case OperandA:
		return regs.a()
	case OperandB:
		return regs.b()
	case OperandC:
		return regs.c()
	case OperandLiteral:
		return smallInts[o.Value]
	}
	return smallInts[0]
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandA:
		return "A"
	case OperandB:
		return "B"
	case OperandC:
		return "C"
	case OperandLiteral:
		return strconv.Itoa(o.Value)
	}
	return ""
}

var smallInts = func() (ret [8]*big.Int) {
	for i := range ret {
		ret[i] = big.NewInt(int64(i))
	}
	return
}()
