package chronovm

import "fmt"

type OpCode uint8

const (
	OpAdv OpCode = iota
	OpBxl
	OpBst
	OpJnz
	OpBxc
	OpOut
	OpBdv
	OpCdv
)

var opNames = [...]string{
	OpAdv: "adv",
	OpBxl: "bxl",
	OpBst: "bst",
	OpJnz: "jnz",
	OpBxc: "bxc",
	OpOut: "out",
	OpBdv: "bdv",
	OpCdv: "cdv",
}

func (o OpCode) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("op(%d)", uint8(o))
}

type AddressingMode uint8

const (
	ModeCombo AddressingMode = iota
	ModeLiteral
	ModeNone
)

func (o OpCode) Mode() AddressingMode {
	switch o {
	case OpBxl, OpJnz:
		return ModeLiteral
	case OpBxc:
		return ModeNone
	}
	return ModeCombo
}
