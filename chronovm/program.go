package chronovm

import (
	"slices"
	"strconv"
	"strings"
)

// Program is an immutable sequence of raw 3-bit values, two per instruction slot.
type Program struct {
	code []int
}

func NewProgram(raw []int) (Program, error) {
	if len(raw)%2 != 0 {
		return Program{}, &DecodeError{
			PC:      len(raw) - 1,
			Op:      raw[len(raw)-1],
			Operand: -1,
			Reason:  "odd program length",
		}
	}
	for i, v := range raw {
		if v < 0 || v > 7 {
			pc := i - i%2
			return Program{}, &DecodeError{
				PC:      pc,
				Op:      raw[pc],
				Operand: raw[pc+1],
				Reason:  "value out of 3-bit range: " + strconv.Itoa(v),
			}
		}
	}
	return Program{
		code: slices.Clone(raw),
	}, nil
}

func MustProgram(raw ...int) Program {
	p, err := NewProgram(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Program) Len() int {
	return len(p.code)
}

func (p Program) Raw() []int {
	return slices.Clone(p.code)
}

// inBounds reports whether a full instruction slot starts at pc.
func (p Program) inBounds(pc int) bool {
	return pc >= 0 && pc+1 < len(p.code)
}

func (p Program) String() string {
	var b strings.Builder
	for i, v := range p.code {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
