package chronovm

import (
	"fmt"
	"math/big"
)

// Registers holds the three unbounded registers. A nil field reads as zero.
type Registers struct {
	A *big.Int
	B *big.Int
	C *big.Int
}

func NewRegisters(a, b, c int64) Registers {
	return Registers{
		A: big.NewInt(a),
		B: big.NewInt(b),
		C: big.NewInt(c),
	}
}

func (r Registers) Clone() Registers {
	return Registers{
		A: cloneInt(r.A),
		B: cloneInt(r.B),
		C: cloneInt(r.C),
	}
}

func (r Registers) Equal(other Registers) bool {
	return r.a().Cmp(other.a()) == 0 &&
		r.b().Cmp(other.b()) == 0 &&
		r.c().Cmp(other.c()) == 0
}

func (r Registers) String() string {
	return fmt.Sprintf("A=%s B=%s C=%s", r.a(), r.b(), r.c())
}

func (r *Registers) a() *big.Int {
	if r.A == nil {
		return smallInts[0]
	}
	return r.A
}

func (r *Registers) b() *big.Int {
	if r.B == nil {
		return smallInts[0]
	}
	return r.B
}

func (r *Registers) c() *big.Int {
	if r.C == nil {
		return smallInts[0]
	}
	return r.C
}

func cloneInt(i *big.Int) *big.Int {
	if i == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i)
}
