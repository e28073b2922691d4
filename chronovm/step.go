package chronovm

import "math/big"

type State struct {
	Registers Registers
	PC        int
}

type StepResult struct {
	State       State
	Instruction Instruction
	Emitted     int
	HasOutput   bool
}

// Step executes the instruction at state.PC and returns the successor state.
// The input state is not modified.
func Step(program Program, state State) (ret StepResult, err error) {
	inst, err := Decode(program, state.PC)
	if err != nil {
		return ret, err
	}
	ret.Instruction = inst
	ret.State = State{
		Registers: state.Registers.Clone(),
		PC:        state.PC,
	}
	ret.Emitted, ret.HasOutput, err = execute(inst, &ret.State)
	if err != nil {
		return StepResult{}, err
	}
	return ret, nil
}

// execute never mutates the integers referenced by state; results are stored
// as fresh values, so register values may be shared with snapshots.
func execute(inst Instruction, state *State) (digit int, emitted bool, err error) {
	regs := &state.Registers
	next := state.PC + 2

	switch inst.Op {

	case OpAdv:
		q, err := divPow2(inst.Op, regs.a(), inst.Operand.Resolve(regs))
		if err != nil {
			return 0, false, err
		}
		regs.A = q

	case OpBxl:
		regs.B = new(big.Int).Xor(regs.b(), inst.Operand.Resolve(regs))

	case OpBst:
		regs.B = mod8(inst.Operand.Resolve(regs))

	case OpJnz:
		if regs.a().Sign() != 0 {
			next = inst.Operand.Value
		}

	case OpBxc:
		regs.B = new(big.Int).Xor(regs.b(), regs.c())

	case OpOut:
		digit = int(mod8(inst.Operand.Resolve(regs)).Int64())
		emitted = true

	case OpBdv:
		q, err := divPow2(inst.Op, regs.a(), inst.Operand.Resolve(regs))
		if err != nil {
			return 0, false, err
		}
		regs.B = q

	case OpCdv:
		q, err := divPow2(inst.Op, regs.a(), inst.Operand.Resolve(regs))
		if err != nil {
			return 0, false, err
		}
		regs.C = q

	}

	state.PC = next
	return
}

var eight = big.NewInt(8)

// mod8 is the euclidean modulus, always in 0..7.
func mod8(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, eight)
}

// divPow2 computes n / 2^k truncated toward zero.
func divPow2(op OpCode, n, k *big.Int) (*big.Int, error) {
	if k.Sign() < 0 {
		return nil, &DivisionExponentError{
			Op:       op,
			Exponent: new(big.Int).Set(k),
		}
	}
	if !k.IsUint64() || k.Uint64() >= uint64(n.BitLen()) {
		return new(big.Int), nil
	}
	shift := uint(k.Uint64())
	if n.Sign() >= 0 {
		return new(big.Int).Rsh(n, shift), nil
	}
	q := new(big.Int).Neg(n)
	q.Rsh(q, shift)
	return q.Neg(q), nil
}
