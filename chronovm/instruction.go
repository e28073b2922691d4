package chronovm

type Instruction struct {
	Op      OpCode
	Operand Operand
}

func (i Instruction) String() string {
	if i.Operand.Kind == OperandNone {
		return i.Op.String()
	}
	return i.Op.String() + " " + i.Operand.String()
}

func Decode(program Program, pc int) (inst Instruction, err error) {
	if !program.inBounds(pc) {
		return inst, &DecodeError{
			PC:      pc,
			Op:      -1,
			Operand: -1,
			Reason:  "pc out of range",
		}
	}

	rawOp := program.code[pc]
	rawOperand := program.code[pc+1]
	if rawOp < 0 || rawOp >= len(opNames) {
		return inst, &DecodeError{
			PC:      pc,
			Op:      rawOp,
			Operand: rawOperand,
			Reason:  "unknown opcode",
		}
	}

	inst.Op = OpCode(rawOp)
	switch inst.Op.Mode() {

	case ModeNone:
		inst.Operand = Operand{Kind: OperandNone}

	case ModeLiteral:
		if rawOperand < 0 || rawOperand > 7 {
			return inst, &DecodeError{
				PC:      pc,
				Op:      rawOp,
				Operand: rawOperand,
				Reason:  "literal operand out of range",
			}
		}
		inst.Operand = Literal(rawOperand)

	case ModeCombo:
		operand, ok := decodeCombo(rawOperand)
		if !ok {
			return inst, &DecodeError{
				PC:      pc,
				Op:      rawOp,
				Operand: rawOperand,
				Reason:  "invalid combo operand",
			}
		}
		inst.Operand = operand

	}

	return inst, nil
}

// Disassemble decodes every even-aligned slot of program.
func Disassemble(program Program) ([]Instruction, error) {
	ret := make([]Instruction, 0, program.Len()/2)
	for pc := 0; program.inBounds(pc); pc += 2 {
		inst, err := Decode(program, pc)
		if err != nil {
			return nil, err
		}
		ret = append(ret, inst)
	}
	return ret, nil
}
