package chronovm

// Machine executes one program against one register state. It is not safe
// for concurrent use; run independent machines for parallel evaluation.
type Machine struct {
	Program   Program
	Registers Registers
	PC        int
	Output    []int
	Steps     int
	MaxSteps  int // zero means unlimited
}

func NewMachine(program Program, registers Registers) *Machine {
	return &Machine{
		Program:   program,
		Registers: registers.Clone(),
	}
}

func (m *Machine) Halted() bool {
	return !m.Program.inBounds(m.PC)
}

func (m *Machine) step() (inst Instruction, digit int, emitted bool, err error) {
	if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
		return inst, 0, false, ErrStepLimit
	}
	inst, err = Decode(m.Program, m.PC)
	if err != nil {
		return
	}
	state := State{
		Registers: m.Registers,
		PC:        m.PC,
	}
	digit, emitted, err = execute(inst, &state)
	if err != nil {
		return
	}
	m.Registers = state.Registers
	m.PC = state.PC
	m.Steps++
	if emitted {
		m.Output = append(m.Output, digit)
	}
	return
}
