package chronovm

type Snapshot struct {
	Step        int
	PC          int
	Instruction Instruction
	Registers   Registers
	NextPC      int
	Emitted     int
	HasOutput   bool
}

// Run executes until halt, yielding a snapshot after each instruction.
// An error is yielded at most once and ends the run.
func (m *Machine) Run(yield func(*Snapshot, error) bool) {
	for !m.Halted() {
		pc := m.PC
		inst, digit, emitted, err := m.step()
		if err != nil {
			yield(nil, err)
			return
		}
		if !yield(&Snapshot{
			Step:        m.Steps,
			PC:          pc,
			Instruction: inst,
			Registers:   m.Registers.Clone(),
			NextPC:      m.PC,
			Emitted:     digit,
			HasOutput:   emitted,
		}, nil) {
			return
		}
	}
}

func (m *Machine) Execute() error {
	for !m.Halted() {
		if _, _, _, err := m.step(); err != nil {
			return err
		}
	}
	return nil
}

// NextOutput runs until the next out instruction or halt.
func (m *Machine) NextOutput() (digit int, ok bool, err error) {
	for !m.Halted() {
		_, digit, emitted, err := m.step()
		if err != nil {
			return 0, false, err
		}
		if emitted {
			return digit, true, nil
		}
	}
	return 0, false, nil
}

type Result struct {
	Registers Registers
	Output    []int
	Steps     int
}

func Run(program Program, initial Registers) (ret Result, err error) {
	m := NewMachine(program, initial)
	if err := m.Execute(); err != nil {
		return ret, err
	}
	return Result{
		Registers: m.Registers,
		Output:    m.Output,
		Steps:     m.Steps,
	}, nil
}

func Trace(program Program, initial Registers) ([]Snapshot, error) {
	var ret []Snapshot
	m := NewMachine(program, initial)
	for snapshot, err := range m.Run {
		if err != nil {
			return ret, err
		}
		ret = append(ret, *snapshot)
	}
	return ret, nil
}
