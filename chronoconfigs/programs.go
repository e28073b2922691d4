package chronoconfigs

import (
	"errors"
	"fmt"
	"maps"
	"math/big"
	"slices"
	"strconv"

	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/chrono/configs"
)

// ProgramSpec is a named program definition:
//
//	programs: day17: {
//		a: 729
//		program: [0, 1, 5, 4, 3, 0]
//	}
type ProgramSpec struct {
	Name      string
	Program   chronovm.Program
	Registers chronovm.Registers
	// Target defaults to the program's raw values.
	Target []int
}

type GetProgram func(name string) (ProgramSpec, error)

func (Module) GetProgram(
	loader configs.Loader,
) GetProgram {
	return func(name string) (spec ProgramSpec, err error) {
		defer func() {
			if err != nil {
				err = fmt.Errorf("program %s: %w", name, err)
			}
		}()

		prefix := "programs." + strconv.Quote(name) + "."

		var raw []int
		if err := loader.AssignFirst(prefix+"program", &raw); err != nil {
			return spec, err
		}
		program, err := chronovm.NewProgram(raw)
		if err != nil {
			return spec, err
		}

		var regs [3]*big.Int
		for i, field := range []string{"a", "b", "c"} {
			v, err := loader.FirstBigInt(prefix + field)
			if err != nil {
				return spec, err
			}
			if v == nil {
				v = new(big.Int)
			}
			regs[i] = v
		}

		target := raw
		if err := loader.AssignFirst(prefix+"target", &target); err != nil && !errors.Is(err, configs.ErrValueNotFound) {
			return spec, err
		}

		return ProgramSpec{
			Name:    name,
			Program: program,
			Registers: chronovm.Registers{
				A: regs[0],
				B: regs[1],
				C: regs[2],
			},
			Target: target,
		}, nil
	}
}

type ProgramNames func() []string

func (Module) ProgramNames(
	loader configs.Loader,
) ProgramNames {
	return func() []string {
		names := make(map[string]bool)
		for programs := range configs.All[map[string]struct {
			Program []int `json:"program"`
		}](loader, "programs") {
			for name := range programs {
				names[name] = true
			}
		}
		return slices.Sorted(maps.Keys(names))
	}
}
