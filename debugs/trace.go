package debugs

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/reusee/chrono/chronovm"
)

// TraceGlobals binds a full execution of program for inspection:
// program, registers, trace, output, and run(a) returning the output of a
// fresh run with register A replaced.
func TraceGlobals(program chronovm.Program, registers chronovm.Registers) (map[string]any, error) {
	snapshots, err := chronovm.Trace(program, registers)
	if err != nil {
		return nil, err
	}
	var output []int
	for _, snapshot := range snapshots {
		if snapshot.HasOutput {
			output = append(output, snapshot.Emitted)
		}
	}
	return map[string]any{
		"program":   program,
		"registers": registers,
		"trace":     snapshots,
		"output":    output,
		"run": func(a int64) string {
			regs := registers.Clone()
			regs.A = big.NewInt(a)
			res, err := chronovm.Run(program, regs)
			if err != nil {
				return err.Error()
			}
			strs := make([]string, len(res.Output))
			for i, digit := range res.Output {
				strs[i] = strconv.Itoa(digit)
			}
			return strings.Join(strs, ",")
		},
	}, nil
}
