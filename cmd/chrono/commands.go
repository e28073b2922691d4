package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/reconstructs"
	"github.com/reusee/chrono/storages"
	"gopkg.in/yaml.v3"
)

func joinDigits(digits []int) string {
	strs := make([]string, len(digits))
	for i, digit := range digits {
		strs[i] = strconv.Itoa(digit)
	}
	return strings.Join(strs, ",")
}

func writeList(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func writeOutput(w io.Writer, spec chronoconfigs.ProgramSpec) error {
	res, err := chronovm.Run(spec.Program, spec.Registers)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, joinDigits(res.Output))
	return err
}

func writeDisasm(w io.Writer, spec chronoconfigs.ProgramSpec) error {
	instructions, err := chronovm.Disassemble(spec.Program)
	if err != nil {
		return err
	}
	for i, inst := range instructions {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", i*2, inst); err != nil {
			return err
		}
	}
	return nil
}

type traceEntry struct {
	Step        int    `yaml:"step"`
	PC          int    `yaml:"pc"`
	Instruction string `yaml:"instruction"`
	A           string `yaml:"a"`
	B           string `yaml:"b"`
	C           string `yaml:"c"`
	NextPC      int    `yaml:"next_pc"`
	Out         *int   `yaml:"out,omitempty"`
}

func writeTrace(w io.Writer, spec chronoconfigs.ProgramSpec) error {
	snapshots, err := chronovm.Trace(spec.Program, spec.Registers)
	if err != nil {
		return err
	}
	entries := make([]traceEntry, 0, len(snapshots))
	for _, snapshot := range snapshots {
		entry := traceEntry{
			Step:        snapshot.Step,
			PC:          snapshot.PC,
			Instruction: snapshot.Instruction.String(),
			A:           snapshot.Registers.A.String(),
			B:           snapshot.Registers.B.String(),
			C:           snapshot.Registers.C.String(),
			NextPC:      snapshot.NextPC,
		}
		if snapshot.HasOutput {
			out := snapshot.Emitted
			entry.Out = &out
		}
		entries = append(entries, entry)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return err
	}
	return encoder.Close()
}

func reconstructCached(
	ctx context.Context,
	w io.Writer,
	spec chronoconfigs.ProgramSpec,
	reconstruct reconstructs.Reconstruct,
	openStore storages.OpenStore,
	logger logs.Logger,
) error {

	store, err := openStore(ctx)
	if errors.Is(err, storages.ErrStoreDisabled) {
		store = nil
	} else if err != nil {
		return err
	} else {
		defer store.Close()
	}

	key := storages.Key{
		Program: spec.Program,
		B:       spec.Registers.B,
		C:       spec.Registers.C,
		Target:  spec.Target,
	}

	if store != nil {
		a, ok, err := store.LookupSolution(ctx, key)
		if err != nil {
			return err
		}
		if ok {
			logger.InfoContext(ctx, "stored solution",
				"name", spec.Name,
				"a", a.String(),
			)
			_, err = fmt.Fprintln(w, a.String())
			return err
		}
	}

	a, err := reconstruct(ctx, spec.Program, spec.Registers, spec.Target)
	if err != nil {
		return err
	}

	if store != nil {
		if err := store.SaveSolution(ctx, storages.Solution{
			Key: key,
			A:   a,
		}); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(w, a.String())
	return err
}

func writeSolutions(
	ctx context.Context,
	w io.Writer,
	spec chronoconfigs.ProgramSpec,
	openStore storages.OpenStore,
) error {
	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()
	solutions, err := store.ListSolutions(ctx, spec.Program)
	if err != nil {
		return err
	}
	for _, solution := range solutions {
		if _, err := fmt.Fprintf(w, "b=%s c=%s target=%s a=%s\n",
			solution.B,
			solution.C,
			joinDigits(solution.Target),
			solution.A,
		); err != nil {
			return err
		}
	}
	return nil
}
