package main

import (
	"context"
	"math/big"
	"os"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/debugs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/modes"
	"github.com/reusee/chrono/reconstructs"
	"github.com/reusee/chrono/storages"
	"github.com/reusee/chrono/vars"
	"github.com/reusee/dscope"
)

type action int

const (
	actionNone action = iota
	actionRun
	actionTrace
	actionReconstruct
	actionDisasm
	actionTap
	actionSolutions
	actionList
)

var (
	todo        action
	programName string
)

func defineAction(name string, a action, desc string) {
	cmds.Define(name, cmds.Func(func(name string) {
		todo = a
		programName = name
	}).Desc(desc).Args("name"))
}

func init() {
	defineAction("run", actionRun, "print the output of a program")
	defineAction("trace", actionTrace, "print every executed instruction as yaml")
	defineAction("reconstruct", actionReconstruct, "find the smallest register A producing the target output")
	defineAction("disasm", actionDisasm, "print the instructions of a program")
	defineAction("tap", actionTap, "open a starlark repl with the trace bound")
	defineAction("solutions", actionSolutions, "print stored solutions of a program")
	cmds.Define("list", cmds.Func(func() {
		todo = actionList
	}).Desc("list configured programs"))
}

var aFlag = cmds.Var[*big.Int]("-a")

func main() {
	cmds.Execute(os.Args[1:])
	if todo == actionNone {
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	ctx := context.Background()

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		getProgram chronoconfigs.GetProgram,
		programNames chronoconfigs.ProgramNames,
		reconstruct reconstructs.Reconstruct,
		openStore storages.OpenStore,
		tap debugs.Tap,
	) {

		if todo == actionList {
			ce(writeList(os.Stdout, programNames()))
			return
		}

		spec, err := getProgram(programName)
		ce(err)
		spec.Registers.A = vars.FirstNonNil(*aFlag, spec.Registers.A)
		logger.DebugContext(ctx, "program",
			"name", spec.Name,
			"program", spec.Program.String(),
			"registers", spec.Registers.String(),
		)

		switch todo {

		case actionRun:
			ce(writeOutput(os.Stdout, spec))

		case actionTrace:
			ce(writeTrace(os.Stdout, spec))

		case actionReconstruct:
			ce(reconstructCached(ctx, os.Stdout, spec, reconstruct, openStore, logger))

		case actionDisasm:
			ce(writeDisasm(os.Stdout, spec))

		case actionSolutions:
			ce(writeSolutions(ctx, os.Stdout, spec, openStore))

		case actionTap:
			globals, err := debugs.TraceGlobals(spec.Program, spec.Registers)
			ce(err)
			tap(ctx, spec.Name, globals)

		}
	})
}
