package debugs

import (
	"testing"

	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestEvalTrace(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		globals, err := TraceGlobals(
			chronovm.MustProgram(0, 1, 5, 4, 3, 0),
			chronovm.NewRegisters(2024, 0, 0),
		)
		if err != nil {
			t.Fatal(err)
		}

		ret, err := eval(t.Context(), "test", `
n = len(trace)
digits = [s["Emitted"] for s in trace if s["HasOutput"]]
same = digits == output
last_a = trace[-1]["Registers"]["A"]
first = trace[0]["Instruction"]
big = registers["A"] * 1000000000000000000000
callable = type(run)
`, globals)
		if err != nil {
			t.Fatal(err)
		}

		expect := map[string]starlark.Value{
			"n":        starlark.MakeInt(33),
			"same":     starlark.True,
			"last_a":   starlark.MakeInt(0),
			"first":    starlark.String("adv 1"),
			"callable": starlark.String("builtin_function_or_method"),
		}
		for name, want := range expect {
			equal, err := starlark.Equal(ret[name], want)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("%s: got %v, want %v", name, ret[name], want)
			}
		}
		if str := ret["big"].String(); str != "2024000000000000000000000" {
			t.Fatalf("got %s", str)
		}
	})
}

func TestEvalError(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		eval Eval,
	) {
		_, err := eval(t.Context(), "bad", "x = undefined_name", nil)
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestTraceGlobalsDecodeError(t *testing.T) {
	_, err := TraceGlobals(chronovm.MustProgram(2, 7), chronovm.Registers{})
	if err == nil {
		t.Fatal("should error")
	}
}
