package reconstructs

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/modes"
	"github.com/reusee/dscope"
)

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() logs.Writer {
			return buf
		},
		func() chronoconfigs.Workers {
			return 2
		},
	).Call(func(
		reconstruct Reconstruct,
	) {
		raw := []int{0, 3, 5, 4, 3, 0}
		a, err := reconstruct(t.Context(), chronovm.MustProgram(raw...), chronovm.Registers{}, raw)
		if err != nil {
			t.Fatal(err)
		}
		if a.Int64() != 117440 {
			t.Fatalf("got %v", a)
		}
		out := buf.String()
		if !strings.Contains(out, "a=117440") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "workers=2") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "logs.span=") {
			t.Fatalf("got %s", out)
		}

		_, err = reconstruct(t.Context(), chronovm.MustProgram(raw...), chronovm.Registers{}, []int{8})
		if !errors.Is(err, ErrNoSolution) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestSearch_LogsRounds(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	raw := []int{0, 3, 5, 4, 3, 0}
	if _, err := search(t, chronovm.MustProgram(raw...), raw, Options{
		Logger: logger,
	}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "msg=round"); n != len(raw) {
		t.Fatalf("got %d rounds:\n%s", n, buf.String())
	}
}
