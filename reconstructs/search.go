package reconstructs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"runtime"
	"slices"

	"github.com/reusee/chrono/chronovm"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers bounds concurrent trials. Zero or less means GOMAXPROCS.
	Workers int
	// MaxTrialSteps bounds each partial execution. Zero means unlimited.
	MaxTrialSteps int
	Logger        *slog.Logger
}

// Search finds the smallest A such that running program from {A, B0, C0}
// outputs exactly target. A is built one base-8 digit per round, most
// significant first, matching target from its last element backwards.
// This relies on the program emitting once per loop iteration and dividing A
// by 8 per iteration.
func Search(
	ctx context.Context,
	program chronovm.Program,
	initial chronovm.Registers,
	target []int,
	opts Options,
) (*big.Int, error) {
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	base := chronovm.Registers{
		B: initial.B,
		C: initial.C,
	}

	frontier := []*big.Int{new(big.Int)}
	for i := len(target) - 1; i >= 0; i-- {
		next, err := expand(ctx, program, base, frontier, target[i], i == 0, workers, opts.MaxTrialSteps)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "round",
			"index", i,
			"digit", target[i],
			"candidates", len(frontier)*8,
			"frontier", len(next),
		)
		if len(next) == 0 {
			return nil, &NoSolutionError{
				Index:  i,
				Target: slices.Clone(target),
			}
		}
		frontier = next
	}

	slices.SortFunc(frontier, (*big.Int).Cmp)

	maxSteps := 0
	if opts.MaxTrialSteps > 0 {
		maxSteps = opts.MaxTrialSteps * (len(target) + 1)
	}
	for _, a := range frontier {
		m := chronovm.NewMachine(program, chronovm.Registers{
			A: a,
			B: base.B,
			C: base.C,
		})
		m.MaxSteps = maxSteps
		if err := m.Execute(); errors.Is(err, chronovm.ErrStepLimit) {
			continue
		} else if err != nil {
			return nil, err
		}
		if slices.Equal(m.Output, target) {
			return a, nil
		}
	}

	return nil, &NoSolutionError{
		Index:  -1,
		Target: slices.Clone(target),
	}
}

// expand runs one round: every prefix extended by every digit, kept when its
// first output equals want. The returned frontier is a new ascending slice.
func expand(
	ctx context.Context,
	program chronovm.Program,
	base chronovm.Registers,
	frontier []*big.Int,
	want int,
	last bool,
	workers int,
	maxSteps int,
) ([]*big.Int, error) {
	// one slot per trial, written by exactly one goroutine
	matched := make([]*big.Int, len(frontier)*8)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for pi, prefix := range frontier {
		shifted := new(big.Int).Lsh(prefix, 3)
		for d := range 8 {
			// a leading zero digit only stands for itself
			if d == 0 && prefix.Sign() == 0 && !last {
				continue
			}
			slot := pi*8 + d
			a := new(big.Int).Add(shifted, big.NewInt(int64(d)))
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				digit, ok, err := FirstDigit(program, chronovm.Registers{
					A: a,
					B: base.B,
					C: base.C,
				}, maxSteps)
				if errors.Is(err, chronovm.ErrStepLimit) {
					return nil
				} else if err != nil {
					return fmt.Errorf("trial %s: %w", a, err)
				}
				if ok && digit == want {
					matched[slot] = a
				}
				return nil
			})
		}
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	next := make([]*big.Int, 0, len(frontier))
	for _, a := range matched {
		if a != nil {
			next = append(next, a)
		}
	}
	return next, nil
}

// FirstDigit runs program from regs until its first output or halt.
func FirstDigit(program chronovm.Program, regs chronovm.Registers, maxSteps int) (digit int, ok bool, err error) {
	m := chronovm.NewMachine(program, regs)
	m.MaxSteps = maxSteps
	return m.NextOutput()
}
