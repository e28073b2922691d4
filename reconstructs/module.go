package reconstructs

import (
	"context"
	"math/big"

	"github.com/reusee/chrono/chronoconfigs"
	"github.com/reusee/chrono/chronovm"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs chronoconfigs.Module
}

type Reconstruct func(
	ctx context.Context,
	program chronovm.Program,
	initial chronovm.Registers,
	target []int,
) (*big.Int, error)

func (Module) Reconstruct(
	logger logs.Logger,
	newSpan logs.NewSpan,
	workers chronoconfigs.Workers,
	maxSteps chronoconfigs.MaxTrialSteps,
) Reconstruct {
	return func(
		ctx context.Context,
		program chronovm.Program,
		initial chronovm.Registers,
		target []int,
	) (ret *big.Int, err error) {
		ctx, _ = newSpan(ctx, "", "reconstruct")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()

		logger.InfoContext(ctx, "reconstruct",
			"program", program.String(),
			"digits", len(target),
			"workers", int(workers),
		)

		ret, err = Search(ctx, program, initial, target, Options{
			Workers:       int(workers),
			MaxTrialSteps: int(maxSteps),
			Logger:        logger,
		})
		if err != nil {
			logger.WarnContext(ctx, "reconstruct failed", "error", err)
			return nil, err
		}

		logger.InfoContext(ctx, "reconstructed", "a", ret.String())
		return ret, nil
	}
}
