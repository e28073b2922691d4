package chronoconfigs

import (
	"runtime"

	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/vars"
)

type Workers int

var _ configs.Configurable = Workers(0)

func (Workers) ConfigExpr() string {
	return "workers"
}

var workersFlag = cmds.Var[int]("-workers")

func (Module) Workers(
	loader configs.Loader,
) Workers {
	return Workers(vars.FirstNonZero(
		*workersFlag,
		configs.FirstOr(loader, Workers(0).ConfigExpr(), runtime.GOMAXPROCS(0)),
	))
}

// MaxTrialSteps bounds each partial execution during reconstruction.
type MaxTrialSteps int

var _ configs.Configurable = MaxTrialSteps(0)

func (MaxTrialSteps) ConfigExpr() string {
	return "max_trial_steps"
}

const DefaultMaxTrialSteps = 1 << 16

var maxTrialStepsFlag = cmds.Var[int]("-max-trial-steps")

func (Module) MaxTrialSteps(
	loader configs.Loader,
) MaxTrialSteps {
	return MaxTrialSteps(vars.FirstNonZero(
		*maxTrialStepsFlag,
		configs.FirstOr(loader, MaxTrialSteps(0).ConfigExpr(), DefaultMaxTrialSteps),
	))
}

// DBPath is the solution store file. Empty disables the store.
type DBPath string

var _ configs.Configurable = DBPath("")

func (DBPath) ConfigExpr() string {
	return "db"
}

var dbFlag = cmds.Var[string]("-db")

func (Module) DBPath(
	loader configs.Loader,
) DBPath {
	return DBPath(vars.FirstNonZero(
		*dbFlag,
		configs.First[string](loader, DBPath("").ConfigExpr()),
	))
}
