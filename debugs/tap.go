package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/chrono/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark REPL with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: "repl",
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval executes a starlark script with globals bound and returns the
// resulting module globals.
type Eval func(ctx context.Context, what string, src string, globals map[string]any) (starlark.StringDict, error)

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, what string, src string, globals map[string]any) (starlark.StringDict, error) {
		logger.DebugContext(ctx, "eval: "+what)
		thread := &starlark.Thread{
			Name: what,
		}
		ret, err := starlark.ExecFileOptions(fileOptions, thread, what, src, toStringDict(globals))
		if err != nil {
			return nil, logs.WrapSpan(ctx, err)
		}
		return ret, nil
	}
}

func toStringDict(globals map[string]any) starlark.StringDict {
	mappings := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		mappings[name] = toStarlarkValue(value)
	}
	return mappings
}
