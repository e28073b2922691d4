package chronoconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/chrono/cmds"
	"github.com/reusee/chrono/configs"
	"github.com/reusee/chrono/logs"
	"github.com/reusee/chrono/modes"
)

//go:embed schema.cue
var schema string

var configFlags = cmds.Collect[string]("-config")

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// explicit files take precedence
	paths = append(paths, *configFlags...)

	if mode == modes.ModeDevelopment {
		return configs.NewLoader(paths, schema)
	}

	filenames := []string{
		"chrono.cue",
		".chrono.cue",
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return configs.NewLoader(paths, schema)
}
