package debugs

import (
	"github.com/reusee/chrono/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
