package main

import (
	"github.com/reusee/chrono/debugs"
	"github.com/reusee/chrono/reconstructs"
	"github.com/reusee/chrono/storages"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Reconstructs reconstructs.Module
	Debugs       debugs.Module
	Storages     storages.Module
}
