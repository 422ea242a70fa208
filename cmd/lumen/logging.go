package main

import (
	"github.com/urfave/cli"

	"github.com/gekko3d/lumen"
)

var logger = lumen.NewDefaultLogger("lumen", false)

func setupLogging(ctx *cli.Context) {
	logger.SetQuiet()

	if ctx.GlobalBool("v") {
		logger.SetDebug(false)
	}

	if ctx.GlobalBool("vv") {
		logger.SetDebug(true)
	}
}
