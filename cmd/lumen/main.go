package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "inspect, pack and preview scene lights"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "pack",
			Usage: "pack the visible lights of a scene into the GPU layout",
			Description: `
Load a scene description (the built-in lights sample when --scene is omitted),
transform its visible lights into the camera's view space and print the packed
blocks. With --out the raw little endian blocks are written to a file, ready to
be uploaded as a uniform or storage buffer.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "scene description (yaml)",
				},
				cli.Float64Flag{
					Name:  "time, t",
					Value: 0,
					Usage: "animation time in seconds",
				},
				cli.BoolFlag{
					Name:  "sort",
					Usage: "group the packed lights by type",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write the packed blocks to this file",
				},
			},
			Action: PackScene,
		},
		{
			Name:      "profile",
			Usage:     "summarize an IES photometric profile",
			ArgsUsage: "profile.ies",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "bake the normalized intensity into this png",
				},
				cli.IntFlag{
					Name:  "size",
					Value: 256,
					Usage: "texture size in pixels",
				},
			},
			Action: InspectProfile,
		},
		{
			Name:  "demo",
			Usage: "open the interactive lights sample",
			Description: `
Keys: 1-4 toggle the first four lights, A animates, C/W switch colors, M/S toggle
spot modulation and shadows, H the hotspot and D distance attenuation. Drag with
the left button to orbit and with the right button to dolly.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "scene description (yaml)",
				},
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: "reload the scene when the file changes",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 1280,
					Usage: "window width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 720,
					Usage: "window height",
				},
			},
			Action: RunDemo,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
