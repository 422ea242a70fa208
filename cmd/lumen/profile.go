package main

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/gekko3d/lumen/profile"
)

// Summarize an IES profile and optionally bake it into a texture.
func InspectProfile(ctx *cli.Context) error {
	setupLogging(ctx)

	path := ctx.Args().First()
	if path == "" {
		return cli.NewExitError("profile: missing profile file", 1)
	}
	p, err := profile.Load(path)
	if err != nil {
		return err
	}
	writeProfileTable(os.Stdout, p)

	if out := ctx.String("out"); out != "" {
		if err := writeProfileImage(out, p, ctx.Int("size")); err != nil {
			return err
		}
		logger.Infof("baked %s into %s", path, out)
	}
	return nil
}

func writeProfileTable(w io.Writer, p *profile.Profile) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Field", "Value"})
	table.Append([]string{"Format", p.Format.String()})
	table.Append([]string{"Symmetry", p.Symmetry.String()})
	table.Append([]string{"Lamps", strconv.Itoa(p.Lamps)})
	table.Append([]string{"Lumens per lamp", fmtFloat(p.LumensPerLamp)})
	table.Append([]string{"Candela multiplier", fmtFloat(p.CandelaMultiplier)})
	table.Append([]string{"Vertical angles", fmtAngles(p.VerticalAngles)})
	table.Append([]string{"Horizontal angles", fmtAngles(p.HorizontalAngles)})
	table.Append([]string{"Max candela", fmtFloat(p.MaxCandela)})

	keys := make([]string, 0, len(p.Keywords))
	for k := range p.Keywords {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		table.Append([]string{"[" + k + "]", p.Keywords[k]})
	}
	table.Render()

	samples := tablewriter.NewWriter(w)
	samples.SetAlignment(tablewriter.ALIGN_RIGHT)
	samples.SetAutoFormatHeaders(false)
	samples.SetHeader([]string{"Vertical", "Candela", "Intensity"})
	for _, v := range p.VerticalAngles {
		samples.Append([]string{
			fmtFloat(v),
			fmtFloat(p.InterpolatedCandela(0, v)),
			fmtFloat(p.Intensity(0, v)),
		})
	}
	samples.Render()
}

func fmtAngles(angles []float32) string {
	if len(angles) == 0 {
		return "0"
	}
	return fmt.Sprintf("%d (%s to %s)", len(angles), fmtFloat(angles[0]), fmtFloat(angles[len(angles)-1]))
}

func writeProfileImage(path string, p *profile.Profile, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.Image(size)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
