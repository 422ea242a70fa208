package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/gekko3d/lumen/light"
	"github.com/gekko3d/lumen/scene"
)

// loadScene reads the scene at path, or the built-in sample when path is empty.
func loadScene(path string) (*scene.Config, error) {
	if path == "" {
		return scene.Demo(), nil
	}
	return scene.Load(path)
}

// Pack the visible lights of a scene.
func PackScene(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	view, err := cfg.Camera.View()
	if err != nil {
		return err
	}

	data := s.Pack(ctx.Float64("time"), view, scene.PackOptions{
		Capacity:   cfg.PackCapacity(),
		SortByType: ctx.Bool("sort"),
	})
	logger.Infof("packed %d of %d lights", len(data), s.Len())
	writePackTable(os.Stdout, data)

	if out := ctx.String("out"); out != "" {
		buf := light.MarshalArray(data)
		if err := os.WriteFile(out, buf, 0o644); err != nil {
			return err
		}
		logger.Infof("wrote %d bytes to %s", len(buf), out)
	}
	return nil
}

func writePackTable(w io.Writer, data []light.Data) {
	table := tablewriter.NewWriter(w)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Slot", "Type", "Position", "Direction", "Range", "Intensity", "Attenuation", "Cone", "Flags"})
	for i := range data {
		d := &data[i]
		table.Append([]string{
			strconv.Itoa(i),
			d.Type().String(),
			fmtVec(d.Position[:]...),
			fmtVec(d.Direction[:]...),
			fmtFloat(d.Range),
			fmtFloat(d.Intensity),
			fmtVec(d.Attenuation[:]...),
			fmtVec(d.Angle[:]...),
			fmtFlags(d.Flags),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "", "lights", strconv.Itoa(len(data))})
	table.Render()
}

func fmtFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 3, 32)
}

func fmtVec(v ...float32) string {
	parts := make([]string, len(v))
	for i := range v {
		parts[i] = fmtFloat(v[i])
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func fmtFlags(flags int32) string {
	var names []string
	if flags&light.FlagShadowEnabled != 0 {
		names = append(names, "shadow")
	}
	if flags&light.FlagModulationEnabled != 0 {
		names = append(names, "modulation")
	}
	if len(names) == 0 {
		return fmt.Sprintf("%#x", flags)
	}
	return fmt.Sprintf("%#x %s", flags, strings.Join(names, "+"))
}
