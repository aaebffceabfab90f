package glyphcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/glyphs/glyphhit"
	"oss.terrastruct.com/glyphs/glyphlib"
	"oss.terrastruct.com/glyphs/lib/geo"
)

func hitCmd(ctx context.Context, ms *xmain.State, page string) (err error) {
	defer xdefer.Errorf(&err, "failed to hit-test")

	args := ms.Opts.Flags.Args()[1:]
	if len(args) != 3 {
		return xmain.UsageErrorf("hit must be passed an input file and the x and y of a point")
	}
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return xmain.UsageErrorf("invalid x %q", args[1])
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return xmain.UsageErrorf("invalid y %q", args[2])
	}

	inputPath := args[0]
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	diagram, _, err := glyphlib.Compile(ctx, input, &glyphlib.CompileOptions{Page: page})
	if err != nil {
		return err
	}

	h := glyphhit.Test(diagram, geo.NewPoint(x, y), nil)
	b, err := json.Marshal(h)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ms.Stdout, "%s\n", b)
	return err
}
