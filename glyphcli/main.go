package glyphcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/glyphs/glyphlayout"
	"oss.terrastruct.com/glyphs/glyphlib"
	"oss.terrastruct.com/glyphs/glyphpath"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphpng"
	"oss.terrastruct.com/glyphs/glyphrenderers/glyphsvg"
	"oss.terrastruct.com/glyphs/lib/log"
)

type renderOpts struct {
	layout       glyphlayout.Opts
	page         string
	pad          int64
	scale        float64
	noXMLTag     bool
	stdoutFormat string
}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	watchFlag, err := ms.Opts.Bool("GLYPHS_WATCH", "watch", "w", false, "watch for changes to input and re-render the output.")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	styleFlag := ms.Opts.String("GLYPHS_STYLE", "style", "s", string(glyphpath.DefaultStyle),
		fmt.Sprintf("connection style used when a connection sets none (%s)", joinStyles()))
	pageFlag := ms.Opts.String("GLYPHS_PAGE", "page", "p", "", "id or name of the page to render. Defaults to the first page.")
	padFlag, err := ms.Opts.Int64("GLYPHS_PAD", "pad", "", glyphsvg.DEFAULT_PADDING, "pixels padded around the rendered page")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("GLYPHS_SCALE", "scale", "", glyphpng.DEFAULT_SCALE, "scale of PNG output")
	if err != nil {
		return err
	}
	checkFlag, err := ms.Opts.Bool("GLYPHS_CHECK", "check", "", false, "check that the specified files are formatted correctly.")
	if err != nil {
		return err
	}
	noXMLTagFlag, err := ms.Opts.Bool("GLYPHS_NO_XML_TAG", "no-xml-tag", "", false, "omit XML tag (<?xml ...?>) from output SVG files.")
	if err != nil {
		return err
	}
	stdoutFormatFlag := ms.Opts.String("", "stdout-format", "", "", "output format when writing to stdout (svg, png, json).")

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	ctx = log.WithWriter(ctx, ms.Stderr, *debugFlag)

	style, ok := glyphpath.ParseStyle(*styleFlag)
	if !ok {
		return xmain.UsageErrorf("--style must be one of %s, got %q", joinStyles(), *styleFlag)
	}
	if *padFlag < 0 {
		return xmain.UsageErrorf("--pad must not be negative")
	}
	if *scaleFlag <= 0 {
		return xmain.UsageErrorf("--scale must be positive")
	}

	if len(ms.Opts.Flags.Args()) > 0 {
		switch ms.Opts.Flags.Arg(0) {
		case "stencil":
			return stencilCmd(ctx, ms)
		case "fmt":
			return fmtCmd(ctx, ms, *checkFlag)
		case "validate":
			return validateCmd(ctx, ms)
		case "hit":
			return hitCmd(ctx, ms, *pageFlag)
		}
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		help(ms)
		return nil
	} else if len(ms.Opts.Flags.Args()) >= 3 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := ms.Opts.Flags.Arg(0)
	var outputPath string
	if len(ms.Opts.Flags.Args()) >= 2 {
		outputPath = ms.Opts.Flags.Arg(1)
	} else if inputPath == "-" {
		outputPath = "-"
	} else {
		outputPath = renameExt(inputPath, ".svg")
	}
	if inputPath != "-" {
		inputPath = ms.AbsPath(inputPath)
	}
	if outputPath != "-" {
		outputPath = ms.AbsPath(outputPath)
	}

	opts := renderOpts{
		layout:       glyphlayout.Opts{DefaultStyle: style},
		page:         *pageFlag,
		pad:          *padFlag,
		scale:        *scaleFlag,
		noXMLTag:     *noXMLTagFlag,
		stdoutFormat: *stdoutFormatFlag,
	}
	if _, ok := getOutputFormat(opts.stdoutFormat, outputPath); !ok {
		return xmain.UsageErrorf("--stdout-format must be one of svg, png, json, got %q", opts.stdoutFormat)
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		w, err := newWatcher(ctx, ms, inputPath, outputPath, opts)
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if err := compile(ctx, ms, inputPath, outputPath, opts); err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully rendered %s to %s", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	}
	return nil
}

func compile(ctx context.Context, ms *xmain.State, inputPath, outputPath string, opts renderOpts) (err error) {
	defer xdefer.Errorf(&err, "failed to render %s", ms.HumanPath(inputPath))

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return err
	}
	diagram, _, err := glyphlib.Compile(ctx, input, &glyphlib.CompileOptions{
		Page:   opts.page,
		Layout: &opts.layout,
	})
	if err != nil {
		return err
	}

	format, _ := getOutputFormat(opts.stdoutFormat, outputPath)
	var out []byte
	switch format {
	case PNG:
		out, err = glyphpng.Render(diagram, &glyphpng.RenderOpts{
			Pad:   go2.Pointer(opts.pad),
			Scale: opts.scale,
		})
	case JSON:
		out, err = json.MarshalIndent(diagram, "", "  ")
		out = append(out, '\n')
	default:
		out, err = glyphsvg.Render(diagram, &glyphsvg.RenderOpts{
			Pad:      go2.Pointer(opts.pad),
			NoXMLTag: opts.noXMLTag,
		})
	}
	if err != nil {
		return err
	}
	return ms.WritePath(outputPath, out)
}

func joinStyles() string {
	strs := make([]string, 0, len(glyphpath.Styles))
	for _, s := range glyphpath.Styles {
		strs = append(strs, string(s))
	}
	return strings.Join(strs, ", ")
}
