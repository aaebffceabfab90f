package glyphcli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/glyphs/glyphstencil"
)

func stencilCmd(ctx context.Context, ms *xmain.State) error {
	args := ms.Opts.Flags.Args()[1:]
	if len(args) > 1 {
		return xmain.UsageErrorf("stencil accepts at most one category")
	}

	categories := glyphstencil.All()
	if len(args) == 1 {
		entries := glyphstencil.Entries(args[0])
		if entries == nil {
			return xmain.UsageErrorf("unknown stencil category %q, the available categories are: %s",
				args[0], strings.Join(glyphstencil.Categories(), ", "))
		}
		categories = []glyphstencil.Category{{Name: args[0], Entries: entries}}
	}

	tw := tabwriter.NewWriter(ms.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tTYPE\tINPUTS\tOUTPUTS\tDESCRIPTION")
	for _, c := range categories {
		for _, e := range c.Entries {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", c.Name, e.Type, e.Inputs, e.Outputs, e.Description())
		}
	}
	return tw.Flush()
}
