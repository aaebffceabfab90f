package glyphcli

import (
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/util-go/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s
Usage:
  %[1]s [--watch=false] [--style=bezier] [--page=id] file.json [file.svg | file.png | file.json]
  %[1]s stencil [category]
  %[1]s fmt [--check] file.json ...
  %[1]s validate file.json
  %[1]s hit [--page=id] file.json x y

%[1]s lays out one page of a glyph document and renders it to file.svg | file.png | file.json
It defaults to file.svg if an output path is not provided. A .json output holds the computed
boxes, ports, connection paths and paint order.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[2]s

Subcommands:
  %[1]s stencil [category] - Lists the glyph types that can be placed
  %[1]s fmt file.json ... - Normalizes port references and rewrites each file with every page
  %[1]s validate file.json - Reports duplicate ids, dangling connections and unresolved ports
  %[1]s hit file.json x y - Prints what lies under the point (x, y) of the page
`, filepath.Base(ms.Name), ms.Opts.Defaults())
}
