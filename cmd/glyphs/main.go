package main

import (
	"oss.terrastruct.com/util-go/xmain"

	"oss.terrastruct.com/glyphs/glyphcli"
)

func main() {
	xmain.Main(glyphcli.Run)
}
