package main

import (
	"oss.terrastruct.com/mathfig/figcli"
	"oss.terrastruct.com/mathfig/lib/xmain"
)

func main() {
	xmain.Main(figcli.Run)
}
