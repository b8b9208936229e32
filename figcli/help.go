package figcli

import (
	"context"
	"fmt"
	"path/filepath"

	"oss.terrastruct.com/mathfig/figcontext/figcontextcatalog"
	"oss.terrastruct.com/mathfig/lib/version"
	"oss.terrastruct.com/mathfig/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `%[1]s %[2]s
Usage:
  %[1]s [--watch=false] [--section=examples] spec.yaml [file.svg | file.json]
  %[1]s sections
  %[1]s validate spec.yaml

%[1]s draws the figure described by spec.yaml to file.svg | file.json
It defaults to spec.svg if an output path is not provided.

Use - to have %[1]s read from stdin or write to stdout.

Flags:
%[3]s

Subcommands:
  %[1]s sections - Lists available sections and their presentation contexts
  %[1]s validate spec.yaml - Validates spec.yaml
  %[1]s version - Prints the version
`, filepath.Base(ms.Name), version.Version, ms.Opts.Help())
}

func sectionsCmd(_ context.Context, ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, "Available sections:\n%s", figcontextcatalog.CLIString())
}
