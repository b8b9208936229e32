package figcli

import (
	"context"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/mathfig/lib/xmain"
)

func validateCmd(ctx context.Context, ms *xmain.State, section string) (err error) {
	defer xdefer.Errorf(&err, "failed to validate")

	ms.Opts = xmain.NewOpts(ms.Env, ms.Log, ms.Opts.Flags.Args()[1:])
	if len(ms.Opts.Args) == 0 {
		return xmain.UsageErrorf("validate must be passed an input file to be validated")
	}

	inputPath, err := ms.AbsPath(ms.Opts.Args[0])
	if err != nil {
		return err
	}

	_, fc, err := compileScene(ctx, ms, inputPath, compileOpts{section: section})
	if err != nil {
		return err
	}
	if inputPath != "-" {
		ms.Log.Success.Printf("%s is valid in section %s", ms.HumanPath(inputPath), fc.Section)
	}
	return nil
}
