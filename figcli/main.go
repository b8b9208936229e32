package figcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/xdefer"

	"oss.terrastruct.com/mathfig/figcontext"
	"oss.terrastruct.com/mathfig/figcontext/figcontextcatalog"
	"oss.terrastruct.com/mathfig/figlib"
	"oss.terrastruct.com/mathfig/figrenderers/figsvg"
	"oss.terrastruct.com/mathfig/figtarget"
	"oss.terrastruct.com/mathfig/lib/go2"
	"oss.terrastruct.com/mathfig/lib/log"
	"oss.terrastruct.com/mathfig/lib/textmeasure"
	"oss.terrastruct.com/mathfig/lib/version"
	"oss.terrastruct.com/mathfig/lib/xmain"
)

const (
	FORMAT_SVG  = "svg"
	FORMAT_JSON = "json"
)

var formats = []string{FORMAT_SVG, FORMAT_JSON}

func Run(ctx context.Context, ms *xmain.State) (err error) {
	if !log.Has(ctx) {
		ctx = log.Stderr(ctx)
	}
	// These should be kept up-to-date with help.go
	sectionFlag := ms.Opts.String("FIG_SECTION", "section", "s", "", "the lesson section whose presentation context figures are drawn in. Defaults to the spec file's section, then "+figcontextcatalog.Default().Section)
	watchFlag, err := ms.Opts.Bool("FIG_WATCH", "watch", "w", false, "watch the spec file and re-render it on every change")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = go2.Pointer(false)
	}
	fitFlag, err := ms.Opts.Bool("FIG_FIT", "fit", "", false, "grow the frame to fit labels and angle arcs, not just vertices")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("FIG_PIXELS_PER_UNIT", "pixels-per-unit", "", 0, "pixels per scene unit in SVG output. 0 uses the section's scale")
	if err != nil {
		return err
	}
	stdoutFormatFlag := ms.Opts.String("", "stdout-format", "", FORMAT_SVG, "output format when writing to stdout (svg, json). Usage: fig spec.yaml --stdout-format json -")
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}

	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if len(ms.Opts.Flags.Args()) > 0 {
		switch ms.Opts.Flags.Arg(0) {
		case "sections":
			sectionsCmd(ctx, ms)
			return nil
		case "validate":
			return validateCmd(ctx, ms, *sectionFlag)
		case "version":
			if len(ms.Opts.Flags.Args()) > 1 {
				return xmain.UsageErrorf("version subcommand accepts no arguments")
			}
			fmt.Fprintln(ms.Stdout, version.Version)
			return nil
		}
	}

	if *debugFlag {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	if *versionFlag {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}

	if len(ms.Opts.Flags.Args()) == 0 {
		help(ms)
		return xmain.UsageErrorf("fig needs an input spec file")
	}
	if len(ms.Opts.Flags.Args()) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := ms.Opts.Flags.Arg(0)
	var outputPath string
	if len(ms.Opts.Flags.Args()) == 2 {
		outputPath = ms.Opts.Flags.Arg(1)
	} else if inputPath == "-" {
		outputPath = "-"
	} else {
		outputPath = renameExt(inputPath, "."+FORMAT_SVG)
	}

	inputPath, err = ms.AbsPath(inputPath)
	if err != nil {
		return err
	}
	outputPath, err = ms.AbsPath(outputPath)
	if err != nil {
		return err
	}

	format, err := outputFormat(outputPath, *stdoutFormatFlag)
	if err != nil {
		return err
	}

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return fmt.Errorf("failed to load label font: %w", err)
	}
	opts := compileOpts{
		section:       *sectionFlag,
		fit:           *fitFlag,
		pixelsPerUnit: *scaleFlag,
		format:        format,
		ruler:         ruler,
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing to stdout")
		}
		w, err := newWatcher(ctx, ms, watcherOpts{
			inputPath:  inputPath,
			outputPath: outputPath,
			compile:    opts,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	err = compileWrite(ctx, ms, inputPath, outputPath, opts)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully compiled %s to %s", ms.HumanPath(inputPath), ms.HumanPath(outputPath))
	}
	return nil
}

type compileOpts struct {
	section       string
	fit           bool
	pixelsPerUnit float64
	format        string
	ruler         *textmeasure.Ruler
}

// compileScene reads and compiles one spec file. The flag section wins over the file's.
func compileScene(ctx context.Context, ms *xmain.State, inputPath string, opts compileOpts) (*figtarget.Scene, figcontext.Context, error) {
	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, figcontext.Context{}, err
	}
	fig, err := parseSpec(input)
	if err != nil {
		return nil, figcontext.Context{}, err
	}

	section := opts.section
	if section == "" {
		section = fig.section
	}
	if section == "" {
		section = figcontextcatalog.Default().Section
	}
	fc, ok := figcontextcatalog.Find(section)
	if !ok {
		return nil, figcontext.Context{}, xmain.UsageErrorf("%v %q, expected one of %v", figlib.ErrUnknownSection, section, figcontextcatalog.Sections())
	}
	if opts.fit {
		fc.FitAnnotations = true
	}
	if opts.pixelsPerUnit > 0 {
		fc.PixelsPerUnit = opts.pixelsPerUnit
	}
	spec := fig.specIn(fc)
	log.Debug(ctx, "compiling", slog.F("section", fc.Section), slog.F("kind", spec.Kind))

	scene, err := figlib.Compile(ctx, spec, &figlib.CompileOptions{
		Context: &fc,
		Ruler:   opts.ruler,
	})
	if err != nil {
		return nil, figcontext.Context{}, err
	}
	return scene, fc, nil
}

func compile(ctx context.Context, ms *xmain.State, inputPath string, opts compileOpts) ([]byte, error) {
	scene, fc, err := compileScene(ctx, ms, inputPath, opts)
	if err != nil {
		return nil, err
	}
	switch opts.format {
	case FORMAT_JSON:
		b, err := json.MarshalIndent(scene, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	default:
		return figsvg.Render(scene, figsvg.OptsFromContext(fc))
	}
}

func compileWrite(ctx context.Context, ms *xmain.State, inputPath, outputPath string, opts compileOpts) (err error) {
	defer xdefer.Errorf(&err, "failed to compile %s", ms.HumanPath(inputPath))

	out, err := compile(ctx, ms, inputPath, opts)
	if err != nil {
		return err
	}
	return ms.WritePath(outputPath, out)
}

// outputFormat is picked from the output extension, or the stdout format when writing to stdout.
func outputFormat(outputPath, stdoutFormat string) (string, error) {
	if outputPath == "-" {
		f := strings.ToLower(stdoutFormat)
		if !go2.Contains(formats, f) {
			return "", xmain.UsageErrorf("--stdout-format must be one of %v, got %q", formats, stdoutFormat)
		}
		return f, nil
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	if !go2.Contains(formats, ext) {
		return "", xmain.UsageErrorf("%s: unsupported output extension %q, expected one of %v", outputPath, filepath.Ext(outputPath), formats)
	}
	return ext, nil
}

func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
