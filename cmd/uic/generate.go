package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uic/assets"
	"uic/config"
	"uic/convert"
	"uic/convert/html"
	"uic/css"
	"uic/state"
)

func runGenerate(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst = env.Cfg.Generator.OutputDir; len(dst) == 0 {
			if dst, err = os.Getwd(); err != nil {
				return fmt.Errorf("unable to get working directory: %w", err)
			}
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	format := env.Cfg.Generator.Format
	if to := cmd.String("to"); len(to) > 0 {
		if format, err = config.ParseOutputFmt(to); err != nil {
			log.Warn("Unknown output format requested, switching to html", zap.Error(err))
			format = config.OutputFmtHtml
		}
	}

	if err := checkOverwrite(dst, format, cmd.Bool("overwrite")); err != nil {
		return err
	}

	result, err := compileSource(src, cmd.Float("canvas-width"), env, log)
	if err != nil {
		return err
	}

	var overrides []css.Rule
	if env.Overrides != nil {
		overrides = env.Overrides.Rules
	}
	gen := html.NewGenerator(html.Options{
		TreeJSON:  format.TreeOnly(),
		Overrides: overrides,
	}, log)
	if err := gen.Generate(ctx, result, dst); err != nil {
		return err
	}

	if env.Cfg.Generator.Previews && !format.TreeOnly() {
		if err := assets.WritePreviews(result.Pages, dst, log); err != nil {
			return fmt.Errorf("unable to write vector previews: %w", err)
		}
	}

	log.Info("Generation finished",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.String("format", format.String()))
	return nil
}

// checkOverwrite refuses to clobber previously generated output. The guard
// checks the primary artifact of the selected format, since html and json
// modes produce different files.
func checkOverwrite(dst string, format config.OutputFmt, overwrite bool) error {
	if overwrite {
		return nil
	}
	artifact := "index.html"
	if format.TreeOnly() {
		artifact = "tree.json"
	}
	if _, err := os.Stat(filepath.Join(dst, artifact)); err == nil {
		return fmt.Errorf("destination '%s' already has generated output, use --overwrite", dst)
	}
	return nil
}

// compileSource parses a design document and runs the compile pass with
// configuration-derived options.
func compileSource(src string, widthHint float64, env *state.LocalEnv, log *zap.Logger) (*convert.Result, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("unable to read input document: %w", err)
	}

	doc, err := convert.ParseDocument(data, log)
	if err != nil {
		return nil, fmt.Errorf("unable to parse '%s': %w", src, err)
	}

	opts := convert.Options{
		MaxDepth:         env.Cfg.Generator.MaxDepth,
		CanvasWidthHint:  env.Cfg.Generator.CanvasWidthHint,
		FlattenEmptyText: env.Cfg.Generator.FlattenEmptyText,
	}
	if widthHint > 0 {
		opts.CanvasWidthHint = widthHint
	}

	return convert.New(opts, log).Compile(doc)
}
