package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"uic/convert"
	"uic/state"
)

func runDump(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("dump")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, extra arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	result, err := compileSource(src, 0, env, log)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprint(os.Stdout, convert.DumpTree(result)); err != nil {
		return fmt.Errorf("unable to write tree dump: %w", err)
	}
	return nil
}
