package main

import (
	"fmt"

	anvil "github.com/anvil-build/go-anvil"
	"github.com/anvil-build/go-anvil/load"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two files", cli.ErrUsage)
	}
	from, err := load.LoadFile(args[0])
	if err != nil {
		return err
	}
	to, err := load.LoadFile(args[1])
	if err != nil {
		return err
	}
	d := anvil.Diff(from, to)
	if d == "" {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
