package main

import (
	"fmt"

	"github.com/anvil-build/go-anvil/encode"
	"github.com/anvil-build/go-anvil/load"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: view requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, err := load.LoadFile(arg)
		if err != nil {
			return err
		}
		if err := encode.Encode(&doc.Node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
