package main

import (
	"fmt"

	"github.com/anvil-build/go-anvil/ctree"
	"github.com/anvil-build/go-anvil/load"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, err := load.LoadFile(arg)
		if err != nil {
			return err
		}
		counts := map[ctree.Kind]int{}
		for _, n := range doc.Descendants() {
			counts[n.Kind()]++
		}
		fmt.Fprintf(cc.Out, "%s: ok: %d targets, %d items, %d properties, %d imports\n",
			arg, counts[ctree.TargetKind], counts[ctree.ItemKind],
			counts[ctree.PropertyKind],
			counts[ctree.ImportKind])
	}
	return nil
}
