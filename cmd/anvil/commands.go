package main

import (
	"io"
	"os"

	"github.com/anvil-build/go-anvil/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	Main *cli.Command
}

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "anvil").
		WithSynopsis("anvil [opts] command [opts]").
		WithDescription("anvil is a tool for working with Anvil build-project trees.").
		WithOpts(opts...).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			CheckCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view project description files as canonical project text").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("compare the canonical project text of two descriptions").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("load project descriptions and report their structure").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

// encOpts turns on colors when requested or when writing to a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}
