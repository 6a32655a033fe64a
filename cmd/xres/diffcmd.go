package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/taesko/xparser/diff"
)

func diffCmd(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two file arguments", cli.ErrUsage)
	}
	from, err := loadView(args[0])
	if err != nil {
		return err
	}
	to, err := loadView(args[1])
	if err != nil {
		return err
	}
	edits := diff.Files(from.File(), to.File())
	return diff.Format(cc.Out, edits, cfg.colored(cc.Out))
}
