package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func defs(cfg *DefsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Defs.Parse(cc, args)
	if err != nil {
		cfg.Defs.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		view, err := loadView(arg)
		if err != nil {
			return err
		}
		for _, name := range view.Definitions.Names() {
			val, err := view.Definitions.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cc.Out, "%s %s\n", name, val)
		}
	}
	return nil
}
