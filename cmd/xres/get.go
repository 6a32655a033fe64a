package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a resource key", cli.ErrUsage)
	}
	key := args[0]
	for _, arg := range fileArgs(args[1:]) {
		view, err := loadView(arg)
		if err != nil {
			return err
		}
		var val string
		if cfg.R {
			val, err = view.Resources.Resolve(key)
		} else {
			val, err = view.Resources.Get(key)
		}
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		fmt.Fprintln(cc.Out, val)
	}
	return nil
}
