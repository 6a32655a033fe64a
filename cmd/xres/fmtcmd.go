package main

import (
	"github.com/scott-cotton/cli"

	"github.com/taesko/xparser/encode"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	for _, arg := range fileArgs(args) {
		view, err := loadView(arg)
		if err != nil {
			return err
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeResolve(cfg.R))
		if err := encode.Encode(view.File(), cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
