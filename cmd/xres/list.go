package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/taesko/xparser/views"
)

// listRow is the expression environment for one resource.
type listRow struct {
	Key      string
	Value    string
	Resolved string
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prg *vm.Program
	if cfg.Where != "" {
		prg, err = expr.Compile(cfg.Where, expr.Env(listRow{}), expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %v", cli.ErrUsage, err)
		}
	}
	for _, arg := range fileArgs(args) {
		view, err := loadView(arg)
		if err != nil {
			return err
		}
		res := view.Resources
		if cfg.Pattern != "" {
			res, err = res.Filter(cfg.Pattern)
			if err != nil {
				return fmt.Errorf("%w: bad -m pattern: %v", cli.ErrUsage, err)
			}
		}
		if err := listResources(cfg, cc, res, prg); err != nil {
			return fmt.Errorf("error listing %s: %w", arg, err)
		}
	}
	return nil
}

func listResources(cfg *ListConfig, cc *cli.Context, res *views.ResourcesView, prg *vm.Program) error {
	for _, key := range res.Keys() {
		value, err := res.Get(key)
		if err != nil {
			return err
		}
		if prg != nil {
			resolved, err := res.Resolve(key)
			if err != nil {
				return err
			}
			keep, err := expr.Run(prg, listRow{Key: key, Value: value, Resolved: resolved})
			if err != nil {
				return err
			}
			if !keep.(bool) {
				continue
			}
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", key, value)
	}
	return nil
}
