package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/taesko/xparser"
	"github.com/taesko/xparser/encode"
	"github.com/taesko/xparser/views"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var opts []encode.EncodeOption
	if cfg.colored(w) {
		opts = append(opts, encode.EncodeColors(encode.NewColors()))
	}
	return opts
}

// loadView parses one file argument, "-" meaning stdin.
func loadView(arg string) (*views.XFileView, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	view, err := xparser.Parse(string(d))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", arg, err)
	}
	return view, nil
}

// fileArgs defaults to stdin when no file arguments are given.
func fileArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

type GetConfig struct {
	*MainConfig
	R bool `cli:"name=r aliases=resolve desc='resolve values through definitions'"`

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Pattern string `cli:"name=m aliases=match desc='filter keys by wildcard pattern'"`
	Where   string `cli:"name=where desc='filter rows by a boolean expression over Key, Value, Resolved'"`

	List *cli.Command
}

type DefsConfig struct {
	*MainConfig

	Defs *cli.Command
}

type DumpConfig struct {
	*MainConfig
	J bool `cli:"name=j aliases=json desc='dump as json'"`
	Y bool `cli:"name=y aliases=yaml desc='dump as yaml (default)'"`

	Dump *cli.Command
}

type FmtConfig struct {
	*MainConfig
	R bool `cli:"name=r aliases=resolve desc='resolve values through definitions'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
