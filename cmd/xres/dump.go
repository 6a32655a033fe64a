package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/taesko/xparser/views"
)

type dumpDoc struct {
	Resources   map[string]string `json:"resources" yaml:"resources"`
	Definitions map[string]string `json:"definitions" yaml:"definitions"`
	Includes    []string          `json:"includes,omitempty" yaml:"includes,omitempty"`
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	for _, arg := range fileArgs(args) {
		view, err := loadView(arg)
		if err != nil {
			return err
		}
		doc := makeDumpDoc(view)
		var out []byte
		if cfg.J {
			out, err = json.MarshalIndent(doc, "", "  ")
			if err == nil {
				out = append(out, '\n')
			}
		} else {
			out, err = yaml.Marshal(doc)
		}
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		if _, err := cc.Out.Write(out); err != nil {
			return err
		}
	}
	return nil
}

func makeDumpDoc(view *views.XFileView) *dumpDoc {
	doc := &dumpDoc{
		Resources:   map[string]string{},
		Definitions: map[string]string{},
		Includes:    view.Includes.Files(),
	}
	for _, key := range view.Resources.Keys() {
		val, _ := view.Resources.Get(key)
		doc.Resources[key] = val
	}
	for _, name := range view.Definitions.Names() {
		val, _ := view.Definitions.Get(name)
		doc.Definitions[name] = val
	}
	return doc
}
