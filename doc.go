// Package xparser parses XResources-format configuration text (the
// format of .Xresources files) into a structured, queryable view.
//
//	view, err := xparser.Parse("#define white #FFFFFF\n*foreground: white\n")
//	if err != nil {
//	    return err
//	}
//	raw, _ := view.Resources.Get("*foreground")      // "white"
//	val, _ := view.Resources.Resolve("*foreground")  // "#FFFFFF"
//
// The package does not implement the X resource manager's
// tightest-match precedence algorithm; lookups are by exact key or by
// the explicit wildcard comparison in [Match].
package xparser
