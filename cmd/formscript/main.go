/*
File    : lang/cmd/formscript/main.go

Package main is the form-script CLI entry point: run a source file, or
with no path argument start the interactive REPL. Grounded on the
teacher's main/main.go for the mode-dispatch/banner/color shape; the
teacher's TCP server mode is dropped since the embeddable scripting
language has no networked deployment target (see DESIGN.md).
*/
package main

import (
	"flag"
	"os"

	"github.com/fatih/color"

	"github.com/formscript/lang/eval"
	"github.com/formscript/lang/host"
	"github.com/formscript/lang/parser"
	"github.com/formscript/lang/repl"
	"github.com/formscript/lang/stdfuncs"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
)

const (
	version = "v1.0.0"
	license = "MIT"
	author  = "form-script contributors"
	prompt  = "fs >>> "
	line    = "----------------------------------------------------------------"
	banner  = `  __                             _       _
 / _| ___  _ __ _ __ ___        | | ___ | |_
| |_ / _ \| '__| '_ ` + "`" + ` _ \ _____| |/ _ \| __|
|  _| (_) | |  | | | | | |_____| | (_) | |_
|_|  \___/|_|  |_| |_| |_|     |_|\___/ \__|
`
)

func main() {
	requireReturn := flag.Bool("require-return", true, "error if the script does not produce a return value")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		r := repl.NewRepl(banner, version, author, line, license, prompt)
		r.RequireReturn = *requireReturn
		r.Start(os.Stdout)
		return
	}

	runFile(args[0], *requireReturn)
}

func runFile(path string, requireReturn bool) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read %q: %v\n", path, err)
		os.Exit(1)
	}

	ops, err := parser.Parse(string(src))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	runner := eval.NewRunner()
	result, err := runner.Run(ops, &host.GameInteract{}, stdfuncs.NewRegistry(), requireReturn)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	yellowColor.Fprintf(os.Stdout, "%s\n", result.String())
}
