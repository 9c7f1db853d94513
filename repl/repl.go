/*
File    : lang/repl/repl.go

Package repl implements the interactive Read-Eval-Print loop for
form-script. It accumulates lines until every opened "if"/"for" block has
a matching "fi"/"rof", then lexes, parses and runs the accumulated
statement(s) as one script. Grounded on the teacher's repl/repl.go for the
banner/color/readline-history shape; rewired from Go-Mix's single-line
AST-per-Enter model to form-script's block-spanning statements.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/formscript/lang/eval"
	"github.com/formscript/lang/host"
	"github.com/formscript/lang/lexer"
	"github.com/formscript/lang/parser"
	"github.com/formscript/lang/stdfuncs"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner/prompt configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	// RequireReturn mirrors cmd/formscript's -require-return flag: when
	// true, a script that falls off the end without a Return or a
	// recorded expression-statement value is reported as an error.
	RequireReturn bool
}

// NewRepl creates a Repl ready for Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to form-script!")
	cyanColor.Fprintf(writer, "%s\n", "Type a script and press enter; if/for blocks may span multiple lines")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the interactive loop against stdin-style readline input,
// writing the banner, prompts and results to writer.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	runner := eval.NewRunner()
	registry := stdfuncs.NewRegistry()
	interact := &host.GameInteract{}

	var buf []string
	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \t\r\n")
		if len(buf) == 0 && trimmed == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		if len(buf) == 0 && trimmed == "" {
			continue
		}

		rl.SaveHistory(line)
		buf = append(buf, line)

		source := strings.Join(buf, "\n")
		if blockDepth(source) > 0 {
			continue // still inside an open if/for block; keep accumulating
		}

		r.executeWithRecovery(writer, source, runner, interact, registry)
		buf = nil
	}
}

// blockDepth counts unmatched "if"/"for" openers against "fi"/"rof"
// closers in source, so the REPL knows whether to keep reading lines or
// run what has been typed so far. A lex error is treated as depth 0 (let
// the real parse attempt below surface the diagnostic).
func blockDepth(source string) int {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return 0
	}
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case lexer.KEY_IF, lexer.KEY_FOR:
			depth++
		case lexer.KEY_FI, lexer.KEY_ROF:
			depth--
		}
	}
	if depth < 0 {
		depth = 0
	}
	return depth
}

func (r *Repl) executeWithRecovery(writer io.Writer, source string, runner *eval.Runner, interact *host.GameInteract, registry *host.Registry) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	ops, err := parser.Parse(source)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	result, err := runner.Run(ops, interact, registry, r.RequireReturn)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.String())
}
