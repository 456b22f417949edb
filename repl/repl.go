/*
File    : mix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the mix interpreter.
The REPL provides an interactive environment where users can:
- Enter mix code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and parses each line with the parser package, then runs it with a single
eval.Evaluator so the environment persists across lines.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/mixlang/mix/config"
	"github.com/mixlang/mix/eval"
	"github.com/mixlang/mix/parser"
)

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance. It encapsulates all the
// configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Cfg     *config.REPLConfig
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license string, cfg *config.REPLConfig) *Repl {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Cfg: cfg}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	if !r.Cfg.ShowBanner {
		return
	}

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to mix!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop: it displays the banner, sets up
// readline for line editing and history, creates an evaluator, and enters
// the main read-eval-print loop until the user exits or EOF is reached.
//
// Unlike file execution mode, statements accumulate against a single
// Evaluator across lines, so a variable declared on one line is visible on
// the next.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      r.Cfg.Prompt,
		HistoryFile: r.Cfg.HistoryFile,
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		r.executeLine(writer, line, evaluator)
	}
}

// executeLine parses one line and runs it against evaluator, printing
// diagnostics (in red when Cfg.Color is set) and each print's output as it
// occurs. Parse errors and runtime errors are reported but never stop the
// REPL.
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	par := parser.NewParser(line)
	stmts := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			r.reportError(writer, msg)
		}
		return
	}

	if err := evaluator.Eval(stmts); err != nil {
		r.reportError(writer, eval.DiagFromError(err).Error())
	}
}

func (r *Repl) reportError(writer io.Writer, msg string) {
	if r.Cfg.Color {
		redColor.Fprintf(writer, "%s\n", msg)
	} else {
		io.WriteString(writer, msg+"\n")
	}
}
