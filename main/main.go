/*
File    : mix/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the mix interpreter. It provides two
modes of operation:
 1. REPL Mode (default): Interactive Read-Eval-Print Loop for live coding
 2. File Mode: Execute a mix source file from the command line

The interpreter uses a lexer-parser-evaluator pipeline to process mix code.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/mixlang/mix/config"
	"github.com/mixlang/mix/eval"
	"github.com/mixlang/mix/repl"
)

// VERSION represents the current version of the mix interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENSE specifies the software license.
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
 ███╗   ███╗ ██╗ ██╗  ██╗
 ████╗ ████║ ██║ ╚██╗██╔╝
 ██╔████╔██║ ██║  ╚███╔╝
 ██║╚██╔╝██║ ██║  ██╔██╗
 ██║ ╚═╝ ██║ ██║ ██╔╝ ╚██╗
 ╚═╝     ╚═╝ ╚═╝ ╚═╝   ╚═╝
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

// main is the entry point of the mix interpreter. It determines the
// operating mode based on command-line arguments:
//
// Usage:
//
//	mix              - Start in REPL (interactive) mode
//	mix <filename>   - Execute the specified mix source file
//	mix --help       - Display help information
//	mix --version    - Display version information
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		status := runFile(arg)
		os.Exit(status.ExitCode())
	}

	cfg, err := config.LoadDefaultPath()
	if err != nil {
		redColor.Fprintf(os.Stderr, "[CONFIG ERROR] %v\n", err)
		cfg = config.Default()
	}
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, cfg)
	repler.Start(os.Stdout)
}

// showHelp displays the help information for the mix interpreter.
func showHelp() {
	cyanColor.Println("mix - A Small Expression-Oriented Scripting Language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  mix                    Start interactive REPL mode")
	fmt.Println("  mix <path-to-file>     Execute a mix file")
	fmt.Println("  mix --help             Display this help message")
	fmt.Println("  mix --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	fmt.Println("  .exit                  Exit the REPL")
}

// showVersion displays the version information for the mix interpreter.
func showVersion() {
	cyanColor.Println("mix - A Small Expression-Oriented Scripting Language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a mix source file, printing any diagnostics to
// stderr and returning the resulting exit status for main to surface via
// os.Exit. If the file cannot be read, runFile exits the process with
// status 1 itself.
func runFile(fileName string) eval.ExitStatus {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	return eval.Run(string(fileContent), os.Stdout, os.Stderr)
}
