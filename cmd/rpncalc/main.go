package main

// This is an interactive Reverse Polish Notation calculator.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/letung3105/rpncalc/internal/rpn"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

const (
	prompt      = "rpn> "
	historyFile = ".rpncalc_history"
)

func main() {
	log.SetFlags(0)
	var (
		expr, file, history string
		maxPower            float64
		echo, quiet         bool
	)
	flag.StringVar(&expr, "e", "", "evaluate a single expression and exit")
	flag.StringVar(&file, "f", "", "evaluate every line of a file")
	flag.StringVar(&history, "history", "", "line editor history file (default ~/"+historyFile+")")
	flag.Float64Var(&maxPower, "maxpow", rpn.DefaultMaxPower, "exponent magnitude from which ** gives inf")
	flag.BoolVar(&echo, "echo", false, "print canonical tokens before each result")
	flag.BoolVar(&quiet, "q", false, "do not print the banner")
	flag.Parse()
	if !(maxPower > 0) {
		log.Fatalf("max power (%v) must be positive", maxPower)
	}

	reporter := rpn.NewSimpleReporter(os.Stdout)
	calc := rpn.NewCalculator(os.Stdout, reporter, rpn.WithMaxPower(maxPower))
	calc.Echo = echo

	switch {
	case expr != "":
		calc.Interpret(expr)
		exitIf(reporter.HadError(), 1)
	case file != "":
		runFile(file, calc, reporter)
	default:
		if !quiet {
			fmt.Println(rpn.Banner)
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			runPrompt(calc, reporter, historyPath(history))
		} else {
			exitOnError(calc.Run(os.Stdin), 1)
		}
	}
}

// Run the calculator in REPL mode
func runPrompt(calc *rpn.Calculator, reporter rpn.Reporter, histPath string) {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			log.Print(err)
			return
		}
		if calc.Interpret(line) {
			ln.AppendHistory(strings.TrimSpace(line))
		}
		reporter.Reset()
	}
}

// Evaluate every line of the given file
func runFile(fpath string, calc *rpn.Calculator, reporter rpn.Reporter) {
	f, err := os.Open(fpath)
	exitOnError(err, 1)
	defer f.Close()

	exitOnError(calc.Run(f), 1)
	exitIf(reporter.HadError(), 65)
}

func historyPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func exitOnError(err error, status int) {
	if err != nil {
		log.Print(err)
		os.Exit(status)
	}
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
