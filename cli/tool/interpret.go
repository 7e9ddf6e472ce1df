/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package tool implements the Fx command line tools: running a script
file and the interactive console.
*/
package tool

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"
	"github.com/krotik/fx/config"
	"github.com/krotik/fx/interpreter"
	"github.com/krotik/fx/util"
)

/*
osArgs is a local copy of os.Args (used for unit tests).
*/
var osArgs = os.Args

/*
prompt is printed before every REPL line, matching the reference shell.
*/
const prompt = "FxPy>>> "

/*
CLIInterpreter is a commandline interpreter for Fx: it can run a single
file or drop into an interactive console.
*/
type CLIInterpreter struct {
	Interp *interpreter.Interpreter

	EntryFile string // Entry file for the program, empty for console-only

	Dir      *string // Root dir used to resolve imports
	LogFile  *string // Logfile (blank for stdout)
	LogLevel *string // Log level string (Debug, Info, Error)

	Term termutil.ConsoleLineTerminal

	LogOut io.Writer
}

/*
NewCLIInterpreter creates a new commandline interpreter for Fx.
*/
func NewCLIInterpreter() *CLIInterpreter {
	return &CLIInterpreter{LogOut: os.Stdout}
}

/*
ParseArgs parses the command line arguments.
*/
func (i *CLIInterpreter) ParseArgs() bool {
	if i.Dir != nil && i.LogFile != nil && i.LogLevel != nil {
		return false
	}

	wd, _ := os.Getwd()

	i.Dir = flag.String("dir", wd, "Root directory used to resolve imports")
	i.LogFile = flag.String("logfile", "", "Log to a file")
	i.LogLevel = flag.String("loglevel", "Info", "Logging level (Debug, Info, Error)")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s [options] [file.fx]", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 1 {
		flag.CommandLine.Parse(osArgs[1:])
		if cargs := flag.Args(); len(cargs) > 0 {
			i.EntryFile = flag.Arg(0)
		}
		if *showHelp {
			flag.Usage()
		}
	}

	return *showHelp
}

/*
CreateInterpreter builds the interpreter.Interpreter, wiring a logger and
a file-backed module loader rooted at Dir. Expects Dir, LogFile and
LogLevel to be set.
*/
func (i *CLIInterpreter) CreateInterpreter(displayName string) error {
	var logger util.Logger
	var err error

	if i.Interp != nil {
		return nil
	}

	if i.LogFile != nil && *i.LogFile != "" {
		var logWriter io.Writer
		rollover := fileutil.SizeBasedRolloverCondition(1000000)
		logWriter, err = fileutil.NewMultiFileBuffer(*i.LogFile, fileutil.ConsecutiveNumberIterator(10), rollover)
		logger = util.NewBufferLogger(logWriter)
	} else {
		logger = util.NewStdOutLogger()
	}

	if err == nil && i.LogLevel != nil && *i.LogLevel != "" {
		logger, err = util.NewLogLevelLogger(logger, *i.LogLevel)
	}

	if err == nil {
		config.Config[config.ImportRoot] = *i.Dir
		loader := interpreter.NewModuleLoader(&util.FileModuleLocator{Root: *i.Dir})
		i.Interp = interpreter.NewInterpreter(displayName, logger, loader)
	}

	return err
}

/*
CreateTerm creates a new console terminal for stdout.
*/
func (i *CLIInterpreter) CreateTerm() error {
	var err error
	if i.Term == nil {
		i.Term, err = termutil.NewConsoleLineTerminal(os.Stdout)
	}
	return err
}

/*
Interpret runs the entry file, if one was given, then starts an
interactive console in the current tty if interactive is set. When not
interactive, an error from the entry file is returned to the caller.
*/
func (i *CLIInterpreter) Interpret(interactive bool) error {
	if i.ParseArgs() {
		return nil
	}

	err := i.CreateTerm()
	if err != nil {
		return err
	}

	if interactive {
		fmt.Fprintln(i.LogOut, fmt.Sprintf("Fx %v", config.ProductVersion))
	}

	if err = i.CreateInterpreter("<program>"); err != nil {
		return err
	}

	if i.EntryFile != "" {
		if err = i.RunFile(i.EntryFile); err != nil {
			if !interactive {
				return err
			}
			fmt.Fprintln(i.LogOut, err.Error())
		}
	}

	if !interactive {
		return nil
	}

	i.Term, err = termutil.AddHistoryMixin(i.Term, config.Str(config.HistoryFile), i.isExitLine)
	if err != nil {
		return err
	}

	if err = i.Term.StartTerm(); err != nil {
		return err
	}
	defer i.Term.StopTerm()

	fmt.Fprintln(i.LogOut, "Type 'exit' or 'quit' to leave the console")

	line, err := i.Term.NextLinePrompt(prompt, 0)
	for err == nil && !i.isExitLine(line) {
		i.HandleInput(strings.TrimSpace(line))
		line, err = i.Term.NextLinePrompt(prompt, 0)
	}
	if err == io.EOF {
		err = nil
	}

	return err
}

/*
RunFile reads and evaluates a whole file.
*/
func (i *CLIInterpreter) RunFile(path string) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("Could not read %v: %w", path, err)
	}

	_, err = i.Interp.Run(path, string(src))
	return err
}

/*
HandleInput evaluates one REPL line and prints its result, matching the
reference shell's convention of staying quiet when the result's repr is
"0" (Fx's Null constant reprs as "0").
*/
func (i *CLIInterpreter) HandleInput(line string) {
	if line == "" {
		return
	}

	val, err := i.Interp.Run("<console>", line)
	if err != nil {
		fmt.Fprintln(i.LogOut, err.Error())
		return
	}
	if val != nil && val.Repr() != "0" {
		fmt.Fprintln(i.LogOut, val.Repr())
	}
}

func (i *CLIInterpreter) isExitLine(s string) bool {
	return s == "exit" || s == "quit" || s == "q" || s == "bye" || s == "\x04"
}
