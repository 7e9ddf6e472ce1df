/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devt.de/krotik/common/termutil"
)

/*
testConsoleLineTerminal is a no-op termutil.ConsoleLineTerminal used so
tests never touch a real tty.
*/
type testConsoleLineTerminal struct {
	in  []string
	out bytes.Buffer
}

func (t *testConsoleLineTerminal) StartTerm() error { return nil }

func (t *testConsoleLineTerminal) AddKeyHandler(handler termutil.KeyHandler) {}

func (t *testConsoleLineTerminal) NextLine() (string, error) {
	if len(t.in) == 0 {
		return "", os.ErrClosed
	}
	ret := t.in[0]
	t.in = t.in[1:]
	return ret, nil
}

func (t *testConsoleLineTerminal) NextLinePrompt(prompt string, echo rune) (string, error) {
	return t.NextLine()
}

func (t *testConsoleLineTerminal) WriteString(s string) { t.out.WriteString(s) }

func (t *testConsoleLineTerminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t *testConsoleLineTerminal) StopTerm() {}

func newTestInterpreter(t *testing.T) (*CLIInterpreter, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()

	tin := NewCLIInterpreter()
	tin.Term = &testConsoleLineTerminal{}

	logOut := &bytes.Buffer{}
	tin.LogOut = logOut

	tin.Dir = &dir
	logFile := ""
	logLevel := "Info"
	tin.LogFile = &logFile
	tin.LogLevel = &logLevel

	if err := tin.CreateInterpreter("<test>"); err != nil {
		t.Fatal(err)
	}
	return tin, logOut
}

func TestRunFileEvaluatesSource(t *testing.T) {
	tin, _ := newTestInterpreter(t)

	path := filepath.Join(*tin.Dir, "prog.fx")
	if err := ioutil.WriteFile(path, []byte("print(1 + 2)"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := tin.RunFile(path); err != nil {
		t.Fatal(err)
	}
}

func TestRunFileMissingFile(t *testing.T) {
	tin, _ := newTestInterpreter(t)

	err := tin.RunFile(filepath.Join(*tin.Dir, "nope.fx"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestHandleInputSuppressesNullResult(t *testing.T) {
	tin, logOut := newTestInterpreter(t)

	tin.HandleInput("Null")
	if logOut.Len() != 0 {
		t.Errorf("expected no output for a Null-valued statement, got %q", logOut.String())
	}
}

func TestHandleInputPrintsNonNullResult(t *testing.T) {
	tin, logOut := newTestInterpreter(t)

	tin.HandleInput("1 + 2")
	if got := strings.TrimSpace(logOut.String()); got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
}

func TestHandleInputPrintsRuntimeError(t *testing.T) {
	tin, logOut := newTestInterpreter(t)

	tin.HandleInput("1 / 0")
	if !strings.Contains(logOut.String(), "Division by zero") {
		t.Errorf("expected division-by-zero error in output, got %q", logOut.String())
	}
}

func TestHandleInputEmptyLineIsNoop(t *testing.T) {
	tin, logOut := newTestInterpreter(t)

	tin.HandleInput("")
	if logOut.Len() != 0 {
		t.Errorf("expected no output for an empty line, got %q", logOut.String())
	}
}

func TestIsExitLine(t *testing.T) {
	tin := NewCLIInterpreter()
	for _, s := range []string{"exit", "quit", "q", "bye"} {
		if !tin.isExitLine(s) {
			t.Errorf("%q should be an exit line", s)
		}
	}
	if tin.isExitLine("not an exit line") {
		t.Error("unexpected exit line match")
	}
}
