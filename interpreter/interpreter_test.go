/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"strings"
	"testing"

	"github.com/krotik/fx/util"
)

func run(t *testing.T, src string) (Value, error) {
	t.Helper()
	in := NewInterpreter("<test>", util.NewNullLogger(), nil)
	return in.Run("test", src)
}

func mustRun(t *testing.T, src string) Value {
	t.Helper()
	v, err := run(t, src)
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", src, err)
	}
	return v
}

func TestArithmeticAndAssignment(t *testing.T) {
	v := mustRun(t, "let a = 10\nlet b = 20\na + b")
	if got := v.Repr(); got != "30" {
		t.Errorf("got %s, want 30", got)
	}
}

func TestOperatorPrecedence(t *testing.T) {
	cases := map[string]string{
		"2 + 3 * 4": "14",
		"2 ^ 3 ^ 2": "512",
		"-2 ^ 2":    "-4",
	}
	for src, want := range cases {
		if got := mustRun(t, src).Repr(); got != want {
			t.Errorf("%q: got %s, want %s", src, got, want)
		}
	}
}

func TestForLoopIsInclusiveAndReturnsNull(t *testing.T) {
	in := NewInterpreter("<test>", util.NewNullLogger(), nil)
	v, err := in.Run("test", "for i = 1 to 3: print(i) end")
	if err != nil {
		t.Fatal(err)
	}
	if v != Null {
		t.Errorf("for-loop result should be Null, got %v", v.Repr())
	}

	last, err := in.Run("test", "i")
	if err != nil {
		t.Fatal(err)
	}
	if got := last.Repr(); got != "3" {
		t.Errorf("loop variable after 'for i = 1 to 3': got %s, want 3", got)
	}
}

func TestForLoopStepZeroErrors(t *testing.T) {
	_, err := run(t, "for i = 1 to 3 step 0: print(i) end")
	if err == nil || !strings.Contains(err.Error(), "Step value cannot be zero") {
		t.Errorf("expected step-zero error, got %v", err)
	}
}

func TestArrowFunction(t *testing.T) {
	v := mustRun(t, "fex f(x) -> x * x\nf(5)")
	if got := v.Repr(); got != "25" {
		t.Errorf("got %s, want 25", got)
	}
}

func TestRecursiveBlockFunction(t *testing.T) {
	src := "fex fact(n):\n" +
		"if n <= 1: return 1 end\n" +
		"return n * fact(n - 1)\n" +
		"end\n" +
		"fact(5)"
	v := mustRun(t, src)
	if got := v.Repr(); got != "120" {
		t.Errorf("got %s, want 120", got)
	}
}

func TestListIndexAndConcat(t *testing.T) {
	v := mustRun(t, "let xs = [1,2,3]\nxs + [4]")
	if got := v.Repr(); got != "[1, 2, 3, 4]" {
		t.Errorf("got %s, want [1, 2, 3, 4]", got)
	}

	v = mustRun(t, "let xs = [1,2,3]\nxs / 0")
	if got := v.Repr(); got != "1" {
		t.Errorf("got %s, want 1", got)
	}
}

func TestDictLookupAndDelete(t *testing.T) {
	v := mustRun(t, `let d = {"a": 1, "b": 2}`+"\n"+`d / "a"`)
	if got := v.Repr(); got != "1" {
		t.Errorf("got %s, want 1", got)
	}

	v = mustRun(t, `let d = {"a": 1, "b": 2}`+"\n"+`d - "a"`)
	if got := v.Repr(); got != "{b: 2}" {
		t.Errorf("got %s, want {b: 2}", got)
	}
}

func TestDictIntegerKey(t *testing.T) {
	v := mustRun(t, "let d = {1: \"a\"}\nd / 1")
	if got := v.Repr(); got != `"a"` {
		t.Errorf("got %s, want \"a\"", got)
	}

	v = mustRun(t, "let d = {1: \"a\"}\nd / \"1\"")
	if got := v.Repr(); got != `"a"` {
		t.Errorf("string-or-int key collision failed: got %s", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, "1 / 0")
	if err == nil || !strings.Contains(err.Error(), "Division by zero") {
		t.Errorf("expected division-by-zero error, got %v", err)
	}
}

func TestBreakOutsideLoopIsRuntimeError(t *testing.T) {
	_, err := run(t, "break")
	if err == nil || !strings.Contains(err.Error(), "outside of a loop") {
		t.Errorf("expected 'outside of a loop' error, got %v", err)
	}
}

func TestContinueOutsideLoopIsRuntimeError(t *testing.T) {
	_, err := run(t, "continue")
	if err == nil || !strings.Contains(err.Error(), "outside of a loop") {
		t.Errorf("expected 'outside of a loop' error, got %v", err)
	}
}

func TestBreakInFunctionBodyCannotEscapeToCallersLoop(t *testing.T) {
	src := "fex f():\n" +
		"break\n" +
		"end\n" +
		"for i = 1 to 3:\n" +
		"f()\n" +
		"end"
	_, err := run(t, src)
	if err == nil || !strings.Contains(err.Error(), "outside of a loop") {
		t.Errorf("expected 'outside of a loop' error from function body, got %v", err)
	}
}

func TestWhileLoopBreakAndContinue(t *testing.T) {
	src := "let i = 0\n" +
		"let total = 0\n" +
		"while i < 10:\n" +
		"let i = i + 1\n" +
		"if i == 5: continue end\n" +
		"if i == 8: break end\n" +
		"let total = total + i\n" +
		"end\n" +
		"total"
	v := mustRun(t, src)
	if got := v.Repr(); got != "23" {
		t.Errorf("got %s, want 23", got)
	}
}

func TestListOrderingByLength(t *testing.T) {
	v := mustRun(t, "[1,2,3] > [1,2]")
	if got := v.Repr(); got != "True" {
		t.Errorf("got %s, want True", got)
	}
}

func TestClosureCapturesDefiningScope(t *testing.T) {
	src := "let x = 10\n" +
		"fex makeAdder(n):\n" +
		"fex adder(y) -> y + n\n" +
		"return adder\n" +
		"end\n" +
		"let addFive = makeAdder(5)\n" +
		"addFive(x)"
	v := mustRun(t, src)
	if got := v.Repr(); got != "15" {
		t.Errorf("got %s, want 15", got)
	}
}

func TestStringEqualityReturnsBoolean(t *testing.T) {
	v := mustRun(t, `"a" == "a"`)
	if _, ok := v.(*Boolean); !ok {
		t.Errorf("expected Boolean, got %T", v)
	}
	if got := v.Repr(); got != "True" {
		t.Errorf("got %s, want True", got)
	}
}

func TestLetCannotShadowGlobal(t *testing.T) {
	_, err := run(t, "let Null = 1")
	if err == nil || !strings.Contains(err.Error(), "global") {
		t.Errorf("expected global-shadow error, got %v", err)
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, err := run(t, "x")
	if err == nil || !strings.Contains(err.Error(), "not defined") {
		t.Errorf("expected 'not defined' error, got %v", err)
	}
}
