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
)

func TestBuiltinType(t *testing.T) {
	cases := map[string]string{
		"type(1)":      `"number"`,
		`type("x")`:    `"string"`,
		"type([1])":    `"list"`,
		"type({})":     `"dict"`,
		"type(True)":   `"boolean"`,
		"type(print)":  `"builtin-function"`,
	}
	for src, want := range cases {
		if got := mustRun(t, src).Repr(); got != want {
			t.Errorf("%q: got %s, want %s", src, got, want)
		}
	}
}

func TestBuiltinLen(t *testing.T) {
	if got := mustRun(t, `len("hello")`).Repr(); got != "5" {
		t.Errorf("got %s, want 5", got)
	}
	if got := mustRun(t, "len([1,2,3])").Repr(); got != "3" {
		t.Errorf("got %s, want 3", got)
	}
}

func TestBuiltinLenRejectsNumber(t *testing.T) {
	_, err := run(t, "len(1)")
	if err == nil || !strings.Contains(err.Error(), "must be") {
		t.Errorf("expected argument-type error, got %v", err)
	}
}

func TestBuiltinConvert(t *testing.T) {
	if got := mustRun(t, `convert(1, "string")`).Repr(); got != `"1"` {
		t.Errorf("got %s, want \"1\"", got)
	}
	if got := mustRun(t, `convert("42", "number")`).Repr(); got != "42" {
		t.Errorf("got %s, want 42", got)
	}
	if got := mustRun(t, `convert(0, "boolean")`).Repr(); got != "False" {
		t.Errorf("got %s, want False", got)
	}
	if got := mustRun(t, `convert(1, "boolean")`).Repr(); got != "True" {
		t.Errorf("got %s, want True", got)
	}
}

func TestBuiltinConvertBadNumber(t *testing.T) {
	_, err := run(t, `convert("not a number", "number")`)
	if err == nil || !strings.Contains(err.Error(), "Could not convert") {
		t.Errorf("expected conversion error, got %v", err)
	}
}

func TestBuiltinEval(t *testing.T) {
	v := mustRun(t, `eval("1 + 2")`)
	if got := v.Repr(); got != "3" {
		t.Errorf("got %s, want 3", got)
	}
}

func TestBuiltinRandomBounded(t *testing.T) {
	v := mustRun(t, "random(10)")
	n, ok := v.(*Number)
	if !ok {
		t.Fatalf("expected Number, got %T", v)
	}
	if n.Val < 0 || n.Val >= 10 {
		t.Errorf("random(10) out of range: %v", n.Val)
	}
}

func TestBuiltinRandomFromEmptyListErrors(t *testing.T) {
	_, err := run(t, "random([])")
	if err == nil || !strings.Contains(err.Error(), "empty list") {
		t.Errorf("expected empty-list error, got %v", err)
	}
}

func TestBuiltinPadRightPadsToWidth(t *testing.T) {
	v := mustRun(t, `pad("ab", 5)`)
	s, ok := v.(*String)
	if !ok {
		t.Fatalf("expected String, got %T", v)
	}
	if s.Val != "ab   " {
		t.Errorf("got %q, want %q", s.Val, "ab   ")
	}
}

func TestBuiltinPadNoopWhenAlreadyWide(t *testing.T) {
	v := mustRun(t, `pad("hello", 3)`)
	if got := v.(*String).Val; got != "hello" {
		t.Errorf("got %q, want %q", got, "hello")
	}
}

func TestBuiltinPadConvertsNonString(t *testing.T) {
	v := mustRun(t, `pad(1, 3)`)
	if got := v.(*String).Val; got != "1  " {
		t.Errorf("got %q, want %q", got, "1  ")
	}
}
