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
	"math"
	"testing"
)

func TestAddNumberString(t *testing.T) {
	v, err := Add(NewInt(1), NewString("x"))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*String).Val; got != "1x" {
		t.Errorf("got %q, want %q", got, "1x")
	}

	v, err = Add(NewString("x"), NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*String).Val; got != "x1" {
		t.Errorf("got %q, want %q", got, "x1")
	}
}

func TestAddBooleanIsOr(t *testing.T) {
	v, err := Add(NewBoolean(false), NewBoolean(true))
	if err != nil {
		t.Fatal(err)
	}
	if !v.(*Boolean).Val {
		t.Error("expected Boolean(true)")
	}
}

func TestMulBooleanIsAnd(t *testing.T) {
	v, err := Mul(NewBoolean(true), NewBoolean(false))
	if err != nil {
		t.Fatal(err)
	}
	if v.(*Boolean).Val {
		t.Error("expected Boolean(false)")
	}
}

func TestSubListRemovesIndex(t *testing.T) {
	l := NewList([]Value{NewInt(1), NewInt(2), NewInt(3)})

	v, err := Sub(l, NewInt(1))
	if err != nil {
		t.Fatal(err)
	}
	got := v.(*List).Repr()
	if got != "[1, 3]" {
		t.Errorf("got %s, want [1, 3]", got)
	}
}

func TestSubListOutOfBounds(t *testing.T) {
	l := NewList([]Value{NewInt(1)})
	_, err := Sub(l, NewInt(5))
	if err == nil {
		t.Error("expected out-of-bounds error")
	}
}

func TestDivDictLookupMissingKey(t *testing.T) {
	d := NewDict()
	d.Set("a", NewInt(1))
	_, err := Div(d, NewString("missing"))
	if err == nil {
		t.Error("expected key-not-found error")
	}
}

func TestDivByZero(t *testing.T) {
	_, err := Div(NewInt(1), NewInt(0))
	if err == nil {
		t.Error("expected division-by-zero error")
	}
}

func TestPowNegativeExponent(t *testing.T) {
	v, err := Pow(NewNumber(2), NewInt(-1))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*Number).Val; got != 0.5 {
		t.Errorf("got %v, want 0.5", got)
	}
}

func TestPowFractionalExponent(t *testing.T) {
	v, err := Pow(NewNumber(2), NewNumber(0.5))
	if err != nil {
		t.Fatal(err)
	}
	got := v.(*Number).Val
	if math.Abs(got-math.Sqrt2) > 1e-9 {
		t.Errorf("got %v, want %v", got, math.Sqrt2)
	}
}

func TestModWraps(t *testing.T) {
	v, err := Mod(NewInt(7), NewInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*Number).Val; got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestCompEqCrossType(t *testing.T) {
	v, err := CompEq(NewInt(1), NewString("1"))
	if err != nil {
		t.Fatal(err)
	}
	if v.(*Boolean).Val {
		t.Error("expected Number(1) != String(\"1\")")
	}
}

func TestCompLtLists(t *testing.T) {
	v, err := CompLt(NewList([]Value{NewInt(1)}), NewList([]Value{NewInt(1), NewInt(2)}))
	if err != nil {
		t.Fatal(err)
	}
	if !v.(*Boolean).Val {
		t.Error("expected shorter list < longer list")
	}
}

func TestIllegalOperation(t *testing.T) {
	_, err := Add(NewInt(1), NewDict())
	if err == nil {
		t.Error("expected illegal operation error")
	}
}

func TestNegPreservesIsInt(t *testing.T) {
	v, err := Neg(NewInt(5))
	if err != nil {
		t.Fatal(err)
	}
	n := v.(*Number)
	if !n.IsInt || n.Val != -5 {
		t.Errorf("got %v (isInt=%v), want -5 (isInt=true)", n.Val, n.IsInt)
	}
}
