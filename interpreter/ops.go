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

/*
This file is the pair-dispatch table for binary and unary operators: it
switches on the concrete Go type of the operand(s) rather than calling
a virtual method on Value, so each value type in value_*.go stays a
plain data holder and every operator's full behaviour lives in one
place.
*/

import "math"

/*
Add implements '+'. Number+Number adds; Number/String combine by
stringifying the number; List+List concatenates, List+anything else
appends a copy of the right operand; Dict+Dict merges with the right
side winning on key collision; Boolean+anything is a logical or.
*/
func Add(l, r Value) (Value, error) {
	switch lv := l.(type) {
	case *Number:
		switch rv := r.(type) {
		case *Number:
			n := NewNumber(lv.Val + rv.Val)
			n.IsInt = lv.IsInt && rv.IsInt
			return n, nil
		case *String:
			return NewString(lv.Repr() + rv.Val), nil
		}
	case *String:
		switch rv := r.(type) {
		case *String:
			return NewString(lv.Val + rv.Val), nil
		case *Number:
			return NewString(lv.Val + rv.Repr()), nil
		}
	case *List:
		if rv, ok := r.(*List); ok {
			els := append(append([]Value{}, lv.Elements...), rv.Elements...)
			return NewList(els), nil
		}
		els := append(append([]Value{}, lv.Elements...), r.Copy())
		return NewList(els), nil
	case *Dict:
		if rv, ok := r.(*Dict); ok {
			return lv.Merge(rv), nil
		}
	case *Boolean:
		return NewBoolean(lv.Val || r.IsTrue()), nil
	}
	return nil, illegalOperation(l, r)
}

/*
Sub implements '-'. Number-Number subtracts; List-Number removes the
element at that index; Dict-(String|Number) removes that key.
*/
func Sub(l, r Value) (Value, error) {
	switch lv := l.(type) {
	case *Number:
		if rv, ok := r.(*Number); ok {
			n := NewNumber(lv.Val - rv.Val)
			n.IsInt = lv.IsInt && rv.IsInt
			return n, nil
		}
	case *List:
		if rv, ok := r.(*Number); ok {
			idx := int(rv.Val)
			if idx < 0 || idx >= len(lv.Elements) {
				return nil, NewRuntimeError(r.PosStart(), r.PosEnd(), "Element at this index could not be removed from list because index is out of bounds", l.Ctx())
			}
			els := append(append([]Value{}, lv.Elements[:idx]...), lv.Elements[idx+1:]...)
			return NewList(els), nil
		}
	case *Dict:
		if key, ok := dictKeyString(r); ok {
			cp := lv.Copy().(*Dict)
			cp.Delete(key)
			return cp, nil
		}
	}
	return nil, illegalOperation(l, r)
}

/*
Mul implements '*'. Number*Number multiplies; List/String * Number
repeats; Boolean*anything is a logical and.
*/
func Mul(l, r Value) (Value, error) {
	switch lv := l.(type) {
	case *Number:
		if rv, ok := r.(*Number); ok {
			n := NewNumber(lv.Val * rv.Val)
			n.IsInt = lv.IsInt && rv.IsInt
			return n, nil
		}
	case *List:
		if rv, ok := r.(*Number); ok {
			var els []Value
			for i := 0; i < int(rv.Val); i++ {
				for _, e := range lv.Elements {
					els = append(els, e.Copy())
				}
			}
			return NewList(els), nil
		}
	case *String:
		if rv, ok := r.(*Number); ok {
			s := ""
			for i := 0; i < int(rv.Val); i++ {
				s += lv.Val
			}
			return NewString(s), nil
		}
	case *Boolean:
		return NewBoolean(lv.Val && r.IsTrue()), nil
	}
	return nil, illegalOperation(l, r)
}

/*
Div implements '/'. Number/Number divides; List/Number indexes into
the list; Dict/(String|Number) looks up a key.
*/
func Div(l, r Value) (Value, error) {
	switch lv := l.(type) {
	case *Number:
		if rv, ok := r.(*Number); ok {
			if rv.Val == 0 {
				return nil, NewRuntimeError(r.PosStart(), r.PosEnd(), "Division by zero", l.Ctx())
			}
			n := NewNumber(lv.Val / rv.Val)
			n.IsInt = lv.IsInt && rv.IsInt && int64(lv.Val)%int64(rv.Val) == 0
			return n, nil
		}
	case *List:
		if rv, ok := r.(*Number); ok {
			idx := int(rv.Val)
			if idx < 0 || idx >= len(lv.Elements) {
				return nil, NewRuntimeError(r.PosStart(), r.PosEnd(), "Element at this index could not be retrieved from list because index is out of bounds", l.Ctx())
			}
			return lv.Elements[idx], nil
		}
	case *Dict:
		if key, ok := dictKeyString(r); ok {
			v, ok := lv.Pairs[key]
			if !ok {
				return nil, NewRuntimeError(r.PosStart(), r.PosEnd(), "Key '"+key+"' not found in dict", l.Ctx())
			}
			return v, nil
		}
	}
	return nil, illegalOperation(l, r)
}

/*
Pow implements '^', only defined over numbers. Integer/integer pairs
with a non-negative exponent take a repeated-multiplication fast path
so they stay exact; every other case (fractional or negative exponents)
goes through math.Pow.
*/
func Pow(l, r Value) (Value, error) {
	lv, lok := l.(*Number)
	rv, rok := r.(*Number)
	if !lok || !rok {
		return nil, illegalOperation(l, r)
	}
	if lv.IsInt && rv.IsInt && rv.Val >= 0 {
		result := 1.0
		for i := 0; i < int(rv.Val); i++ {
			result *= lv.Val
		}
		n := NewNumber(result)
		n.IsInt = true
		return n, nil
	}
	return NewNumber(math.Pow(lv.Val, rv.Val)), nil
}

/*
Mod implements '%', numbers only.
*/
func Mod(l, r Value) (Value, error) {
	lv, lok := l.(*Number)
	rv, rok := r.(*Number)
	if !lok || !rok {
		return nil, illegalOperation(l, r)
	}
	if rv.Val == 0 {
		return nil, NewRuntimeError(r.PosStart(), r.PosEnd(), "Division by zero", l.Ctx())
	}
	n := NewNumber(float64(int64(lv.Val) % int64(rv.Val)))
	n.IsInt = lv.IsInt && rv.IsInt
	return n, nil
}

/*
dictKeyString converts a String or Number value into the string used to
key a Dict's Pairs map - dicts accept both string and integer/float
literal keys, but are represented as a single map[string]Value.
*/
func dictKeyString(v Value) (string, bool) {
	switch kv := v.(type) {
	case *String:
		return kv.Val, true
	case *Number:
		return kv.Repr(), true
	}
	return "", false
}

func eqVals(l, r Value) bool {
	switch lv := l.(type) {
	case *Number:
		if rv, ok := r.(*Number); ok {
			return lv.Val == rv.Val
		}
	case *String:
		if rv, ok := r.(*String); ok {
			return lv.Val == rv.Val
		}
	case *Boolean:
		if rv, ok := r.(*Boolean); ok {
			return lv.Val == rv.Val
		}
	case *List:
		if rv, ok := r.(*List); ok {
			if len(lv.Elements) != len(rv.Elements) {
				return false
			}
			for i := range lv.Elements {
				if !eqVals(lv.Elements[i], rv.Elements[i]) {
					return false
				}
			}
			return true
		}
	}
	return l == r
}

/*
CompEq implements '=='. Always yields a Boolean, regardless of operand
types.
*/
func CompEq(l, r Value) (Value, error) { return NewBoolean(eqVals(l, r)), nil }

/*
CompNe implements '!='.
*/
func CompNe(l, r Value) (Value, error) { return NewBoolean(!eqVals(l, r)), nil }

/*
orderedLens returns the operand lengths for List ordering comparisons,
or ok=false if l/r are not both Lists.
*/
func orderedLens(l, r Value) (int, int, bool) {
	lv, lok := l.(*List)
	rv, rok := r.(*List)
	if !lok || !rok {
		return 0, 0, false
	}
	return len(lv.Elements), len(rv.Elements), true
}

/*
CompLt implements '<', over numbers or lists (ordered by length).
*/
func CompLt(l, r Value) (Value, error) {
	if lv, ok := l.(*Number); ok {
		if rv, ok := r.(*Number); ok {
			return NewBoolean(lv.Val < rv.Val), nil
		}
	}
	if ll, rl, ok := orderedLens(l, r); ok {
		return NewBoolean(ll < rl), nil
	}
	return nil, illegalOperation(l, r)
}

/*
CompGt implements '>', over numbers or lists (ordered by length).
*/
func CompGt(l, r Value) (Value, error) {
	if lv, ok := l.(*Number); ok {
		if rv, ok := r.(*Number); ok {
			return NewBoolean(lv.Val > rv.Val), nil
		}
	}
	if ll, rl, ok := orderedLens(l, r); ok {
		return NewBoolean(ll > rl), nil
	}
	return nil, illegalOperation(l, r)
}

/*
CompLte implements '<=', over numbers or lists (ordered by length).
*/
func CompLte(l, r Value) (Value, error) {
	if lv, ok := l.(*Number); ok {
		if rv, ok := r.(*Number); ok {
			return NewBoolean(lv.Val <= rv.Val), nil
		}
	}
	if ll, rl, ok := orderedLens(l, r); ok {
		return NewBoolean(ll <= rl), nil
	}
	return nil, illegalOperation(l, r)
}

/*
CompGte implements '>=', over numbers or lists (ordered by length).
*/
func CompGte(l, r Value) (Value, error) {
	if lv, ok := l.(*Number); ok {
		if rv, ok := r.(*Number); ok {
			return NewBoolean(lv.Val >= rv.Val), nil
		}
	}
	if ll, rl, ok := orderedLens(l, r); ok {
		return NewBoolean(ll >= rl), nil
	}
	return nil, illegalOperation(l, r)
}

/*
And implements 'and'. There is no short-circuit: the caller evaluates
both operands before And combines them via IsTrue.
*/
func And(l, r Value) (Value, error) { return NewBoolean(l.IsTrue() && r.IsTrue()), nil }

/*
Or implements 'or'.
*/
func Or(l, r Value) (Value, error) { return NewBoolean(l.IsTrue() || r.IsTrue()), nil }

/*
Not implements unary 'not'.
*/
func Not(v Value) (Value, error) { return NewBoolean(!v.IsTrue()), nil }

/*
Neg implements unary '-'.
*/
func Neg(v Value) (Value, error) {
	n, ok := v.(*Number)
	if !ok {
		return nil, illegalOperation(v, nil)
	}
	r := NewNumber(-n.Val)
	r.IsInt = n.IsInt
	return r, nil
}
