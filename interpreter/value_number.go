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
	"strconv"

	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
Number is a numeric value. Fx does not distinguish int from float at
the syntax level beyond how a literal was written; arithmetic always
works in float64 and IsInt remembers whether the value should print
without a fractional part.
*/
type Number struct {
	base
	Val   float64
	IsInt bool
}

/*
NewNumber creates a float-valued number.
*/
func NewNumber(val float64) *Number {
	return &Number{Val: val}
}

/*
NewInt creates an integer-valued number.
*/
func NewInt(val int64) *Number {
	return &Number{Val: float64(val), IsInt: true}
}

func (n *Number) SetPos(start, end *lexer.Position) Value {
	n.posStart, n.posEnd = start, end
	return n
}

func (n *Number) SetCtx(ctx *scope.Context) Value {
	n.ctx = ctx
	return n
}

func (n *Number) IsTrue() bool { return n.Val != 0 }

func (n *Number) Copy() Value {
	cp := *n
	return &cp
}

func (n *Number) TypeName() string { return "number" }

func (n *Number) Repr() string {
	if n.IsInt {
		return strconv.FormatInt(int64(n.Val), 10)
	}
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}
