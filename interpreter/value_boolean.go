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
	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
Boolean is a true/false value. 'and'/'or' on booleans combine their
operands through IsTrue the same way they do for every other value
type - any value can appear on either side of 'and'/'or', both sides
are always evaluated, and the result is always a Boolean.
*/
type Boolean struct {
	base
	Val bool
}

/*
NewBoolean creates a boolean value.
*/
func NewBoolean(val bool) *Boolean {
	return &Boolean{Val: val}
}

func (b *Boolean) SetPos(start, end *lexer.Position) Value {
	b.posStart, b.posEnd = start, end
	return b
}

func (b *Boolean) SetCtx(ctx *scope.Context) Value {
	b.ctx = ctx
	return b
}

func (b *Boolean) IsTrue() bool { return b.Val }

func (b *Boolean) Copy() Value {
	cp := *b
	return &cp
}

func (b *Boolean) TypeName() string { return "boolean" }

func (b *Boolean) Repr() string {
	if b.Val {
		return "True"
	}
	return "False"
}
