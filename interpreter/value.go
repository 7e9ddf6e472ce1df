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

import "github.com/krotik/fx/lexer"
import "github.com/krotik/fx/scope"

/*
Value is implemented by every runtime value. The family is closed:
Number, Boolean, String, List, Dict, Function and BuiltinFunction.
Binary and unary operators are not methods on Value - they are a
pair-dispatch table in ops.go that switches on the concrete type of
both operands, which keeps each value type a plain data holder.
*/
type Value interface {
	PosStart() *lexer.Position
	PosEnd() *lexer.Position
	SetPos(start, end *lexer.Position) Value
	Ctx() *scope.Context
	SetCtx(ctx *scope.Context) Value
	IsTrue() bool
	Copy() Value
	Repr() string
	TypeName() string
}

/*
base holds the position/context metadata every value carries purely
for error reporting, per the data model.
*/
type base struct {
	posStart *lexer.Position
	posEnd   *lexer.Position
	ctx      *scope.Context
}

func (b *base) PosStart() *lexer.Position { return b.posStart }
func (b *base) PosEnd() *lexer.Position   { return b.posEnd }
func (b *base) Ctx() *scope.Context       { return b.ctx }

/*
Callable is implemented by values that can appear on the left of a
function call: Function and BuiltinFunction.
*/
type Callable interface {
	Value
	Execute(interp *Interpreter, args []Value, callPos *lexer.Position) *RTResult
	Name() string
}

/*
illegalOperation builds the "Illegal operation" runtime error anchored
on the combined span of both operands (or just left, if right is nil).
*/
func illegalOperation(left, right Value) error {
	end := left.PosEnd()
	ctx := left.Ctx()
	if right != nil {
		end = right.PosEnd()
	}
	return NewRuntimeError(left.PosStart(), end, "Illegal operation", ctx)
}
