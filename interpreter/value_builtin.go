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
	"fmt"

	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
BuiltinFn is the Go implementation backing a BuiltinFunction.
*/
type BuiltinFn func(interp *Interpreter, args []Value, callPos *lexer.Position, callerCtx *scope.Context) *RTResult

/*
BuiltinFunction wraps a Go function so it can be called like any other
Fx function value.
*/
type BuiltinFunction struct {
	base
	FuncName string
	Fn       BuiltinFn
}

/*
NewBuiltinFunction wraps fn under name.
*/
func NewBuiltinFunction(name string, fn BuiltinFn) *BuiltinFunction {
	return &BuiltinFunction{FuncName: name, Fn: fn}
}

func (b *BuiltinFunction) SetPos(start, end *lexer.Position) Value {
	b.posStart, b.posEnd = start, end
	return b
}

func (b *BuiltinFunction) SetCtx(ctx *scope.Context) Value {
	b.ctx = ctx
	return b
}

func (b *BuiltinFunction) IsTrue() bool { return true }

func (b *BuiltinFunction) Copy() Value {
	cp := *b
	return &cp
}

func (b *BuiltinFunction) TypeName() string { return "builtin-function" }

func (b *BuiltinFunction) Repr() string { return fmt.Sprintf("<builtin function %s>", b.FuncName) }

func (b *BuiltinFunction) Name() string { return b.FuncName }

func (b *BuiltinFunction) Execute(interp *Interpreter, args []Value, callPos *lexer.Position) *RTResult {
	execCtx := scope.NewContext(b.FuncName, interp.globalCtx, callPos)
	execCtx.SymbolTable = scope.NewSymbolTable(interp.globalCtx.SymbolTable)
	return b.Fn(interp, args, callPos, execCtx)
}
