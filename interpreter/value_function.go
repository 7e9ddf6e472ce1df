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
	"github.com/krotik/fx/parser"
	"github.com/krotik/fx/scope"
)

/*
Function is a user-defined, closure-capturing function value. DefCtx is
the context active where 'fex' was evaluated; calling the function
opens a fresh child table parented on DefCtx's table, so the body sees
whatever was in scope at definition time plus its own parameters.
*/
type Function struct {
	base
	FuncName string
	ArgNames []string
	Body     parser.Node
	IsArrow  bool
	DefCtx   *scope.Context
}

/*
NewFunction creates a function value. An empty funcName marks an
anonymous function literal.
*/
func NewFunction(funcName string, argNames []string, body parser.Node, isArrow bool, defCtx *scope.Context) *Function {
	if funcName == "" {
		funcName = "<anonymous>"
	}
	return &Function{FuncName: funcName, ArgNames: argNames, Body: body, IsArrow: isArrow, DefCtx: defCtx}
}

func (f *Function) SetPos(start, end *lexer.Position) Value {
	f.posStart, f.posEnd = start, end
	return f
}

func (f *Function) SetCtx(ctx *scope.Context) Value {
	f.ctx = ctx
	return f
}

func (f *Function) IsTrue() bool { return true }

func (f *Function) Copy() Value {
	cp := *f
	return &cp
}

func (f *Function) TypeName() string { return "function" }

func (f *Function) Repr() string { return fmt.Sprintf("<function %s>", f.FuncName) }

func (f *Function) Name() string { return f.FuncName }

/*
Execute binds args to ArgNames in a fresh context and evaluates Body.
Arrow functions ('-> expr') return the expression's value directly;
block functions ('... end') return whatever a 'return' statement set,
or Null if the body falls off the end.
*/
func (f *Function) Execute(interp *Interpreter, args []Value, callPos *lexer.Position) *RTResult {
	res := NewRTResult()

	execCtx := scope.NewContext(f.FuncName, f.DefCtx, callPos)
	execCtx.SymbolTable = scope.NewSymbolTable(f.DefCtx.SymbolTable)

	if len(args) > len(f.ArgNames) {
		return res.Failure(NewRuntimeError(callPos, callPos,
			fmt.Sprintf("%d too many args passed into '%s'", len(args)-len(f.ArgNames), f.FuncName), f.ctx))
	}
	if len(args) < len(f.ArgNames) {
		return res.Failure(NewRuntimeError(callPos, callPos,
			fmt.Sprintf("%d too few args passed into '%s'", len(f.ArgNames)-len(args), f.FuncName), f.ctx))
	}

	for i, name := range f.ArgNames {
		arg := args[i].Copy()
		arg.SetCtx(execCtx)
		execCtx.SymbolTable.Set(name, arg)
	}

	savedLoopDepth := interp.loopDepth
	interp.loopDepth = 0
	value := res.Register(interp.Visit(f.Body, execCtx))
	interp.loopDepth = savedLoopDepth
	if res.ShouldReturn() && res.FuncReturnValue == nil {
		return res
	}

	if f.IsArrow {
		if value == nil {
			value = Null
		}
		return res.Success(value)
	}

	retValue := res.FuncReturnValue
	if retValue == nil {
		retValue = Null
	}
	return res.Success(retValue)
}
