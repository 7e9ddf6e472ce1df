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

	"github.com/krotik/fx/config"
	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/parser"
	"github.com/krotik/fx/scope"
	"github.com/krotik/fx/util"
)

/*
Interpreter walks an AST built by package parser, evaluating each node
against a Context. It holds no per-run state of its own beyond the
program's global context, a call-depth counter and a loop-nesting
counter - everything else
lives in the Context/SymbolTable chain being walked.
*/
type Interpreter struct {
	globalCtx *scope.Context
	depth     int
	loopDepth int
	Logger    util.Logger
	Loader    *ModuleLoader
}

/*
NewInterpreter creates an interpreter with a fresh global context rooted
at displayName (normally "<program>").
*/
func NewInterpreter(displayName string, logger util.Logger, loader *ModuleLoader) *Interpreter {
	ctx := scope.NewContext(displayName, nil, nil)
	ctx.SymbolTable = NewGlobalSymbolTable()
	return &Interpreter{globalCtx: ctx, Logger: logger, Loader: loader}
}

/*
GlobalContext returns the interpreter's root context.
*/
func (in *Interpreter) GlobalContext() *scope.Context { return in.globalCtx }

/*
Run lexes, parses and evaluates a complete program against the global
context.
*/
func (in *Interpreter) Run(source, text string) (Value, error) {
	node, err := parser.Parse(source, text)
	if err != nil {
		return nil, err
	}
	res := in.Visit(node, in.globalCtx)
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Value, nil
}

/*
Visit dispatches on the concrete type of node - the counterpart of the
pair-dispatch table in ops.go, but keyed on a single tag instead of
two.
*/
func (in *Interpreter) Visit(node parser.Node, ctx *scope.Context) *RTResult {
	switch n := node.(type) {
	case *parser.NumberNode:
		return in.visitNumberNode(n, ctx)
	case *parser.StringNode:
		return in.visitStringNode(n, ctx)
	case *parser.BoolNode:
		return in.visitBoolNode(n, ctx)
	case *parser.ListNode:
		return in.visitListNode(n, ctx)
	case *parser.DictNode:
		return in.visitDictNode(n, ctx)
	case *parser.VarAccessNode:
		return in.visitVarAccessNode(n, ctx)
	case *parser.VarAssignNode:
		return in.visitVarAssignNode(n, ctx)
	case *parser.BinOpNode:
		return in.visitBinOpNode(n, ctx)
	case *parser.UnaryOpNode:
		return in.visitUnaryOpNode(n, ctx)
	case *parser.IfNode:
		return in.visitIfNode(n, ctx)
	case *parser.ForNode:
		return in.visitForNode(n, ctx)
	case *parser.WhileNode:
		return in.visitWhileNode(n, ctx)
	case *parser.FuncDefNode:
		return in.visitFuncDefNode(n, ctx)
	case *parser.FuncCallNode:
		return in.visitFuncCallNode(n, ctx)
	case *parser.ReturnNode:
		return in.visitReturnNode(n, ctx)
	case *parser.ContinueNode:
		if in.loopDepth == 0 {
			return NewRTResult().Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "'continue' outside of a loop", ctx))
		}
		return NewRTResult().SuccessContinue()
	case *parser.BreakNode:
		if in.loopDepth == 0 {
			return NewRTResult().Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "'break' outside of a loop", ctx))
		}
		return NewRTResult().SuccessBreak()
	case *parser.ImportNode:
		return in.visitImportNode(n, ctx)
	case *parser.FromImportNode:
		return in.visitFromImportNode(n, ctx)
	}
	panic(fmt.Sprintf("no visit method for %T", node))
}

func (in *Interpreter) visitNumberNode(n *parser.NumberNode, ctx *scope.Context) *RTResult {
	var v *Number
	switch val := n.Tok.Value.(type) {
	case int64:
		v = NewInt(val)
	case float64:
		v = NewNumber(val)
	}
	v.SetCtx(ctx)
	v.SetPos(n.PosStart(), n.PosEnd())
	return NewRTResult().Success(v)
}

func (in *Interpreter) visitStringNode(n *parser.StringNode, ctx *scope.Context) *RTResult {
	v := NewString(n.Tok.Value.(string))
	v.SetCtx(ctx)
	v.SetPos(n.PosStart(), n.PosEnd())
	return NewRTResult().Success(v)
}

func (in *Interpreter) visitBoolNode(n *parser.BoolNode, ctx *scope.Context) *RTResult {
	v := NewBoolean(n.Value)
	v.SetCtx(ctx)
	v.SetPos(n.PosStart(), n.PosEnd())
	return NewRTResult().Success(v)
}

/*
visitListNode doubles as the block-of-statements visitor: a block's
result is its last statement's value, and a pending return/break/
continue from any statement short-circuits the rest.
*/
func (in *Interpreter) visitListNode(n *parser.ListNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	var last Value = Null

	for _, elNode := range n.Elements {
		val := res.Register(in.Visit(elNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		last = val
	}
	return res.Success(last)
}

func (in *Interpreter) visitDictNode(n *parser.DictNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	d := NewDict()

	for _, pair := range n.Pairs {
		keyVal := res.Register(in.Visit(pair.Key, ctx))
		if res.ShouldReturn() {
			return res
		}
		valVal := res.Register(in.Visit(pair.Value, ctx))
		if res.ShouldReturn() {
			return res
		}
		key, ok := dictKeyString(keyVal)
		if !ok {
			return res.Failure(NewRuntimeError(pair.Key.PosStart(), pair.Key.PosEnd(), "Dict keys must be strings or numbers", ctx))
		}
		d.Set(key, valVal)
	}

	d.SetCtx(ctx)
	d.SetPos(n.PosStart(), n.PosEnd())
	return res.Success(d)
}

func (in *Interpreter) visitVarAccessNode(n *parser.VarAccessNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	name := n.NameTok.Value.(string)

	raw, ok := ctx.SymbolTable.Get(name)
	if !ok {
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "'"+name+"' is not defined", ctx))
	}
	val := raw.(Value).Copy()
	val.SetPos(n.PosStart(), n.PosEnd())
	val.SetCtx(ctx)
	return res.Success(val)
}

func (in *Interpreter) visitVarAssignNode(n *parser.VarAssignNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	name := n.NameTok.Value.(string)

	if globalNames[name] {
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "Cannot assign to global variable", ctx))
	}

	val := res.Register(in.Visit(n.Value, ctx))
	if res.ShouldReturn() {
		return res
	}

	ctx.SymbolTable.Set(name, val)
	return res.Success(val)
}

func (in *Interpreter) visitBinOpNode(n *parser.BinOpNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	left := res.Register(in.Visit(n.Left, ctx))
	if res.ShouldReturn() {
		return res
	}
	right := res.Register(in.Visit(n.Right, ctx))
	if res.ShouldReturn() {
		return res
	}

	var result Value
	var err error

	switch {
	case n.OpTok.Type == lexer.PLUS:
		result, err = Add(left, right)
	case n.OpTok.Type == lexer.MINUS:
		result, err = Sub(left, right)
	case n.OpTok.Type == lexer.MUL:
		result, err = Mul(left, right)
	case n.OpTok.Type == lexer.DIV:
		result, err = Div(left, right)
	case n.OpTok.Type == lexer.MOD:
		result, err = Mod(left, right)
	case n.OpTok.Type == lexer.POW:
		result, err = Pow(left, right)
	case n.OpTok.Type == lexer.EE:
		result, err = CompEq(left, right)
	case n.OpTok.Type == lexer.NE:
		result, err = CompNe(left, right)
	case n.OpTok.Type == lexer.LT:
		result, err = CompLt(left, right)
	case n.OpTok.Type == lexer.GT:
		result, err = CompGt(left, right)
	case n.OpTok.Type == lexer.LTE:
		result, err = CompLte(left, right)
	case n.OpTok.Type == lexer.GTE:
		result, err = CompGte(left, right)
	case n.OpTok.Matches(lexer.KEYWORD, "and"):
		result, err = And(left, right)
	case n.OpTok.Matches(lexer.KEYWORD, "or"):
		result, err = Or(left, right)
	default:
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "Unknown operator", ctx))
	}

	if err != nil {
		return res.Failure(err)
	}
	result.SetCtx(ctx)
	result.SetPos(n.PosStart(), n.PosEnd())
	return res.Success(result)
}

func (in *Interpreter) visitUnaryOpNode(n *parser.UnaryOpNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	operand := res.Register(in.Visit(n.Node, ctx))
	if res.ShouldReturn() {
		return res
	}

	var result Value
	var err error

	switch {
	case n.OpTok.Type == lexer.MINUS:
		result, err = Neg(operand)
	case n.OpTok.Type == lexer.PLUS:
		result = operand
	case n.OpTok.Type == lexer.NOT:
		result, err = Not(operand)
	default:
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "Unknown operator", ctx))
	}

	if err != nil {
		return res.Failure(err)
	}
	result.SetCtx(ctx)
	result.SetPos(n.PosStart(), n.PosEnd())
	return res.Success(result)
}

func (in *Interpreter) visitIfNode(n *parser.IfNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	for _, c := range n.Cases {
		cond := res.Register(in.Visit(c.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if cond.IsTrue() {
			val := res.Register(in.Visit(c.Body, ctx))
			if res.ShouldReturn() {
				return res
			}
			return res.Success(val)
		}
	}

	if n.ElseCase != nil {
		val := res.Register(in.Visit(n.ElseCase, ctx))
		if res.ShouldReturn() {
			return res
		}
		return res.Success(val)
	}

	return res.Success(Null)
}

/*
visitForNode does not open a child scope: the loop variable is bound
with SymbolTable.Set directly on ctx, so it is still visible after the
loop ends.
*/
func (in *Interpreter) visitForNode(n *parser.ForNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	startVal := res.Register(in.Visit(n.StartValue, ctx))
	if res.ShouldReturn() {
		return res
	}
	start, ok := startVal.(*Number)
	if !ok {
		return res.Failure(NewRuntimeError(n.StartValue.PosStart(), n.StartValue.PosEnd(), "Expected a number", ctx))
	}

	endVal := res.Register(in.Visit(n.EndValue, ctx))
	if res.ShouldReturn() {
		return res
	}
	end, ok := endVal.(*Number)
	if !ok {
		return res.Failure(NewRuntimeError(n.EndValue.PosStart(), n.EndValue.PosEnd(), "Expected a number", ctx))
	}

	stepVal := res.Register(in.Visit(n.StepValue, ctx))
	if res.ShouldReturn() {
		return res
	}
	step, ok := stepVal.(*Number)
	if !ok {
		return res.Failure(NewRuntimeError(n.StepValue.PosStart(), n.StepValue.PosEnd(), "Expected a number", ctx))
	}

	if step.Val == 0 {
		return res.Failure(NewRuntimeError(n.StepValue.PosStart(), n.StepValue.PosEnd(), "Step value cannot be zero", ctx))
	}

	i := start.Val
	cond := func() bool {
		if step.Val > 0 {
			return i <= end.Val
		}
		return i >= end.Val
	}

	in.loopDepth++
	defer func() { in.loopDepth-- }()

	varName := n.VarNameTok.Value.(string)
	for cond() {
		loopVar := NewNumber(i)
		loopVar.IsInt = start.IsInt && step.IsInt
		loopVar.SetCtx(ctx)
		ctx.SymbolTable.Set(varName, loopVar)
		i += step.Val

		res.Register(in.Visit(n.Body, ctx))
		if res.ShouldReturn() {
			if res.LoopShouldContinue {
				res.LoopShouldContinue = false
				continue
			}
			if res.LoopShouldBreak {
				res.LoopShouldBreak = false
				break
			}
			return res
		}
	}

	return res.Success(Null)
}

func (in *Interpreter) visitWhileNode(n *parser.WhileNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	in.loopDepth++
	defer func() { in.loopDepth-- }()

	for {
		cond := res.Register(in.Visit(n.Condition, ctx))
		if res.ShouldReturn() {
			return res
		}
		if !cond.IsTrue() {
			break
		}

		res.Register(in.Visit(n.Body, ctx))
		if res.ShouldReturn() {
			if res.LoopShouldContinue {
				res.LoopShouldContinue = false
				continue
			}
			if res.LoopShouldBreak {
				res.LoopShouldBreak = false
				break
			}
			return res
		}
	}

	return res.Success(Null)
}

func (in *Interpreter) visitFuncDefNode(n *parser.FuncDefNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	var name string
	if n.NameTok != nil {
		name = n.NameTok.Value.(string)
	}

	argNames := make([]string, len(n.ArgNameTok))
	for i, tok := range n.ArgNameTok {
		argNames[i] = tok.Value.(string)
	}

	fn := NewFunction(name, argNames, n.Body, n.IsArrow, ctx)
	fn.SetCtx(ctx)
	fn.SetPos(n.PosStart(), n.PosEnd())

	if name != "" {
		ctx.SymbolTable.Set(name, fn)
	}

	return res.Success(fn)
}

func (in *Interpreter) visitFuncCallNode(n *parser.FuncCallNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	calleeVal := res.Register(in.Visit(n.Callee, ctx))
	if res.ShouldReturn() {
		return res
	}

	callable, ok := calleeVal.(Callable)
	if !ok {
		return res.Failure(NewRuntimeError(n.Callee.PosStart(), n.Callee.PosEnd(), "Value is not callable", ctx))
	}

	var args []Value
	for _, argNode := range n.Args {
		val := res.Register(in.Visit(argNode, ctx))
		if res.ShouldReturn() {
			return res
		}
		args = append(args, val)
	}

	in.depth++
	defer func() { in.depth-- }()
	if in.depth > config.Int(config.MaxCallDepth) {
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "Maximum call depth exceeded", ctx))
	}

	retVal := res.Register(callable.Execute(in, args, n.PosStart()))
	if res.ShouldReturn() {
		return res
	}

	retVal = retVal.Copy()
	retVal.SetPos(n.PosStart(), n.PosEnd())
	retVal.SetCtx(ctx)
	return res.Success(retVal)
}

func (in *Interpreter) visitReturnNode(n *parser.ReturnNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	var val Value = Null
	if n.Expr != nil {
		val = res.Register(in.Visit(n.Expr, ctx))
		if res.ShouldReturn() {
			return res
		}
	}
	return res.SuccessReturn(val)
}
