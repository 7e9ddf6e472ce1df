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
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"devt.de/krotik/common/stringutil"
	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
builtins is the process-wide registry of names installed into every
fresh global symbol table by NewGlobalSymbolTable.
*/
var builtins = map[string]BuiltinFn{
	"print":   builtinPrint,
	"input":   builtinInput,
	"clear":   builtinClear,
	"type":    builtinType,
	"len":     builtinLen,
	"exit":    builtinExit,
	"eval":    builtinEval,
	"convert": builtinConvert,
	"random":  builtinRandom,
	"pad":     builtinPad,
}

func argError(name string, i int, want string, ctx *scope.Context, pos *lexer.Position) *RTResult {
	return NewRTResult().Failure(NewRuntimeError(pos, pos,
		fmt.Sprintf("Argument %d passed to '%s' must be %s", i+1, name, want), ctx))
}

func builtinPrint(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		if s, ok := a.(*String); ok {
			fmt.Print(s.Val)
		} else {
			fmt.Print(a.Repr())
		}
	}
	return NewRTResult().Success(Null)
}

func builtinInput(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	return NewRTResult().Success(NewString(scanner.Text()))
}

func builtinClear(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	var cmd *exec.Cmd
	if runtime.GOOS == "windows" {
		cmd = exec.Command("cmd", "/c", "cls")
	} else {
		cmd = exec.Command("clear")
	}
	cmd.Stdout = os.Stdout
	cmd.Run()
	return NewRTResult().Success(Null)
}

func builtinType(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	if len(args) != 1 {
		return argError("type", 0, "exactly one value", ctx, pos)
	}
	return NewRTResult().Success(NewString(args[0].TypeName()))
}

func builtinLen(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	if len(args) != 1 {
		return argError("len", 0, "exactly one value", ctx, pos)
	}
	switch v := args[0].(type) {
	case *String:
		return NewRTResult().Success(NewInt(int64(len([]rune(v.Val)))))
	case *List:
		return NewRTResult().Success(NewInt(int64(len(v.Elements))))
	}
	return argError("len", 0, "a string or a list", ctx, pos)
}

func builtinExit(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	os.Exit(0)
	return NewRTResult().Success(Null)
}

/*
builtinEval parses and evaluates a string as Fx source against the
interpreter's global context (not the caller's local scope), and
returns its result.
*/
func builtinEval(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	if len(args) != 1 {
		return argError("eval", 0, "exactly one value", ctx, pos)
	}
	s, ok := args[0].(*String)
	if !ok {
		return argError("eval", 0, "a string", ctx, pos)
	}

	val, err := interp.Run("<eval>", s.Val)
	if err != nil {
		return res.Failure(err)
	}
	return res.Success(val)
}

/*
builtinConvert converts value to the type named by to ("string",
"number" or "boolean").
*/
func builtinConvert(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	if len(args) != 2 {
		return argError("convert", 1, "a type name", ctx, pos)
	}
	to, ok := args[1].(*String)
	if !ok {
		return argError("convert", 1, "a string", ctx, pos)
	}

	switch to.Val {
	case "string":
		if s, ok := args[0].(*String); ok {
			return res.Success(NewString(s.Val))
		}
		return res.Success(NewString(args[0].Repr()))

	case "number":
		switch v := args[0].(type) {
		case *Number:
			return res.Success(v)
		case *String:
			if n, err := strconv.ParseFloat(v.Val, 64); err == nil {
				return res.Success(NewNumber(n))
			}
			return res.Failure(NewRuntimeError(pos, pos, "Could not convert '"+v.Val+"' to a number", ctx))
		case *Boolean:
			if v.Val {
				return res.Success(NewInt(1))
			}
			return res.Success(NewInt(0))
		}

	case "boolean":
		return res.Success(NewBoolean(args[0].IsTrue()))
	}

	return res.Failure(NewRuntimeError(pos, pos, "Unknown conversion target '"+to.Val+"'", ctx))
}

/*
builtinRandom returns a random number. With no arguments it returns a
float in [0, 1); with one numeric argument n it returns an integer in
[0, n); with a list it returns count elements sampled from it (count
defaults to 1, returned unwrapped, or as a list when count > 1).
*/
func builtinRandom(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	res := NewRTResult()

	if len(args) == 0 {
		return res.Success(NewNumber(rand.Float64()))
	}

	count := 1
	if len(args) > 1 {
		n, ok := args[1].(*Number)
		if !ok {
			return argError("random", 1, "a number", ctx, pos)
		}
		count = int(n.Val)
	}

	switch v := args[0].(type) {
	case *Number:
		return res.Success(NewInt(int64(rand.Intn(int(v.Val)))))
	case *List:
		if len(v.Elements) == 0 {
			return res.Failure(NewRuntimeError(pos, pos, "Cannot pick a random element from an empty list", ctx))
		}
		if count == 1 {
			return res.Success(v.Elements[rand.Intn(len(v.Elements))].Copy())
		}
		picked := make([]Value, count)
		for i := 0; i < count; i++ {
			picked[i] = v.Elements[rand.Intn(len(v.Elements))].Copy()
		}
		return res.Success(NewList(picked))
	}

	return argError("random", 0, "a number or a list", ctx, pos)
}

/*
builtinPad converts value to its string form and right-pads it with
spaces to width columns, for lining up REPL/table-style output. Width
at or below the current length leaves the string unchanged.
*/
func builtinPad(interp *Interpreter, args []Value, pos *lexer.Position, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	if len(args) != 2 {
		return argError("pad", 1, "a width", ctx, pos)
	}
	width, ok := args[1].(*Number)
	if !ok {
		return argError("pad", 1, "a number", ctx, pos)
	}

	s, ok := args[0].(*String)
	var str string
	if ok {
		str = s.Val
	} else {
		str = args[0].Repr()
	}

	n := int(width.Val) - len([]rune(str))
	if n <= 0 {
		return res.Success(NewString(str))
	}
	return res.Success(NewString(str + stringutil.GenerateRollingString(" ", n)))
}
