/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter walks an AST and evaluates it: the value
hierarchy, the symbol-table-backed context chain, the runtime-result
control-flow record, the builtin function set and the module loader
all live here.
*/
package interpreter

import (
	"fmt"
	"strings"

	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
TraceStep is one frame recorded while a RuntimeError bubbles up
through nested function calls.
*/
type TraceStep struct {
	Pos         *lexer.Position
	DisplayName string
}

/*
RuntimeError is an error raised while evaluating an AST. It carries
the context in which it occurred so a traceback can be rendered by
walking the context chain from the point of failure back to the
program entry point.
*/
type RuntimeError struct {
	PosStart *lexer.Position
	PosEnd   *lexer.Position
	Details  string
	Context  *scope.Context
}

/*
NewRuntimeError creates a runtime error anchored on a span.
*/
func NewRuntimeError(posStart, posEnd *lexer.Position, details string, ctx *scope.Context) *RuntimeError {
	return &RuntimeError{posStart, posEnd, details, ctx}
}

/*
Error implements the error interface, rendering the full multi-line
block with a traceback.
*/
func (re *RuntimeError) Error() string {
	return re.AsString()
}

/*
AsString renders the traceback, the error line and the caret-underlined
source span.
*/
func (re *RuntimeError) AsString() string {
	if re.PosStart == nil || re.PosEnd == nil {
		return fmt.Sprintf("Runtime Error: %s", re.Details)
	}

	result := re.traceback()
	result += fmt.Sprintf("Runtime Error: %s\n", re.Details)
	result += fmt.Sprintf("File %s, line %d", re.PosStart.Source, re.PosStart.Line+1)
	result += "\n\n" + lexer.StringWithArrows(re.PosStart.Text, re.PosStart, re.PosEnd)

	return result
}

/*
traceback walks the context chain from callee to caller, then prints
the frames in reverse (outermost first) as "File ..., line ..., in ...".
*/
func (re *RuntimeError) traceback() string {
	if re.PosStart == nil {
		return ""
	}

	var lines []string
	pos := re.PosStart
	ctx := re.Context

	for ctx != nil && pos != nil {
		lines = append(lines, fmt.Sprintf("  File %s, line %d, in %s", pos.Source, pos.Line+1, ctx.DisplayName))
		pos = ctx.ParentEntryPos
		ctx = ctx.Parent
	}

	var result strings.Builder
	result.WriteString("Traceback (most recent call last):\n")
	for i := len(lines) - 1; i >= 0; i-- {
		result.WriteString(lines[i])
		result.WriteString("\n")
	}
	return result.String()
}
