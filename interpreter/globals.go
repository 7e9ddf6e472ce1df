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

import "github.com/krotik/fx/scope"

/*
Null, True and False are the three process-wide constants every
program starts with. They are the same objects shared by every symbol
table that descends from NewGlobalSymbolTable - cheap to copy by
reference, and Null is also what control-flow visitors hand back when
there is no meaningful value to produce.
*/
var (
	Null  = NewNumber(0)
	True  = NewBoolean(true)
	False = NewBoolean(false)
)

/*
globalNames lists the identifiers that 'let' is not allowed to shadow,
mirrored from the parser's own globalNames check so the interpreter
rejects the same reassignment even if some caller reaches VarAssignNode
directly.
*/
var globalNames = map[string]bool{"Null": true, "True": true, "False": true}

/*
NewGlobalSymbolTable builds the table installed at the root of every
fresh program or module: the three constants plus every builtin
function.
*/
func NewGlobalSymbolTable() *scope.SymbolTable {
	st := scope.NewSymbolTable(nil)
	st.Set("Null", Null)
	st.Set("True", True)
	st.Set("False", False)
	for name, fn := range builtins {
		st.Set(name, NewBuiltinFunction(name, fn))
	}
	return st
}
