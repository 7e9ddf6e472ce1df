/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import "github.com/krotik/fx/lexer"

/*
Context is one frame of the call stack: a display name used in
tracebacks, a link to its parent context (for a user function call,
the context the function was defined in), the position at which the
call happened, and the symbol table visible at this frame.
*/
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos *lexer.Position
	SymbolTable    *SymbolTable
}

/*
NewContext creates a context frame.
*/
func NewContext(displayName string, parent *Context, parentEntryPos *lexer.Position) *Context {
	return &Context{DisplayName: displayName, Parent: parent, ParentEntryPos: parentEntryPos}
}
