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
	"strings"

	"github.com/krotik/fx/lexer"
	"github.com/krotik/fx/scope"
)

/*
List is an ordered, mutable sequence of values.
*/
type List struct {
	base
	Elements []Value
}

/*
NewList creates a list value.
*/
func NewList(elements []Value) *List {
	return &List{Elements: elements}
}

func (l *List) SetPos(start, end *lexer.Position) Value {
	l.posStart, l.posEnd = start, end
	return l
}

func (l *List) SetCtx(ctx *scope.Context) Value {
	l.ctx = ctx
	return l
}

func (l *List) IsTrue() bool { return len(l.Elements) > 0 }

func (l *List) Copy() Value {
	els := make([]Value, len(l.Elements))
	copy(els, l.Elements)
	cp := &List{Elements: els}
	cp.base = l.base
	return cp
}

func (l *List) TypeName() string { return "list" }

func (l *List) Repr() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Repr()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
