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
String is a text value.
*/
type String struct {
	base
	Val string
}

/*
NewString creates a string value.
*/
func NewString(val string) *String {
	return &String{Val: val}
}

func (s *String) SetPos(start, end *lexer.Position) Value {
	s.posStart, s.posEnd = start, end
	return s
}

func (s *String) SetCtx(ctx *scope.Context) Value {
	s.ctx = ctx
	return s
}

func (s *String) IsTrue() bool { return len(s.Val) > 0 }

func (s *String) Copy() Value {
	cp := *s
	return &cp
}

func (s *String) TypeName() string { return "string" }

func (s *String) Repr() string { return fmt.Sprintf("%q", s.Val) }
