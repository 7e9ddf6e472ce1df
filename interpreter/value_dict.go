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
Dict is a string-keyed mapping of values. Keys keeps insertion order so
repr and iteration are stable.
*/
type Dict struct {
	base
	Pairs map[string]Value
	Keys  []string
}

/*
NewDict creates an empty dict value.
*/
func NewDict() *Dict {
	return &Dict{Pairs: make(map[string]Value)}
}

/*
Set stores a value under key, appending to Keys the first time key is
seen.
*/
func (d *Dict) Set(key string, val Value) {
	if _, ok := d.Pairs[key]; !ok {
		d.Keys = append(d.Keys, key)
	}
	d.Pairs[key] = val
}

/*
Delete removes key, if present.
*/
func (d *Dict) Delete(key string) {
	if _, ok := d.Pairs[key]; !ok {
		return
	}
	delete(d.Pairs, key)
	for i, k := range d.Keys {
		if k == key {
			d.Keys = append(d.Keys[:i], d.Keys[i+1:]...)
			break
		}
	}
}

func (d *Dict) SetPos(start, end *lexer.Position) Value {
	d.posStart, d.posEnd = start, end
	return d
}

func (d *Dict) SetCtx(ctx *scope.Context) Value {
	d.ctx = ctx
	return d
}

func (d *Dict) IsTrue() bool { return len(d.Keys) > 0 }

func (d *Dict) Copy() Value {
	cp := NewDict()
	for _, k := range d.Keys {
		cp.Set(k, d.Pairs[k])
	}
	cp.base = d.base
	return cp
}

func (d *Dict) TypeName() string { return "dict" }

func (d *Dict) Repr() string {
	parts := make([]string, len(d.Keys))
	for i, k := range d.Keys {
		parts[i] = k + ": " + d.Pairs[k].Repr()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

/*
Merge returns a new Dict holding this dict's pairs overlaid with
other's - keys present in both take other's value.
*/
func (d *Dict) Merge(other *Dict) *Dict {
	cp := d.Copy().(*Dict)
	for _, k := range other.Keys {
		cp.Set(k, other.Pairs[k])
	}
	return cp
}
