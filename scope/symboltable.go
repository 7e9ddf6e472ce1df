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
Package scope holds the lexical environment of a running Fx program:
a chain of symbol tables and the Context frames that mirror the call
stack for traceback rendering.
*/
package scope

/*
SymbolTable is a name to value mapping with an optional parent. Get
walks the parent chain; Set always writes the local table - the
language only ever introduces bindings with 'let', so there is never
a need to find and overwrite an ancestor's slot.
*/
type SymbolTable struct {
	symbols map[string]interface{}
	parent  *SymbolTable
}

/*
NewSymbolTable creates a table with the given parent, or no parent if
nil.
*/
func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{symbols: make(map[string]interface{}), parent: parent}
}

/*
Get looks up a name in this table and, failing that, its ancestors.
*/
func (st *SymbolTable) Get(name string) (interface{}, bool) {
	if v, ok := st.symbols[name]; ok {
		return v, true
	}
	if st.parent != nil {
		return st.parent.Get(name)
	}
	return nil, false
}

/*
Set binds name to value in this table.
*/
func (st *SymbolTable) Set(name string, value interface{}) {
	st.symbols[name] = value
}

/*
Remove deletes a local binding.
*/
func (st *SymbolTable) Remove(name string) {
	delete(st.symbols, name)
}

/*
LocalKeys returns the names bound directly in this table, not counting
ancestors.
*/
func (st *SymbolTable) LocalKeys() []string {
	keys := make([]string, 0, len(st.symbols))
	for k := range st.symbols {
		keys = append(keys, k)
	}
	return keys
}

/*
LocalGet looks up name in this table only, without walking ancestors.
*/
func (st *SymbolTable) LocalGet(name string) (interface{}, bool) {
	v, ok := st.symbols[name]
	return v, ok
}

/*
Copy returns a shallow copy of this table sharing the same parent.
Used to seed a fresh module-level table from the host's global table.
*/
func (st *SymbolTable) Copy() *SymbolTable {
	cp := NewSymbolTable(st.parent)
	for k, v := range st.symbols {
		cp.symbols[k] = v
	}
	return cp
}
