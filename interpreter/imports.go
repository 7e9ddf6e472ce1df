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
	"github.com/krotik/fx/parser"
	"github.com/krotik/fx/scope"
	"github.com/krotik/fx/util"
)

/*
ModuleLoader resolves and runs Fx modules on behalf of import/from-import
statements. It keeps no cache: every import re-reads and re-evaluates
the module's source, so a module with side effects (e.g. print) runs
them again on every import. This trades load time for never serving a
stale result during a long REPL session, and matches the single-shot
behaviour the module system started from.
*/
type ModuleLoader struct {
	Locator util.ModuleLocator
}

/*
NewModuleLoader wraps a locator.
*/
func NewModuleLoader(locator util.ModuleLocator) *ModuleLoader {
	return &ModuleLoader{Locator: locator}
}

/*
runModule resolves module, parses and evaluates it in a fresh context
seeded with a copy of the interpreter's global symbol table, and returns
that context's symbol table together with the names the module newly
bound at its top level.
*/
func (in *Interpreter) runModule(module string, displayName string) (*scope.SymbolTable, []string, error) {
	if in.Loader == nil {
		return nil, nil, NewRuntimeError(nil, nil, "No module loader configured", in.globalCtx)
	}

	src, err := in.Loader.Locator.Resolve(module)
	if err != nil {
		return nil, nil, NewRuntimeError(nil, nil, "Module '"+module+"' not found", in.globalCtx)
	}
	if len(src) == 0 {
		return nil, nil, NewRuntimeError(nil, nil, "Module '"+module+"' is empty", in.globalCtx)
	}

	node, err := parser.Parse(module, src)
	if err != nil {
		return nil, nil, err
	}

	modTable := in.globalCtx.SymbolTable.Copy()
	before := map[string]bool{}
	for _, k := range modTable.LocalKeys() {
		before[k] = true
	}

	modCtx := scope.NewContext(displayName, in.globalCtx, nil)
	modCtx.SymbolTable = modTable

	res := in.Visit(node, modCtx)
	if res.Err != nil {
		return nil, nil, res.Err
	}

	var exported []string
	for _, k := range modTable.LocalKeys() {
		if !before[k] {
			exported = append(exported, k)
		}
	}

	return modTable, exported, nil
}

/*
visitImportNode implements 'import M' / 'import M as A': every name the
module defines at its top level is installed into the importing
context under "A.<name>".
*/
func (in *Interpreter) visitImportNode(n *parser.ImportNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	module := n.ModuleTok.Value.(string)
	alias := n.AliasTok.Value.(string)

	modTable, exported, err := in.runModule(module, module)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok {
			return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), re.Details, ctx))
		}
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), err.Error(), ctx))
	}

	for _, name := range exported {
		v, _ := modTable.LocalGet(name)
		ctx.SymbolTable.Set(alias+"."+name, v)
	}

	return res.Success(Null)
}

/*
visitFromImportNode implements 'from M import x as y, z': the selected
names are installed directly (under their alias, if any) into the
*caller's* context symbol table.
*/
func (in *Interpreter) visitFromImportNode(n *parser.FromImportNode, ctx *scope.Context) *RTResult {
	res := NewRTResult()
	module := n.ModuleTok.Value.(string)

	modTable, _, err := in.runModule(module, module)
	if err != nil {
		if re, ok := err.(*RuntimeError); ok {
			return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), re.Details, ctx))
		}
		return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), err.Error(), ctx))
	}

	for _, imp := range n.Names {
		name := imp.NameTok.Value.(string)
		alias := name
		if imp.AliasTok != nil {
			alias = imp.AliasTok.Value.(string)
		}

		v, ok := modTable.LocalGet(name)
		if !ok {
			return res.Failure(NewRuntimeError(n.PosStart(), n.PosEnd(), "Name '"+name+"' not found in module '"+module+"'", ctx))
		}
		ctx.SymbolTable.Set(alias, v)
	}

	return res.Success(Null)
}
