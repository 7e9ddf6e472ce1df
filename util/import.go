/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// ModuleLocator implementations
// =============================

/*
MemoryModuleLocator holds a given set of module source in memory and
provides it for imports. Used by tests.
*/
type MemoryModuleLocator struct {
	Modules map[string]string
}

/*
Resolve looks module up in the in-memory map.
*/
func (ml *MemoryModuleLocator) Resolve(module string) (string, error) {
	res, ok := ml.Modules[module]
	if !ok {
		return "", fmt.Errorf("Could not find module: %v", module)
	}
	return res, nil
}

/*
FileModuleLocator resolves a dotted module name to a .fx file on disk,
relative to a root directory: module "a.b" maps to "<root>/a/b.fx".
*/
type FileModuleLocator struct {
	Root string // Relative root path
}

/*
Resolve maps module to a file path under Root and reads its contents.
*/
func (ml *FileModuleLocator) Resolve(module string) (string, error) {
	var res string

	rel := strings.ReplaceAll(module, ".", string(os.PathSeparator)) + ".fx"
	importPath := filepath.Clean(filepath.Join(ml.Root, rel))

	ok, err := isSubpath(ml.Root, importPath)

	if err == nil && !ok {
		err = fmt.Errorf("Module path is outside of import root: %v", module)
	}

	if err == nil {
		var b []byte
		if b, err = ioutil.ReadFile(importPath); err != nil {
			err = fmt.Errorf("Could not find module: %v", module)
		} else {
			res = string(b)
		}
	}

	return res, err
}

/*
isSubpath checks if the given sub path is a child path of root.
*/
func isSubpath(root, sub string) (bool, error) {
	rel, err := filepath.Rel(root, sub)
	return err == nil &&
		!strings.HasPrefix(rel, fmt.Sprintf("..%v", string(os.PathSeparator))) &&
		rel != "..", err
}
