/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"

	"github.com/krotik/fx/cli/tool"
)

func main() {
	i := tool.NewCLIInterpreter()

	if showedHelp := i.ParseArgs(); showedHelp {
		return
	}

	if err := i.Interpret(i.EntryFile == ""); err != nil {
		fmt.Println(fmt.Sprintf("Error: %v", err))
		os.Exit(1)
	}
}
