/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package config

import (
	"testing"
)

func TestConfig(t *testing.T) {

	if res := Str(ImportRoot); res != "." {
		t.Error("Unexpected result:", res)
		return
	}

	if res := Int(MaxCallDepth); res != 1000 {
		t.Error("Unexpected result:", res)
		return
	}

	Config[HistoryFile] = "/tmp/fx_history"

	if res := Str(HistoryFile); res != "/tmp/fx_history" {
		t.Error("Unexpected result:", res)
		return
	}

	Config[HistoryFile] = ""
}
