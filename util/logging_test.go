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
	"bytes"
	"fmt"
	"testing"
)

func TestLogging(t *testing.T) {

	ml := NewMemoryLogger(5)

	ml.LogDebug("lex")
	ml.LogInfo("lex")

	if ml.String() != `debug: lex
lex` {
		t.Error("Unexpected result:", ml.String())
		return
	}

	if res := fmt.Sprint(ml.Slice()); res != "[debug: lex lex]" {
		t.Error("Unexpected result:", res)
		return
	}

	ml.Reset()

	ml.LogError("parse")

	if res := fmt.Sprint(ml.Slice()); res != "[error: parse]" {
		t.Error("Unexpected result:", res)
		return
	}

	if res := ml.Size(); res != 1 {
		t.Error("Unexpected result:", res)
		return
	}

	// Test that the functions can be called

	nl := NewNullLogger()
	nl.LogDebug(nil, "lex")
	nl.LogInfo(nil, "lex")
	nl.LogError(nil, "lex")

	sol := NewStdOutLogger()
	sol.stdlog = func(v ...interface{}) {}
	sol.LogDebug(nil, "lex")
	sol.LogInfo(nil, "lex")
	sol.LogError(nil, "lex")

	ml.Reset()

	if _, err := NewLogLevelLogger(ml, "bogus"); err == nil || err.Error() != "Invalid log level: bogus" {
		t.Error("Unexpected result:", err)
		return
	}

	ml.Reset()
	ll, _ := NewLogLevelLogger(ml, "debug")
	ll.LogDebug("l", "parse")
	ll.LogInfo(nil, "eval")
	ll.LogError("l", "import")

	if ml.String() != `debug: lparse
<nil>eval
error: limport` {
		t.Error("Unexpected result:", ml.String())
		return
	}

	ml.Reset()
	ll, _ = NewLogLevelLogger(ml, "info")
	ll.LogDebug("l", "parse")
	ll.LogInfo(nil, "eval")
	ll.LogError("l", "import")

	if ml.String() != `<nil>eval
error: limport` {
		t.Error("Unexpected result:", ml.String())
		return
	}

	ml.Reset()
	ll, _ = NewLogLevelLogger(ml, "error")

	if ll.Level() != "error" {
		t.Error("Unexpected level:", ll.Level())
		return
	}

	ll.LogDebug("l", "parse")
	ll.LogInfo(nil, "eval")
	ll.LogError("l", "import")

	if ml.String() != `error: limport` {
		t.Error("Unexpected result:", ml.String())
		return
	}

	buf := bytes.NewBuffer(nil)
	bl := NewBufferLogger(buf)
	bl.LogDebug("l", "parse")
	bl.LogInfo(nil, "eval")
	bl.LogError("l", "import")

	if buf.String() != `debug: lparse
<nil>eval
error: limport
` {
		t.Error("Unexpected result:", buf.String())
		return
	}
}
