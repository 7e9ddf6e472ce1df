/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"fmt"
	"strings"
	"testing"
)

func tokenString(tokens []*Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

func TestBasicTokens(t *testing.T) {
	tokens, err := NewLexer("test", "let x = 1 + 2 * 3").MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if res := tokenString(tokens); res != "KEYWORD:let IDENTIFIER:x EQ INT:1 PLUS INT:2 MUL INT:3 EOF" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestNumbers(t *testing.T) {
	tokens, err := NewLexer("test", "1 2.5 3.").MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if res := tokenString(tokens); res != "INT:1 FLOAT:2.5 FLOAT:3 EOF" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestIdentifiersAndKeywords(t *testing.T) {
	tokens, err := NewLexer("test", "foo.bar and fex").MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if res := tokenString(tokens); res != "IDENTIFIER:foo.bar KEYWORD:and KEYWORD:fex EOF" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestString(t *testing.T) {
	tokens, err := NewLexer("test", `"hi\nthere"`).MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if v := tokens[0].Value; v != "hi\nthere" {
		t.Error("Unexpected result:", fmt.Sprintf("%q", v))
		return
	}
}

func TestMultiCharOperators(t *testing.T) {
	tokens, err := NewLexer("test", "== != <= >= -> = ! < >").MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if res := tokenString(tokens); res != "EE NE LTE GTE ARROW EQ NOT LT GT EOF" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestCommentAndNewline(t *testing.T) {
	tokens, err := NewLexer("test", "1 # a comment\n2").MakeTokens()
	if err != nil {
		t.Error(err)
		return
	}

	if res := tokenString(tokens); res != "INT:1 NEWLINE INT:2 EOF" {
		t.Error("Unexpected result:", res)
		return
	}
}

func TestIllegalChar(t *testing.T) {
	_, err := NewLexer("test", "1 @ 2").MakeTokens()
	if err == nil {
		t.Error("Expected error")
		return
	}

	if !strings.HasPrefix(err.Error(), "Illegal Character: '@'") {
		t.Error("Unexpected result:", err)
		return
	}
}
