/*
 * Fx
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"testing"

	"github.com/krotik/fx/lexer"
)

func mustParse(t *testing.T, src string) Node {
	t.Helper()
	node, err := Parse("test", src)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestParseLetAndArith(t *testing.T) {
	node := mustParse(t, "let a = 10; let b = 20; a + b")
	list, ok := node.(*ListNode)
	if !ok || len(list.Elements) != 3 {
		t.Fatalf("Unexpected node: %#v", node)
	}
	if _, ok := list.Elements[0].(*VarAssignNode); !ok {
		t.Error("Expected VarAssignNode")
	}
	if _, ok := list.Elements[2].(*BinOpNode); !ok {
		t.Error("Expected BinOpNode")
	}
}

func TestParsePrecedence(t *testing.T) {
	node := mustParse(t, "2 + 3 * 4")
	list := node.(*ListNode)
	bin := list.Elements[0].(*BinOpNode)
	if bin.OpTok.Type != "PLUS" {
		t.Fatal("Expected outer '+'")
	}
	if _, ok := bin.Right.(*BinOpNode); !ok {
		t.Fatal("Expected '*' to bind tighter than '+'")
	}
}

func TestParsePowerRightAssoc(t *testing.T) {
	node := mustParse(t, "2 ^ 3 ^ 2")
	list := node.(*ListNode)
	bin := list.Elements[0].(*BinOpNode)
	if _, ok := bin.Right.(*BinOpNode); !ok {
		t.Fatal("Expected '^' to be right-associative")
	}
}

func TestParsePowerBindsTighterThanUnary(t *testing.T) {
	node := mustParse(t, "-2 ^ 2")
	list := node.(*ListNode)
	unary, ok := list.Elements[0].(*UnaryOpNode)
	if !ok {
		t.Fatalf("Expected outer UnaryOpNode, got %#v", list.Elements[0])
	}
	if _, ok := unary.Node.(*BinOpNode); !ok {
		t.Fatal("Expected '^' nested inside the unary minus")
	}
}

func TestParseLetGlobalRejected(t *testing.T) {
	for _, name := range []string{"Null", "True", "False"} {
		_, err := Parse("test", "let "+name+" = 1")
		if err == nil {
			t.Errorf("Expected parse error assigning to %v", name)
		}
	}
}

func TestParseIfForWhile(t *testing.T) {
	mustParse(t, "if 1 < 2: 1 end elif 2 < 3: 2 end else: 3 end")
	mustParse(t, "for i = 1 to 3: i end")
	mustParse(t, "while 1: break end")
}

func TestParseFunc(t *testing.T) {
	node := mustParse(t, "fex f(x) -> x * x")
	list := node.(*ListNode)
	fn, ok := list.Elements[0].(*FuncDefNode)
	if !ok || !fn.IsArrow || len(fn.ArgNameTok) != 1 {
		t.Fatalf("Unexpected node: %#v", list.Elements[0])
	}
}

func TestParseListAndDict(t *testing.T) {
	mustParse(t, "[1, 2, 3]")
	node := mustParse(t, `{"a": 1, "b": 2}`)
	list := node.(*ListNode)
	if _, ok := list.Elements[0].(*DictNode); !ok {
		t.Fatalf("Unexpected node: %#v", list.Elements[0])
	}
}

func TestParseImports(t *testing.T) {
	mustParse(t, "import foo as bar")
	mustParse(t, "from foo import a as b, c")
}

func TestParseErrorLocalization(t *testing.T) {
	_, err := Parse("test", "let x = ")
	if err == nil {
		t.Fatal("Expected error")
	}
	perr, ok := err.(*lexer.Error)
	if !ok {
		t.Fatalf("Expected *lexer.Error, got %T", err)
	}
	if perr.PosStart.Idx != len("let x = ") {
		t.Errorf("Expected error anchored at end of input, got index %d", perr.PosStart.Idx)
	}
}
