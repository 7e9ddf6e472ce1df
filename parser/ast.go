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
Package parser turns a token stream into an abstract syntax tree.

The AST is modelled as a closed tagged-variant family: Node is a thin
interface and every concrete node type carries its own span. There is
no base class and no virtual dispatch - the interpreter switches on
concrete type.
*/
package parser

import "github.com/krotik/fx/lexer"

/*
Node is implemented by every AST node. PosStart/PosEnd delimit the
source span the node was parsed from.
*/
type Node interface {
	PosStart() *lexer.Position
	PosEnd() *lexer.Position
}

/*
span is embedded by every node to provide the Node interface.
*/
type span struct {
	posStart *lexer.Position
	posEnd   *lexer.Position
}

func (s span) PosStart() *lexer.Position { return s.posStart }
func (s span) PosEnd() *lexer.Position   { return s.posEnd }

/*
NumberNode is an INT or FLOAT literal.
*/
type NumberNode struct {
	span
	Tok *lexer.Token
}

func NewNumberNode(tok *lexer.Token) *NumberNode {
	return &NumberNode{span{tok.PosStart, tok.PosEnd}, tok}
}

/*
StringNode is a STRING literal.
*/
type StringNode struct {
	span
	Tok *lexer.Token
}

func NewStringNode(tok *lexer.Token) *StringNode {
	return &StringNode{span{tok.PosStart, tok.PosEnd}, tok}
}

/*
BoolNode is a True/False literal.
*/
type BoolNode struct {
	span
	Value bool
}

func NewBoolNode(value bool, posStart, posEnd *lexer.Position) *BoolNode {
	return &BoolNode{span{posStart, posEnd}, value}
}

/*
BinOpNode is a binary operation.
*/
type BinOpNode struct {
	span
	Left  Node
	OpTok *lexer.Token
	Right Node
}

func NewBinOpNode(left Node, opTok *lexer.Token, right Node) *BinOpNode {
	return &BinOpNode{span{left.PosStart(), right.PosEnd()}, left, opTok, right}
}

/*
UnaryOpNode is a prefix operation (+x, -x, not x).
*/
type UnaryOpNode struct {
	span
	OpTok *lexer.Token
	Node  Node
}

func NewUnaryOpNode(opTok *lexer.Token, node Node) *UnaryOpNode {
	return &UnaryOpNode{span{opTok.PosStart, node.PosEnd()}, opTok, node}
}

/*
VarAccessNode reads a variable.
*/
type VarAccessNode struct {
	span
	NameTok *lexer.Token
}

func NewVarAccessNode(nameTok *lexer.Token) *VarAccessNode {
	return &VarAccessNode{span{nameTok.PosStart, nameTok.PosEnd}, nameTok}
}

/*
VarAssignNode creates (or overwrites) a variable in the local scope.
*/
type VarAssignNode struct {
	span
	NameTok *lexer.Token
	Value   Node
}

func NewVarAssignNode(nameTok *lexer.Token, value Node) *VarAssignNode {
	return &VarAssignNode{span{nameTok.PosStart, value.PosEnd()}, nameTok, value}
}

/*
ListNode is a list literal or a block of statements (a block is just a
list whose elements are evaluated in order and whose result is the
last element's value).
*/
type ListNode struct {
	span
	Elements []Node
}

func NewListNode(elements []Node, posStart, posEnd *lexer.Position) *ListNode {
	return &ListNode{span{posStart, posEnd}, elements}
}

/*
DictPair is one key/value pair of a dict literal.
*/
type DictPair struct {
	Key   Node
	Value Node
}

/*
DictNode is a dict literal.
*/
type DictNode struct {
	span
	Pairs []DictPair
}

func NewDictNode(pairs []DictPair, posStart, posEnd *lexer.Position) *DictNode {
	return &DictNode{span{posStart, posEnd}, pairs}
}

/*
IfCase is one condition/body pair of an if/elif chain.
*/
type IfCase struct {
	Condition Node
	Body      Node
}

/*
IfNode is an if/elif/else chain. ElseCase is nil when there is none.
*/
type IfNode struct {
	span
	Cases    []IfCase
	ElseCase Node
}

func NewIfNode(cases []IfCase, elseCase Node) *IfNode {
	posEnd := cases[len(cases)-1].Body.PosEnd()
	if elseCase != nil {
		posEnd = elseCase.PosEnd()
	}
	return &IfNode{span{cases[0].Condition.PosStart(), posEnd}, cases, elseCase}
}

/*
ForNode is a counted loop, `for var = start to end step step: body end`.
*/
type ForNode struct {
	span
	VarNameTok *lexer.Token
	StartValue Node
	EndValue   Node
	StepValue  Node
	Body       Node
}

func NewForNode(varNameTok *lexer.Token, start, end, step, body Node) *ForNode {
	return &ForNode{span{varNameTok.PosStart, body.PosEnd()}, varNameTok, start, end, step, body}
}

/*
WhileNode is a conditional loop.
*/
type WhileNode struct {
	span
	Condition Node
	Body      Node
}

func NewWhileNode(condition, body Node) *WhileNode {
	return &WhileNode{span{condition.PosStart(), body.PosEnd()}, condition, body}
}

/*
FuncDefNode defines a function. NameTok is nil for an anonymous
function expression. IsArrow marks the single-expression `-> expr`
form, which auto-returns the body's value.
*/
type FuncDefNode struct {
	span
	NameTok    *lexer.Token
	ArgNameTok []*lexer.Token
	Body       Node
	IsArrow    bool
}

func NewFuncDefNode(nameTok *lexer.Token, argNameToks []*lexer.Token, body Node, isArrow bool) *FuncDefNode {
	var posStart *lexer.Position
	if nameTok != nil {
		posStart = nameTok.PosStart
	} else if len(argNameToks) > 0 {
		posStart = argNameToks[0].PosStart
	} else {
		posStart = body.PosStart()
	}
	return &FuncDefNode{span{posStart, body.PosEnd()}, nameTok, argNameToks, body, isArrow}
}

/*
FuncCallNode calls a function or builtin.
*/
type FuncCallNode struct {
	span
	Callee Node
	Args   []Node
}

func NewFuncCallNode(callee Node, args []Node) *FuncCallNode {
	posEnd := callee.PosEnd()
	if len(args) > 0 {
		posEnd = args[len(args)-1].PosEnd()
	}
	return &FuncCallNode{span{callee.PosStart(), posEnd}, callee, args}
}

/*
ReturnNode returns from the enclosing function. Expr is nil for a bare
`return`.
*/
type ReturnNode struct {
	span
	Expr Node
}

func NewReturnNode(expr Node, posStart, posEnd *lexer.Position) *ReturnNode {
	return &ReturnNode{span{posStart, posEnd}, expr}
}

/*
ContinueNode jumps to the next loop iteration.
*/
type ContinueNode struct{ span }

func NewContinueNode(posStart, posEnd *lexer.Position) *ContinueNode {
	return &ContinueNode{span{posStart, posEnd}}
}

/*
BreakNode exits the enclosing loop.
*/
type BreakNode struct{ span }

func NewBreakNode(posStart, posEnd *lexer.Position) *BreakNode {
	return &BreakNode{span{posStart, posEnd}}
}

/*
ImportNode binds a whole module under an alias (`import M` or
`import M as A`).
*/
type ImportNode struct {
	span
	ModuleTok *lexer.Token
	AliasTok  *lexer.Token
}

func NewImportNode(moduleTok, aliasTok *lexer.Token, posStart, posEnd *lexer.Position) *ImportNode {
	if aliasTok == nil {
		aliasTok = moduleTok
	}
	return &ImportNode{span{posStart, posEnd}, moduleTok, aliasTok}
}

/*
ImportedName is one `name` or `name as alias` of a from-import clause.
*/
type ImportedName struct {
	NameTok  *lexer.Token
	AliasTok *lexer.Token
}

/*
FromImportNode imports selected names from a module (`from M import
x as y, z`).
*/
type FromImportNode struct {
	span
	ModuleTok *lexer.Token
	Names     []ImportedName
}

func NewFromImportNode(moduleTok *lexer.Token, names []ImportedName, posStart, posEnd *lexer.Position) *FromImportNode {
	return &FromImportNode{span{posStart, posEnd}, moduleTok, names}
}
