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
	"github.com/krotik/fx/lexer"
)

/*
globalNames cannot be shadowed by a let binding.
*/
var globalNames = map[string]bool{"Null": true, "True": true, "False": true}

/*
Parser is a recursive-descent parser backed by an index into a token
slice, which makes the arbitrary-distance rewinds required by
speculative parsing trivial and deterministic.
*/
type Parser struct {
	tokens     []*lexer.Token
	tokIdx     int
	currentTok *lexer.Token
}

/*
NewParser creates a parser for a complete token stream (ending in
EOF).
*/
func NewParser(tokens []*lexer.Token) *Parser {
	p := &Parser{tokens: tokens, tokIdx: -1}
	p.advance()
	return p
}

/*
Parse parses a complete program: a sequence of statements terminated
by EOF (as opposed to a nested block, which is terminated by the
'end' keyword).
*/
func Parse(source, text string) (Node, error) {
	tokens, err := lexer.NewLexer(source, text).MakeTokens()
	if err != nil {
		return nil, err
	}
	res := NewParser(tokens).ParseProgram()
	if res.Err != nil {
		return nil, res.Err
	}
	return res.Node, nil
}

func (p *Parser) advance() *lexer.Token {
	p.tokIdx++
	if p.tokIdx < len(p.tokens) {
		p.currentTok = p.tokens[p.tokIdx]
	}
	return p.currentTok
}

func (p *Parser) reverse(amount int) *lexer.Token {
	p.tokIdx -= amount
	if p.tokIdx >= 0 && p.tokIdx < len(p.tokens) {
		p.currentTok = p.tokens[p.tokIdx]
	}
	return p.currentTok
}

/*
ParseProgram parses statements until EOF.
*/
func (p *Parser) ParseProgram() *ParseResult {
	res := NewParseResult()
	var statements []Node
	posStart := p.currentTok.PosStart.Copy()

	for p.currentTok.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
	}

	for p.currentTok.Type != lexer.EOF {
		statement := res.Register(p.statement())
		if res.Err != nil {
			return res
		}
		statements = append(statements, statement)

		advanced := false
		for p.currentTok.Type == lexer.NEWLINE {
			res.RegisterAdvancement()
			p.advance()
			advanced = true
		}
		if !advanced && p.currentTok.Type != lexer.EOF {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected newline, ';' or end of input"))
		}
	}

	posEnd := posStart
	if len(statements) > 0 {
		posEnd = statements[len(statements)-1].PosEnd()
	}
	return res.Success(NewListNode(statements, posStart, posEnd))
}

/*
getStatements parses a nested block of statements terminated by the
'end' keyword, as used by if/for/while/fex bodies.
*/
func (p *Parser) getStatements() *ParseResult {
	res := NewParseResult()
	var statements []Node
	posStart := p.currentTok.PosStart.Copy()

	for {
		for p.currentTok.Type == lexer.NEWLINE {
			res.RegisterAdvancement()
			p.advance()
		}
		if p.currentTok.Type == lexer.EOF {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'end' or expression"))
		}
		if p.currentTok.Matches(lexer.KEYWORD, "end") {
			break
		}
		statement := res.Register(p.statement())
		if res.Err != nil {
			return res
		}
		statements = append(statements, statement)
	}

	res.RegisterAdvancement()
	p.advance()

	posEnd := posStart
	if len(statements) > 0 {
		posEnd = statements[len(statements)-1].PosEnd()
	}
	return res.Success(NewListNode(statements, posStart, posEnd))
}

func (p *Parser) statement() *ParseResult {
	res := NewParseResult()
	posStart := p.currentTok.PosStart.Copy()

	if p.currentTok.Matches(lexer.KEYWORD, "return") {
		res.RegisterAdvancement()
		p.advance()

		var expr Node
		exprRes := p.expr()
		if e := res.TryRegister(exprRes); e != nil {
			expr = e
		} else {
			p.reverse(res.ToReverseCount)
		}
		return res.Success(NewReturnNode(expr, posStart, p.currentTok.PosStart.Copy()))
	}

	if p.currentTok.Matches(lexer.KEYWORD, "continue") {
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewContinueNode(posStart, p.currentTok.PosStart.Copy()))
	}

	if p.currentTok.Matches(lexer.KEYWORD, "break") {
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewBreakNode(posStart, p.currentTok.PosStart.Copy()))
	}

	expr := res.Register(p.expr())
	if res.Err != nil {
		return res.Failure(lexer.NewInvalidSyntaxError(
			p.currentTok.PosStart, p.currentTok.PosEnd,
			"Expected 'return', 'continue', 'break', 'let', 'if', 'for', 'while', 'fex', int, float, identifier, '+', '-', '(', '[' or 'not'"))
	}
	return res.Success(expr)
}

func (p *Parser) expr() *ParseResult {
	res := NewParseResult()

	if p.currentTok.Matches(lexer.KEYWORD, "let") {
		res.RegisterAdvancement()
		p.advance()

		if p.currentTok.Type != lexer.IDENTIFIER {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
		}

		varName := p.currentTok
		if globalNames[fitStr(varName.Value)] {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Cannot assign to global variable"))
		}

		res.RegisterAdvancement()
		p.advance()

		if p.currentTok.Type != lexer.EQ {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected '='"))
		}

		res.RegisterAdvancement()
		p.advance()

		value := res.Register(p.expr())
		if res.Err != nil {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected expression"))
		}
		return res.Success(NewVarAssignNode(varName, value))
	}

	node := res.Register(p.binOp(p.compExpr, []opMatch{{typ: lexer.KEYWORD, val: "and"}, {typ: lexer.KEYWORD, val: "or"}}, nil))
	if res.Err != nil {
		return res.Failure(lexer.NewInvalidSyntaxError(
			p.currentTok.PosStart, p.currentTok.PosEnd, "Expected expression"))
	}
	return res.Success(node)
}

func (p *Parser) compExpr() *ParseResult {
	res := NewParseResult()

	if p.currentTok.Type == lexer.NOT {
		opTok := p.currentTok
		res.RegisterAdvancement()
		p.advance()

		node := res.Register(p.compExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(NewUnaryOpNode(opTok, node))
	}

	node := res.Register(p.binOp(p.arithExpr, []opMatch{
		{typ: lexer.EE}, {typ: lexer.NE}, {typ: lexer.LT}, {typ: lexer.GT}, {typ: lexer.LTE}, {typ: lexer.GTE},
	}, nil))
	if res.Err != nil {
		return res.Failure(lexer.NewInvalidSyntaxError(
			p.currentTok.PosStart, p.currentTok.PosEnd, "Expected expression"))
	}
	return res.Success(node)
}

func (p *Parser) arithExpr() *ParseResult {
	return p.binOp(p.modExpr, []opMatch{{typ: lexer.PLUS}, {typ: lexer.MINUS}}, nil)
}

func (p *Parser) modExpr() *ParseResult {
	return p.binOp(p.term, []opMatch{{typ: lexer.MOD}}, nil)
}

func (p *Parser) term() *ParseResult {
	return p.binOp(p.factor, []opMatch{{typ: lexer.MUL}, {typ: lexer.DIV}}, nil)
}

func (p *Parser) factor() *ParseResult {
	res := NewParseResult()
	tok := p.currentTok

	if tok.Type == lexer.PLUS || tok.Type == lexer.MINUS {
		res.RegisterAdvancement()
		p.advance()
		factor := res.Register(p.factor())
		if res.Err != nil {
			return res
		}
		return res.Success(NewUnaryOpNode(tok, factor))
	}

	return p.power()
}

func (p *Parser) power() *ParseResult {
	return p.binOp(p.call, []opMatch{{typ: lexer.POW}}, p.factor)
}

func (p *Parser) call() *ParseResult {
	res := NewParseResult()
	atom := res.Register(p.atom())
	if res.Err != nil {
		return res
	}

	if p.currentTok.Type == lexer.LPAREN {
		res.RegisterAdvancement()
		p.advance()
		var args []Node

		if p.currentTok.Type == lexer.RPAREN {
			res.RegisterAdvancement()
			p.advance()
		} else {
			arg := res.Register(p.expr())
			if res.Err != nil {
				return res.Failure(lexer.NewInvalidSyntaxError(
					p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ')', or expression"))
			}
			args = append(args, arg)

			for p.currentTok.Type == lexer.COMMA {
				res.RegisterAdvancement()
				p.advance()

				arg := res.Register(p.expr())
				if res.Err != nil {
					return res
				}
				args = append(args, arg)
			}

			if p.currentTok.Type != lexer.RPAREN {
				return res.Failure(lexer.NewInvalidSyntaxError(
					p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ',' or ')'"))
			}

			res.RegisterAdvancement()
			p.advance()
		}
		return res.Success(NewFuncCallNode(atom, args))
	}
	return res.Success(atom)
}

func (p *Parser) atom() *ParseResult {
	res := NewParseResult()
	tok := p.currentTok

	switch {
	case tok.Type == lexer.INT || tok.Type == lexer.FLOAT:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewNumberNode(tok))

	case tok.Type == lexer.STRING:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewStringNode(tok))

	case tok.Type == lexer.LPAREN:
		res.RegisterAdvancement()
		p.advance()
		expr := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		if p.currentTok.Type != lexer.RPAREN {
			return res.Failure(lexer.NewInvalidSyntaxError(
				p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ')'"))
		}
		res.RegisterAdvancement()
		p.advance()
		return res.Success(expr)

	case tok.Type == lexer.IDENTIFIER:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewVarAccessNode(tok))

	case tok.Matches(lexer.KEYWORD, "if"):
		n := res.Register(p.ifExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Matches(lexer.KEYWORD, "for"):
		n := res.Register(p.forExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Matches(lexer.KEYWORD, "while"):
		n := res.Register(p.whileExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Matches(lexer.KEYWORD, "fex"):
		n := res.Register(p.funcDef())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Type == lexer.LSQB:
		n := res.Register(p.listExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Type == lexer.LBRACE:
		n := res.Register(p.dictExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Matches(lexer.KEYWORD, "import"):
		n := res.Register(p.importExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)

	case tok.Matches(lexer.KEYWORD, "from"):
		n := res.Register(p.fromImportExpr())
		if res.Err != nil {
			return res
		}
		return res.Success(n)
	}

	return res.Failure(lexer.NewInvalidSyntaxError(
		tok.PosStart, tok.PosEnd, "Expected int or float or '('"))
}

func (p *Parser) ifExpr() *ParseResult {
	res := NewParseResult()
	var cases []IfCase

	if !p.currentTok.Matches(lexer.KEYWORD, "if") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'if'"))
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	if p.currentTok.Type != lexer.COLON {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.getStatements())
	if res.Err != nil {
		return res
	}
	cases = append(cases, IfCase{condition, body})

	for p.currentTok.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
	}

	for p.currentTok.Matches(lexer.KEYWORD, "elif") {
		res.RegisterAdvancement()
		p.advance()

		condition := res.Register(p.expr())
		if res.Err != nil {
			return res
		}

		if p.currentTok.Type != lexer.COLON {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
		}
		res.RegisterAdvancement()
		p.advance()

		body := res.Register(p.getStatements())
		if res.Err != nil {
			return res
		}
		cases = append(cases, IfCase{condition, body})
	}

	for p.currentTok.Type == lexer.NEWLINE {
		res.RegisterAdvancement()
		p.advance()
	}

	var elseCase Node
	if p.currentTok.Matches(lexer.KEYWORD, "else") {
		res.RegisterAdvancement()
		p.advance()

		if p.currentTok.Type != lexer.COLON {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
		}
		res.RegisterAdvancement()
		p.advance()

		elseCase = res.Register(p.getStatements())
		if res.Err != nil {
			return res
		}
	}

	return res.Success(NewIfNode(cases, elseCase))
}

func (p *Parser) forExpr() *ParseResult {
	res := NewParseResult()

	if !p.currentTok.Matches(lexer.KEYWORD, "for") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'for'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type != lexer.IDENTIFIER {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
	}
	varName := p.currentTok
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type != lexer.EQ {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected '='"))
	}
	res.RegisterAdvancement()
	p.advance()

	startValue := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	if !p.currentTok.Matches(lexer.KEYWORD, "to") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'to'"))
	}
	res.RegisterAdvancement()
	p.advance()

	endValue := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	var stepValue Node
	if p.currentTok.Matches(lexer.KEYWORD, "step") {
		res.RegisterAdvancement()
		p.advance()

		stepValue = res.Register(p.expr())
		if res.Err != nil {
			return res
		}
	} else {
		stepValue = NewNumberNode(lexer.NewToken(lexer.INT, int64(1), p.currentTok.PosStart))
	}

	if p.currentTok.Type != lexer.COLON {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.getStatements())
	if res.Err != nil {
		return res
	}

	return res.Success(NewForNode(varName, startValue, endValue, stepValue, body))
}

func (p *Parser) whileExpr() *ParseResult {
	res := NewParseResult()

	if !p.currentTok.Matches(lexer.KEYWORD, "while") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'while'"))
	}
	res.RegisterAdvancement()
	p.advance()

	condition := res.Register(p.expr())
	if res.Err != nil {
		return res
	}

	if p.currentTok.Type != lexer.COLON {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
	}
	res.RegisterAdvancement()
	p.advance()

	body := res.Register(p.getStatements())
	if res.Err != nil {
		return res
	}

	return res.Success(NewWhileNode(condition, body))
}

func (p *Parser) funcDef() *ParseResult {
	res := NewParseResult()

	if !p.currentTok.Matches(lexer.KEYWORD, "fex") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'fex'"))
	}
	res.RegisterAdvancement()
	p.advance()

	var nameTok *lexer.Token
	if p.currentTok.Type == lexer.IDENTIFIER {
		nameTok = p.currentTok
		res.RegisterAdvancement()
		p.advance()
	}

	if p.currentTok.Type != lexer.LPAREN {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected '('"))
	}
	res.RegisterAdvancement()
	p.advance()

	var argNameToks []*lexer.Token
	if p.currentTok.Type == lexer.IDENTIFIER {
		argNameToks = append(argNameToks, p.currentTok)
		res.RegisterAdvancement()
		p.advance()

		for p.currentTok.Type == lexer.COMMA {
			res.RegisterAdvancement()
			p.advance()

			if p.currentTok.Type != lexer.IDENTIFIER {
				return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
			}
			argNameToks = append(argNameToks, p.currentTok)
			res.RegisterAdvancement()
			p.advance()
		}
	}

	if p.currentTok.Type != lexer.RPAREN {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ')' or args"))
	}
	res.RegisterAdvancement()
	p.advance()

	isArrow := false
	var body Node

	if p.currentTok.Type == lexer.ARROW {
		isArrow = true
		res.RegisterAdvancement()
		p.advance()

		body = res.Register(p.statement())
		if res.Err != nil {
			return res
		}
	} else {
		if p.currentTok.Type != lexer.COLON {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
		}
		res.RegisterAdvancement()
		p.advance()

		body = res.Register(p.getStatements())
		if res.Err != nil {
			return res
		}
	}

	return res.Success(NewFuncDefNode(nameTok, argNameToks, body, isArrow))
}

func (p *Parser) listExpr() *ParseResult {
	res := NewParseResult()
	var elements []Node
	posStart := p.currentTok.PosStart.Copy()

	if p.currentTok.Type != lexer.LSQB {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected '['"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type == lexer.RSQB {
		res.RegisterAdvancement()
		p.advance()
	} else {
		elem := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		elements = append(elements, elem)

		for p.currentTok.Type == lexer.COMMA {
			res.RegisterAdvancement()
			p.advance()

			elem := res.Register(p.expr())
			if res.Err != nil {
				return res
			}
			elements = append(elements, elem)
		}

		if p.currentTok.Type != lexer.RSQB {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ',' or ']'"))
		}
		res.RegisterAdvancement()
		p.advance()
	}

	return res.Success(NewListNode(elements, posStart, p.currentTok.PosEnd))
}

func (p *Parser) dictKey() *ParseResult {
	res := NewParseResult()
	tok := p.currentTok

	switch tok.Type {
	case lexer.STRING:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewStringNode(tok))
	case lexer.IDENTIFIER:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewStringNode(lexer.NewTokenSpan(lexer.STRING, tok.Value, tok.PosStart, tok.PosEnd)))
	case lexer.INT, lexer.FLOAT:
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewNumberNode(tok))
	}

	return res.Failure(lexer.NewInvalidSyntaxError(tok.PosStart, tok.PosEnd, "Expected dict key"))
}

func (p *Parser) dictExpr() *ParseResult {
	res := NewParseResult()
	var pairs []DictPair
	posStart := p.currentTok.PosStart.Copy()

	if p.currentTok.Type != lexer.LBRACE {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected '{'"))
	}
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type == lexer.RBRACE {
		res.RegisterAdvancement()
		p.advance()
		return res.Success(NewDictNode(pairs, posStart, p.currentTok.PosEnd))
	}

	parsePair := func() *ParseResult {
		key := res.Register(p.dictKey())
		if res.Err != nil {
			return res
		}
		if p.currentTok.Type != lexer.COLON {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ':'"))
		}
		res.RegisterAdvancement()
		p.advance()

		value := res.Register(p.expr())
		if res.Err != nil {
			return res
		}
		pairs = append(pairs, DictPair{key, value})
		return res
	}

	if parsePair(); res.Err != nil {
		return res
	}

	for p.currentTok.Type == lexer.COMMA {
		res.RegisterAdvancement()
		p.advance()
		if parsePair(); res.Err != nil {
			return res
		}
	}

	if p.currentTok.Type != lexer.RBRACE {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected ',' or '}'"))
	}
	res.RegisterAdvancement()
	p.advance()

	return res.Success(NewDictNode(pairs, posStart, p.currentTok.PosEnd))
}

func (p *Parser) importExpr() *ParseResult {
	res := NewParseResult()

	if !p.currentTok.Matches(lexer.KEYWORD, "import") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'import'"))
	}
	posStart := p.currentTok.PosStart.Copy()
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type != lexer.IDENTIFIER {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
	}
	moduleName := p.currentTok
	res.RegisterAdvancement()
	p.advance()

	var alias *lexer.Token
	if p.currentTok.Matches(lexer.KEYWORD, "as") {
		res.RegisterAdvancement()
		p.advance()

		if p.currentTok.Type != lexer.IDENTIFIER {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
		}
		alias = p.currentTok
		res.RegisterAdvancement()
		p.advance()
	}

	return res.Success(NewImportNode(moduleName, alias, posStart, p.currentTok.PosEnd))
}

func (p *Parser) fromImportExpr() *ParseResult {
	res := NewParseResult()

	if !p.currentTok.Matches(lexer.KEYWORD, "from") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'from'"))
	}
	posStart := p.currentTok.PosStart.Copy()
	res.RegisterAdvancement()
	p.advance()

	if p.currentTok.Type != lexer.IDENTIFIER {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
	}
	moduleName := p.currentTok
	res.RegisterAdvancement()
	p.advance()

	if !p.currentTok.Matches(lexer.KEYWORD, "import") {
		return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected 'import'"))
	}
	res.RegisterAdvancement()
	p.advance()

	var names []ImportedName

	parseOne := func() *ParseResult {
		if p.currentTok.Type != lexer.IDENTIFIER {
			return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
		}
		name := p.currentTok
		res.RegisterAdvancement()
		p.advance()

		var alias *lexer.Token
		if p.currentTok.Matches(lexer.KEYWORD, "as") {
			res.RegisterAdvancement()
			p.advance()

			if p.currentTok.Type != lexer.IDENTIFIER {
				return res.Failure(lexer.NewInvalidSyntaxError(p.currentTok.PosStart, p.currentTok.PosEnd, "Expected identifier"))
			}
			alias = p.currentTok
			res.RegisterAdvancement()
			p.advance()
		}
		names = append(names, ImportedName{name, alias})
		return res
	}

	if parseOne(); res.Err != nil {
		return res
	}

	for p.currentTok.Type == lexer.COMMA {
		res.RegisterAdvancement()
		p.advance()
		if parseOne(); res.Err != nil {
			return res
		}
	}

	return res.Success(NewFromImportNode(moduleName, names, posStart, p.currentTok.PosEnd))
}

/*
opMatch is either a bare token type or a (KEYWORD, value) pair; binOp
accepts either form so it can drive both symbolic and keyword
operators.
*/
type opMatch struct {
	typ lexer.TokenType
	val interface{}
}

func (o opMatch) matches(tok *lexer.Token) bool {
	if o.val != nil {
		return tok.Matches(o.typ, o.val)
	}
	return tok.Type == o.typ
}

/*
binOp parses a left-associative chain of binary operations. If funcB
is nil, funcA is used for both operands; power() passes factor as
funcB to get right-associativity for '^'.
*/
func (p *Parser) binOp(funcA func() *ParseResult, ops []opMatch, funcB func() *ParseResult) *ParseResult {
	if funcB == nil {
		funcB = funcA
	}

	res := NewParseResult()
	left := res.Register(funcA())
	if res.Err != nil {
		return res
	}

	for matchesAny(p.currentTok, ops) {
		opTok := p.currentTok
		res.RegisterAdvancement()
		p.advance()

		right := res.Register(funcB())
		if res.Err != nil {
			return res
		}
		left = NewBinOpNode(left, opTok, right)
	}

	return res.Success(left)
}

func matchesAny(tok *lexer.Token, ops []opMatch) bool {
	for _, o := range ops {
		if o.matches(tok) {
			return true
		}
	}
	return false
}

func fitStr(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
