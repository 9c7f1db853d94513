/*
File    : lang/parser/parser.go

Package parser consumes a form-script token stream and produces the
ordered []Opcode list the evaluator walks. The statement dispatch follows
spec.md §4.5's speculative-parse-then-rewind pattern: try to build an
expression in ASSIGN context first, and only fall back to keyword dispatch
(assign/if/for/return/continue/break) when that fails. Grounded on
original_source/package/opcode/parse.py for the grammar and the teacher's
parser_statements.go/parser_conditionals.go/parser_loops.go for the
overall Go shape of a hand-written recursive-descent parser (save cursor,
attempt, rewind on failure).
*/
package parser

import (
	"fmt"
	"strings"

	"github.com/formscript/lang/expr"
	"github.com/formscript/lang/lexer"
	"github.com/formscript/lang/tokstream"
)

// Parser walks a tokenized script once, top to bottom.
type Parser struct {
	src    string
	tokens []lexer.Token
	tr     *tokstream.Reader
}

// New tokenizes src and returns a Parser positioned at its first token.
func New(src string) (*Parser, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{src: src, tokens: tokens, tr: tokstream.New(tokens)}, nil
}

// Parse tokenizes and parses src in one call, the entry point cmd/formscript
// and the REPL both use.
func Parse(src string) ([]Opcode, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// ParseProgram parses every statement up to end of input.
func (p *Parser) ParseProgram() ([]Opcode, error) {
	var ops []Opcode
	for {
		p.skipSeparators()
		if _, ok := p.peek(); !ok {
			return ops, nil
		}
		op, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		if err := p.expectSeparatorOrEOF(); err != nil {
			return nil, err
		}
	}
}

func (p *Parser) peek() (lexer.Token, bool) {
	tok, ok := p.tr.Read()
	if ok {
		p.tr.Unread()
	}
	return tok, ok
}

func (p *Parser) skipSeparators() {
	for {
		tok, ok := p.tr.Read()
		if !ok {
			return
		}
		if tok.Type != lexer.SEPARATE {
			p.tr.Unread()
			return
		}
	}
}

// parseStatement implements the speculative-parse-then-rewind dispatch.
func (p *Parser) parseStatement() (Opcode, error) {
	start := p.tr.Pointer()
	e, exprErr := expr.Build(p.tr, expr.ContextAssign)
	if exprErr == nil {
		return ExpressionStmt{baseOp{p.origin(start)}, e}, nil
	}
	p.tr.SetPointer(start)

	tok, ok := p.tr.Read()
	if !ok {
		return nil, exprErr
	}

	switch tok.Type {
	case lexer.WORD_TYPE:
		nextTok, nextOk := p.tr.Read()
		if nextOk && nextTok.Type == lexer.ASSIGN {
			return p.parseAssign(tok, start)
		}
		p.tr.SetPointer(start)
		return nil, p.syntaxError(exprErr.Error(), start, p.tr.Pointer()+1)

	case lexer.KEY_IF:
		return p.parseCondition(start)

	case lexer.KEY_FOR:
		return p.parseForLoop(start)

	case lexer.KEY_RETURN:
		e2, err := expr.Build(p.tr, expr.ContextAssign)
		if err != nil {
			return nil, p.syntaxError(err.Error(), start, p.tr.Pointer())
		}
		return Return{baseOp{p.origin(start)}, e2}, nil

	case lexer.KEY_CONTINUE:
		return Continue{baseOp{p.origin(start)}}, nil

	case lexer.KEY_BREAK:
		return Break{baseOp{p.origin(start)}}, nil

	default:
		p.tr.SetPointer(start)
		return nil, p.syntaxError(exprErr.Error(), start, p.tr.Pointer()+1)
	}
}

func (p *Parser) parseAssign(nameTok lexer.Token, start int) (Opcode, error) {
	if err := expr.ValidateIdentifier(nameTok.Payload); err != nil {
		return nil, p.syntaxError(err.Error(), start, p.tr.Pointer())
	}
	rhs, err := expr.Build(p.tr, expr.ContextAssign)
	if err != nil {
		return nil, p.syntaxError(err.Error(), start, p.tr.Pointer())
	}
	return Assign{baseOp{p.origin(start)}, nameTok.Payload, rhs}, nil
}

func (p *Parser) parseCondition(ifStart int) (Opcode, error) {
	var branches []Branch
	branchStart := ifStart

	for {
		cond, err := expr.Build(p.tr, expr.ContextIf)
		if err != nil {
			return nil, p.syntaxError(err.Error(), branchStart, p.tr.Pointer())
		}
		if err := p.expectToken(lexer.COLON); err != nil {
			return nil, p.syntaxError(err.Error(), branchStart, p.tr.Pointer())
		}
		stateLine := p.origin(branchStart)

		body, term, err := p.parseBody(`If statement not closed with "fi"`, ifStart,
			lexer.KEY_ELIF, lexer.KEY_ELSE, lexer.KEY_FI)
		if err != nil {
			return nil, err
		}
		branches = append(branches, Branch{Cond: cond, StateLine: stateLine, Body: body})

		switch term {
		case lexer.KEY_ELIF:
			branchStart = p.tr.Pointer() - 1
			continue

		case lexer.KEY_ELSE:
			elseStart := p.tr.Pointer() - 1
			if err := p.expectToken(lexer.COLON); err != nil {
				return nil, p.syntaxError(err.Error(), elseStart, p.tr.Pointer())
			}
			elseLine := p.origin(elseStart)
			elseBody, term2, err := p.parseBody(`If statement not closed with "fi"`, ifStart, lexer.KEY_FI)
			if err != nil {
				return nil, err
			}
			_ = term2
			branches = append(branches, Branch{Cond: nil, StateLine: elseLine, Body: elseBody})
			return Condition{baseOp{p.origin(ifStart)}, branches}, nil

		case lexer.KEY_FI:
			return Condition{baseOp{p.origin(ifStart)}, branches}, nil
		}
	}
}

func (p *Parser) parseForLoop(forStart int) (Opcode, error) {
	varTok, ok := p.tr.Read()
	if !ok || varTok.Type != lexer.WORD_TYPE {
		return nil, p.syntaxError(`expected a loop variable name after "for"`, forStart, p.tr.Pointer())
	}
	if err := expr.ValidateIdentifier(varTok.Payload); err != nil {
		return nil, p.syntaxError(err.Error(), forStart, p.tr.Pointer())
	}
	if err := p.expectToken(lexer.COMMA); err != nil {
		return nil, p.syntaxError(err.Error(), forStart, p.tr.Pointer())
	}
	count, err := expr.Build(p.tr, expr.ContextFor)
	if err != nil {
		return nil, p.syntaxError(err.Error(), forStart, p.tr.Pointer())
	}
	if err := p.expectToken(lexer.COLON); err != nil {
		return nil, p.syntaxError(err.Error(), forStart, p.tr.Pointer())
	}
	stateLine := p.origin(forStart)

	body, term, err := p.parseBody(`For loop not closed with "rof"`, forStart, lexer.KEY_ROF)
	if err != nil {
		return nil, err
	}
	_ = term

	return ForLoop{baseOp{p.origin(forStart)}, varTok.Payload, count, stateLine, body}, nil
}

// parseBody parses statements until one of terms is read (which is
// consumed), erroring with unclosedMsg (anchored at start) on premature
// EOF.
func (p *Parser) parseBody(unclosedMsg string, start int, terms ...lexer.TokenType) ([]Opcode, lexer.TokenType, error) {
	var body []Opcode
	for {
		p.skipSeparators()
		tok, ok := p.tr.Read()
		if !ok {
			return nil, "", p.syntaxError(unclosedMsg, start, p.tr.Pointer())
		}
		for _, t := range terms {
			if tok.Type == t {
				return body, t, nil
			}
		}
		p.tr.Unread()

		op, err := p.parseStatement()
		if err != nil {
			return nil, "", err
		}
		body = append(body, op)
		if err := p.expectSeparatorOrEOF(); err != nil {
			return nil, "", err
		}
	}
}

func (p *Parser) expectToken(tt lexer.TokenType) error {
	tok, ok := p.tr.Read()
	if !ok || tok.Type != tt {
		return fmt.Errorf("expected %q", tt)
	}
	return nil
}

// expectSeparatorOrEOF requires a SEPARATE after a statement, but is
// lenient about a missing one immediately before a block-closing keyword.
func (p *Parser) expectSeparatorOrEOF() error {
	tok, ok := p.tr.Read()
	if !ok {
		return nil
	}
	switch tok.Type {
	case lexer.SEPARATE:
		return nil
	case lexer.KEY_FI, lexer.KEY_ELIF, lexer.KEY_ELSE, lexer.KEY_ROF:
		p.tr.Unread()
		return nil
	}
	return p.syntaxError(fmt.Sprintf("expected end of statement, got %q", tok.Type), p.tr.Pointer()-1, p.tr.Pointer())
}

// origin returns the trimmed source text spanned by tokens
// [startIdx, p.tr.Pointer()).
func (p *Parser) origin(startIdx int) string {
	endIdx := p.tr.Pointer()
	if len(p.tokens) == 0 || startIdx >= len(p.tokens) || endIdx <= startIdx {
		return ""
	}
	if endIdx > len(p.tokens) {
		endIdx = len(p.tokens)
	}
	return strings.TrimSpace(p.src[p.tokens[startIdx].Start:p.tokens[endIdx-1].End])
}
