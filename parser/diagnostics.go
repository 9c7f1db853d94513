/*
File    : lang/parser/diagnostics.go

Syntax-error formatting per spec.md §6's diagnostic shape. Grounded on
original_source's `_format_problem_normal`/`_format_problem_sentence`
helpers for the two-variant (byte-offset vs token-index) excerpt
rendering, reusing lexer.FormatExcerpt so lex-time and parse-time
diagnostics share one rendering implementation.
*/
package parser

import (
	"fmt"

	"github.com/formscript/lang/diag"
	"github.com/formscript/lang/lexer"
)

// syntaxError formats msg with a source excerpt spanning the tokens
// [startIdx, endIdx), converting the token-index span to byte offsets via
// the tokens' captured spans.
func (p *Parser) syntaxError(msg string, startIdx, endIdx int) error {
	startByte, endByte := p.byteSpan(startIdx, endIdx)
	formatted := fmt.Sprintf("Syntax Error.\n\n- Error -\n  %s\n\n- Code -\n%s",
		msg, lexer.FormatExcerpt(p.src, startByte, endByte))
	return diag.New(diag.Syntax, formatted)
}

func (p *Parser) byteSpan(startIdx, endIdx int) (int, int) {
	if len(p.tokens) == 0 {
		return 0, len(p.src)
	}
	if startIdx < 0 {
		startIdx = 0
	}
	if startIdx >= len(p.tokens) {
		startIdx = len(p.tokens) - 1
	}
	if endIdx <= startIdx {
		endIdx = startIdx + 1
	}
	if endIdx > len(p.tokens) {
		endIdx = len(p.tokens)
	}
	return p.tokens[startIdx].Start, p.tokens[endIdx-1].End
}
