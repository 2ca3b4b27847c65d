package format

import (
	"github.com/dhamidi/glslq/glsl/syntax"
)

// emitCommentsBefore writes, one per line, every pending comment that
// starts before pos.
func (p *GLSLPrettyPrinter) emitCommentsBefore(pos syntax.Position) {
	for p.commentIndex < len(p.comments) {
		comment := p.comments[p.commentIndex]
		if comment.Span.Start.Offset >= pos.Offset {
			break
		}
		p.emitComment()
	}
}

func (p *GLSLPrettyPrinter) emitRemainingComments() {
	for p.commentIndex < len(p.comments) {
		p.emitComment()
	}
}

func (p *GLSLPrettyPrinter) emitComment() {
	comment := p.comments[p.commentIndex]
	p.breakBefore(comment.Span.Start.Line)
	if !p.atLineStart {
		p.newline()
	}
	p.write(comment.Literal)
	p.newline()
	p.lastLine = max(p.lastLine, comment.Span.End.Line)
	p.commentIndex++
}

// emitTrailingComments writes the comments that start on line, the last
// line of the node just printed, after it on the same output line.
func (p *GLSLPrettyPrinter) emitTrailingComments(line int) {
	for p.commentIndex < len(p.comments) {
		comment := p.comments[p.commentIndex]
		if comment.Span.Start.Line != line {
			return
		}
		p.write(" ")
		p.write(comment.Literal)
		p.lastLine = max(p.lastLine, comment.Span.End.Line)
		p.commentIndex++
	}
}
