package parser

import (
	"strconv"
	"strings"

	"github.com/dhamidi/glslq/glsl/syntax"
)

func (p *Parser) parseDirective() *syntax.Preprocessor {
	tok := p.expect(TokenDirective, "preprocessor directive")
	return NewPreprocessor(tok.Literal, tok.Span)
}

// NewPreprocessor builds a directive node from a pragma line. The line is
// kept verbatim; #version and #extension lines that are well formed also
// get a structured view.
func NewPreprocessor(text string, span Span) *syntax.Preprocessor {
	pp := &syntax.Preprocessor{Text: text, Span: span}
	body := strings.TrimLeft(strings.TrimPrefix(text, "#"), " \t")
	name := body
	if i := strings.IndexAny(body, " \t("); i >= 0 {
		name = body[:i]
	}
	pp.Directive = name
	rest := strings.TrimSpace(body[len(name):])

	switch name {
	case "version":
		pp.Version = parseVersion(rest)
	case "extension":
		pp.Extension = parseExtension(rest)
	}
	return pp
}

func parseVersion(rest string) *syntax.VersionDirective {
	fields := strings.Fields(rest)
	if len(fields) == 0 || len(fields) > 2 {
		return nil
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil
	}
	v := &syntax.VersionDirective{Number: n}
	if len(fields) == 2 {
		switch fields[1] {
		case "core":
			v.Profile = syntax.ProfileCore
		case "compatibility":
			v.Profile = syntax.ProfileCompatibility
		case "es":
			v.Profile = syntax.ProfileES
		default:
			return nil
		}
	}
	return v
}

func parseExtension(rest string) *syntax.ExtensionDirective {
	name, behavior, found := strings.Cut(rest, ":")
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, " \t") {
		return nil
	}
	ext := &syntax.ExtensionDirective{Name: name}
	if !found {
		return ext
	}
	switch strings.TrimSpace(behavior) {
	case "require":
		ext.Behavior = syntax.BehaviorRequire
	case "enable":
		ext.Behavior = syntax.BehaviorEnable
	case "warn":
		ext.Behavior = syntax.BehaviorWarn
	case "disable":
		ext.Behavior = syntax.BehaviorDisable
	default:
		return nil
	}
	return ext
}
