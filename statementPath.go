package main

import "strings"

// Splicer edits the statement list around the statement being visited.
type Splicer interface {
	InsertBefore(statements ...Statement)
	InsertAfter(statements ...Statement)
	ReplaceWithMultiple(statements []Statement)
}

// StatementPath is the position of one visited import declaration in its file.
type StatementPath struct {
	Node ImportDeclaration

	original    string
	before      []Statement
	after       []Statement
	replacement []Statement
	replaced    bool
}

func NewStatementPath(node ImportDeclaration, code []byte) *StatementPath {
	return &StatementPath{
		Node:     node,
		original: string(code[node.Start:node.End]),
	}
}

// InsertBefore appends statements to the ones already placed before the node.
func (p *StatementPath) InsertBefore(statements ...Statement) {
	p.before = append(p.before, statements...)
}

// InsertAfter places statements directly after the node, ahead of statements
// inserted by earlier calls.
func (p *StatementPath) InsertAfter(statements ...Statement) {
	after := make([]Statement, 0, len(statements)+len(p.after))
	after = append(after, statements...)
	p.after = append(after, p.after...)
}

func (p *StatementPath) ReplaceWithMultiple(statements []Statement) {
	p.replacement = statements
	p.replaced = true
}

// Modified reports whether any splice was requested.
func (p *StatementPath) Modified() bool {
	return p.replaced || len(p.before) > 0 || len(p.after) > 0
}

// Text renders the statements that take the place of the node.
func (p *StatementPath) Text() string {
	parts := make([]string, 0, 3)
	if len(p.before) > 0 {
		parts = append(parts, PrintStatements(p.before))
	}
	if p.replaced {
		if len(p.replacement) > 0 {
			parts = append(parts, PrintStatements(p.replacement))
		}
	} else {
		parts = append(parts, p.original)
	}
	if len(p.after) > 0 {
		parts = append(parts, PrintStatements(p.after))
	}
	return strings.Join(parts, "\n")
}

// Change converts the splices into a text change over the node's span.
func (p *StatementPath) Change() (Change, bool) {
	if !p.Modified() {
		return Change{}, false
	}
	return Change{
		Start: int32(p.Node.Start),
		End:   int32(p.Node.End),
		Text:  p.Text(),
	}, true
}
