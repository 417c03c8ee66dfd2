package main

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Identifier is a JS binding name.
type Identifier string

// Expression is any node that can appear on the right side of a declaration or assignment.
type Expression interface {
	expression() string
}

// Statement is a top-level JS statement that prints itself as source code.
type Statement interface {
	String() string
}

func (id Identifier) expression() string { return string(id) }

type ObjectExpression struct{}

func (ObjectExpression) expression() string { return "{}" }

type StringLiteral string

func (s StringLiteral) expression() string { return quoteJSString(string(s)) }

// MemberExpression is `Object.Property`, or `Object["Property"]` when Property
// is not a valid identifier.
type MemberExpression struct {
	Object   Identifier
	Property string
}

func (m MemberExpression) expression() string {
	if IsValidPropertyName(m.Property) {
		return string(m.Object) + "." + m.Property
	}
	return string(m.Object) + "[" + quoteJSString(m.Property) + "]"
}

type AssignmentExpression struct {
	Left  MemberExpression
	Right Expression
}

func (a AssignmentExpression) expression() string {
	return a.Left.expression() + " = " + a.Right.expression()
}

// ImportDeclarationStatement is `import * as Namespace from "Source";`,
// or the side-effect form `import "Source";` when Namespace is empty.
type ImportDeclarationStatement struct {
	Namespace Identifier
	Source    string
}

func (s ImportDeclarationStatement) String() string {
	if s.Namespace == "" {
		return fmt.Sprintf("import %s;", quoteJSString(s.Source))
	}
	return fmt.Sprintf("import * as %s from %s;", s.Namespace, quoteJSString(s.Source))
}

type VariableDeclaration struct {
	Kind string // const, let or var
	Name Identifier
	Init Expression
}

func (s VariableDeclaration) String() string {
	return fmt.Sprintf("%s %s = %s;", s.Kind, s.Name, s.Init.expression())
}

type ExpressionStatement struct {
	Expr Expression
}

func (s ExpressionStatement) String() string {
	return s.Expr.expression() + ";"
}

// ForInCopy copies every enumerable key of Source onto Target, storing the
// `default` key under DefaultName:
//
//	for (let key in Source) {
//	  Target[key === "default" ? DefaultName : key] = Source[key];
//	}
type ForInCopy struct {
	Source      Identifier
	Target      Identifier
	DefaultName string
}

func (s ForInCopy) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "for (let key in %s) {\n", s.Source)
	fmt.Fprintf(&b, "  %s[key === \"default\" ? %s : key] = %s[key];\n", s.Target, quoteJSString(s.DefaultName), s.Source)
	b.WriteString("}")
	return b.String()
}

var reservedWords = map[string]struct{}{
	"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
	"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "enum": {},
	"export": {}, "extends": {}, "false": {}, "finally": {}, "for": {}, "function": {},
	"if": {}, "import": {}, "in": {}, "instanceof": {}, "new": {}, "null": {},
	"return": {}, "super": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
	"await": {}, "yield": {}, "let": {}, "static": {}, "implements": {},
	"interface": {}, "package": {}, "private": {}, "protected": {}, "public": {},
}

// IsValidIdentifier reports whether name can be used as a binding name.
// Only ASCII identifiers are accepted.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isByteIdentifierChar(name[i]) {
			return false
		}
	}
	_, reserved := reservedWords[name]
	return !reserved
}

// IsValidPropertyName reports whether name can follow a `.` in a member expression.
// Reserved words are allowed as property names.
func IsValidPropertyName(name string) bool {
	if _, reserved := reservedWords[name]; reserved {
		return true
	}
	return IsValidIdentifier(name)
}

func quoteJSString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028', '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

// PrintStatements renders statements one per line.
func PrintStatements(statements []Statement) string {
	lines := make([]string, 0, len(statements))
	for _, s := range statements {
		lines = append(lines, s.String())
	}
	return strings.Join(lines, "\n")
}
