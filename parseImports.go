package main

import (
	"bytes"
)

type SpecifierKind uint8

const (
	DefaultSpecifier SpecifierKind = iota
	NamespaceSpecifier
	NamedSpecifier
)

func (k SpecifierKind) String() string {
	switch k {
	case DefaultSpecifier:
		return "default"
	case NamespaceSpecifier:
		return "namespace"
	case NamedSpecifier:
		return "named"
	}
	return "unknown"
}

type ImportSpecifier struct {
	Kind     SpecifierKind
	Imported string // "default" for default imports, "*" for namespace imports
	Local    string // Local binding name
	IsType   bool   // Inline `type` modifier inside braces
}

// ImportDeclaration is a single static `import ... from '...'` statement.
// Start and End cover the whole statement, including the trailing `;` if present.
type ImportDeclaration struct {
	Source      string
	Specifiers  []ImportSpecifier
	IsTypeOnly  bool   // `import type ...`
	Attributes  string // Raw `with { ... }` / `assert { ... }` clause, empty if absent
	Start       uint32
	End         uint32
	SourceStart uint32
	SourceEnd   uint32
}

func isWhiteSpace(char byte) bool {
	return (char == ' ' || char == '\t' || char == '\n' || char == '\r')
}

// skipSpaces skips spaces, tabs, and newlines, returns new index
func skipSpaces(code []byte, i int) int {
	for i < len(code) && isWhiteSpace(code[i]) {
		i++
	}
	return i
}

func isByteIdentifierChar(char byte) bool {
	// 0-9 || A-Z || a-z || _ || $
	return (char >= '0' && char <= '9') || (char >= 'A' && char <= 'Z') || (char >= 'a' && char <= 'z') || char == '_' || char == '$'
}

func hasPrefixAt(code []byte, i int, s string) bool {
	if i < 0 || i+len(s) > len(code) {
		return false
	}
	return bytes.Equal(code[i:i+len(s)], []byte(s))
}

func hasWordAt(code []byte, i int, s string) bool {
	if !hasPrefixAt(code, i, s) {
		return false
	}
	end := i + len(s)
	return end >= len(code) || !isByteIdentifierChar(code[end])
}

// isTokenStart reports whether position i is not preceded by an identifier char or a member access dot.
func isTokenStart(code []byte, i int) bool {
	if i == 0 {
		return true
	}
	prev := code[i-1]
	return !isByteIdentifierChar(prev) && prev != '.'
}

// parseStringLiteral extracts the string literal at position i (' or ")
func parseStringLiteral(code []byte, i int) (value string, next int, start int, end int) {
	quote := code[i]
	i++
	start = i
	for i < len(code) && code[i] != quote {
		if code[i] == '\\' && i+1 < len(code) {
			i += 2
			continue
		}
		i++
	}
	if i >= len(code) {
		return "", i, 0, 0
	}
	return string(code[start:i]), i + 1, start, i
}

// skipToStringEnd skips to the end of a string literal
func skipToStringEnd(code []byte, start int, quote byte) int {
	i := start + 1
	for i < len(code) {
		if code[i] == quote {
			return i
		}
		if code[i] == '\\' && i+1 < len(code) {
			i += 2
		} else {
			i++
		}
	}
	return i
}

func skipLineComment(code []byte, start int) int {
	i := start + 2
	for i < len(code) && code[i] != '\n' {
		i++
	}
	return i
}

func skipBlockComment(code []byte, start int) int {
	i := start + 2
	for i+1 < len(code) && !(code[i] == '*' && code[i+1] == '/') {
		i++
	}
	if i+1 < len(code) {
		i += 2
	} else {
		i = len(code)
	}
	return i
}

// skipSpacesAndComments skips whitespace, line comments, and block comments
func skipSpacesAndComments(code []byte, i int) int {
	n := len(code)
	for i < n {
		i = skipSpaces(code, i)
		if i+1 < n && code[i] == '/' && code[i+1] == '/' {
			i = skipLineComment(code, i)
			continue
		}
		if i+1 < n && code[i] == '/' && code[i+1] == '*' {
			i = skipBlockComment(code, i)
			continue
		}
		break
	}
	return i
}

// skipOptionalSemicolon skips spaces and tabs then `;` if present.
// Returns position after `;` if found, or the original position i if not.
func skipOptionalSemicolon(code []byte, i int) int {
	n := len(code)
	j := i
	for j < n && (code[j] == ' ' || code[j] == '\t') {
		j++
	}
	if j < n && code[j] == ';' {
		return j + 1
	}
	return i
}

// skipBalancedBraces expects code[i] == '{' and returns the position after the matching '}'.
func skipBalancedBraces(code []byte, i int) int {
	n := len(code)
	depth := 0
	for i < n {
		switch code[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1
			}
		case '\'', '"', '`':
			i = skipToStringEnd(code, i, code[i])
		case '/':
			if i+1 < n && code[i+1] == '/' {
				i = skipLineComment(code, i)
				continue
			}
			if i+1 < n && code[i+1] == '*' {
				i = skipBlockComment(code, i)
				continue
			}
		}
		i++
	}
	return n
}

func parseIdentifier(code []byte, i int) (name string, next int) {
	n := len(code)
	if i >= n || !isByteIdentifierChar(code[i]) {
		return "", i
	}
	start := i
	for i < n && isByteIdentifierChar(code[i]) {
		i++
	}
	return string(code[start:i]), i
}

// parseAsAlias consumes an optional `as Alias` at position i.
func parseAsAlias(code []byte, i int) (alias string, next int) {
	if !hasWordAt(code, i, "as") {
		return "", i
	}
	j := skipSpacesAndComments(code, i+2)
	alias, j = parseIdentifier(code, j)
	if alias == "" {
		return "", i
	}
	return alias, j
}

// parseNamespaceSpecifier parses `* as Name` starting at code[i] == '*'.
func parseNamespaceSpecifier(code []byte, i int) (ImportSpecifier, int, bool) {
	i = skipSpacesAndComments(code, i+1)
	alias, next := parseAsAlias(code, i)
	if alias == "" {
		return ImportSpecifier{}, i, false
	}
	return ImportSpecifier{Kind: NamespaceSpecifier, Imported: "*", Local: alias}, next, true
}

// parseNamedSpecifiers parses `{ A, B as C, type D, "str" as E }` starting at code[i] == '{'.
func parseNamedSpecifiers(code []byte, i int) ([]ImportSpecifier, int) {
	n := len(code)
	specifiers := make([]ImportSpecifier, 0, 2)
	i++ // skip '{'
	for i < n {
		i = skipSpacesAndComments(code, i)
		if i >= n {
			break
		}
		if code[i] == '}' {
			i++
			break
		}

		isType := false
		if hasWordAt(code, i, "type") {
			// `type` is a modifier only when another name follows it
			j := skipSpacesAndComments(code, i+4)
			if j < n && (isByteIdentifierChar(code[j]) || code[j] == '"' || code[j] == '\'') && !hasWordAt(code, j, "as") {
				isType = true
				i = j
			}
		}

		imported := ""
		if i < n && (code[i] == '"' || code[i] == '\'') {
			imported, i, _, _ = parseStringLiteral(code, i)
		} else {
			name, next := parseIdentifier(code, i)
			if name == "" {
				i++ // skip unexpected char
				continue
			}
			imported, i = name, next
		}

		i = skipSpacesAndComments(code, i)
		local, next := parseAsAlias(code, i)
		if local == "" {
			local = imported
		} else {
			i = next
		}
		specifiers = append(specifiers, ImportSpecifier{Kind: NamedSpecifier, Imported: imported, Local: local, IsType: isType})

		i = skipSpacesAndComments(code, i)
		if i < n && code[i] == ',' {
			i++
		}
	}
	return specifiers, i
}

// parseImportSpecifiers parses everything between `import [type]` and `from`.
// Returns nil for side-effect imports.
func parseImportSpecifiers(code []byte, i int) ([]ImportSpecifier, int) {
	n := len(code)
	i = skipSpacesAndComments(code, i)
	if i >= n || code[i] == '"' || code[i] == '\'' {
		return nil, i
	}

	if code[i] == '*' {
		spec, next, ok := parseNamespaceSpecifier(code, i)
		if !ok {
			return nil, next
		}
		return []ImportSpecifier{spec}, next
	}

	if code[i] == '{' {
		return parseNamedSpecifiers(code, i)
	}

	// Default import: `Default` or `Default, { A }` or `Default, * as Ns`
	name, next := parseIdentifier(code, i)
	if name == "" {
		return nil, i
	}
	specifiers := []ImportSpecifier{{Kind: DefaultSpecifier, Imported: "default", Local: name}}
	i = skipSpacesAndComments(code, next)
	if i >= n || code[i] != ',' {
		return specifiers, i
	}

	i = skipSpacesAndComments(code, i+1)
	if i < n && code[i] == '*' {
		if spec, next, ok := parseNamespaceSpecifier(code, i); ok {
			specifiers = append(specifiers, spec)
			i = next
		}
	} else if i < n && code[i] == '{' {
		named, next := parseNamedSpecifiers(code, i)
		specifiers = append(specifiers, named...)
		i = next
	}
	return specifiers, i
}

type parseState struct {
	code         []byte
	n            int
	declarations []ImportDeclaration
}

func (s *parseState) skipDeclareAmbientBlock(i int) (int, bool) {
	if !hasWordAt(s.code, i, "declare") {
		return i, false
	}

	j := skipSpaces(s.code, i+7)
	if !hasWordAt(s.code, j, "module") && !hasWordAt(s.code, j, "global") && !hasWordAt(s.code, j, "namespace") {
		return i, false
	}

	for j < s.n && s.code[j] != '{' {
		if j+1 < s.n && s.code[j] == '/' && s.code[j+1] == '/' {
			j = skipLineComment(s.code, j)
			continue
		}
		if j+1 < s.n && s.code[j] == '/' && s.code[j+1] == '*' {
			j = skipBlockComment(s.code, j)
			continue
		}
		if s.code[j] == ';' || s.code[j] == '\n' {
			// `declare module 'x';` shorthand has no body
			return j, true
		}
		j++
	}
	return skipBalancedBraces(s.code, j), true
}

// parseImportStatement parses a static import declaration at position i.
// The bool result reports whether the `import` keyword was consumed.
func (s *parseState) parseImportStatement(i int) (int, bool) {
	if !hasWordAt(s.code, i, "import") {
		return i, false
	}
	start := i
	i += len("import")
	if i >= s.n {
		return i, true
	}
	// import(...) and import.meta are expressions
	if !(isWhiteSpace(s.code[i]) || s.code[i] == '{' || s.code[i] == '"' || s.code[i] == '\'' || s.code[i] == '*' || s.code[i] == '/') {
		return i, true
	}

	i = skipSpacesAndComments(s.code, i)
	if i < s.n && s.code[i] == '(' {
		return i, true
	}

	decl := ImportDeclaration{Start: uint32(start)}
	if hasWordAt(s.code, i, "type") {
		// `import type from './x'` binds a default import named "type"
		j := skipSpacesAndComments(s.code, i+4)
		isDefaultNamedType := false
		if hasWordAt(s.code, j, "from") {
			k := skipSpacesAndComments(s.code, j+4)
			isDefaultNamedType = k < s.n && (s.code[k] == '"' || s.code[k] == '\'')
		}
		if !isDefaultNamedType && j < s.n && s.code[j] != '=' && s.code[j] != ',' {
			decl.IsTypeOnly = true
			i = j
		}
	}

	if i < s.n && (s.code[i] == '"' || s.code[i] == '\'') {
		return s.finishDeclaration(decl, i)
	}

	specifiers, next := parseImportSpecifiers(s.code, i)
	if specifiers == nil {
		return next, true
	}
	decl.Specifiers = specifiers

	i = skipSpacesAndComments(s.code, next)
	if !hasWordAt(s.code, i, "from") {
		// `import x = require('y')` and malformed statements
		return i, true
	}
	i = skipSpacesAndComments(s.code, i+len("from"))
	if i >= s.n || (s.code[i] != '"' && s.code[i] != '\'') {
		return i, true
	}
	return s.finishDeclaration(decl, i)
}

// finishDeclaration reads the module source at code[i] and the optional attributes clause.
func (s *parseState) finishDeclaration(decl ImportDeclaration, i int) (int, bool) {
	source, next, sourceStart, sourceEnd := parseStringLiteral(s.code, i)
	if source == "" {
		return next, true
	}
	decl.Source = source
	decl.SourceStart = uint32(sourceStart)
	decl.SourceEnd = uint32(sourceEnd)

	end := next
	j := skipSpacesAndComments(s.code, next)
	if hasWordAt(s.code, j, "with") || hasWordAt(s.code, j, "assert") {
		k := j
		for k < s.n && s.code[k] != '{' && s.code[k] != '\n' {
			k++
		}
		if k < s.n && s.code[k] == '{' {
			end = skipBalancedBraces(s.code, k)
			decl.Attributes = string(s.code[j:end])
		}
	}
	end = skipOptionalSemicolon(s.code, end)
	decl.End = uint32(end)
	s.declarations = append(s.declarations, decl)
	return end, true
}

// ParseImportDeclarations scans JS/TS code and returns every top-level static import
// declaration in source order.
func ParseImportDeclarations(code []byte) []ImportDeclaration {
	state := parseState{
		code:         code,
		n:            len(code),
		declarations: make([]ImportDeclaration, 0, 16),
	}
	i := 0
	n := state.n
	depth := 0 // static imports only appear at depth 0

	for i < n {
		if depth > 0 {
			switch code[i] {
			case '{':
				depth++
				i++
			case '}':
				depth--
				i++
			case '\'', '"', '`':
				i = skipToStringEnd(code, i, code[i])
				if i < n {
					i++
				}
			case '/':
				if i+1 < n && code[i+1] == '/' {
					i = skipLineComment(code, i)
				} else if i+1 < n && code[i+1] == '*' {
					i = skipBlockComment(code, i)
				} else {
					i++
				}
			default:
				i++
			}
			continue
		}

		i = skipSpaces(code, i)
		if i >= n {
			break
		}

		switch code[i] {
		case '\'', '"', '`':
			i = skipToStringEnd(code, i, code[i])
			if i < n {
				i++
			}
			continue
		case '/':
			if i+1 < n && code[i+1] == '/' {
				i = skipLineComment(code, i)
				continue
			}
			if i+1 < n && code[i+1] == '*' {
				i = skipBlockComment(code, i)
				continue
			}
		case 'd':
			if isTokenStart(code, i) {
				if next, ok := state.skipDeclareAmbientBlock(i); ok {
					i = next
					continue
				}
			}
		case 'i':
			if isTokenStart(code, i) {
				if next, ok := state.parseImportStatement(i); ok {
					i = next
					continue
				}
			}
		case '{':
			depth++
		}

		if isByteIdentifierChar(code[i]) {
			// consume the whole word so keywords are only matched at token starts
			_, i = parseIdentifier(code, i)
			continue
		}
		i++
	}

	return state.declarations
}
