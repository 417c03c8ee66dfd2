package main

import (
	"strconv"
	"strings"
)

// UidGenerator hands out identifiers that do not collide with any name in its scope.
type UidGenerator interface {
	GenerateUid(hint string) Identifier
}

// Scope tracks every name used in a single source file.
type Scope struct {
	used map[string]struct{}
}

func NewScope(names ...string) *Scope {
	s := &Scope{used: make(map[string]struct{}, len(names))}
	for _, name := range names {
		s.Reserve(name)
	}
	return s
}

// NewScopeForCode reserves every identifier-like token found in code. Tokens inside
// strings and comments are reserved too.
func NewScopeForCode(code []byte) *Scope {
	s := NewScope()
	n := len(code)
	i := 0
	for i < n {
		if !isByteIdentifierChar(code[i]) {
			i++
			continue
		}
		name, next := parseIdentifier(code, i)
		s.Reserve(name)
		i = next
	}
	return s
}

func (s *Scope) Reserve(name string) {
	s.used[name] = struct{}{}
}

func (s *Scope) Has(name string) bool {
	_, ok := s.used[name]
	return ok
}

// GenerateUid returns `_hint`, `_hint2`, `_hint3`, ... whichever is free first,
// and reserves it.
func (s *Scope) GenerateUid(hint string) Identifier {
	name := strings.TrimLeft(toIdentifier(hint), "_")
	name = strings.TrimRight(name, "0123456789")

	for i := 1; ; i++ {
		uid := "_" + name
		if i > 1 {
			uid += strconv.Itoa(i)
		}
		if !s.Has(uid) {
			s.Reserve(uid)
			return Identifier(uid)
		}
	}
}

// toIdentifier turns an arbitrary hint into a valid identifier: invalid chars act
// as word separators, leading digits are dropped.
func toIdentifier(hint string) string {
	var b strings.Builder
	upperNext := false
	for i := 0; i < len(hint); i++ {
		c := hint[i]
		if !isByteIdentifierChar(c) {
			upperNext = b.Len() > 0
			continue
		}
		if b.Len() == 0 && c >= '0' && c <= '9' {
			continue
		}
		if upperNext && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upperNext = false
		b.WriteByte(c)
	}
	name := b.String()
	if !IsValidIdentifier(name) {
		name = "_" + name
	}
	return name
}
