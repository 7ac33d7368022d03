package model

import "strings"

// TypeID names a real platform type, e.g. "android.os.StatFs".
type TypeID string

// MethodSignature identifies a method by name and parameter types. Two
// signatures match when name, arity and every parameter type are equal.
type MethodSignature struct {
	Name   string
	Params []string
}

// Sig builds a MethodSignature.
func Sig(name string, params ...string) MethodSignature {
	return MethodSignature{Name: name, Params: params}
}

// Key renders the signature as name(p1,p2). It is the lookup key for
// method tables.
func (s MethodSignature) Key() string {
	var b strings.Builder

	b.WriteString(s.Name)
	b.WriteByte('(')
	b.WriteString(strings.Join(s.Params, ","))
	b.WriteByte(')')

	return b.String()
}

// Arity returns the number of parameters.
func (s MethodSignature) Arity() int { return len(s.Params) }

// Matches reports whether s and other name the same method.
func (s MethodSignature) Matches(other MethodSignature) bool {
	if s.Name != other.Name || len(s.Params) != len(other.Params) {
		return false
	}

	for i := range s.Params {
		if s.Params[i] != other.Params[i] {
			return false
		}
	}

	return true
}

func (s MethodSignature) String() string { return s.Key() }
