package eval

import (
	"regexp"
	"sort"

	"github.com/trippwill/decx/decimal"
)

// Func is a host-side function bound in a Scope: zero or more decimal
// arguments in, a single decimal (or error) out.
type Func func(args []*decimal.Decimal) (*decimal.Decimal, error)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$\x{0370}-\x{03FF}][\w$\x{0370}-\x{03FF}]*$`)

// Scope is the evaluator's sole symbol table: identifiers bound to either a
// decimal value or a host function. Once installed, the set of names is
// fixed; only Rebind may change what a name maps to.
type Scope struct {
	values map[string]*decimal.Decimal
	funcs  map[string]Func
	names  []string // sorted longest-first, for greedy tokenizer matching
}

// NewScope validates every key against the identifier pattern and builds a
// Scope ready for tokenizing. A name may appear in values or funcs, never
// both.
func NewScope(values map[string]*decimal.Decimal, funcs map[string]Func) (*Scope, error) {
	s := &Scope{
		values: make(map[string]*decimal.Decimal, len(values)),
		funcs:  make(map[string]Func, len(funcs)),
	}
	for name, v := range values {
		if !identifierPattern.MatchString(name) {
			return nil, &InvalidIdentifierError{Name: name}
		}
		s.values[name] = v
	}
	for name, f := range funcs {
		if !identifierPattern.MatchString(name) {
			return nil, &InvalidIdentifierError{Name: name}
		}
		if _, clash := s.values[name]; clash {
			return nil, &InvalidIdentifierError{Name: name}
		}
		s.funcs[name] = f
	}
	s.rebuildNames()
	return s, nil
}

func (s *Scope) rebuildNames() {
	names := make([]string, 0, len(s.values)+len(s.funcs))
	for name := range s.values {
		names = append(names, name)
	}
	for name := range s.funcs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	s.names = names
}

// Lookup reports whether name is bound, and as a function vs a value.
func (s *Scope) Lookup(name string) (isFunc, ok bool) {
	if _, ok := s.funcs[name]; ok {
		return true, true
	}
	if _, ok := s.values[name]; ok {
		return false, true
	}
	return false, false
}

// Value returns the bound decimal for a variable name.
func (s *Scope) Value(name string) *decimal.Decimal { return s.values[name] }

// Function returns the bound host function for a function name.
func (s *Scope) Function(name string) Func { return s.funcs[name] }

// Rebind mutates existing value and function bindings in place. Every name
// in either map must already be bound as that kind; an unknown name, or a
// name whose kind doesn't match its existing slot, fails the whole call
// with no partial mutation.
func (s *Scope) Rebind(values map[string]*decimal.Decimal, funcs map[string]Func) error {
	for name := range values {
		if _, isValue := s.values[name]; !isValue {
			if _, isFunc := s.funcs[name]; isFunc {
				return &TypeError{Detail: "cannot rebind function slot " + name + " with a value"}
			}
			return &UnknownIdentifierError{Name: name}
		}
	}
	for name := range funcs {
		if _, isFunc := s.funcs[name]; !isFunc {
			if _, isValue := s.values[name]; isValue {
				return &TypeError{Detail: "cannot rebind value slot " + name + " with a function"}
			}
			return &UnknownIdentifierError{Name: name}
		}
	}
	for name, v := range values {
		s.values[name] = v
	}
	for name, f := range funcs {
		s.funcs[name] = f
	}
	return nil
}
