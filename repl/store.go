package repl

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

var (
	ErrBadAssignment   = errors.New("incorrect variable assignment")
	ErrBadVariableName = errors.New("variable name has to be one character long, [a-z]")
)

// Binding is a variable and the raw text of its definition.
type Binding struct {
	Name rune
	Text string
}

func (b Binding) String() string {
	return fmt.Sprintf("%c = %s", b.Name, b.Text)
}

// Store holds the variables defined during a session. It implements
// evaluator.Table. Definitions are stored as text and only checked when
// evaluated. Not safe for concurrent use.
type Store struct {
	vars map[rune]string
}

func NewStore() *Store {
	return &Store{vars: map[rune]string{}}
}

func (s *Store) Lookup(name rune) (string, bool) {
	text, ok := s.vars[name]
	return text, ok
}

// Set defines or redefines a variable.
func (s *Store) Set(name rune, text string) error {
	if name < 'a' || name > 'z' {
		return fmt.Errorf("%w: %q", ErrBadVariableName, string(name))
	}
	s.vars[name] = text
	return nil
}

// Assign parses and stores a "name = text" line.
func (s *Store) Assign(line string) (Binding, error) {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return Binding{}, ErrBadAssignment
	}
	name, text := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	runes := []rune(name)
	if len(runes) != 1 {
		return Binding{}, fmt.Errorf("%w: %q", ErrBadVariableName, name)
	}
	if err := s.Set(runes[0], text); err != nil {
		return Binding{}, err
	}
	return Binding{Name: runes[0], Text: text}, nil
}

func (s *Store) Len() int { return len(s.vars) }

// Defined returns the bindings sorted by name.
func (s *Store) Defined() []Binding {
	bindings := make([]Binding, 0, len(s.vars))
	for _, name := range slices.Sorted(maps.Keys(s.vars)) {
		bindings = append(bindings, Binding{Name: name, Text: s.vars[name]})
	}
	return bindings
}
