package atomstore

import (
	"errors"
	"strings"
	"sync"
)

// ValueKind distinguishes symbolic references from literal payloads.
type ValueKind int

const (
	// KindSymbol is a tag-like token referencing another part of the vocabulary.
	KindSymbol ValueKind = iota
	// KindLiteral is an opaque text payload.
	KindLiteral
)

// Value is the object position of a fact triple.
type Value struct {
	Kind ValueKind
	Text string
}

// Symbol returns a symbolic value.
func Symbol(text string) Value {
	return Value{Kind: KindSymbol, Text: text}
}

// Literal returns a literal value.
func Literal(text string) Value {
	return Value{Kind: KindLiteral, Text: text}
}

// Atom is a single (relation, subject, value) fact triple.
type Atom struct {
	Relation string
	Subject  string
	Value    Value
}

// Pair is the stringified form of a tuple-shaped fact, where the subject
// position carries a name and the value position carries a description.
type Pair struct {
	Name        string
	Description string
}

// ErrNoMatch is returned when a lookup matches no atoms under either
// subject representation.
var ErrNoMatch = errors.New("atomstore: no matching atoms")

// FaqRelation is the relation used for cached question/answer facts.
const FaqRelation = "faq"

// Store is an append-only, ordered multiset of atoms. Duplicate triples are
// permitted; insertion order is preserved and is the only tie-break for
// first-match semantics. Reads and writes are safe for concurrent use.
//
// The fact base was authored with inconsistent quoting conventions for
// subjects, so every scalar lookup tries the bare-token form first and then
// retries with the subject as a quoted literal before reporting no match.
type Store struct {
	mu    sync.RWMutex
	atoms []Atom
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// Add appends one atom. There is no uniqueness check and no way to update
// or remove an atom once added.
func (s *Store) Add(relation, subject string, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.atoms = append(s.atoms, Atom{Relation: relation, Subject: subject, Value: value})
}

// Len returns the number of stored atoms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.atoms)
}

// MatchLiteral returns the values for (relation, subject) in insertion
// order, stringifying symbolic values. The bare subject form is tried
// first; if it matches nothing the quoted form is tried. ErrNoMatch is
// returned when both passes come up empty.
func (s *Store) MatchLiteral(relation, subject string) ([]string, error) {
	return s.match(relation, subject, func(v Value) (string, bool) {
		return v.Text, true
	})
}

// MatchSymbol is the same shape as MatchLiteral but restricted to symbolic
// values.
func (s *Store) MatchSymbol(relation, subject string) ([]string, error) {
	return s.match(relation, subject, func(v Value) (string, bool) {
		return v.Text, v.Kind == KindSymbol
	})
}

// MatchFaq returns the first stored answer for the keyword under the faq
// relation, trying the bare form then the quoted form.
func (s *Store) MatchFaq(keyword string) (string, error) {
	values, err := s.MatchLiteral(FaqRelation, keyword)
	if err != nil {
		return "", err
	}
	return values[0], nil
}

// MatchPair returns the (subject, value) pairs of every atom under the
// relation, in insertion order. There is no subject filter; tuple-shaped
// relations such as side_event carry their name in the subject position.
func (s *Store) MatchPair(relation string) []Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pairs []Pair
	for _, a := range s.atoms {
		if a.Relation == relation {
			pairs = append(pairs, Pair{Name: a.Subject, Description: a.Value.Text})
		}
	}
	return pairs
}

func (s *Store) match(relation, subject string, extract func(Value) (string, bool)) ([]string, error) {
	bare := normalizeSubject(subject)

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Bare token first, quoted literal second. The first non-empty result
	// set wins; callers do not know which form the data was seeded in.
	for _, candidate := range []string{bare, `"` + bare + `"`} {
		var values []string
		for _, a := range s.atoms {
			if a.Relation != relation || a.Subject != candidate {
				continue
			}
			if text, ok := extract(a.Value); ok {
				values = append(values, text)
			}
		}
		if len(values) > 0 {
			return values, nil
		}
	}
	return nil, ErrNoMatch
}

// normalizeSubject strips surrounding whitespace and quotes from a caller
// supplied subject so lookups start from the bare-token form.
func normalizeSubject(subject string) string {
	return strings.Trim(strings.TrimSpace(subject), `"`)
}
