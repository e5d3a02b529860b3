package knowledge

import (
	_ "embed"
	"fmt"

	"github.com/fairgate/eventrag/pkg/atomstore"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

type seedFact struct {
	Rel     string `yaml:"rel"`
	Subject string `yaml:"subject"`
	Symbol  string `yaml:"symbol,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

type seedFile struct {
	Facts []seedFact `yaml:"facts"`
}

// LoadSeed performs the one-shot batch of Add calls that populates the
// store before any query is served. Repeating it duplicates atoms; there
// is no intrinsic guard.
func LoadSeed(store *atomstore.Store) (int, error) {
	var file seedFile
	if err := yaml.Unmarshal(seedYAML, &file); err != nil {
		return 0, fmt.Errorf("failed to parse seed facts: %w", err)
	}

	for i, fact := range file.Facts {
		if fact.Rel == "" || fact.Subject == "" {
			return 0, fmt.Errorf("seed fact %d is missing rel or subject", i)
		}
		if fact.Symbol != "" {
			store.Add(fact.Rel, fact.Subject, atomstore.Symbol(fact.Symbol))
		} else {
			store.Add(fact.Rel, fact.Subject, atomstore.Literal(fact.Literal))
		}
	}
	return len(file.Facts), nil
}

// NewSeededBase creates a store, loads the seed facts, and wraps the
// result in a Base.
func NewSeededBase() (*Base, error) {
	store := atomstore.New()
	if _, err := LoadSeed(store); err != nil {
		return nil, err
	}
	return NewBase(store), nil
}
