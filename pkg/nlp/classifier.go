package nlp

import (
	"context"
	"encoding/json"
	"log/slog"

	jsonrepair "github.com/kaptinlin/jsonrepair"

	"github.com/fairgate/eventrag/pkg/prompts"
)

// classifyTokenBudget caps the classification completion; the expected
// output is a single small JSON object.
const classifyTokenBudget = 100

// Classification is the raw classifier output. The intent string is
// untrusted here; the pipeline validates it against the closed intent set.
type Classification struct {
	Intent  string `json:"intent"`
	Keyword string `json:"keyword"`
}

// Classifier maps free text to an intent tag and an entity keyword using
// the completion service. Any transport failure or malformed model output
// degrades to intent "unknown" with an empty keyword; Classify never
// returns an error.
type Classifier struct {
	client Client
	logger *slog.Logger
}

// NewClassifier creates a classifier over the given client.
func NewClassifier(client Client, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{client: client, logger: logger}
}

// Classify returns the intent and keyword for a query.
func (c *Classifier) Classify(ctx context.Context, query string) Classification {
	unknown := Classification{Intent: "unknown", Keyword: ""}

	resp, err := c.client.Chat(ctx, []Message{NewUserMessage(prompts.IntentClassification(query))}, classifyTokenBudget)
	if err != nil {
		c.logger.Warn("intent classification failed", "error", err)
		return unknown
	}

	// Models wrap JSON in fences or prose often enough that repairing
	// before unmarshal is cheaper than reprompting.
	raw := resp.Content
	if repaired, err := jsonrepair.JSONRepair(raw); err == nil {
		raw = repaired
	}

	var result Classification
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.logger.Warn("unparsable classifier output", "output", resp.Content)
		return unknown
	}
	if result.Intent == "" {
		result.Intent = "unknown"
	}
	return result
}
