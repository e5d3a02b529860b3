package eventrag

import (
	"context"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/fairgate/eventrag/pkg/knowledge"
	"github.com/fairgate/eventrag/pkg/nlp"
	"github.com/fairgate/eventrag/pkg/prompts"
)

// Answer is the only value that crosses the pipeline's outward boundary.
type Answer struct {
	SelectedQuestion string `json:"selected_question"`
	HumanizedAnswer  string `json:"humanized_answer"`
}

// Classifier maps free text to an intent tag and an entity keyword. The
// returned intent is untrusted; the pipeline validates it against the
// closed set.
type Classifier interface {
	Classify(ctx context.Context, query string) nlp.Classification
}

// Generator produces free-text completions. Implementations substitute a
// fixed sentinel for transport failures instead of returning an error.
type Generator interface {
	Complete(ctx context.Context, prompt string, maxTokens int) string
}

// Assistant is the query pipeline: classify, retrieve, compose, generate,
// parse. One logical request is processed start to finish per Answer call;
// the only suspension points are the two collaborator calls.
type Assistant struct {
	kb         *knowledge.Base
	classifier Classifier
	generator  Generator
	logger     *slog.Logger

	// learning deduplicates concurrent FAQ synthesis per keyword.
	learning singleflight.Group
}

// NewAssistant creates an assistant over a seeded knowledge base.
func NewAssistant(kb *knowledge.Base, classifier Classifier, generator Generator, logger *slog.Logger) *Assistant {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assistant{
		kb:         kb,
		classifier: classifier,
		generator:  generator,
		logger:     logger,
	}
}

// Knowledge exposes the underlying knowledge base.
func (a *Assistant) Knowledge() *knowledge.Base {
	return a.kb
}

// Answer runs the full pipeline for one query. It always returns a
// well-formed answer; classification, retrieval, generation, and parse
// failures each degrade to their fixed local fallback.
func (a *Assistant) Answer(ctx context.Context, query string) Answer {
	cls := a.classifier.Classify(ctx, query)
	intent := ParseIntent(cls.Intent)
	a.logger.Info("classified query", "intent", intent, "keyword", cls.Keyword)

	data, final := a.retrieve(ctx, intent, cls.Keyword, query)
	if final != nil {
		// side_event answers skip generation entirely; a long enumerated
		// list must reach the user unparaphrased and untruncated.
		return *final
	}

	response := a.generator.Complete(ctx, prompts.Humanize(data, query), humanizeTokenBudget)

	question, answer, err := parseTwoLine(response)
	if err != nil {
		a.logger.Warn("generation output failed the two-line contract", "error", err)
		return Answer{SelectedQuestion: query, HumanizedAnswer: data}
	}
	return Answer{SelectedQuestion: question, HumanizedAnswer: answer}
}
