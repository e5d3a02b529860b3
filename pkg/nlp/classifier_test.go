package nlp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fairgate/eventrag/pkg/nlp"
	"github.com/stretchr/testify/assert"
)

// fakeClient returns a canned response or error.
type fakeClient struct {
	content   string
	err       error
	lastMax   int
	lastInput string
}

func (f *fakeClient) Chat(_ context.Context, messages []nlp.Message, maxTokens int) (*nlp.Response, error) {
	f.lastMax = maxTokens
	if len(messages) > 0 {
		f.lastInput = messages[0].Content
	}
	if f.err != nil {
		return nil, f.err
	}
	return &nlp.Response{Content: f.content}, nil
}

func (f *fakeClient) Close() error { return nil }

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		err         error
		wantIntent  string
		wantKeyword string
	}{
		{
			name:        "clean json",
			content:     `{"intent": "venue", "keyword": "breakpoint"}`,
			wantIntent:  "venue",
			wantKeyword: "breakpoint",
		},
		{
			name:        "fenced json is repaired",
			content:     "```json\n{\"intent\": \"dates\", \"keyword\": \"devconnect\"}\n```",
			wantIntent:  "dates",
			wantKeyword: "devconnect",
		},
		{
			name:        "truncated json is repaired",
			content:     `{"intent": "ticket", "keyword": "breakpoint"`,
			wantIntent:  "ticket",
			wantKeyword: "breakpoint",
		},
		{
			name:        "prose output degrades to unknown",
			content:     "I think you are asking about the venue.",
			wantIntent:  "unknown",
			wantKeyword: "",
		},
		{
			name:        "missing intent field normalizes to unknown",
			content:     `{"keyword": "devconnect"}`,
			wantIntent:  "unknown",
			wantKeyword: "devconnect",
		},
		{
			name:        "transport failure degrades to unknown",
			err:         errors.New("connection refused"),
			wantIntent:  "unknown",
			wantKeyword: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{content: tt.content, err: tt.err}
			classifier := nlp.NewClassifier(client, nil)

			cls := classifier.Classify(context.Background(), "where is breakpoint?")
			assert.Equal(t, tt.wantIntent, cls.Intent)
			assert.Equal(t, tt.wantKeyword, cls.Keyword)
		})
	}
}

func TestClassifyEmbedsQuery(t *testing.T) {
	client := &fakeClient{content: `{"intent": "faq", "keyword": ""}`}
	classifier := nlp.NewClassifier(client, nil)

	classifier.Classify(context.Background(), "are sessions recorded?")
	assert.Contains(t, client.lastInput, `"are sessions recorded?"`)
	assert.Equal(t, 100, client.lastMax)
}

func TestGeneratorComplete(t *testing.T) {
	t.Run("success returns content", func(t *testing.T) {
		gen := nlp.NewGenerator(&fakeClient{content: "a completion"}, nil)
		assert.Equal(t, "a completion", gen.Complete(context.Background(), "prompt", 300))
	})

	t.Run("transport failure returns the sentinel", func(t *testing.T) {
		gen := nlp.NewGenerator(&fakeClient{err: errors.New("timeout")}, nil)
		assert.Equal(t, nlp.FailureSentinel, gen.Complete(context.Background(), "prompt", 300))
	})
}
