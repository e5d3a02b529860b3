// Package nlp wraps OpenAI-compatible completion services behind the
// Client interface and provides the two collaborators the answer pipeline
// consumes: a Classifier that maps free text to an intent and keyword, and
// a Generator whose failures degrade to a fixed sentinel string instead of
// errors.
package nlp
