// Package dto defines the request and response types of the HTTP API.
package dto

// ChatRequest is one incoming chat turn.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse is the delivered answer for one chat turn.
type ChatResponse struct {
	MsgID            string `json:"msg_id"`
	Timestamp        string `json:"timestamp"`
	SelectedQuestion string `json:"selected_question"`
	HumanizedAnswer  string `json:"humanized_answer"`
}

// AddFactRequest appends one fact to the knowledge base.
type AddFactRequest struct {
	Relation string `json:"relation" binding:"required"`
	Subject  string `json:"subject" binding:"required"`
	Value    string `json:"value" binding:"required"`
}

// AddFactResponse confirms an appended fact.
type AddFactResponse struct {
	Confirmation string `json:"confirmation"`
}

// SearchEventsResponse lists the event keys matching a search.
type SearchEventsResponse struct {
	Query  string   `json:"query"`
	Events []string `json:"events"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
