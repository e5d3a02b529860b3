// Package prompts holds the instruction templates sent to the completion
// service. The humanize template embeds retrieved data verbatim and demands
// a fixed two-line output so the answer can be parsed structurally.
package prompts

import "fmt"

// IntentClassification asks for a strict JSON classification of the query
// into the closed intent set plus an event keyword.
func IntentClassification(query string) string {
	return fmt.Sprintf(`You are an expert for Devconnect (Buenos Aires) and Breakpoint (Abu Dhabi).

Classify intent from: dates, venue, ticket, logistics, side_event, speakers, program, faq, unknown
Keyword: "devconnect" (La Rural, Buenos Aires), "breakpoint" (Etihad, Abu Dhabi)

Query: %q

Return ONLY JSON:
{"intent": "<intent>", "keyword": "<keyword>"}`, query)
}

// Humanize instructs the model to restate the retrieved data without
// alteration, in exactly two labeled lines.
func Humanize(data, query string) string {
	return fmt.Sprintf(`USE EXACTLY THIS DATA (DO NOT CHANGE ANYTHING):
%s

USER QUERY: %q

RESPOND IN THIS FORMAT ONLY:
Selected Question: <1-line question>
Humanized Answer: <exact data, no additions>`, data, query)
}

// LearnFAQ synthesizes a short factual answer for an unseeded FAQ keyword.
func LearnFAQ(query, keyword string) string {
	return fmt.Sprintf("Query: '%s'\nAnswer in 1 short sentence about %s. Be factual.", query, keyword)
}
