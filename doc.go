// Package eventrag answers natural-language questions about a small set of
// known events (Devconnect Argentina and Solana Breakpoint) by combining a
// symbolic fact store with an intent-driven retrieval pipeline.
//
// A query flows through classification, an exhaustive per-intent retrieval
// dispatch over the knowledge base, a strict templated generation step, and
// a structural parse. Every external call has a fixed local fallback; the
// pipeline always terminates in a well-formed two-field answer and never
// surfaces an error to the caller.
package eventrag
