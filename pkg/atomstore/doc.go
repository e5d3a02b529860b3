// Package atomstore provides the in-memory fact table backing the event
// knowledge base. Facts are (relation, subject, value) triples stored in
// insertion order with no deduplication; lookups fall back from bare-token
// subjects to quoted-literal subjects to tolerate inconsistently quoted
// source data.
package atomstore
