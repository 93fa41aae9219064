// Package form collects movie and series metadata from the operator.
//
// The terminal is expressed as an injected Port capability rather than a
// process-wide singleton, so tests drive forms with scripted answers and
// callers decide where prompts go. Answers are normalized on the way in:
// comma-separated lists are split and trimmed, genres are title-cased, and
// y/N questions accept the usual spellings.
package form
