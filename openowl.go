// Package openowl provides local-first capture of visited web pages and
// natural language question answering over the captured history. It extracts
// readable text from pages using site-specific heuristics with a layered
// generic fallback, stores visit records locally, and forwards questions plus
// selected page context to a language model provider.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, gemini/).
package openowl
