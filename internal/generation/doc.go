// Package generation provides the content synthesis capability behind the
// card feed, mindmaps and Socratic discussions. The Synthesiser interface is
// the boundary between the API and whatever produces AI content; the
// PlaceholderSynthesiser returns fixed demo content and is what the server
// wires by default.
package generation
