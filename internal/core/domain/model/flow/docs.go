// Package flow defines the conversational vocabulary of the order assembly
// engine: the canonical user intents, the conversation states, and the UI
// signals returned to clients.
//
// Intents arrive from an external classifier as strings, possibly using
// legacy names; ParseIntent normalizes them. States are advisory context
// carried across turns, and UISignal values drive auxiliary client surfaces
// such as confirmation sheets.
package flow
