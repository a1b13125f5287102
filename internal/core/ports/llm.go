package ports

import (
	"context"
)

// HistoryEntry is one prior exchange of the conversation, passed to the
// classifier for context.
type HistoryEntry struct {
	Role    string
	Content string
}

// Classifier turns a raw utterance into the model's raw classification
// output. The orchestration layer owns extracting the JSON object from
// whatever prose or fencing surrounds it.
type Classifier interface {
	// Classify sends the instruction, history and utterance to the model
	// and returns its raw text reply.
	Classify(ctx context.Context, instruction string, history []HistoryEntry, utterance string) (string, error)
}

// Transcriber converts recorded speech into text.
type Transcriber interface {
	// Transcribe sends the audio payload and its container format
	// (e.g. "wav", "m4a") and returns the recognized text.
	Transcribe(ctx context.Context, audio []byte, format string) (string, error)
}
