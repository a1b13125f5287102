package commands

import (
	"errors"
	"strings"
	"time"

	"maitred/internal/core/domain/model/draft"
	"maitred/internal/core/domain/model/flow"
	"maitred/internal/core/ports"
	"maitred/internal/pkg/guard"
)

var (
	ErrProcessTurnCommandIsNotConstructed = errors.New(
		"ProcessTurnCommand must be created via NewProcessTurnCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("sessionID is required")
	ErrUtteranceIsRequired = errors.New("utterance or audio is required")
)

// ProcessTurnParams carries one conversation turn: the utterance (or the
// audio to transcribe into one) plus the session state the client holds.
type ProcessTurnParams struct {
	SessionID string

	Utterance   string
	Audio       []byte
	AudioFormat string

	State flow.State
	Items []*draft.Item

	SelectedAddress string
	KnownAddresses  []string
	Occasion        string
	DeliveryAt      *time.Time
	Memo            string

	History []ports.HistoryEntry

	// Now anchors relative date parsing; the zero value means time.Now.
	Now time.Time
}

// ProcessTurnCommand represents a request to run one turn of the ordering
// conversation: classify the utterance, dispatch it to the intent handlers
// and return the assistant's reply with the updated draft.
type ProcessTurnCommand struct { //nolint:recvcheck //using for validation
	params ProcessTurnParams

	guard guard.ConstructorGuard
}

// NewProcessTurnCommand creates a turn command. The session id and either
// an utterance or an audio payload are required.
func NewProcessTurnCommand(params ProcessTurnParams) (ProcessTurnCommand, error) {
	cmd := ProcessTurnCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(params.SessionID),
		cmd.setInput(params.Utterance, params.Audio),
	); err != nil {
		return ProcessTurnCommand{}, err
	}

	if params.Now.IsZero() {
		params.Now = time.Now()
	}
	cmd.params = params
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessTurnCommand) Validate() error {
	return c.guard.Validate(ErrProcessTurnCommandIsNotConstructed)
}

// Params returns the turn payload.
func (c ProcessTurnCommand) Params() ProcessTurnParams {
	return c.params
}

func (c *ProcessTurnCommand) setSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrSessionIDIsRequired
	}
	return nil
}

func (c *ProcessTurnCommand) setInput(utterance string, audio []byte) error {
	if strings.TrimSpace(utterance) == "" && len(audio) == 0 {
		return ErrUtteranceIsRequired
	}
	return nil
}
