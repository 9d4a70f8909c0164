package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/Mbenve9198/bdr-tool-api/internal/models"
)

// Prospect lifecycle events.
const (
	EventContact = "contact"
	EventEngage  = "engage"
	EventQualify = "qualify"
	EventPropose = "propose"
	EventWin     = "win"
	EventLose    = "lose"
	EventReopen  = "reopen"
)

// ProspectFSM enforces the prospect status lifecycle. A prospect moves
// forward through nuovo → contattato → interessato → qualificato →
// proposta, can be lost from any live status, and a lost prospect can be
// reopened to contattato.
type ProspectFSM struct {
	fsm *fsm.FSM
}

// NewProspectFSM creates a state machine starting from the prospect's
// current status.
func NewProspectFSM(status string) *ProspectFSM {
	return &ProspectFSM{
		fsm: fsm.NewFSM(
			status,
			fsm.Events{
				{Name: EventContact, Src: []string{models.ProspectStatusNew}, Dst: models.ProspectStatusContacted},
				{Name: EventEngage, Src: []string{models.ProspectStatusContacted}, Dst: models.ProspectStatusInterested},
				{Name: EventQualify, Src: []string{models.ProspectStatusInterested}, Dst: models.ProspectStatusQualified},
				{Name: EventPropose, Src: []string{models.ProspectStatusQualified}, Dst: models.ProspectStatusProposal},
				{Name: EventWin, Src: []string{models.ProspectStatusProposal}, Dst: models.ProspectStatusWon},
				{
					Name: EventLose,
					Src: []string{
						models.ProspectStatusContacted,
						models.ProspectStatusInterested,
						models.ProspectStatusQualified,
						models.ProspectStatusProposal,
					},
					Dst: models.ProspectStatusLost,
				},
				{Name: EventReopen, Src: []string{models.ProspectStatusLost}, Dst: models.ProspectStatusContacted},
			},
			fsm.Callbacks{},
		),
	}
}

// Fire applies a lifecycle event and returns the resulting status.
func (p *ProspectFSM) Fire(ctx context.Context, event string) (string, error) {
	if err := p.fsm.Event(ctx, event); err != nil {
		return "", fmt.Errorf("prospect cannot %s from status %s: %w", event, p.fsm.Current(), err)
	}
	return p.fsm.Current(), nil
}

// Current returns the current status
func (p *ProspectFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *ProspectFSM) Can(event string) bool {
	return p.fsm.Can(event)
}

// IsTransitionError reports whether err is a rejected lifecycle
// transition, as opposed to an infrastructure failure.
func IsTransitionError(err error) bool {
	var invalidEvent fsm.InvalidEventError
	var unknownEvent fsm.UnknownEventError
	return errors.As(err, &invalidEvent) || errors.As(err, &unknownEvent)
}
