package deferred

import (
	"context"

	"github.com/google/uuid"
	"github.com/looplab/fsm"
	"github.com/xpanvictor/rxconversations/pkg/Logger"
)

type State string

const (
	Pending   State = "pending"
	Resolved  State = "resolved"
	Failed    State = "failed"
	Cancelled State = "cancelled"
)

type transition string

const (
	resolve transition = "resolve"
	fail    transition = "fail"
	cancel  transition = "cancel"
)

// settlement tracks one subscription's operation:
//
//	pending -> resolved | failed | cancelled
//
// Every transition starts from pending, so whichever of settle and
// unsubscribe reaches the machine first wins and the other is rejected.
type settlement struct {
	id       uuid.UUID
	op       string
	machine  *fsm.FSM
	log      *Logger.Logger
	onSettle func(op string, s State)
}

func newSettlement(op string, log *Logger.Logger, onSettle func(string, State)) *settlement {
	id := uuid.New()
	from := []string{string(Pending)}
	return &settlement{
		id: id,
		op: op,
		machine: fsm.NewFSM(
			string(Pending),
			fsm.Events{
				{Name: string(resolve), Src: from, Dst: string(Resolved)},
				{Name: string(fail), Src: from, Dst: string(Failed)},
				{Name: string(cancel), Src: from, Dst: string(Cancelled)},
			},
			fsm.Callbacks{},
		),
		log:      log.With("op", op, "subscription", id.String()),
		onSettle: onSettle,
	}
}

// to attempts t and reports whether this call performed the transition.
func (s *settlement) to(t transition) bool {
	if err := s.machine.Event(context.Background(), string(t)); err != nil {
		s.log.Debugw("transition rejected", "transition", t, "state", s.machine.Current())
		return false
	}
	state := State(s.machine.Current())
	s.log.Debugw("deferred settled", "state", state)
	if s.onSettle != nil {
		s.onSettle(s.op, state)
	}
	return true
}

func (s *settlement) State() State {
	return State(s.machine.Current())
}
