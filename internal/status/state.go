// Package status defines the delivery status lifecycle of a message:
// sent, then delivered once the recipient's client observed it, then read.
package status

import (
	"errors"
	"fmt"
)

// State is the delivery status of a message.
type State string

const (
	Sent      State = "sent"
	Delivered State = "delivered"
	Read      State = "read"
)

// ErrInvalidTransition is returned when a status change would move a message
// backwards.
var ErrInvalidTransition = errors.New("invalid delivery status transition")

// validTransitions defines the single forward step out of each state.
var validTransitions = map[State][]State{
	Sent:      {Delivered},
	Delivered: {Read},
	Read:      {},
}

var rank = map[State]int{Sent: 0, Delivered: 1, Read: 2}

// Parse converts a stored or wire value into a State.
func Parse(s string) (State, error) {
	st := State(s)
	if _, ok := rank[st]; !ok {
		return "", fmt.Errorf("unknown delivery status %q", s)
	}
	return st, nil
}

// AtLeast reports whether s is at or past other in the lifecycle.
func (s State) AtLeast(other State) bool {
	return rank[s] >= rank[other]
}

// Steps returns the states a message passes through moving from -> to, in
// order and excluding from. Moving to the current state yields no steps.
// A forward jump such as sent -> read is expanded to [delivered, read].
func Steps(from, to State) ([]State, error) {
	if _, ok := rank[from]; !ok {
		return nil, fmt.Errorf("unknown delivery status %q", from)
	}
	if _, ok := rank[to]; !ok {
		return nil, fmt.Errorf("unknown delivery status %q", to)
	}
	if rank[to] < rank[from] {
		return nil, fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, from, to)
	}

	var steps []State
	for cur := from; cur != to; {
		next := validTransitions[cur]
		if len(next) == 0 {
			return nil, fmt.Errorf("%w: from %s to %s", ErrInvalidTransition, from, to)
		}
		cur = next[0]
		steps = append(steps, cur)
	}
	return steps, nil
}

// Change is the payload of a delivery status event.
type Change struct {
	MessageID      string `json:"messageId"`
	ConversationID string `json:"conversationId"`
	From           State  `json:"from"`
	To             State  `json:"to"`
}
