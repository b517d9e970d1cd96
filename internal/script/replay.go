package script

import (
	"fmt"

	"github.com/frudas24/rotabox/internal/control"
)

// Handler applies control messages. *control.Dispatcher satisfies it.
type Handler interface {
	Handle(control.Message) error
}

// Replay feeds msgs to h in order and stops at the first failure.
func Replay(h Handler, msgs []control.Message) error {
	for i, msg := range msgs {
		if err := h.Handle(msg); err != nil {
			return fmt.Errorf("message %d (%s): %w", i+1, msg.T, err)
		}
	}
	return nil
}
