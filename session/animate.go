// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"fmt"
	"time"
)

// Delay converts a 1..100 speed setting into the pause between steps:
// 100 is 1ms, 1 is 100ms.
func Delay(speed int) time.Duration {
	return time.Duration(101-speed) * time.Millisecond
}

// Animate ticks the running search every Delay(speed) until it finishes or
// ctx is done, calling onTick (if non-nil) after each step. On cancellation
// the search is left running; call Abort or Animate again.
func (s *Session) Animate(ctx context.Context, speed int, onTick func(Snapshot)) (Snapshot, error) {
	if speed < 1 || speed > 100 {
		return s.Snapshot(), fmt.Errorf("%w: got %d", ErrInvalidSpeed, speed)
	}

	ticker := time.NewTicker(Delay(speed))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return s.Snapshot(), ctx.Err()
		case <-ticker.C:
		}

		snap, err := s.Tick()
		if err != nil {
			return snap, err
		}
		if onTick != nil {
			onTick(snap)
		}
		if !snap.Solving {
			return snap, nil
		}
	}
}

// Finish ticks the running search to completion without delay, checking
// ctx between steps.
func (s *Session) Finish(ctx context.Context) (Snapshot, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.Snapshot(), err
		}
		snap, err := s.Tick()
		if err != nil || !snap.Solving {
			return snap, err
		}
	}
}
