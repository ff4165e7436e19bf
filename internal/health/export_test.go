package health

import "time"

// SetClock replaces the handler's time source.
func (h *Handler) SetClock(started time.Time, now func() time.Time) {
	h.started = started
	h.now = now
}
