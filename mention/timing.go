package mention

import "time"

// Timing holds the popup debounce and grace windows.
type Timing struct {
	// FetchDebounce delays the candidate query after the last key change.
	FetchDebounce time.Duration
	// PlaceDebounce delays the overlay offset computation.
	PlaceDebounce time.Duration
	// CloseGrace is how long a closed popup keeps its offset, so that an
	// immediate reopen does not flash.
	CloseGrace time.Duration
	// SelectCloseDelay is how long the popup stays up after a selection.
	SelectCloseDelay time.Duration
}

// DefaultTiming returns the stock windows.
func DefaultTiming() Timing {
	return Timing{
		FetchDebounce:    300 * time.Millisecond,
		PlaceDebounce:    600 * time.Millisecond,
		CloseGrace:       400 * time.Millisecond,
		SelectCloseDelay: 100 * time.Millisecond,
	}
}

// Normalize fills zero fields with defaults. Negative values mean "no delay".
func (t Timing) Normalize() Timing {
	def := DefaultTiming()
	t.FetchDebounce = normalizeDuration(t.FetchDebounce, def.FetchDebounce)
	t.PlaceDebounce = normalizeDuration(t.PlaceDebounce, def.PlaceDebounce)
	t.CloseGrace = normalizeDuration(t.CloseGrace, def.CloseGrace)
	t.SelectCloseDelay = normalizeDuration(t.SelectCloseDelay, def.SelectCloseDelay)
	return t
}

func normalizeDuration(d, def time.Duration) time.Duration {
	switch {
	case d == 0:
		return def
	case d < 0:
		return 0
	}
	return d
}
