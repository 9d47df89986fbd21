package lint

import "fmt"

// InvalidGridError reports a grid that cannot be computed: a non-metric
// time format, pulses per beat or precision that are not powers of two,
// or a precision finer than the pulses per beat.
type InvalidGridError struct {
	PulsesPerBeat int
	Precision     int
	Reason        string
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("invalid grid (pulses per beat %v, precision %v): %v", e.PulsesPerBeat, e.Precision, e.Reason)
}

// EmptyKeyError reports an empty allowed-pitch set, which would leave
// every correction strategy with nowhere to land.
type EmptyKeyError struct{}

func (e *EmptyKeyError) Error() string {
	return "allowed-pitch set is empty"
}
