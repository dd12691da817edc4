package domain

// Result is the complete outcome of one simulation run.
//
// When Err is nil the whole input was consumed and Accepted reflects
// membership of the final state in the accept set. When Err is set the
// walk stopped at Err.Position, Trace holds the partial path up to that
// point, and Accepted is always false. A trap state never produces an
// error: it is an ordinary state that happens to reject.
type Result struct {
	Trace    Trace            `json:"trace"`
	Accepted bool             `json:"accepted"`
	Err      *SimulationError `json:"error,omitempty"`
}
