package remote

// Outcome names which path a submission took, so callers and tests can
// distinguish a remote write from a local-only fallback instead of inferring
// it from side effects.
type Outcome int

const (
	// SubmittedRemotely means the endpoint accepted the POST.
	SubmittedRemotely Outcome = iota
	// SubmittedLocallyOnly means no endpoint or identity was configured and
	// the submission was recorded locally.
	SubmittedLocallyOnly
	// Failed means a configured submission attempt errored.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case SubmittedRemotely:
		return "submitted remotely"
	case SubmittedLocallyOnly:
		return "submitted locally only"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result pairs the outcome with its cause and the submitted day count.
type Result struct {
	Outcome  Outcome
	Reason   error
	DayCount int
}
