package quiz

// Phase is the lifecycle stage of a quiz attempt.
type Phase int

const (
	PhaseIdle       Phase = iota // No attempt; Start is allowed
	PhaseGenerating              // Waiting on the question generator
	PhaseInProgress              // Answering questions
	PhaseCompleted               // All questions answered and scored
	PhaseSaving                  // Waiting on storage
	PhaseFinished                // Record saved
)

var phaseNames = [...]string{
	PhaseIdle:       "idle",
	PhaseGenerating: "generating",
	PhaseInProgress: "in_progress",
	PhaseCompleted:  "completed",
	PhaseSaving:     "saving",
	PhaseFinished:   "finished",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}
