package interview

import "github.com/abhisek/careerprep/internal/assessment"

// startedMsg is sent when question generation returns.
type startedMsg struct {
	Err error
}

// finishedMsg is sent when the attempt has been saved, or saving failed.
type finishedMsg struct {
	Record *assessment.Record
	Err    error
}
