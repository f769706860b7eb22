package questions

// SampleSet returns a fixed, industry-neutral question set. It backs the
// offline "mock" provider so the app can be tried without an API key.
func SampleSet() Set {
	return Set{
		{
			Prompt:        "An interviewer asks about a project that failed. What makes the strongest answer?",
			Options:       []string{"Blame unclear requirements", "Describe what you learned and changed afterwards", "Say none of your projects have failed", "Focus on how others caused the delay"},
			CorrectAnswer: "Describe what you learned and changed afterwards",
			Explanation:   "Interviewers look for ownership and growth. A concrete lesson and the change it led to shows both.",
		},
		{
			Prompt:        "Which structure is most commonly recommended for behavioral answers?",
			Options:       []string{"SWOT", "STAR", "MoSCoW", "RACI"},
			CorrectAnswer: "STAR",
			Explanation:   "STAR (Situation, Task, Action, Result) keeps stories focused and ends on a measurable outcome.",
		},
		{
			Prompt:        "A stakeholder requests a feature two days before a deadline. What is the best first step?",
			Options:       []string{"Accept it and work overtime", "Refuse without discussion", "Clarify its priority and trade-offs against the current scope", "Add it silently after release"},
			CorrectAnswer: "Clarify its priority and trade-offs against the current scope",
			Explanation:   "Late requests should be weighed against committed work so the stakeholder can make an informed choice.",
		},
		{
			Prompt:        "What does a key performance indicator (KPI) measure?",
			Options:       []string{"Progress toward a defined objective", "An employee's salary band", "The number of meetings held", "Total hours logged"},
			CorrectAnswer: "Progress toward a defined objective",
			Explanation:   "A KPI is tied to a goal and tracks whether the team is moving toward it.",
		},
		{
			Prompt:        "When asked for your biggest weakness, which answer works best?",
			Options:       []string{"I am a perfectionist", "I have no weaknesses", "A real weakness plus the steps you are taking to improve it", "A weakness unrelated to work"},
			CorrectAnswer: "A real weakness plus the steps you are taking to improve it",
			Explanation:   "Honest self-assessment paired with a plan shows self-awareness without raising red flags.",
		},
	}
}
