package questions

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/abhisek/careerprep/internal/profile"
)

const systemPrompt = `You are an experienced technical interviewer preparing a mock interview.

Rules:
- Write multiple-choice questions that test knowledge a working professional in the given industry is expected to have.
- Every question has exactly 4 options. Exactly one option is correct.
- The correctAnswer field must repeat the correct option's text exactly, character for character.
- Options must be distinct. Distractors should be plausible mistakes, not jokes.
- Explanations are short and factual.
- Do not repeat a question within the set.`

var userTemplate = template.Must(template.New("question-set").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(`Generate {{.Count}} technical interview questions.

Industry: {{.Industry}}
{{- if .Skills}}
Focus skills: {{join .Skills ", "}}
{{- end}}
{{- if gt .Experience 0}}
Years of experience: {{.Experience}}
{{- end}}
`))

type promptData struct {
	Count      int
	Industry   string
	Skills     []string
	Experience int
}

// buildUserMessage renders the per-request prompt for a profile.
func buildUserMessage(p profile.Profile, count int) (string, error) {
	var buf bytes.Buffer
	err := userTemplate.Execute(&buf, promptData{
		Count:      count,
		Industry:   p.DisplayIndustry(),
		Skills:     p.Skills,
		Experience: p.Experience,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
