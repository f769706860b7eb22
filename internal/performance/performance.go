// Package performance turns a user's assessment history into summary
// statistics and a chronological trend series. Nothing here is persisted;
// every call recomputes from the records it is given.
package performance

import (
	"math"
	"slices"
	"time"

	"github.com/abhisek/careerprep/internal/assessment"
)

// LabelLayout formats series points as short dates, e.g. "Jan 02".
const LabelLayout = "Jan 02"

// Point is one entry of the trend series.
type Point struct {
	Date  time.Time
	Label string
	Score float64
}

// Summary aggregates a set of assessment records.
type Summary struct {
	// AverageScore is the mean QuizScore rounded to one decimal, 0 when empty.
	AverageScore float64

	// TotalQuestions is the number of questions across all records.
	TotalQuestions int

	// LatestScore is the QuizScore of the most recent record. HasLatest is
	// false and LatestScore is 0 when there are no records.
	LatestScore float64
	HasLatest   bool

	// Series is ordered by CreatedAt ascending.
	Series []Point
}

// Count returns the number of assessments summarized.
func (s Summary) Count() int { return len(s.Series) }

// Summarize computes a Summary. records is not modified.
func Summarize(records []assessment.Record) Summary {
	if len(records) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b assessment.Record) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	var sum float64
	var total int
	series := make([]Point, len(sorted))
	for i, r := range sorted {
		sum += r.QuizScore
		total += len(r.Questions)
		series[i] = Point{
			Date:  r.CreatedAt,
			Label: r.CreatedAt.Format(LabelLayout),
			Score: r.QuizScore,
		}
	}

	return Summary{
		AverageScore:   round1(sum / float64(len(sorted))),
		TotalQuestions: total,
		LatestScore:    sorted[len(sorted)-1].QuizScore,
		HasLatest:      true,
		Series:         series,
	}
}

// Scores returns the series scores in order.
func (s Summary) Scores() []float64 {
	out := make([]float64, len(s.Series))
	for i, p := range s.Series {
		out[i] = p.Score
	}
	return out
}

// Best returns the highest score in the series, or 0 when empty.
func (s Summary) Best() float64 {
	best := 0.0
	for _, p := range s.Series {
		best = math.Max(best, p.Score)
	}
	return best
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
