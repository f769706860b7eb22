package home

import (
	"context"
	"errors"

	"github.com/abhisek/careerprep/internal/assessment"
	"github.com/abhisek/careerprep/internal/profile"
	"github.com/abhisek/careerprep/internal/questions"
)

type nopGenerator struct{}

func (nopGenerator) Generate(context.Context, profile.Profile) (questions.Set, error) {
	return nil, errors.New("not used")
}

type nopSubmitter struct{}

func (nopSubmitter) Submit(context.Context, assessment.Draft) (*assessment.Record, error) {
	return nil, errors.New("not used")
}
