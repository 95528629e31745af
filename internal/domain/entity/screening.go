package entity

import (
	"errors"
	"fmt"
	"time"
)

// ScreeningAnalysis is the structured classification returned by the
// generative model. All five fields are required by the response schema.
type ScreeningAnalysis struct {
	Summary             string   `json:"summary"`
	ObservedPatterns    []string `json:"observedPatterns"`
	PotentialCategories []string `json:"potentialCategories"`
	Recommendations     []string `json:"recommendations"`
	Disclaimer          string   `json:"disclaimer"`
}

// Validate checks that every required field of the schema is populated
func (a *ScreeningAnalysis) Validate() error {
	if a.Summary == "" {
		return errors.New("missing summary")
	}
	if len(a.ObservedPatterns) == 0 {
		return errors.New("missing observedPatterns")
	}
	if len(a.PotentialCategories) == 0 {
		return errors.New("missing potentialCategories")
	}
	if len(a.Recommendations) == 0 {
		return errors.New("missing recommendations")
	}
	if a.Disclaimer == "" {
		return errors.New("missing disclaimer")
	}
	return nil
}

// ScreeningHistoryEntry is a session-scoped record of a successful analysis.
// It is never written to the snapshot store.
type ScreeningHistoryEntry struct {
	UserInput string             `json:"userInput"`
	Analysis  *ScreeningAnalysis `json:"analysis"`
	Timestamp time.Time          `json:"timestamp"`
}

// AnalysisErrorKind distinguishes classification failures so callers can
// react differently to transient and permanent conditions
type AnalysisErrorKind string

const (
	AnalysisTimeout         AnalysisErrorKind = "timeout"
	AnalysisInvalidResponse AnalysisErrorKind = "invalid_response"
	AnalysisDenied          AnalysisErrorKind = "denied"
)

// AnalysisError is the tagged failure returned by the screening client.
// The caller never receives a partial analysis alongside one.
type AnalysisError struct {
	Kind AnalysisErrorKind
	Err  error
}

func (e *AnalysisError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("analysis failed: %s", e.Kind)
	}
	return fmt.Sprintf("analysis failed (%s): %v", e.Kind, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}
