package integrator

import "strings"

// StepStatus describes the outcome of a single integration step.
type StepStatus string

const (
	// StatusAdded means the step changed the project.
	StatusAdded StepStatus = "added"
	// StatusPresent means the integration point was already in place.
	StatusPresent StepStatus = "present"
	// StatusMissing means a verification found the integration point absent.
	StatusMissing StepStatus = "missing"
	// StatusSkipped means the step could not apply (e.g. no Application
	// class exists) and was reported rather than attempted.
	StatusSkipped StepStatus = "skipped"
	// StatusFailed means the step was attempted and failed.
	StatusFailed StepStatus = "failed"
)

// Step names, one per integration point.
const (
	StepMavenRepository = "maven_repository"
	StepSDKDependency   = "sdk_dependency"
	StepInitCode        = "init_code"
)

// Step is the reported outcome of one integration step.
type Step struct {
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	File   string     `json:"file,omitempty"`
	Detail string     `json:"detail"`
}

// Report is the result of an integration run or verification.
type Report struct {
	RunID  string `json:"runId"`
	DryRun bool   `json:"dryRun,omitempty"`
	Steps  []Step `json:"steps"`
}

// Summary joins the step details into a single line, in step order.
func (r *Report) Summary() string {
	details := make([]string, 0, len(r.Steps))
	for _, s := range r.Steps {
		if s.Detail != "" {
			details = append(details, s.Detail)
		}
	}
	return strings.Join(details, "; ")
}

// Integrated reports whether every integration point is in place.
func (r *Report) Integrated() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, s := range r.Steps {
		if s.Status != StatusAdded && s.Status != StatusPresent {
			return false
		}
	}
	return true
}

// Step returns the step with the given name, or nil.
func (r *Report) Step(name string) *Step {
	for i := range r.Steps {
		if r.Steps[i].Name == name {
			return &r.Steps[i]
		}
	}
	return nil
}
