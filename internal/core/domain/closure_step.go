package domain

import "time"

// ClosureStepStatus is the state of a checklist step.
type ClosureStepStatus string

const (
	StepPending   ClosureStepStatus = "pending"
	StepCompleted ClosureStepStatus = "completed"
)

// ClosureStep is a procedural prerequisite of closing, e.g. a physical inventory count.
type ClosureStep struct {
	ID           int64             `json:"id"`
	FiscalYearID int64             `json:"financialYearID"`
	StepName     string            `json:"stepName"`
	Status       ClosureStepStatus `json:"status"`
	ExecutedAt   *time.Time        `json:"executedAt"`
}

// StepCompletion is the result of ticking one checklist step.
type StepCompletion struct {
	Step         ClosureStep `json:"step"`
	AuditWarning string      `json:"audit_warning,omitempty"`
}
