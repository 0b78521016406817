package resolver

// Violation pairs a constraint id with its current violation
// magnitude.
type Violation struct {
	ConstraintID string  `json:"constraint_id"`
	Amount       float64 `json:"amount"`
}

// Result records the outcome of one resolution run. Every run is
// appended to the session history for audit.
type Result struct {
	Success            bool        `json:"success"`
	Iterations         int         `json:"iterations"`
	FinalViolations    []Violation `json:"final_violations"`
	ConflictsResolved  int         `json:"conflicts_resolved"`
	ConflictsRemaining int         `json:"conflicts_remaining"`
	OptimizationScore  float64     `json:"optimization_score"`
	ExecutionTime      float64     `json:"execution_time"` // seconds
}

// totalViolation sums violation magnitudes into a scalar score.
func totalViolation(violations []Violation) float64 {
	total := 0.0
	for _, v := range violations {
		total += v.Amount
	}
	return total
}
