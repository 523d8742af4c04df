package model

// WarningKind distinguishes the overall salary warning from per-category
// budget warnings.
type WarningKind string

const (
	// WarningOverall fires when monthly spend crosses the salary threshold.
	WarningOverall WarningKind = "overall"
	// WarningCategory fires when a category's spend exceeds its cap.
	WarningCategory WarningKind = "category"
)

// Warning describes one overspend condition. Rendering is the caller's job.
type Warning struct {
	Kind     WarningKind
	Category Category // set for WarningCategory only
	Spent    float64
	Limit    float64 // threshold amount for overall, cap for category
}
