package guardrail

// #region input-result

// InputResult is the outcome of validating a raw user question.
type InputResult struct {
	IsValid    bool
	Sanitized  string
	Confidence float64
	Topic      string
	Warnings   []string
}

// #endregion input-result

// #region output-result

// OutputResult is the outcome of validating a generated answer.
type OutputResult struct {
	IsValid          bool
	Sanitized        string
	Confidence       float64
	EducationalValue float64
	Warnings         []string
}

// #endregion output-result
