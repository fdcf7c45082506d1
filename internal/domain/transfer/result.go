package transfer

// Result collects field-keyed validation messages. Errors block
// submission; warnings are advisory. A field carries at most one message
// of each severity.
type Result struct {
	Errors   map[string]string
	Warnings map[string]string
}

func NewResult() Result {
	return Result{
		Errors:   make(map[string]string),
		Warnings: make(map[string]string),
	}
}

func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

func (r Result) AddError(field, message string) {
	r.Errors[field] = message
}

func (r Result) AddWarning(field, message string) {
	r.Warnings[field] = message
}

// Merge folds another result into this one. On key collision the other
// result wins, matching how the booking form overlays later checks.
func (r Result) Merge(other Result) {
	for field, msg := range other.Errors {
		r.Errors[field] = msg
	}
	for field, msg := range other.Warnings {
		r.Warnings[field] = msg
	}
}
