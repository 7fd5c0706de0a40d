// Package validation holds the per-part validation rules for the
// application form. Every validator is a pure function: same input, same
// result, no I/O.
package validation

// Result collects per-field messages for one form part.
//
// Errors block saving the part; warnings are advisory and never block.
type Result struct {
	Errors   map[string]string `json:"errors"`
	Warnings map[string]string `json:"warnings"`
}

func newResult() Result {
	return Result{
		Errors:   map[string]string{},
		Warnings: map[string]string{},
	}
}

// Valid reports whether the part can be saved.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

func (r Result) error(field, message string) {
	r.Errors[field] = message
}

func (r Result) warn(field, message string) {
	r.Warnings[field] = message
}
