package errs

import "errors"

// Error categories. Every user-facing Reason belongs to exactly one of them.
var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
)

// Reason is a sentinel error carrying a machine-readable code and a message safe to show to clients.
// errors.Is matches both the Reason itself and its category.
type Reason struct {
	kind    error
	code    string
	message string
}

func NewReason(kind error, code, message string) *Reason {
	return &Reason{kind: kind, code: code, message: message}
}

func (r *Reason) Error() string {
	return r.code + ": " + r.message
}

func (r *Reason) Is(target error) bool {
	return target == r.kind
}

func (r *Reason) Kind() error     { return r.kind }
func (r *Reason) Code() string    { return r.code }
func (r *Reason) Message() string { return r.message }

// ReasonOf returns the first Reason found in err's chain.
func ReasonOf(err error) (*Reason, bool) {
	var r *Reason
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}
