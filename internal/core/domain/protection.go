package domain

// ProtectionRequest carries everything one run needs to produce an
// encrypted copy of a document. It is created once per run, consumed by
// the protection pipeline, and never persisted.
type ProtectionRequest struct {
	// InputPath is the PDF to protect.
	InputPath string

	// OutputPath is where the encrypted copy is written.
	OutputPath string

	// Password is the resolved, policy-validated password.
	Password Password
}

// DocumentInfo describes a successfully parsed input document.
type DocumentInfo struct {
	// PageCount is the number of pages in the document.
	PageCount int
}

// RunState tracks the protection pipeline's progress through one run.
type RunState string

// Pipeline states. A run moves awaiting_password -> password_resolved ->
// encrypting -> done; failed is terminal and reachable from any step.
const (
	RunStateAwaitingPassword RunState = "awaiting_password"
	RunStatePasswordResolved RunState = "password_resolved"
	RunStateEncrypting       RunState = "encrypting"
	RunStateDone             RunState = "done"
	RunStateFailed           RunState = "failed"
)

// IsValid returns true if the state is recognised.
func (s RunState) IsValid() bool {
	switch s {
	case RunStateAwaitingPassword, RunStatePasswordResolved,
		RunStateEncrypting, RunStateDone, RunStateFailed:
		return true
	default:
		return false
	}
}

// Terminal returns true if no further transitions are possible.
func (s RunState) Terminal() bool {
	return s == RunStateDone || s == RunStateFailed
}

// String returns the string representation.
func (s RunState) String() string {
	return string(s)
}
