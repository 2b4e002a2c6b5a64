package session

// User-facing messages. Validation failures get an instructional message;
// every transport or response failure collapses to one generic message.
const (
	ValidationMessage   = "Please add your name and how you're feeling."
	GenericErrorMessage = "We hit a small snag. Please try again in a moment, or adjust your input."
)

// Phase enumerates the mutually exclusive result states.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseSuccess Phase = "success"
)

// RequestState is an immutable snapshot of the result section. It is replaced
// wholesale on every transition, never patched, so each replacement is
// observable as a whole.
type RequestState struct {
	Phase       Phase
	Message     string // set only when Phase is PhaseError
	Affirmation string // set only when Phase is PhaseSuccess
}

// Idle is the initial state.
func Idle() RequestState {
	return RequestState{Phase: PhaseIdle}
}

// Loading clears any prior payload.
func Loading() RequestState {
	return RequestState{Phase: PhaseLoading}
}

// Failed carries the user-facing error message.
func Failed(message string) RequestState {
	return RequestState{Phase: PhaseError, Message: message}
}

// Succeeded carries the generated affirmation text.
func Succeeded(text string) RequestState {
	return RequestState{Phase: PhaseSuccess, Affirmation: text}
}
