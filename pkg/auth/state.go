package auth

// State is the controller's sign-in state.
type State int

const (
	SignedOut State = iota
	Authenticating
	SignedIn
)

func (s State) String() string {
	switch s {
	case SignedOut:
		return "signed_out"
	case Authenticating:
		return "authenticating"
	case SignedIn:
		return "signed_in"
	default:
		return "unknown"
	}
}
