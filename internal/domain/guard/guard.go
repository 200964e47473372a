// Package guard decides what a request to a page section gets, given the
// state of the auth session.
package guard

type Section int

const (
	// SectionApp holds the pages that require a signed-in user.
	SectionApp Section = iota
	// SectionAuth holds sign in and sign up.
	SectionAuth
	// SectionIndex is the root path, which only redirects.
	SectionIndex
)

type Action int

const (
	ActionRender Action = iota
	ActionPlaceholder
	ActionRedirect
)

const (
	SignInPath = "/sign-in"
	HomePath   = "/residents"
)

// State is the session as seen by the guard. Loading is true until the auth
// provider finished initializing or its init timeout elapsed.
type State struct {
	Loading       bool
	Authenticated bool
}

type Decision struct {
	Action   Action
	Location string
}

func render() Decision { return Decision{Action: ActionRender} }

func placeholder() Decision { return Decision{Action: ActionPlaceholder} }

func redirect(to string) Decision { return Decision{Action: ActionRedirect, Location: to} }

// Decide never redirects while the session is still loading.
func Decide(s State, section Section) Decision {
	if s.Loading {
		return placeholder()
	}
	switch section {
	case SectionApp:
		if !s.Authenticated {
			return redirect(SignInPath)
		}
		return render()
	case SectionAuth:
		if s.Authenticated {
			return redirect(HomePath)
		}
		return render()
	case SectionIndex:
		if s.Authenticated {
			return redirect(HomePath)
		}
		return redirect(SignInPath)
	default:
		return render()
	}
}
