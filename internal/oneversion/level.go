package oneversion

import "fmt"

// EnforcementLevel is the policy for how a detected one-version violation
// affects the build outcome.
type EnforcementLevel int

const (
	// EnforcementOff disables checking entirely. No check action may be
	// constructed under this policy; it exists so that configuration can
	// express "do not check" and callers can skip construction.
	EnforcementOff EnforcementLevel = iota
	// EnforcementWarning runs the checker but tells it to exit successfully
	// even when violations are found.
	EnforcementWarning
	// EnforcementError runs the checker and fails the action on violations.
	EnforcementError
)

// ParseEnforcementLevel converts a manifest string into a level.
func ParseEnforcementLevel(s string) (EnforcementLevel, error) {
	switch s {
	case "off":
		return EnforcementOff, nil
	case "warning":
		return EnforcementWarning, nil
	case "error":
		return EnforcementError, nil
	default:
		return EnforcementOff, fmt.Errorf("invalid enforcement level %q: must be 'off', 'warning', or 'error'", s)
	}
}

// String returns the manifest spelling of the level.
func (l EnforcementLevel) String() string {
	switch l {
	case EnforcementOff:
		return "off"
	case EnforcementWarning:
		return "warning"
	case EnforcementError:
		return "error"
	default:
		return fmt.Sprintf("EnforcementLevel(%d)", int(l))
	}
}
