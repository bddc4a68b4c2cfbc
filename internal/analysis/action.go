// Package analysis provides the build-graph context that rule
// implementations construct actions against: an action model, an in-memory
// action graph, and a per-target rule context carrying the diagnostics sink
// and the artifact ownership model.
package analysis

import "github.com/vk/onecheck/internal/artifact"

// ParamsFilePolicy controls whether a registered action's arguments are
// delivered through an auxiliary params file instead of the process argv.
type ParamsFilePolicy int

const (
	// ParamsFileNever passes arguments on the command line directly.
	ParamsFileNever ParamsFilePolicy = iota
	// ParamsFileShellQuoted always writes a shell-quoted params file,
	// regardless of argv length. Used for actions whose input sets are
	// unbounded and must never risk exceeding an OS argv limit.
	ParamsFileShellQuoted
)

// Action describes one registered command execution in the build graph. It
// is immutable once registered.
type Action struct {
	// Mnemonic is a short fixed category tag, e.g. "JavaOneVersion".
	Mnemonic string
	// ProgressMessage is the human-facing message shown while the action
	// runs, already formatted with the requesting target's identity.
	ProgressMessage string
	// Executable is the tool binary the action invokes.
	Executable *artifact.Artifact
	// Args is the full encoded argv, excluding the executable itself.
	Args []string
	// Inputs is the action's complete declared input set, in declaration
	// order.
	Inputs []*artifact.Artifact
	// Outputs is the action's declared output set.
	Outputs []*artifact.Artifact
	// ParamsFile is the argument-delivery policy for the action.
	ParamsFile ParamsFilePolicy
}
