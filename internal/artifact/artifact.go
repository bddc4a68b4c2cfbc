// Package artifact models build-graph artifact handles: unique references to
// files that an action will produce or consume, identified by their
// execution-root-relative path.
package artifact

import "github.com/vk/onecheck/internal/label"

// Artifact is a handle to a (possibly not yet produced) file in the build
// graph. Two handles refer to the same file iff their exec paths are equal.
type Artifact struct {
	// ExecPath is the execution-root-relative path of the file.
	ExecPath string
}

// New returns a handle for the given execution-root-relative path.
func New(execPath string) *Artifact {
	return &Artifact{ExecPath: execPath}
}

// Resolver is the ownership back-reference from an artifact to the target
// that produces it. It is a lookup capability supplied by the build-graph
// model, never a pointer embedded in the artifact itself.
type Resolver interface {
	// Owner returns the identity of the target that produces the artifact.
	// The second return is false when no owner is known.
	Owner(a *Artifact) (label.Label, bool)
}
