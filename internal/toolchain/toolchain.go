// Package toolchain supplies the external tooling an analysis step needs to
// construct checker actions. A toolchain may be only partially configured;
// callers must treat missing tool artifacts as a supported degraded state,
// not an error of this package.
package toolchain

import "github.com/vk/onecheck/internal/artifact"

// Provider exposes the one-version checker capability of a toolchain.
type Provider interface {
	// CheckerExecutable returns the checker binary, or nil when the
	// toolchain does not configure one.
	CheckerExecutable() *artifact.Artifact
	// Allowlist returns the version-exception allowlist file, or nil when
	// the toolchain does not configure one.
	Allowlist() *artifact.Artifact
	// Label returns the toolchain's own identity, used in diagnostics only.
	Label() string
}

// Toolchain is the manifest-backed Provider implementation.
type Toolchain struct {
	label     string
	checker   *artifact.Artifact
	allowlist *artifact.Artifact
}

// New creates a toolchain. Either artifact may be nil to model a toolchain
// that does not support one-version checking.
func New(label string, checker, allowlist *artifact.Artifact) *Toolchain {
	return &Toolchain{label: label, checker: checker, allowlist: allowlist}
}

// CheckerExecutable implements Provider.
func (t *Toolchain) CheckerExecutable() *artifact.Artifact { return t.checker }

// Allowlist implements Provider.
func (t *Toolchain) Allowlist() *artifact.Artifact { return t.allowlist }

// Label implements Provider.
func (t *Toolchain) Label() string { return t.label }
