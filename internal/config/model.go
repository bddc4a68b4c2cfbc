package config

import (
	"github.com/vk/onecheck/internal/label"
	"github.com/vk/onecheck/internal/oneversion"
)

// Model is the unified, format-agnostic representation of the build
// manifest: the toolchain, the default enforcement policy, and every target
// whose jar closure is to be checked.
type Model struct {
	Toolchain   *Toolchain
	Enforcement oneversion.EnforcementLevel
	Targets     []*Target
}

// Toolchain is the format-agnostic toolchain declaration. Empty paths mean
// the toolchain does not configure the corresponding artifact.
type Toolchain struct {
	Label         string
	ToolPath      string
	AllowlistPath string
}

// Jar is one member of a target's transitive jar closure, paired with the
// identity of the target that produces it.
type Jar struct {
	Path  string
	Owner label.Label
}

// Target is the format-agnostic representation of a `target` block. Jars
// preserve manifest order. Enforcement is the target's effective level after
// applying the manifest default.
type Target struct {
	Label       label.Label
	Output      string
	Enforcement oneversion.EnforcementLevel
	Jars        []*Jar
}
