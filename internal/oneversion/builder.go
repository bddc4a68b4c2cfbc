// Package oneversion constructs the build-graph action that invokes the
// one-version checker: a tool that inspects a closure of compiled jars and
// reports when more than one version of the same class is reachable from a
// target.
package oneversion

import (
	"fmt"

	"github.com/vk/onecheck/internal/analysis"
	"github.com/vk/onecheck/internal/artifact"
	"github.com/vk/onecheck/internal/toolchain"
)

// Mnemonic is the category tag attached to every registered check action.
const Mnemonic = "JavaOneVersion"

// Builder accumulates the configuration for one check action and, on Build,
// registers it with the build graph. Setters may be called in any order and
// re-called (last write wins); Build is terminal and the builder is
// single-use — the behavior of a second Build call is unspecified.
//
// Missing required configuration is a contract violation by the caller, not
// a user-facing condition, and panics.
type Builder struct {
	level     EnforcementLevel
	levelSet  bool
	output    *artifact.Artifact
	toolchain toolchain.Provider
	jars      []*artifact.Artifact
	jarsSet   bool
}

// NewBuilder creates an empty check-action builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// UseToolchain sets the toolchain that supplies the checker binary and
// allowlist.
func (b *Builder) UseToolchain(tc toolchain.Provider) *Builder {
	b.toolchain = tc
	return b
}

// CheckJars sets the ordered transitive closure of jars to check. The slice
// is used as given: order preserved, duplicates not removed.
func (b *Builder) CheckJars(jars []*artifact.Artifact) *Builder {
	b.jars = jars
	b.jarsSet = true
	return b
}

// OutputArtifact sets the artifact the check action produces.
func (b *Builder) OutputArtifact(output *artifact.Artifact) *Builder {
	b.output = output
	return b
}

// WithEnforcementLevel sets the enforcement policy. Check actions must never
// be constructed when enforcement is off, so passing EnforcementOff panics
// before any builder state is touched.
func (b *Builder) WithEnforcementLevel(level EnforcementLevel) *Builder {
	if level == EnforcementOff {
		panic("oneversion: check actions must not be built when enforcement is off")
	}
	b.level = level
	b.levelSet = true
	return b
}

// Build validates the accumulated configuration, asks the toolchain for its
// checker capability, and registers exactly one check action with the build
// graph. It returns the requested output artifact.
//
// When the toolchain lacks the checker binary or the allowlist, no action is
// registered: a single recoverable diagnostic is recorded on rctx naming the
// toolchain and the two attributes to configure, and the output artifact is
// returned unbacked. Surfacing the resulting downstream failure belongs to
// whatever later consumes that artifact.
func (b *Builder) Build(rctx *analysis.Context) *artifact.Artifact {
	if !b.levelSet {
		panic("oneversion: enforcement level not set")
	}
	if b.output == nil {
		panic("oneversion: output artifact not set")
	}
	if b.toolchain == nil {
		panic("oneversion: toolchain not set")
	}
	if !b.jarsSet {
		panic("oneversion: jars to check not set")
	}

	tool := b.toolchain.CheckerExecutable()
	allowlist := b.toolchain.Allowlist()
	if tool == nil || allowlist == nil {
		rctx.RuleError(fmt.Sprintf(
			"one-version enforcement was requested but it is not supported by the current "+
				"toolchain %q; see the toolchain's one_version_tool and one_version_allowlist "+
				"attributes",
			b.toolchain.Label()))
		return b.output
	}

	args, err := Args(b.output, allowlist, b.level, b.jars, rctx.Owners())
	if err != nil {
		// An unresolvable jar owner is a defect in the build-graph model
		// handed to us, never user configuration.
		panic(fmt.Sprintf("oneversion: target %s: %v", rctx.Label(), err))
	}

	inputs := make([]*artifact.Artifact, 0, len(b.jars)+1)
	inputs = append(inputs, allowlist)
	inputs = append(inputs, b.jars...)

	rctx.RegisterAction(&analysis.Action{
		Mnemonic:        Mnemonic,
		ProgressMessage: fmt.Sprintf("Checking for one-version violations in %s", rctx.Label()),
		Executable:      tool,
		Args:            args,
		Inputs:          inputs,
		Outputs:         []*artifact.Artifact{b.output},
		ParamsFile:      analysis.ParamsFileShellQuoted,
	})
	return b.output
}
