// Package schema defines the HCL-facing structures of the build manifest.
// These structs mirror the manifest's block layout exactly; attribute values
// stay unevaluated hcl.Expression fields here, and the hcl package evaluates
// them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Toolchain represents the `toolchain` block: the identity of the Java
// toolchain and the two attributes that make one-version checking possible.
// Both attributes are optional; a toolchain without them is a supported
// degraded state that the analysis phase diagnoses per target.
type Toolchain struct {
	Label               string         `hcl:"label,label"`
	OneVersionTool      hcl.Expression `hcl:"one_version_tool,optional"`
	OneVersionAllowlist hcl.Expression `hcl:"one_version_allowlist,optional"`
}

// Settings represents the top-level `one_version` block holding the default
// enforcement policy for all targets.
type Settings struct {
	Enforcement hcl.Expression `hcl:"enforcement"`
}

// Jar represents a `jar` block within a target: one member of the target's
// transitive jar closure, with the label of the target that produces it.
type Jar struct {
	Path  string         `hcl:"path,label"`
	Owner hcl.Expression `hcl:"owner"`
}

// Target represents a `target` block: one build target whose jar closure is
// to be checked.
type Target struct {
	Label       string         `hcl:"label,label"`
	Output      hcl.Expression `hcl:"output,optional"`
	Enforcement hcl.Expression `hcl:"enforcement,optional"`
	Jars        []*Jar         `hcl:"jar,block"`
}

// Manifest represents the top-level structure of a build manifest file.
type Manifest struct {
	Toolchain *Toolchain `hcl:"toolchain,block"`
	Settings  *Settings  `hcl:"one_version,block"`
	Targets   []*Target  `hcl:"target,block"`
	Body      hcl.Body   `hcl:",remain"`
}
