package hcl

import (
	"context"
	"fmt"
	"path"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/onecheck/internal/config"
	"github.com/vk/onecheck/internal/label"
	"github.com/vk/onecheck/internal/oneversion"
	"github.com/vk/onecheck/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// translate converts the merged manifest into the agnostic model, evaluating
// attribute expressions and validating labels, enforcement levels, and jar
// ownership along the way.
func (l *Loader) translate(ctx context.Context, m *schema.Manifest) (*config.Model, error) {
	model := &config.Model{
		// Checking is opt-in: a manifest without a one_version block keeps
		// every target at the off level unless the target overrides it.
		Enforcement: oneversion.EnforcementOff,
	}

	if m.Toolchain != nil {
		toolPath, err := evalString(m.Toolchain.OneVersionTool, "one_version_tool")
		if err != nil {
			return nil, fmt.Errorf("in toolchain '%s': %w", m.Toolchain.Label, err)
		}
		allowlistPath, err := evalString(m.Toolchain.OneVersionAllowlist, "one_version_allowlist")
		if err != nil {
			return nil, fmt.Errorf("in toolchain '%s': %w", m.Toolchain.Label, err)
		}
		model.Toolchain = &config.Toolchain{
			Label:         m.Toolchain.Label,
			ToolPath:      toolPath,
			AllowlistPath: allowlistPath,
		}
	}

	if m.Settings != nil {
		level, err := evalEnforcementLevel(m.Settings.Enforcement)
		if err != nil {
			return nil, fmt.Errorf("in one_version block: %w", err)
		}
		model.Enforcement = level
	}

	// Jar ownership must be consistent across the whole manifest: the same
	// path declared with two different owners would make violation
	// attribution ambiguous.
	owners := make(map[string]label.Label)
	// Each output may be produced by at most one action.
	outputs := make(map[string]label.Label)

	for _, t := range m.Targets {
		target, err := l.translateTarget(t, model.Enforcement)
		if err != nil {
			return nil, err
		}
		if prev, ok := outputs[target.Output]; ok {
			return nil, fmt.Errorf("target '%s': output %s already claimed by %s", t.Label, target.Output, prev)
		}
		outputs[target.Output] = target.Label
		for _, jar := range target.Jars {
			if prev, ok := owners[jar.Path]; ok && !prev.Equal(jar.Owner) {
				return nil, fmt.Errorf("target '%s': jar %s owned by %s, but already declared with owner %s",
					t.Label, jar.Path, jar.Owner, prev)
			}
			owners[jar.Path] = jar.Owner
		}
		model.Targets = append(model.Targets, target)
	}

	return model, nil
}

// translateTarget converts a single target block, applying the manifest-wide
// default enforcement level when the target does not override it.
func (l *Loader) translateTarget(t *schema.Target, defaultLevel oneversion.EnforcementLevel) (*config.Target, error) {
	targetLabel, err := label.Parse(t.Label)
	if err != nil {
		return nil, fmt.Errorf("in target block: %w", err)
	}

	level := defaultLevel
	if t.Enforcement != nil {
		level, err = evalEnforcementLevel(t.Enforcement)
		if err != nil {
			return nil, fmt.Errorf("target '%s': %w", t.Label, err)
		}
	}

	output, err := evalString(t.Output, "output")
	if err != nil {
		return nil, fmt.Errorf("target '%s': %w", t.Label, err)
	}
	if output == "" {
		output = defaultOutputPath(targetLabel)
	}

	target := &config.Target{
		Label:       targetLabel,
		Output:      output,
		Enforcement: level,
	}
	for _, j := range t.Jars {
		rawOwner, err := evalString(j.Owner, "owner")
		if err != nil {
			return nil, fmt.Errorf("target '%s': jar %s: %w", t.Label, j.Path, err)
		}
		owner, err := label.Parse(rawOwner)
		if err != nil {
			return nil, fmt.Errorf("target '%s': jar %s: %w", t.Label, j.Path, err)
		}
		target.Jars = append(target.Jars, &config.Jar{Path: j.Path, Owner: owner})
	}
	return target, nil
}

// defaultOutputPath derives the output path for a target that does not set
// an explicit output: the label's package path plus "<name>.oneversion",
// placed under "external/<repo>/" for external-repository labels.
func defaultOutputPath(l label.Label) string {
	if l.IsMainRepo() {
		return path.Join(l.Pkg, l.Name+".oneversion")
	}
	return path.Join("external", l.Repo, l.Pkg, l.Name+".oneversion")
}

// evalString evaluates an attribute expression and converts the result to a
// string. A nil expression (an absent optional attribute) and a null value
// both yield the empty string. The manifest is static, so evaluation uses no
// variable context; expressions referencing variables are errors.
func evalString(expr hcl.Expression, what string) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid %s expression: %w", what, diags)
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("invalid %s value: %w", what, err)
	}
	return val.AsString(), nil
}

// evalEnforcementLevel evaluates an enforcement attribute into a level.
func evalEnforcementLevel(expr hcl.Expression) (oneversion.EnforcementLevel, error) {
	raw, err := evalString(expr, "enforcement")
	if err != nil {
		return oneversion.EnforcementOff, err
	}
	return oneversion.ParseEnforcementLevel(raw)
}
