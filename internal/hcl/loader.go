// Package hcl implements the HCL front end of the build manifest: parsing
// manifest files and translating them into the format-agnostic config model.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/onecheck/internal/config"
	"github.com/vk/onecheck/internal/ctxlog"
	"github.com/vk/onecheck/internal/fsutil"
	"github.com/vk/onecheck/internal/schema"
)

// Loader is the HCL-specific implementation of config.Loader.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load implements config.Loader. Every .hcl file reachable from the given
// paths is parsed; the parsed manifests are merged (the toolchain and the
// one_version settings block may appear at most once across all files,
// targets accumulate) and translated into the agnostic model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, p := range paths {
		found, err := fsutil.FindFilesByExtension(p, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to discover manifest files under %s: %w", p, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no manifest files found under %v", paths)
	}
	logger.Debug("Manifest discovery complete.", "file_count", len(files))

	parser := hclparse.NewParser()
	merged := &schema.Manifest{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", file, diags)
		}

		var m schema.Manifest
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &m); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", file, diags)
		}

		if m.Toolchain != nil {
			if merged.Toolchain != nil {
				return nil, fmt.Errorf("manifest %s: duplicate toolchain block (already declared as %q)", file, merged.Toolchain.Label)
			}
			merged.Toolchain = m.Toolchain
		}
		if m.Settings != nil {
			if merged.Settings != nil {
				return nil, fmt.Errorf("manifest %s: duplicate one_version block", file)
			}
			merged.Settings = m.Settings
		}
		merged.Targets = append(merged.Targets, m.Targets...)
		logger.Debug("Manifest file decoded.", "file", file, "targets", len(m.Targets))
	}

	model, err := l.translate(ctx, merged)
	if err != nil {
		return nil, err
	}
	logger.Debug("Manifest translated into unified model.", "target_count", len(model.Targets))
	return model, nil
}
