package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vk/onecheck/internal/analysis"
	"github.com/vk/onecheck/internal/artifact"
	"github.com/vk/onecheck/internal/ctxlog"
	"github.com/vk/onecheck/internal/oneversion"
	"github.com/vk/onecheck/internal/paramfile"
)

// Run executes the analysis phase: one check action is constructed per
// target whose effective enforcement level is not off, the resulting action
// graph is summarized on the output writer, and each action's params file is
// written unless dry-run is set.
//
// Recoverable rule errors (an incapable toolchain) are reported and do not
// fail the run; the affected output simply stays unbacked.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	checkable := 0
	for _, target := range a.model.Targets {
		if target.Enforcement != oneversion.EnforcementOff {
			checkable++
		}
	}
	if checkable == 0 {
		logger.Info("No targets with one-version enforcement enabled; nothing to do.")
		fmt.Fprintln(a.outW, "No check actions registered.")
		return nil
	}

	tc, err := a.buildToolchain()
	if err != nil {
		return err
	}

	store := artifact.NewStore()
	graph := analysis.NewGraph()
	var diagnosed int

	for _, target := range a.model.Targets {
		if target.Enforcement == oneversion.EnforcementOff {
			logger.Debug("Skipping target: enforcement is off.", "target", target.Label)
			continue
		}

		jars := make([]*artifact.Artifact, 0, len(target.Jars))
		for _, jar := range target.Jars {
			art := artifact.New(jar.Path)
			store.Put(art, jar.Owner)
			jars = append(jars, art)
		}

		rctx := analysis.NewContext(target.Label, store, graph)
		oneversion.NewBuilder().
			UseToolchain(tc).
			CheckJars(jars).
			OutputArtifact(artifact.New(target.Output)).
			WithEnforcementLevel(target.Enforcement).
			Build(rctx)

		for _, ruleErr := range rctx.Errors() {
			logger.Error("Rule error during analysis.", "target", target.Label.String(), "error", ruleErr)
			fmt.Fprintf(a.outW, "ERROR: %s: %s\n", target.Label, ruleErr)
			diagnosed++
		}
	}

	actions := graph.Actions()
	logger.Info("Analysis phase complete.", "actions", len(actions), "rule_errors", diagnosed)

	for _, action := range actions {
		fmt.Fprintf(a.outW, "%s  %s  (%d args)\n", action.Mnemonic, action.ProgressMessage, len(action.Args))
		if a.config.DryRun || action.ParamsFile != analysis.ParamsFileShellQuoted {
			continue
		}
		paramsPath := filepath.Join(a.config.OutDir, action.Outputs[0].ExecPath+".params")
		if err := paramfile.WriteFile(paramsPath, action.Args); err != nil {
			return err
		}
		logger.Debug("Params file written.", "path", paramsPath)
	}

	fmt.Fprintf(a.outW, "Registered %d check action(s).\n", len(actions))
	return nil
}
