package oneversion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/onecheck/internal/analysis"
	"github.com/vk/onecheck/internal/artifact"
	"github.com/vk/onecheck/internal/label"
	"github.com/vk/onecheck/internal/toolchain"
)

const toolchainLabel = "//tools/jdk:default"

func capableToolchain() *toolchain.Toolchain {
	return toolchain.New(toolchainLabel,
		artifact.New("tools/one_version_tool"),
		artifact.New("tools/one_version_allowlist.txt"))
}

func ruleContext(t *testing.T, owners artifact.Resolver) (*analysis.Context, *analysis.Graph) {
	t.Helper()
	graph := analysis.NewGraph()
	return analysis.NewContext(label.MustParse("//java/com/app:app"), owners, graph), graph
}

func TestWithEnforcementLevel_OffPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder().WithEnforcementLevel(EnforcementOff)
	})
}

func TestBuild_MissingFieldPanics(t *testing.T) {
	jars, store := jarFixture()

	// A fully configured builder as the baseline; each case drops one setter.
	testCases := []struct {
		name      string
		configure func() *Builder
	}{
		{
			name: "missing enforcement level",
			configure: func() *Builder {
				return NewBuilder().
					UseToolchain(capableToolchain()).
					CheckJars(jars).
					OutputArtifact(artifact.New("out"))
			},
		},
		{
			name: "missing output",
			configure: func() *Builder {
				return NewBuilder().
					UseToolchain(capableToolchain()).
					CheckJars(jars).
					WithEnforcementLevel(EnforcementError)
			},
		},
		{
			name: "missing toolchain",
			configure: func() *Builder {
				return NewBuilder().
					CheckJars(jars).
					OutputArtifact(artifact.New("out")).
					WithEnforcementLevel(EnforcementError)
			},
		},
		{
			name: "missing jars",
			configure: func() *Builder {
				return NewBuilder().
					UseToolchain(capableToolchain()).
					OutputArtifact(artifact.New("out")).
					WithEnforcementLevel(EnforcementError)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rctx, _ := ruleContext(t, store)
			assert.Panics(t, func() { tc.configure().Build(rctx) })
		})
	}
}

func TestBuild_IncapableToolchain(t *testing.T) {
	testCases := []struct {
		name string
		tc   *toolchain.Toolchain
	}{
		{
			name: "missing checker binary",
			tc:   toolchain.New(toolchainLabel, nil, artifact.New("wl")),
		},
		{
			name: "missing allowlist",
			tc:   toolchain.New(toolchainLabel, artifact.New("tool"), nil),
		},
		{
			name: "missing both",
			tc:   toolchain.New(toolchainLabel, nil, nil),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jars, store := jarFixture()
			rctx, graph := ruleContext(t, store)
			output := artifact.New("out")

			got := NewBuilder().
				UseToolchain(tc.tc).
				CheckJars(jars).
				OutputArtifact(output).
				WithEnforcementLevel(EnforcementError).
				Build(rctx)

			assert.Same(t, output, got, "the requested output must be returned unbacked")
			assert.Empty(t, graph.Actions(), "no action may be registered")

			errs := rctx.Errors()
			require.Len(t, errs, 1, "exactly one diagnostic must be emitted")
			assert.Contains(t, errs[0], toolchainLabel)
			assert.Contains(t, errs[0], "one_version_tool")
			assert.Contains(t, errs[0], "one_version_allowlist")
		})
	}
}

func TestBuild_RegistersAction(t *testing.T) {
	jars, store := jarFixture()
	tc := capableToolchain()
	rctx, graph := ruleContext(t, store)
	output := artifact.New("java/com/app/app.oneversion")

	got := NewBuilder().
		UseToolchain(tc).
		CheckJars(jars).
		OutputArtifact(output).
		WithEnforcementLevel(EnforcementWarning).
		Build(rctx)

	assert.Same(t, output, got)
	assert.Empty(t, rctx.Errors())

	actions := graph.Actions()
	require.Len(t, actions, 1)
	action := actions[0]

	assert.Equal(t, Mnemonic, action.Mnemonic)
	assert.Equal(t, "Checking for one-version violations in //java/com/app:app", action.ProgressMessage)
	assert.Same(t, tc.CheckerExecutable(), action.Executable)
	assert.Equal(t, analysis.ParamsFileShellQuoted, action.ParamsFile)

	// Declared inputs are the allowlist plus every jar, jar order preserved.
	require.Len(t, action.Inputs, len(jars)+1)
	assert.Same(t, tc.Allowlist(), action.Inputs[0])
	for i, jar := range jars {
		assert.Same(t, jar, action.Inputs[i+1])
	}

	require.Len(t, action.Outputs, 1)
	assert.Same(t, output, action.Outputs[0])

	assert.Equal(t, []string{
		"--output", "java/com/app/app.oneversion",
		"--whitelist", "tools/one_version_allowlist.txt",
		"--succeed_on_found_violations",
		"--inputs",
		"pathA,@ext//pkg:a",
		"pathB,//pkg:b",
	}, action.Args)

	// The output is now backed by the registered action.
	producer, ok := graph.Producer(output.ExecPath)
	require.True(t, ok)
	assert.Same(t, action, producer)
}

func TestBuild_ErrorLevelOmitsWarningFlag(t *testing.T) {
	jars, store := jarFixture()
	rctx, graph := ruleContext(t, store)

	NewBuilder().
		UseToolchain(capableToolchain()).
		CheckJars(jars).
		OutputArtifact(artifact.New("out")).
		WithEnforcementLevel(EnforcementError).
		Build(rctx)

	actions := graph.Actions()
	require.Len(t, actions, 1)
	assert.NotContains(t, actions[0].Args, "--succeed_on_found_violations")
}

func TestBuild_LastWriteWins(t *testing.T) {
	jars, store := jarFixture()
	rctx, graph := ruleContext(t, store)

	NewBuilder().
		UseToolchain(capableToolchain()).
		CheckJars(jars).
		OutputArtifact(artifact.New("stale")).
		OutputArtifact(artifact.New("final")).
		WithEnforcementLevel(EnforcementWarning).
		WithEnforcementLevel(EnforcementError).
		Build(rctx)

	actions := graph.Actions()
	require.Len(t, actions, 1)
	assert.Equal(t, "final", actions[0].Outputs[0].ExecPath)
	assert.NotContains(t, actions[0].Args, "--succeed_on_found_violations")
}

func TestBuild_UnresolvedJarOwnerPanics(t *testing.T) {
	orphan := artifact.New("orphan.jar")
	rctx, _ := ruleContext(t, artifact.NewStore())

	builder := NewBuilder().
		UseToolchain(capableToolchain()).
		CheckJars([]*artifact.Artifact{orphan}).
		OutputArtifact(artifact.New("out")).
		WithEnforcementLevel(EnforcementError)

	assert.Panics(t, func() { builder.Build(rctx) })
}

func TestParseEnforcementLevel(t *testing.T) {
	for _, level := range []EnforcementLevel{EnforcementOff, EnforcementWarning, EnforcementError} {
		t.Run(level.String(), func(t *testing.T) {
			parsed, err := ParseEnforcementLevel(level.String())
			require.NoError(t, err)
			assert.Equal(t, level, parsed)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseEnforcementLevel("loud")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loud")
	})

	t.Run("unknown value formatting", func(t *testing.T) {
		assert.Equal(t, fmt.Sprintf("EnforcementLevel(%d)", 42), EnforcementLevel(42).String())
	})
}
