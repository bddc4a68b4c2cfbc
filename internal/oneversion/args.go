package oneversion

import (
	"fmt"

	"github.com/vk/onecheck/internal/artifact"
)

// Args encodes the checker's full argv from validated inputs. It is a pure
// function: identical inputs produce byte-identical tokens in identical
// order. Jars are emitted in their given order, without sorting or
// deduplication; the checker owns its own dedup semantics.
//
// The encoding is:
//
//	--output <out> --whitelist <wl> [--succeed_on_found_violations]
//	--inputs <jar1Path>,<owner1> <jar2Path>,<owner2> ...
//
// where each owner is the jar's owning target rendered per label.String:
// plain for the main repository, '@'-prefixed for external repositories.
//
// An error is returned if any jar has no resolvable owner. A partial or
// placeholder token would misattribute a violation to the wrong target,
// which is worse than failing outright, so nothing is emitted in that case.
func Args(output, allowlist *artifact.Artifact, level EnforcementLevel, jars []*artifact.Artifact, owners artifact.Resolver) ([]string, error) {
	args := make([]string, 0, 5+len(jars))
	args = append(args, "--output", output.ExecPath)
	args = append(args, "--whitelist", allowlist.ExecPath)
	if level == EnforcementWarning {
		args = append(args, "--succeed_on_found_violations")
	}
	args = append(args, "--inputs")
	for _, jar := range jars {
		owner, ok := owners.Owner(jar)
		if !ok {
			return nil, fmt.Errorf("jar %s has no owning target", jar.ExecPath)
		}
		args = append(args, jar.ExecPath+","+owner.String())
	}
	return args, nil
}
