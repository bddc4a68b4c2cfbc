package analysis

import (
	"fmt"

	"github.com/vk/onecheck/internal/artifact"
	"github.com/vk/onecheck/internal/label"
)

// Context is the per-target build-graph context handed to a rule
// implementation while its node is analyzed. It carries the requesting
// target's identity, the ownership model for input artifacts, the shared
// action graph, and the sink for recoverable rule errors.
//
// A Context is single-owner and not shared across concurrent callers.
type Context struct {
	target label.Label
	owners artifact.Resolver
	graph  *Graph
	errors []string
}

// NewContext creates a rule context for one target.
func NewContext(target label.Label, owners artifact.Resolver, graph *Graph) *Context {
	return &Context{target: target, owners: owners, graph: graph}
}

// Label returns the identity of the target being analyzed.
func (c *Context) Label() label.Label {
	return c.target
}

// Owners returns the artifact ownership model.
func (c *Context) Owners() artifact.Resolver {
	return c.owners
}

// RegisterAction adds an action to the build graph. An output conflict is a
// defect in the rule implementation, not a user-facing condition, so it
// panics.
func (c *Context) RegisterAction(a *Action) {
	if err := c.graph.Register(a); err != nil {
		panic(fmt.Sprintf("analysis: target %s: %v", c.target, err))
	}
}

// RuleError records a recoverable, user-facing diagnostic against the
// target. Analysis of the target continues; the caller decides how the
// recorded errors affect the overall run.
func (c *Context) RuleError(msg string) {
	c.errors = append(c.errors, msg)
}

// Errors returns the diagnostics recorded so far, in emission order.
func (c *Context) Errors() []string {
	return c.errors
}
