package analysis

import (
	"fmt"
	"sync"
)

// Graph accumulates registered actions, keyed by the exec paths of their
// outputs. Each output may be produced by at most one action; a second
// registration for the same output is a build-graph conflict.
type Graph struct {
	// mutex protects the action list and output index.
	mutex    sync.RWMutex
	actions  []*Action
	byOutput map[string]*Action
}

// NewGraph creates an empty action graph.
func NewGraph() *Graph {
	return &Graph{byOutput: make(map[string]*Action)}
}

// Register adds an action to the graph. It returns an error if any of the
// action's outputs is already produced by a previously registered action.
func (g *Graph) Register(a *Action) error {
	if len(a.Outputs) == 0 {
		return fmt.Errorf("action %s declares no outputs", a.Mnemonic)
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	for _, out := range a.Outputs {
		if prev, ok := g.byOutput[out.ExecPath]; ok {
			return fmt.Errorf("output %s already produced by a %s action", out.ExecPath, prev.Mnemonic)
		}
	}
	for _, out := range a.Outputs {
		g.byOutput[out.ExecPath] = a
	}
	g.actions = append(g.actions, a)
	return nil
}

// Actions returns all registered actions in registration order.
func (g *Graph) Actions() []*Action {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	out := make([]*Action, len(g.actions))
	copy(out, g.actions)
	return out
}

// Producer returns the action producing the artifact at the given exec path.
func (g *Graph) Producer(execPath string) (*Action, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	a, ok := g.byOutput[execPath]
	return a, ok
}
