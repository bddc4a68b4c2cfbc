/*
Package app wires the application together: it owns the logger, loads the
build manifest through a config.Loader, runs the analysis phase that
constructs one check action per target, and materializes each registered
action's params file.

The app never executes the checker binary. Its output is the action graph
and the params files — execution, scheduling, and caching belong to
whatever build engine consumes the registered actions.
*/
package app
