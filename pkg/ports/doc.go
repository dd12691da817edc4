// Package ports declares the boundary interfaces of the simulator, so
// the engine stays decoupled from where definitions come from (builtin
// registry, YAML directory, tests).
package ports
