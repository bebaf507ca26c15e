// Package terrain runs the whole generator: grid, maze, drainage network,
// height solve, with every intermediate structure verified before the next
// stage consumes it.
//
// Generate is a pure function of (Config.N, Config.Seed, table): identical
// inputs yield identical heights. Stages are logged at debug level and the
// run summary at info level through the Logger option; by default nothing
// is logged.
package terrain
