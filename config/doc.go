// Package config describes one terrain generation run: map size, seed,
// slope mode, file paths and the solver's hardening caps.
//
// A run is read from YAML with Load, starting from Default so a file only
// needs the keys it changes:
//
//	n: 32
//	seed: 99
//	mode: classic
//	timeout: 30s
//
// Unknown keys are rejected. Mode names are matched case-insensitively; a
// near miss is reported with the closest known name.
package config
