package config

import (
	"errors"
	"time"
)

// Sentinel errors for configuration problems.
var (
	// ErrBadConfig indicates an unreadable file or an out-of-range field.
	ErrBadConfig = errors.New("config: invalid configuration")
	// ErrUnknownMode indicates a mode name other than bucketed or classic.
	ErrUnknownMode = errors.New("config: unknown mode")
)

// Mode selects how slope bounds are chosen.
type Mode string

const (
	// ModeBucketed reads the slope table from Config.Slopes.
	ModeBucketed Mode = "bucketed"
	// ModeClassic uses the single bucket (1, 100) and ignores Config.Slopes.
	// It is only guaranteed to be satisfiable up to ClassicMaxN: a river
	// longer than about 100 cells forces a perimeter cell below sea level,
	// and the run fails with solver.ErrUnsatisfiable. The default n = 64
	// fails for every seed tried.
	ModeClassic Mode = "classic"
)

// ClassicMaxN is the largest half-size at which ModeClassic always
// succeeds. The map then holds 2(n−1)² ≤ 98 interior river cells, so no
// downhill run can outweigh a single +100 step.
const ClassicMaxN = 8

// Modes lists every accepted mode.
var Modes = []Mode{ModeBucketed, ModeClassic}

// Defaults of a run.
const (
	DefaultN        = 64
	DefaultSeed     = 17
	DefaultSlopes   = "slopes"
	DefaultHeights  = "heights.txt"
	DefaultDrainage = "drainage.txt"
)

// Config is one generation run.
type Config struct {
	N        int    `yaml:"n"`
	Seed     int64  `yaml:"seed"`
	Mode     Mode   `yaml:"mode"`
	Slopes   string `yaml:"slopes"`
	Heights  string `yaml:"heights"`
	Drainage string `yaml:"drainage"`
	Verbose  bool   `yaml:"verbose"`
	Progress bool   `yaml:"progress"`

	// Solver hardening; zero values leave the solver unbounded.
	MaxPops      int           `yaml:"max_pops"`
	Timeout      time.Duration `yaml:"timeout"`
	DetectCycles bool          `yaml:"detect_cycles"`
}
