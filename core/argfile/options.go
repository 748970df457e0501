package argfile

import (
	"fmt"
	"path/filepath"
)

// DefaultPrefix marks option-file hints when Options.Prefix is unset.
const DefaultPrefix = '@'

// reservedPrefixes collide with comment, markup, or option syntax and
// may not be used as hint markers.
var reservedPrefixes = map[rune]bool{
	'#': true,
	'=': true,
	'-': true,
	'+': true,
}

// StartupName produces the filename probed for in each startup tier.
// It is either a LiteralName or a DerivedName.
type StartupName interface {
	filename(progPath string) string
}

// LiteralName uses the same fixed filename for every startup tier.
type LiteralName string

func (l LiteralName) filename(string) string { return string(l) }

// DerivedName computes the startup filename from the running program's
// path. The function is invoked at most once per Expand call.
type DerivedName func(progPath string) string

func (d DerivedName) filename(progPath string) string { return d(progPath) }

// Options configures a single expansion.
type Options struct {
	// Args points at the token list rewritten in place. Expand requires
	// it; ExpandCommandLine defaults it to the process arguments.
	Args *[]string

	// Prefix is the rune marking a hint token. Defaults to '@'. The
	// runes '#', '=', '-' and '+' are rejected.
	Prefix rune

	// StartupName names the option file probed for in each enabled
	// startup tier. Defaults to "." + basename of the running program.
	StartupName StartupName

	// Default, Home and Current enable the startup tiers, scanned in
	// that order.
	Default bool
	Home    bool
	Current bool

	// Trace, when set, receives debug events such as files being opened
	// or skipped. Expansion itself never reports skipped files.
	Trace func(format string, args ...interface{})
}

// InvalidConfigError reports a malformed Options value. It is returned
// before any file I/O happens and is never swallowed.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("argfile: invalid option %s: %s", e.Field, e.Reason)
}

// runConfig is the normalized, validated form of Options.
type runConfig struct {
	prefix     string // single rune, as a string for prefix tests
	name       StartupName
	useDefault bool
	useHome    bool
	useCurrent bool
	trace      func(format string, args ...interface{})
}

func (o Options) normalize() (runConfig, error) {
	prefix := o.Prefix
	if prefix == 0 {
		prefix = DefaultPrefix
	}
	if reservedPrefixes[prefix] {
		return runConfig{}, &InvalidConfigError{
			Field:  "Prefix",
			Reason: fmt.Sprintf("%q collides with comment or option syntax", prefix),
		}
	}

	name := o.StartupName
	if name == nil {
		name = DerivedName(func(progPath string) string {
			return "." + filepath.Base(progPath)
		})
	}

	return runConfig{
		prefix:     string(prefix),
		name:       name,
		useDefault: o.Default,
		useHome:    o.Home,
		useCurrent: o.Current,
		trace:      o.Trace,
	}, nil
}

func (c *runConfig) tracef(format string, args ...interface{}) {
	if c.trace != nil {
		c.trace(format, args...)
	}
}
