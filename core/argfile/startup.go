package argfile

import (
	"path/filepath"
)

// startupHints resolves the enabled startup tiers to synthetic hint
// tokens, ready to be prepended to the working list.
//
// The tier order is fixed: default (installation directory), home,
// current. Under last-value-wins option parsing that makes
// current-directory files override home files, home files override
// installation defaults, and explicit command-line tokens override
// every tier.
func startupHints(host Host, cfg *runConfig) []string {
	if !cfg.useDefault && !cfg.useHome && !cfg.useCurrent {
		return nil
	}

	progPath, err := host.Executable()
	if err != nil {
		cfg.tracef("startup files disabled: %v", err)
		return nil
	}
	name := cfg.name.filename(progPath)

	type tier struct {
		label   string
		enabled bool
		dir     string
		ok      bool
	}

	homeDir, homeOK := host.LookupEnv(EnvHome)
	curDir, curErr := host.Getwd()

	tiers := []tier{
		{label: "default", enabled: cfg.useDefault, dir: filepath.Dir(progPath), ok: true},
		{label: "home", enabled: cfg.useHome, dir: homeDir, ok: homeOK},
		{label: "current", enabled: cfg.useCurrent, dir: curDir, ok: curErr == nil},
	}

	var hints []string
	accepted := make(map[string]bool)
	for _, t := range tiers {
		if !t.enabled {
			continue
		}
		if !t.ok {
			// e.g. home tier with no HOME set: skipped, not an error.
			cfg.tracef("skipping %s startup tier: no directory", t.label)
			continue
		}

		path := absPath(host, filepath.Join(t.dir, name))

		canon := canonicalName(host, path)
		if accepted[canon] {
			cfg.tracef("skipping %s startup tier: duplicates an earlier tier", t.label)
			continue
		}
		if fi, err := host.Fs().Stat(path); err != nil || fi.IsDir() {
			cfg.tracef("skipping %s startup tier: no file at %s", t.label, path)
			continue
		}

		accepted[canon] = true
		hints = append(hints, cfg.prefix+path)
	}
	return hints
}
