package argfile

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
)

// maskSentinel stands in for the leading prefix of a cascaded hint so
// later passes leave it alone. A NUL can never survive shell-word
// tokenization of an option-file line and the startup injector never
// produces one, so the marker cannot collide with real content.
const maskSentinel = "\x00"

var markupOpen = regexp.MustCompile(`^=\w`)

const markupClose = "=cut"

// Expand rewrites *opts.Args in place, replacing each option-file hint
// with the file's tokenized contents.
//
// Expansion iterates until no token starts with the prefix: option
// files may reference further option files, and a doubled prefix
// (e.g. "@@file") survives as a single-prefix hint for a downstream
// consumer. Each file is opened at most once per call; a hint naming a
// missing, unreadable, already-seen, or directory path silently
// expands to nothing.
func Expand(host Host, opts Options) error {
	if opts.Args == nil {
		return &InvalidConfigError{Field: "Args", Reason: "no token list to expand"}
	}
	cfg, err := opts.normalize()
	if err != nil {
		return err
	}

	work := make([]string, 0, len(*opts.Args))
	work = append(work, startupHints(host, &cfg)...)
	work = append(work, *opts.Args...)

	seen := make(map[string]bool)
	for hasHint(work, cfg.prefix) {
		next := make([]string, 0, len(work))
		for _, tok := range work {
			switch {
			case !strings.HasPrefix(tok, cfg.prefix):
				next = append(next, tok)

			case strings.HasPrefix(tok[len(cfg.prefix):], cfg.prefix):
				// Cascaded hint: strip one prefix, mask the next so
				// this pass and later ones don't open it.
				next = append(next, maskSentinel+tok[2*len(cfg.prefix):])

			default:
				next = append(next, readOptionFile(host, &cfg, seen, tok[len(cfg.prefix):])...)
			}
		}
		work = next
	}

	// Restore cascaded hints to a single literal prefix.
	for i, tok := range work {
		if strings.HasPrefix(tok, maskSentinel) {
			work[i] = cfg.prefix + tok[len(maskSentinel):]
		}
	}

	*opts.Args = work
	return nil
}

// ExpandCommandLine is a convenience wrapper over Expand using the real
// operating system. When opts.Args is nil it expands the process's own
// argument list, writing the result back to os.Args.
func ExpandCommandLine(opts Options) error {
	if opts.Args != nil {
		return Expand(SystemHost(), opts)
	}
	if len(os.Args) == 0 {
		return &InvalidConfigError{Field: "Args", Reason: "no token list to expand"}
	}

	args := make([]string, len(os.Args)-1)
	copy(args, os.Args[1:])
	opts.Args = &args
	if err := Expand(SystemHost(), opts); err != nil {
		return err
	}
	os.Args = append(os.Args[:1], args...)
	return nil
}

func hasHint(tokens []string, prefix string) bool {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, prefix) {
			return true
		}
	}
	return false
}

// readOptionFile returns the tokens of one option file, or nothing if
// the file can't be used. Misses are deliberate no-ops: the caller of
// Expand gets no diagnostic for an absent file.
func readOptionFile(host Host, cfg *runConfig, seen map[string]bool, path string) []string {
	canon := canonicalName(host, path)
	if seen[canon] {
		cfg.tracef("skipping %s: already expanded", path)
		return nil
	}
	if fi, err := host.Fs().Stat(path); err != nil || fi.IsDir() {
		cfg.tracef("skipping %s: not an option file", path)
		return nil
	}
	seen[canon] = true

	f, err := host.Fs().Open(path)
	if err != nil {
		cfg.tracef("skipping %s: %v", path, err)
		return nil
	}
	defer f.Close()
	cfg.tracef("expanding %s", path)

	var out []string
	inMarkup := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		// Structured-markup blocks ("=pod" ... "=cut") are stripped
		// whole, marker lines included. A stray "=cut" outside a block
		// is discarded without opening one.
		if inMarkup {
			if line == markupClose {
				inMarkup = false
			}
			continue
		}
		if markupOpen.MatchString(line) {
			inMarkup = line != markupClose
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens, err := shlex.Split(line, true)
		if err != nil {
			cfg.tracef("skipping line in %s: %v", path, err)
			continue
		}
		out = append(out, tokens...)
	}
	if err := scanner.Err(); err != nil {
		cfg.tracef("reading %s stopped early: %v", path, err)
	}
	return out
}
