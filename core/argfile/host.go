package argfile

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/afero"
)

// EnvHome holds the environment variable consulted for the home
// startup tier.
const EnvHome = "HOME"

// Host supplies the OS facilities expansion depends on. Implementations
// other than SystemHost are mainly useful for hermetic tests.
type Host interface {
	// Fs is the filesystem option files are read from.
	Fs() afero.Fs

	// Executable returns the path of the running program, used to
	// locate the installation startup tier and to derive the default
	// startup filename.
	Executable() (string, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// LookupEnv reads an environment variable. A missing EnvHome value
	// disables the home startup tier.
	LookupEnv(key string) (string, bool)

	// CaseInsensitiveFs reports whether Fs ignores case, so that "FILE"
	// and "file" count as the same option file.
	CaseInsensitiveFs() bool
}

type systemHost struct {
	fs afero.Fs
}

// SystemHost returns a Host backed by the real operating system.
func SystemHost() Host {
	return &systemHost{fs: afero.NewOsFs()}
}

func (s *systemHost) Fs() afero.Fs { return s.fs }

func (s *systemHost) Executable() (string, error) { return os.Executable() }

func (s *systemHost) Getwd() (string, error) { return os.Getwd() }

func (s *systemHost) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (s *systemHost) CaseInsensitiveFs() bool {
	switch runtime.GOOS {
	case "windows", "darwin":
		return true
	default:
		return false
	}
}

// absPath resolves path against the host's working directory.
func absPath(host Host, path string) string {
	if !filepath.IsAbs(path) {
		if wd, err := host.Getwd(); err == nil {
			path = filepath.Join(wd, path)
		}
	}
	return filepath.Clean(path)
}

// canonicalName is the identity of a file in the seen-file set:
// absolute, and case-folded on case-insensitive hosts.
func canonicalName(host Host, path string) string {
	path = absPath(host, path)
	if host.CaseInsensitiveFs() {
		path = strings.ToLower(path)
	}
	return path
}
