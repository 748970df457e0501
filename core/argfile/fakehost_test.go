package argfile

import (
	"testing"

	"github.com/spf13/afero"
)

// fakeHost is a hermetic Host over an in-memory filesystem.
type fakeHost struct {
	fs         afero.Fs
	executable string
	wd         string
	env        map[string]string
	foldCase   bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		fs:         afero.NewMemMapFs(),
		executable: "/opt/tool/bin/tool",
		wd:         "/work",
		env:        make(map[string]string),
	}
}

func (h *fakeHost) Fs() afero.Fs { return h.fs }

func (h *fakeHost) Executable() (string, error) { return h.executable, nil }

func (h *fakeHost) Getwd() (string, error) { return h.wd, nil }

func (h *fakeHost) LookupEnv(key string) (string, bool) {
	v, ok := h.env[key]
	return v, ok
}

func (h *fakeHost) CaseInsensitiveFs() bool { return h.foldCase }

func (h *fakeHost) write(t *testing.T, path, contents string) {
	t.Helper()
	if err := afero.WriteFile(h.fs, path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
}
