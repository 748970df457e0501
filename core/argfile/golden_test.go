package argfile

import (
	"os"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
)

// TestGoldenExpand runs a full expansion over the committed fixtures in
// testdata/scenario and compares the resulting token list against the
// golden file.
func TestGoldenExpand(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	host := &fakeHost{
		fs: afero.NewOsFs(),
		wd: wd,
	}

	args := []string{"--dry-run", "@testdata/scenario/base.conf", "positional"}
	if err := Expand(host, Options{Args: &args}); err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)
	g.Assert(t, "expand", []byte(strings.Join(args, "\n")+"\n"))
}
