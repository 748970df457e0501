package argfile

import (
	"fmt"

	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/afero"
)

func ExampleExpand() {
	host := newFakeHost()
	afero.WriteFile(host.fs, "cfg", []byte("# comment\n-ccc \"ccc ccc ccc\"\n"), 0644)

	args := []string{"-A", "A", "@cfg", "par1"}
	if err := Expand(host, Options{Args: &args}); err != nil {
		panic(err)
	}

	fmt.Printf("%q\n", args)
	// Output: ["-A" "A" "-ccc" "ccc ccc ccc" "par1"]
}

// Startup files expand ahead of the command line, so a last-value-wins
// parser such as getopt lets each tier override the one before it and
// the command line override them all.
func ExampleExpand_getopt() {
	host := newFakeHost()
	host.env[EnvHome] = "/home/user"
	afero.WriteFile(host.fs, "/opt/tool/bin/.tool", []byte("--level 1 --color\n"), 0644)
	afero.WriteFile(host.fs, "/home/user/.tool", []byte("--level 2\n"), 0644)

	args := []string{"--level", "3"}
	err := Expand(host, Options{
		Args:    &args,
		Default: true,
		Home:    true,
		Current: true,
	})
	if err != nil {
		panic(err)
	}

	flags := getopt.New()
	level := flags.IntLong("level", 'l', 0, "verbosity level")
	colorOn := flags.BoolLong("color", 'c', "colorize output")
	if err := flags.Getopt(append([]string{"tool"}, args...), nil); err != nil {
		panic(err)
	}

	fmt.Println("level:", *level)
	fmt.Println("color:", *colorOn)
	// Output: level: 3
	// color: true
}

func ExampleExpand_cascade() {
	host := newFakeHost()

	// One prefix is consumed here; the rest is left for the next tool.
	args := []string{"-a", "@@render.conf"}
	if err := Expand(host, Options{Args: &args}); err != nil {
		panic(err)
	}

	fmt.Printf("%q\n", args)
	// Output: ["-a" "@render.conf"]
}
