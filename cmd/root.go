package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/argfile/core/config"
)

var (
	profilePath string
	verbose     bool
)

// loadProfile returns the profile named by --profile, or the built-in
// defaults when the flag is unset.
func loadProfile() (*config.Profile, error) {
	if profilePath == "" {
		return config.DefaultProfile(), nil
	}
	return config.Load(profilePath)
}

// logger builds the CLI-edge logger. The expansion engine itself stays
// silent; --verbose routes its trace events here.
func logger() *log.Logger {
	out := log.New(os.Stderr)
	if verbose {
		out.SetLevel(log.DebugLevel)
	}
	return out
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "argfile",
	Short: "Expand option-file references in command lines",
	Long: `Expands @file references in a token list into the file's contents,
including nested references, startup option files and cascaded (@@file)
hints left for downstream tools.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "path to a profile.yaml with expansion defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log option files as they are expanded")
}
