package cmd

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/josephlewis42/argfile/core/argfile"
)

var expandFlags struct {
	prefix  string
	name    string
	tierDef bool
	tierHom bool
	tierCur bool
}

var expandCmd = &cobra.Command{
	Use:   "expand [flags] -- TOKEN...",
	Short: "Print the expanded form of a token list",
	Long: `Expands option-file references in TOKEN... and prints the resulting
tokens one per line, in order. Startup tiers injected ahead of the
tokens follow default, home, current order so later sources win under
last-value-wins option parsing.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}
		opts := profile.Options()

		if cmd.Flags().Changed("prefix") {
			r, size := utf8.DecodeRuneInString(expandFlags.prefix)
			if size != len(expandFlags.prefix) {
				return fmt.Errorf("--prefix must be a single character, got %q", expandFlags.prefix)
			}
			opts.Prefix = r
		}
		if cmd.Flags().Changed("name") {
			opts.StartupName = argfile.LiteralName(expandFlags.name)
		}
		if cmd.Flags().Changed("default") {
			opts.Default = expandFlags.tierDef
		}
		if cmd.Flags().Changed("home") {
			opts.Home = expandFlags.tierHom
		}
		if cmd.Flags().Changed("current") {
			opts.Current = expandFlags.tierCur
		}

		opts.Args = &args
		if verbose {
			opts.Trace = logger().Debugf
		}
		if err := argfile.Expand(argfile.SystemHost(), opts); err != nil {
			return err
		}

		for _, tok := range args {
			fmt.Fprintln(cmd.OutOrStdout(), tok)
		}
		return nil
	},
}

func init() {
	expandCmd.Flags().StringVar(&expandFlags.prefix, "prefix", "@", "character marking an option-file hint")
	expandCmd.Flags().StringVar(&expandFlags.name, "name", "", "startup option filename")
	expandCmd.Flags().BoolVar(&expandFlags.tierDef, "default", false, "read the startup file next to this executable")
	expandCmd.Flags().BoolVar(&expandFlags.tierHom, "home", false, "read the startup file in $HOME")
	expandCmd.Flags().BoolVar(&expandFlags.tierCur, "current", false, "read the startup file in the current directory")
	rootCmd.AddCommand(expandCmd)
}
