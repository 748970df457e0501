package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiosoft/readline"
	shlex "github.com/anmitsu/go-shlex"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/josephlewis42/argfile/core/argfile"
)

const (
	colorAlways = "always"
	colorAuto   = "auto"
	colorNever  = "never"
)

var playgroundFlags struct {
	color string
}

// playgroundCmd is an interactive loop for trying out option files:
// each input line is split with shell-word rules, expanded, and echoed
// token by token. Unresolved cascade hints are highlighted.
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Interactively expand command lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}

		hintColor := color.New(color.FgYellow)
		switch playgroundFlags.color {
		case colorAlways:
			hintColor.EnableColor()
		case colorNever:
			hintColor.DisableColor()
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt: "argfile> ",
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		log := logger()
		prefix := string(argfile.DefaultPrefix)
		if r := profile.Options().Prefix; r != 0 {
			prefix = string(r)
		}

		for {
			line, err := rl.Readline()
			switch {
			case err == readline.ErrInterrupt:
				continue
			case err == io.EOF:
				return nil
			case err != nil:
				return err
			}
			if strings.TrimSpace(line) == "" {
				continue
			}

			tokens, err := shlex.Split(line, true)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "tokenize: %v\n", err)
				continue
			}

			opts := profile.Options()
			opts.Args = &tokens
			if verbose {
				opts.Trace = log.Debugf
			}
			if err := argfile.Expand(argfile.SystemHost(), opts); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "expand: %v\n", err)
				continue
			}

			for i, tok := range tokens {
				display := fmt.Sprintf("%q", tok)
				if strings.HasPrefix(tok, prefix) {
					// Left for a downstream consumer to resolve.
					display = hintColor.Sprint(display)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %s\n", i, display)
			}
		}
	},
}

func init() {
	playgroundCmd.Flags().StringVar(&playgroundFlags.color, "color", colorAuto, "colorize unresolved hints (always|auto|never)")
	rootCmd.AddCommand(playgroundCmd)
}
