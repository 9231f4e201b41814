package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"greeter/internal/config"
	"greeter/internal/domain"
	"greeter/internal/ports/input"
	"greeter/internal/ports/output"
)

// Deps are the wired components shared by every command.
type Deps struct {
	Greetings  input.GreetingUseCase
	Translator output.Translator
	Config     *config.Config
	// ConfigErr is the error config.Load returned, if any. Config then holds
	// the defaults; the greeting still runs, serve and bot refuse to start.
	ConfigErr error
	Logger    *zap.Logger
}

// NewRootCmd creates the root command. Run without a subcommand it prints a
// greeting.
func NewRootCmd(deps Deps) *cobra.Command {
	var opts greetOptions

	cmd := &cobra.Command{
		Use:   "greeter",
		Short: "Print a greeting in one of several languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(cmd.OutOrStdout(), deps.Greetings, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.name, "name", "n", domain.DefaultName, "Name to greet")
	flags.StringVarP(&opts.format, "format", "f", formatText, "Output format (text, json)")
	flags.StringVarP(&opts.language, "language", "l", domain.DefaultLanguage, "Language for greeting")
	flags.BoolVar(&opts.listLanguages, "list-languages", false, "List available languages")

	cmd.AddCommand(newServeCmd(deps))
	cmd.AddCommand(newBotCmd(deps))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string, deps Deps) error {
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	return cmd.Execute()
}
