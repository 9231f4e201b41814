package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"greeter/internal/adapters/discord"
)

func newBotCmd(deps Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Answer the /hello slash command on Discord",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if deps.ConfigErr != nil {
				return deps.ConfigErr
			}
			if err := deps.Config.RequireDiscord(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			bot, err := discord.NewBot(deps.Config, deps.Greetings, deps.Translator, deps.Logger)
			if err != nil {
				return err
			}
			return bot.Start(ctx)
		},
	}
}
