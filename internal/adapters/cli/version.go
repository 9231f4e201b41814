package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"greeter/internal/buildinfo"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the greeter version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !asJSON {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "greeter %s\n", buildinfo.Summary())
				return err
			}
			return encodeJSON(cmd.OutOrStdout(), map[string]string{
				"version": buildinfo.Version,
				"commit":  buildinfo.Commit,
				"date":    buildinfo.Date,
				"go":      runtime.Version(),
				"go_os":   runtime.GOOS,
				"go_arch": runtime.GOARCH,
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
