package cli

import (
	"fmt"

	"github.com/nixpig/anoabi/internal/abi"
	"github.com/spf13/cobra"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "verify",
		Short:   "Check every tracked ABI assumption",
		Example: "  anoabi verify",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := abi.Verify(); err != nil {
				return fmt.Errorf("abi assumptions violated:\n%w", err)
			}

			if _, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"all %d assumptions hold\n",
				len(abi.Assumptions()),
			); err != nil {
				return fmt.Errorf("failed to print result to stdout: %w", err)
			}

			return nil
		},
	}

	return cmd
}
