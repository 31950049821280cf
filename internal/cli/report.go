package cli

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/nixpig/anoabi/internal/abi"
	"github.com/spf13/cobra"
)

type reportEntry struct {
	abi.Assumption
	Holds bool `json:"holds"`
}

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Short:   "Print the assumption table as JSON",
		Example: "  anoabi report",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			failedOnly, _ := cmd.Flags().GetBool("failed")

			entries := []reportEntry{}
			for _, a := range abi.Assumptions() {
				if failedOnly && a.Holds() {
					continue
				}

				entries = append(entries, reportEntry{
					Assumption: a,
					Holds:      a.Holds(),
				})
			}

			report, err := json.Marshal(entries)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}

			var formattedReport bytes.Buffer
			if err := json.Indent(
				&formattedReport,
				report,
				"",
				"  ",
			); err != nil {
				return err
			}

			if _, err := cmd.OutOrStdout().Write(
				formattedReport.Bytes(),
			); err != nil {
				return fmt.Errorf("report: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolP(
		"failed",
		"f",
		false,
		"Only include assumptions that do not hold",
	)

	return cmd
}
