package commands

import (
	"github.com/spf13/cobra"

	reporting "portscribe/internal/report"
)

/**
 * Command to re-export reports from the stored inventory without
 * touching any device
 */
func report(props *CommandProps) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Writes a report from the stored inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			ports, err := props.Ports.GetAll()

			if err != nil {
				return err
			}

			reporter, err := reporting.NewReporter(props.Conf.ReportDir)

			if err != nil {
				return err
			}

			return writeReport(reporter, ports, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "report format: csv or xlsx")

	return cmd
}
