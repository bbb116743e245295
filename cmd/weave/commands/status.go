package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/app"
	"go.trai.ch/weave/internal/ui/output"
	"go.trai.ch/weave/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [project]",
		Short: "Compare the links on disk with the resolved packages",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := targetFromFlags(cmd)
			if err != nil {
				return err
			}
			statuses, err := c.app.Status(projectArg(args), target)
			if err != nil {
				return err
			}
			printStatuses(cmd, statuses)
			return nil
		},
	}
	addTargetFlags(cmd)
	return cmd
}

func printStatuses(cmd *cobra.Command, statuses []app.TargetStatus) {
	out := output.New(cmd.OutOrStdout())

	for _, s := range statuses {
		d := s.Drift
		if d.InSync() {
			_, _ = fmt.Fprintf(out, "%s %s: in sync (%016x)\n",
				output.Colorize(out, style.Check, string(style.Green)), s.Target.FolderName(), d.Fingerprint)
			continue
		}

		_, _ = fmt.Fprintf(out, "%s %s: %d missing, %d stale, %d unexpected\n",
			output.Colorize(out, style.Cross, string(style.Red)), s.Target.FolderName(),
			len(d.Missing), len(d.Stale), len(d.Unexpected))
		for _, e := range d.Missing {
			_, _ = fmt.Fprintf(out, "  %s %s %s %s\n",
				output.Colorize(out, style.Plus, string(style.Green)), e.LinkPath, style.Arrow, e.Target)
		}
		for _, e := range d.Stale {
			_, _ = fmt.Fprintf(out, "  %s %s %s %s\n",
				output.Colorize(out, style.Tilde, string(style.Yellow)), e.LinkPath, style.Arrow, e.Target)
		}
		for _, path := range d.Unexpected {
			_, _ = fmt.Fprintf(out, "  %s %s\n", output.Colorize(out, style.Minus, string(style.Red)), path)
		}
	}
}
