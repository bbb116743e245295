package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/core/domain"
)

func (c *CLI) newDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <project>",
		Short: "Clean a project and remove its directory",
		Long: "Clean a project and remove its directory, including its engine settings and config.\n" +
			"The packages linked into the project are left in place.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if yes, _ := cmd.Flags().GetBool("yes"); !yes && !confirm(cmd, fmt.Sprintf(
				"Delete project %q? Its settings and %s are removed. (y/n) ",
				args[0], domain.ProjectConfigFileName)) {
				return domain.Annotate(domain.ErrOperationAborted, "project", args[0])
			}
			return c.app.Delete(cmd.Context(), args[0])
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Delete without asking for confirmation")
	return cmd
}

// confirm prints prompt and reports whether the answer read from stdin is yes.
func confirm(cmd *cobra.Command, prompt string) bool {
	_, _ = fmt.Fprint(cmd.OutOrStdout(), prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
