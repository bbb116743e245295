package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/weave/internal/core/domain"
)

// projectArg returns the project named on the command line, or "" to select the default
// project.
func projectArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("platform", "p", "", "Target platform (windows, osx, linux, android, ios, webgl, uwp, lumin)")
	cmd.Flags().StringP("tag", "t", "", "Target variant tag")
}

// targetFromFlags returns the target selected by --platform and --tag, or nil when
// neither is set. A tag without a platform applies to the default platform.
func targetFromFlags(cmd *cobra.Command) (*domain.ProjectTarget, error) {
	platform, _ := cmd.Flags().GetString("platform")
	tag, _ := cmd.Flags().GetString("tag")
	if platform == "" && tag == "" {
		return nil, nil //nolint:nilnil // no target selected
	}

	p := domain.DefaultPlatform
	if platform != "" {
		var err error
		if p, err = domain.ParsePlatform(platform); err != nil {
			return nil, err
		}
	}
	t := domain.NewProjectTarget(p, tag)
	return &t, nil
}
