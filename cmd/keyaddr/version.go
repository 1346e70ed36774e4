package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weisyn/keyaddr/internal/app/version"
	"github.com/weisyn/keyaddr/internal/cli/output"
)

// newVersionCmd 版本信息
func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "显示版本信息",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.formatter.Format() == output.FormatPretty {
				_, err := fmt.Fprintln(c.out, version.GetFullVersion())
				return err
			}
			return c.formatter.Print(version.GetBuildInfo())
		},
	}
}
