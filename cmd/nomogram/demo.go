package main

import (
	"fmt"
	"strings"

	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/spf13/cobra"
)

func (c *cli) newDemoCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "demo <" + strings.Join(rendering.DemoNames(), "|") + ">",
		Short:     "Render a built-in demo chart",
		Args:      cobra.ExactArgs(1),
		ValidArgs: rendering.DemoNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := rendering.Demo(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = fmt.Sprintf("%s.png", args[0])
			}
			return c.write(cmd, spec, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default <name>.png)")
	return cmd
}
