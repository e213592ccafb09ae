package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/spf13/cobra"
)

func (c *cli) newRenderCmd() *cobra.Command {
	var specPath, out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart spec file",
		Long: `Render a chart described by a JSON spec file.

Example spec:
{
  "title": "Pump bearing",
  "frequency_limits": [1, 1000],
  "velocity_limits": [1e-4, 1],
  "grid": {"major": true},
  "series": [
    {"name": "axial", "quantity": "velocity",
     "points": [{"frequency": 10, "value": 0.002},
                {"frequency": 100, "value": 0.005}]}
  ],
  "zones": [{"quantity": "acceleration", "above": 10}]
}

Values are SI: Hz, m/s, m and m/s².`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readSpec(specPath)
			if err != nil {
				return err
			}
			return c.write(cmd, spec, out)
		},
	}

	cmd.Flags().StringVarP(&specPath, "spec", "s", "", "JSON chart spec file (- for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "nomogram.png", "output file")
	_ = cmd.MarkFlagRequired("spec")
	return cmd
}

func readSpec(path string) (*models.ChartSpec, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read spec: %w", err)
	}

	var spec models.ChartSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to parse spec %s: %w", path, err)
	}
	return &spec, nil
}
