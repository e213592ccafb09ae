package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/RMahshie/vibronomogram/internal/config"
	"github.com/RMahshie/vibronomogram/internal/rendering"
	"github.com/RMahshie/vibronomogram/pkg/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cli carries the state shared by the subcommands of one invocation
type cli struct {
	v        *viper.Viper
	defaults rendering.Defaults
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "nomogram",
		Short: "Render vibration nomograms",
		Long: `Render velocity over frequency charts with constant displacement
and constant acceleration iso-lines.

Chart defaults come from RENDER_FORMAT, RENDER_WIDTH and RENDER_HEIGHT
(or a .env.<ENVIRONMENT> file) and can be overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}

			cfg, err := config.LoadFrom(c.v)
			if err != nil {
				return err
			}
			c.defaults = rendering.Defaults{
				Format:   cfg.Render.Format,
				WidthIn:  cfg.Render.WidthIn,
				HeightIn: cfg.Render.HeightIn,
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("format", "png", "image format (png, svg or pdf)")
	flags.Float64("width", 8, "image width in inches")
	flags.Float64("height", 6, "image height in inches")
	flags.BoolP("verbose", "v", false, "enable debug logging")
	_ = c.v.BindPFlag("RENDER_FORMAT", flags.Lookup("format"))
	_ = c.v.BindPFlag("RENDER_WIDTH", flags.Lookup("width"))
	_ = c.v.BindPFlag("RENDER_HEIGHT", flags.Lookup("height"))

	rootCmd.AddCommand(
		c.newRenderCmd(),
		c.newDemoCmd(),
		c.newProjectionsCmd(),
	)
	return rootCmd
}

// write renders spec to out. An explicit --format wins over the file
// extension, which wins over the configured default.
func (c *cli) write(cmd *cobra.Command, spec *models.ChartSpec, out string) error {
	format := ""
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	} else if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		format = ext
	}

	// The chosen format overrides one set in the spec file
	if format != "" {
		s := *spec
		s.Format = strings.ToLower(format)
		spec = &s
	}

	img, err := rendering.Render(spec, c.defaults)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, img.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	log.Info().Str("path", out).Str("format", img.Format).Int("bytes", len(img.Data)).Msg("Chart written")
	return nil
}
