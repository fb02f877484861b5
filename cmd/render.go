package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// renderOptions holds the render command flags
type renderOptions struct {
	scene   string
	out     string
	format  string
	width   int
	aspect  float64
	samples int
	depth   int
	seed    int64
	watch   bool

	// Set for flags given explicitly on the command line
	overrideWidth, overrideAspect, overrideSamples, overrideDepth bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	renderCmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a built-in scene or a YAML scene file",
		Long: `Render a scene and write the image. The scene argument is a built-in scene
name (see "weekend scenes") or a path to a .yaml scene file. Without --out the
image is written to stdout as plain PPM.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.scene = "two-spheres"
			if len(args) == 1 {
				opts.scene = args[0]
			}
			flags := cmd.Flags()
			opts.overrideWidth = flags.Changed("width")
			opts.overrideAspect = flags.Changed("aspect")
			opts.overrideSamples = flags.Changed("samples")
			opts.overrideDepth = flags.Changed("depth")

			if opts.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return watchAndRender(ctx, opts, cmd.OutOrStdout())
			}
			return renderToOutput(opts, cmd.OutOrStdout())
		},
	}

	flags := renderCmd.Flags()
	flags.StringVarP(&opts.out, "out", "o", "", "output image path (stdout when empty)")
	flags.StringVarP(&opts.format, "format", "f", "", "image format: ppm, ppm-binary, png or bmp (default from --out extension)")
	flags.IntVarP(&opts.width, "width", "w", 400, "image width in pixels")
	flags.Float64Var(&opts.aspect, "aspect", 16.0/9.0, "image aspect ratio (width / height)")
	flags.IntVarP(&opts.samples, "samples", "s", 100, "samples per pixel")
	flags.IntVarP(&opts.depth, "depth", "d", 50, "maximum bounces per path")
	flags.Int64Var(&opts.seed, "seed", 1, "random seed for scene generation and sampling")
	flags.BoolVar(&opts.watch, "watch", false, "re-render whenever the scene file changes")

	return renderCmd
}

// resolveFormat picks the output format from the flag or the output path
func (opts *renderOptions) resolveFormat() (output.Format, error) {
	if opts.format != "" {
		return output.ParseFormat(opts.format)
	}
	if opts.out == "" {
		return output.FormatPPM, nil
	}
	return output.FormatFromPath(opts.out)
}

// applyOverrides copies explicitly set flags into the scene camera
func (opts *renderOptions) applyOverrides(config *renderer.CameraConfig) {
	if opts.overrideWidth {
		config.ImageWidth = opts.width
	}
	if opts.overrideAspect {
		config.AspectRatio = opts.aspect
	}
	if opts.overrideSamples {
		config.SamplesPerPixel = opts.samples
	}
	if opts.overrideDepth {
		config.MaxDepth = opts.depth
	}
}

// renderToOutput renders once to --out, or to stdout when no path is set
func renderToOutput(opts *renderOptions, stdout io.Writer) error {
	format, err := opts.resolveFormat()
	if err != nil {
		return err
	}

	var w io.Writer = stdout
	if opts.out != "" {
		if err := os.MkdirAll(filepath.Dir(opts.out), 0o755); err != nil {
			return errors.Wrap(err, "create output directory")
		}
		f, err := os.Create(opts.out)
		if err != nil {
			return errors.Wrap(err, "create output file")
		}
		defer f.Close()
		w = f
	}

	sink, err := output.NewWriter(format, w)
	if err != nil {
		return err
	}

	stats, err := renderScene(opts, sink)
	if err != nil {
		return err
	}

	if opts.out != "" {
		logger.Noticef("wrote %s (%s)", opts.out, format)
	}
	logger.Noticef("render statistics\n%s", formatRenderStats(stats))
	return nil
}

// renderScene loads the scene, builds the BVH and renders into sink
func renderScene(opts *renderOptions, sink renderer.PixelSink) (renderer.RenderStats, error) {
	s, err := scene.Load(opts.scene, core.NewSeededSampler(opts.seed))
	if err != nil {
		return renderer.RenderStats{}, err
	}
	opts.applyOverrides(&s.Camera)

	world := s.BuildWorld(core.NewSeededSampler(opts.seed + 1))
	logger.Infof("scene %q: %d shapes, BVH %+v", s.Name, s.GetPrimitiveCount(), world.Stats())

	rt, err := renderer.NewRaytracer(world, s.Camera, s.Background, core.NewSeededSampler(opts.seed+2))
	if err != nil {
		return renderer.RenderStats{}, err
	}
	return rt.Render(sink)
}

// formatRenderStats renders the statistics as a table
func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"Resolution", fmt.Sprintf("%dx%d", stats.Width, stats.Height)},
		{"Samples per pixel", fmt.Sprintf("%d", stats.SamplesPerPixel)},
		{"Camera rays", fmt.Sprintf("%d", stats.TotalSamples)},
		{"Ray segments", fmt.Sprintf("%d", stats.RaySegments)},
		{"Avg segments per ray", fmt.Sprintf("%.2f", stats.AverageBounces())},
		{"Escaped to sky", fmt.Sprintf("%d", stats.Escaped)},
		{"Absorbed", fmt.Sprintf("%d", stats.Absorbed)},
		{"Depth exhausted", fmt.Sprintf("%d", stats.DepthExhausted)},
		{"Samples per second", fmt.Sprintf("%.0f", stats.SamplesPerSecond())},
	})
	table.SetFooter([]string{"Render time", stats.Duration.String()})
	table.Render()
	return buf.String()
}
