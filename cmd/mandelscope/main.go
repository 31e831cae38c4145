package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/mandelscope/internal/config"
	"github.com/san-kum/mandelscope/internal/fractal"
	"github.com/san-kum/mandelscope/internal/palette"
	"github.com/san-kum/mandelscope/internal/raster"
	"github.com/san-kum/mandelscope/internal/storage"
	"github.com/san-kum/mandelscope/internal/tui"
	"github.com/san-kum/mandelscope/internal/view"
)

const defaultConfigFile = "mandelscope.yaml"

var (
	configFile string
	outFile    string
	widthPx    int
	heightPx   int
	schemeName string
	regionName string
	centerRe   float64
	centerIm   float64
	span       float64
	iterCap    int
)

// main is the entry point for the mandelscope CLI; it registers commands
// and flags, launches the interactive explorer when no subcommand is
// given, and exits with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "mandelscope",
		Short: "terminal mandelbrot explorer",
		RunE:  runExplore,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive explorer",
		RunE:  runExplore,
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a region to a PNG file",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "mandelbrot.png", "output file")
	renderCmd.Flags().IntVar(&widthPx, "width", 0, "image width in pixels")
	renderCmd.Flags().IntVar(&heightPx, "height", 0, "image height in pixels")
	renderCmd.Flags().StringVar(&schemeName, "scheme", "", "color scheme")
	renderCmd.Flags().StringVar(&regionName, "region", "", "landmark name (overrides center/span)")
	renderCmd.Flags().Float64Var(&centerRe, "center-re", -0.5, "region center, real part")
	renderCmd.Flags().Float64Var(&centerIm, "center-im", 0.0, "region center, imaginary part")
	renderCmd.Flags().Float64Var(&span, "span", 4.0, "region width in plane units")
	renderCmd.Flags().IntVar(&iterCap, "iters", 0, "iteration cap (0 = size policy)")

	landmarksCmd := &cobra.Command{
		Use:   "landmarks",
		Short: "list the named regions",
		RunE:  listLandmarks,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark scan throughput over the landmark regions",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&widthPx, "width", 320, "grid width in pixels")
	benchCmd.Flags().IntVar(&heightPx, "height", 240, "grid height in pixels")
	benchCmd.Flags().IntVar(&iterCap, "iters", 0, "iteration cap (0 = size policy)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved snapshots",
		RunE:  listSnapshots,
	}

	rootCmd.AddCommand(exploreCmd, renderCmd, landmarksCmd, benchCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file named by --config, or the default
// location when unset. A missing file at the default location is not an
// error; an explicit path must exist.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return config.DefaultConfig(), nil
		}
		path = defaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// CLI flags override config
	if !cmd.Flags().Changed("width") {
		widthPx = cfg.Width
	}
	if !cmd.Flags().Changed("height") {
		heightPx = cfg.Height
	}
	if !cmd.Flags().Changed("scheme") {
		schemeName = cfg.Scheme
	}
	if !cmd.Flags().Changed("iters") {
		iterCap = cfg.MaxIters
	}

	if widthPx <= 0 || heightPx <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", widthPx, heightPx)
	}
	if iterCap < 0 {
		return fmt.Errorf("iteration cap must be non-negative, got %d", iterCap)
	}

	scheme, err := palette.ForName(schemeName)
	if err != nil {
		return err
	}

	vp := view.Viewport{CenterRe: centerRe, CenterIm: centerIm, Width: span, Height: span}
	if regionName != "" {
		mark, ok := view.LandmarkByName(regionName)
		if !ok {
			return fmt.Errorf("unknown region: %s", regionName)
		}
		vp = mark.View
	}
	vp = vp.Fit(float64(widthPx) / float64(heightPx))
	if !vp.Valid() {
		return fmt.Errorf("invalid region: center (%g, %g) span %g", vp.CenterRe, vp.CenterIm, vp.Width)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	eng := fractal.NewEngine(widthPx, heightPx)
	scan := eng.Begin(vp, uint32(iterCap))

	fmt.Fprintf(cmd.OutOrStdout(), "scanning %dx%d at %d iterations...\n", widthPx, heightPx, scan.MaxIters())

	outcome, _ := scan.Run(ctx)
	if outcome == fractal.Cancelled {
		fmt.Fprintln(cmd.OutOrStdout(), "render cancelled")
		return nil
	}

	img := raster.Render(eng.Grid(), scheme)
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return err
	}

	sum := fractal.Summarize(eng.Grid())
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s in %v (%d pixels, %d interior)\n",
		outFile, scan.Elapsed().Round(time.Millisecond), sum.Scanned, sum.Interior)
	return nil
}

func listLandmarks(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tNAME\tTITLE\tCENTER\tSPAN")

	for i, mark := range view.Landmarks() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.6g%+.6gi\t%.3g\n",
			i+1,
			mark.Name,
			mark.Title,
			mark.View.CenterRe,
			mark.View.CenterIm,
			mark.View.Width,
		)
	}

	return w.Flush()
}

func runBench(cmd *cobra.Command, args []string) error {
	if widthPx <= 0 || heightPx <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", widthPx, heightPx)
	}
	if iterCap < 0 {
		return fmt.Errorf("iteration cap must be non-negative, got %d", iterCap)
	}

	// One engine for the whole matrix; every region reuses its arrays.
	eng := fractal.NewEngine(widthPx, heightPx)
	aspect := float64(widthPx) / float64(heightPx)
	marks := view.Landmarks()

	fmt.Fprintf(cmd.OutOrStdout(), "scanning %d regions at %dx%d\n\n", len(marks), widthPx, heightPx)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "REGION\tITERS\tPIXELS/SEC\tITER/SEC\tELAPSED")

	for _, mark := range marks {
		scan := eng.Begin(mark.View.Fit(aspect), uint32(iterCap))
		if _, err := scan.Run(cmd.Context()); err != nil {
			return err
		}

		sum := fractal.Summarize(eng.Grid())
		secs := scan.Elapsed().Seconds()

		fmt.Fprintf(w, "%s\t%d\t%.0f\t%.0f\t%v\n",
			mark.Name,
			scan.MaxIters(),
			float64(sum.Scanned)/secs,
			float64(sum.Iterations)/secs,
			scan.Elapsed().Round(time.Millisecond),
		)
	}

	return w.Flush()
}

func listSnapshots(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	snaps, err := storage.New(cfg.OutDir).List()
	if err != nil {
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no snapshots found")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tCENTER\tSPAN\tSCHEME\tITERS\tSIZE")

	for _, snap := range snaps {
		fmt.Fprintf(w, "%s\t%s\t%.6g%+.6gi\t%.3g\t%s\t%d\t%dx%d\n",
			snap.ID,
			snap.Timestamp.Format("2006-01-02 15:04:05"),
			snap.CenterRe,
			snap.CenterIm,
			snap.SpanRe,
			snap.Scheme,
			snap.MaxIters,
			snap.Cols,
			snap.Rows,
		)
	}

	return w.Flush()
}
