package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravpot/internal/config"
	"github.com/san-kum/gravpot/internal/export"
	"github.com/san-kum/gravpot/internal/orbit"
	"github.com/san-kum/gravpot/internal/parse"
	"github.com/san-kum/gravpot/internal/potential"
	"github.com/san-kum/gravpot/internal/render"
	"github.com/san-kum/gravpot/internal/tui"
)

var (
	valuesStr  string
	gm         float64
	rMin       float64
	rMax       float64
	points     int
	newtonian  bool
	autoY      bool
	yMin       float64
	yMax       float64
	outPath    string
	configFile string
	preset     string
	// Terminal chart size
	graphWidth  int
	graphHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravpot",
		Short: "schwarzschild effective potential lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return runTUI(cmd, []string{config.ModeMassive})
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [massive|photon]",
		Short: "plot potential curves in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	addCurveFlags(plotCmd)
	plotCmd.Flags().IntVar(&graphWidth, "width", 80, "chart width")
	plotCmd.Flags().IntVar(&graphHeight, "height", 15, "chart height")

	extremaCmd := &cobra.Command{
		Use:   "extrema",
		Short: "circular orbit radii per angular momentum",
		RunE:  runExtrema,
	}
	addCurveFlags(extremaCmd)

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "photon capture/escape regimes per impact parameter",
		RunE:  runClassify,
	}
	addCurveFlags(classifyCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [massive|photon]",
		Short: "export sampled curves to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCSV,
	}
	addCurveFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [massive|photon]",
		Short: "export curves and annotations to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportJSON,
	}
	addCurveFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [massive|photon]",
		Short: "export curves to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportSVG,
	}
	addCurveFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&graphWidth, "width", 1200, "svg width")
	exportSVGCmd.Flags().IntVar(&graphHeight, "height", 700, "svg height")

	tuiCmd := &cobra.Command{
		Use:   "tui [massive|photon]",
		Short: "interactive potential explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTUI,
	}
	addCurveFlags(tuiCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets [massive|photon]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := normalizeMode(args[0])
			if err != nil {
				return err
			}
			presets := config.ListPresets(mode)
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", mode)
				return nil
			}
			fmt.Printf("presets for %s:\n", mode)
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(plotCmd, extremaCmd, classifyCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, tuiCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addCurveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&valuesStr, "values", "", "comma-separated l or b values")
	cmd.Flags().Float64Var(&gm, "gm", config.DefaultGM, "gravitational mass parameter")
	cmd.Flags().Float64Var(&rMin, "rmin", 0, "radial window start (mode default if unset)")
	cmd.Flags().Float64Var(&rMax, "rmax", 0, "radial window end (mode default if unset)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "grid points")
	cmd.Flags().BoolVar(&newtonian, "newton", false, "overlay newtonian potential")
	cmd.Flags().BoolVar(&autoY, "auto-y", false, "automatic y-axis range")
	cmd.Flags().Float64Var(&yMin, "ymin", 0, "y-axis minimum (mode default if unset)")
	cmd.Flags().Float64Var(&yMax, "ymax", 0, "y-axis maximum (mode default if unset)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func normalizeMode(arg string) (string, error) {
	switch arg {
	case config.ModeMassive, config.ModePhoton:
		return arg, nil
	default:
		return "", fmt.Errorf("unknown mode: %s (want massive or photon)", arg)
	}
}

// resolveConfig layers preset, config file and CLI flags over the mode
// defaults. Flags win over the file, the file over the preset.
func resolveConfig(cmd *cobra.Command, mode string) (*config.Config, error) {
	cfg := config.DefaultConfig(mode)

	if preset != "" {
		pc := config.GetPreset(mode, preset)
		if pc == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(mode))
		}
		clone := *pc
		cfg = &clone
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}
	cfg.Mode = mode

	flags := cmd.Flags()
	if flags.Changed("values") {
		cfg.Values = valuesStr
	}
	if flags.Changed("gm") {
		cfg.GM = gm
	}
	if flags.Changed("rmin") {
		cfg.RMin = rMin
	}
	if flags.Changed("rmax") {
		cfg.RMax = rMax
	}
	if flags.Changed("points") {
		cfg.Points = points
	}
	if flags.Changed("newton") {
		cfg.Newtonian = newtonian
	}
	if flags.Changed("auto-y") {
		cfg.AutoY = autoY
	}
	if flags.Changed("ymin") {
		cfg.YMin = yMin
	}
	if flags.Changed("ymax") {
		cfg.YMax = yMax
	}

	return cfg, nil
}

// curveSet is one fully evaluated render cycle: parsed values, the grid,
// and the sampled series.
type curveSet struct {
	params   potential.Params
	grid     *potential.Grid
	values   []float64
	series   []potential.Series
	warnings []string
}

func buildCurves(cfg *config.Config) (*curveSet, error) {
	p, err := potential.NewParams(cfg.GM)
	if err != nil {
		return nil, err
	}

	values, warnings, err := parse.Require(cfg.Values)
	if err != nil {
		return nil, fmt.Errorf("%w (input: %q)", err, cfg.Values)
	}

	g, err := potential.NewGrid(cfg.RMin, cfg.RMax, cfg.Points)
	if err != nil {
		return nil, err
	}

	var series []potential.Series
	if cfg.Mode == config.ModePhoton {
		series = append(series, potential.NewSeries("schwarzschild", g, p.EffectivePhoton))
		if cfg.Newtonian {
			series = append(series, potential.NewSeries("newton", g, potential.NewtonianPhoton))
		}
	} else {
		for _, l := range values {
			l := l
			series = append(series, potential.NewSeries(
				fmt.Sprintf("l=%.4g schwarzschild", l), g,
				func(r float64) float64 { return p.EffectiveMassive(r, l) }))
			if cfg.Newtonian {
				series = append(series, potential.NewSeries(
					fmt.Sprintf("l=%.4g newton", l), g,
					func(r float64) float64 { return p.NewtonianMassive(r, l) }))
			}
		}
	}

	return &curveSet{params: p, grid: g, values: values, series: series, warnings: warnings}, nil
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Println(render.WarnStyle.Render("warning: " + w))
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	mode, err := normalizeMode(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}
	printWarnings(cs.warnings)

	if mode == config.ModePhoton {
		data := make([][]float64, 0, len(cs.series))
		for _, s := range cs.series {
			data = append(data, s.Values)
		}
		fmt.Println(render.AsciiMany(data, "photon effective potential", graphWidth, graphHeight))
		fmt.Println()
		return reportClassifications(cs)
	}

	// One chart per angular momentum; Newtonian overlays share it.
	perValue := 1
	if cfg.Newtonian {
		perValue = 2
	}
	for i, l := range cs.values {
		caption := fmt.Sprintf("l = %.4g", l)
		if perValue == 1 {
			fmt.Println(render.Ascii(cs.series[i].Values, caption, graphWidth, graphHeight))
		} else {
			data := make([][]float64, 0, perValue)
			for j := 0; j < perValue; j++ {
				data = append(data, cs.series[i*perValue+j].Values)
			}
			fmt.Println(render.AsciiMany(data, caption, graphWidth, graphHeight))
		}
		fmt.Println()
	}
	return reportExtrema(cs)
}

func reportExtrema(cs *curveSet) error {
	lm := cs.params.Landmarks()
	if potential.InWindow(lm.Horizon, cs.grid.RMin, cs.grid.RMax) {
		fmt.Printf("horizon at r=%.4g inside window\n", lm.Horizon)
	}
	fmt.Printf("critical angular momentum: %.6f\n\n", orbit.CriticalAngularMomentum(cs.params))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "L\tKIND\tR\tV")
	for _, l := range cs.values {
		ext := orbit.FindExtrema(cs.params, l, cs.grid.RMin, cs.grid.RMax)
		if len(ext) == 0 {
			fmt.Fprintf(w, "%.4g\tnone\t-\t-\n", l)
			continue
		}
		for _, e := range ext {
			fmt.Fprintf(w, "%.4g\t%s\t%.6f\t%.6f\n", l, e.Kind, e.R, e.V)
		}
	}
	return w.Flush()
}

func reportClassifications(cs *curveSet) error {
	lm := cs.params.Landmarks()
	fmt.Printf("photon sphere at r=%.4g, V_max=%.6f, b_crit=%.6f\n\n",
		lm.PhotonSphere, lm.PhotonPotentialMax, lm.CriticalImpact)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "B\tENERGY (1/B²)\tREGIME")
	for _, b := range cs.values {
		c := orbit.Classify(b, cs.params)
		fmt.Fprintf(w, "%.4g\t%.6f\t%s\n", c.B, c.Energy, render.RegimeLabel(c.Regime))
	}
	return w.Flush()
}

func runExtrema(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModeMassive)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}
	printWarnings(cs.warnings)
	return reportExtrema(cs)
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, config.ModePhoton)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}
	printWarnings(cs.warnings)
	return reportClassifications(cs)
}

func openOut() (io.WriteCloser, error) {
	if outPath == "" {
		return os.Stdout, nil
	}
	return os.Create(outPath)
}

func closeOut(w io.WriteCloser) {
	if w != os.Stdout {
		w.Close()
	}
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	mode, err := normalizeMode(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}

	w, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut(w)
	return export.CSV(w, cs.grid, cs.series)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	mode, err := normalizeMode(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}

	doc := export.NewDocument(mode, cs.params, cs.grid, cs.series, cs.warnings)
	if mode == config.ModePhoton {
		for _, b := range cs.values {
			doc.AddClassification(orbit.Classify(b, cs.params))
		}
	} else {
		for _, l := range cs.values {
			doc.AddExtrema(l, orbit.FindExtrema(cs.params, l, cs.grid.RMin, cs.grid.RMax))
		}
	}

	w, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut(w)
	return export.JSON(w, doc)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	mode, err := normalizeMode(args[0])
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}
	cs, err := buildCurves(cfg)
	if err != nil {
		return err
	}

	lo, hi := cfg.YMin, cfg.YMax
	if cfg.AutoY {
		lo, hi = export.AutoYRange(cs.series)
	}
	svg := export.SVG(cs.grid, cs.series, cs.params.Landmarks(), lo, hi, graphWidth, graphHeight)

	w, err := openOut()
	if err != nil {
		return err
	}
	defer closeOut(w)
	_, err = io.WriteString(w, svg)
	return err
}

func runTUI(cmd *cobra.Command, args []string) error {
	mode := config.ModeMassive
	if len(args) > 0 {
		var err error
		mode, err = normalizeMode(args[0])
		if err != nil {
			return err
		}
	}
	cfg, err := resolveConfig(cmd, mode)
	if err != nil {
		return err
	}

	m, err := tui.NewModel(cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
