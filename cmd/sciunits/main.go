package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/san-kum/sciunits/internal/batch"
	"github.com/san-kum/sciunits/internal/config"
	"github.com/san-kum/sciunits/internal/export"
	"github.com/san-kum/sciunits/internal/viz"
	"github.com/san-kum/sciunits/pkg/converter"
	"github.com/san-kum/sciunits/pkg/quantity"
	"github.com/san-kum/sciunits/pkg/scientific"
	"github.com/spf13/cobra"
)

var (
	configFile string
	theme      string
	precision  int
	verbose    bool

	sweepTo     string
	sweepPoints int

	exportFormat string
	exportOutput string

	workers int

	cfg      *config.Config
	renderer *viz.Renderer
)

func main() {
	rootCmd := &cobra.Command{
		Use:               "sciunits",
		Short:             "physical quantity converter",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", 0, "significant digits in output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	quantitiesCmd := &cobra.Command{
		Use:   "quantities",
		Short: "list quantities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(renderer.Quantities(quantity.All()))
			return nil
		},
	}

	unitsCmd := &cobra.Command{
		Use:   "units [quantity]",
		Short: "list units of a quantity, or of every quantity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listUnits,
	}

	convertersCmd := &cobra.Command{
		Use:   "converters [quantity]",
		Short: "list converters of a quantity, or of every quantity",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listConverters,
	}

	computeCmd := &cobra.Command{
		Use:     "compute [quantity] [converter] [left] [right]",
		Short:   "apply a converter",
		Example: `  sciunits compute catalytic-activity "Amount of Substance from Time" "2 kat" "3 s"`,
		Args:    cobra.ExactArgs(4),
		RunE:    compute,
	}

	convertCmd := &cobra.Command{
		Use:     "convert [value] [unit]",
		Short:   "express a value in another unit",
		Example: `  sciunits convert "36 km/h" m/s`,
		Args:    cobra.ExactArgs(2),
		RunE:    convert,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [quantity] [converter] [left] [from]",
		Short: "plot a converter while the right operand ramps",
		Args:  cobra.ExactArgs(4),
		RunE:  sweep,
	}
	sweepCmd.Flags().StringVar(&sweepTo, "to", "", "end of the right operand ramp")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 0, "number of samples")
	_ = sweepCmd.MarkFlagRequired("to")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range cfg.PresetNames() {
				p, _ := cfg.Preset(name)
				fmt.Printf("  %-10s %s: %s, %s\n", name, p.Converter, p.Left, p.Right)
			}
			return nil
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a preset computation",
		Args:  cobra.ExactArgs(1),
		RunE:  runPreset,
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "export the converter catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return export.Write(exportOutput, exportFormat, export.Rows(converter.Default()))
		},
	}
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json, csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run every computation in a yaml batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (default: number of CPUs)")

	rootCmd.AddCommand(quantitiesCmd, unitsCmd, convertersCmd, computeCmd, convertCmd, sweepCmd, presetsCmd, runCmd, exportCmd, batchCmd)

	if err := rootCmd.Execute(); err != nil {
		if renderer != nil {
			fmt.Fprintln(os.Stderr, renderer.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

// setup loads the config file and applies flag overrides before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	slog.Debug("config loaded", "path", configFile, "theme", cfg.Theme, "precision", cfg.Precision)

	renderer = viz.NewRenderer(viz.GetTheme(cfg.Theme), cfg.Precision)
	return nil
}

func listUnits(cmd *cobra.Command, args []string) error {
	qs := quantity.All()
	if len(args) == 1 {
		q, err := quantity.ParseQuantity(args[0])
		if err != nil {
			return err
		}
		qs = []quantity.Quantity{q}
	}
	blocks := make([]string, len(qs))
	for i, q := range qs {
		blocks[i] = renderer.Units(q)
	}
	fmt.Println(renderer.Sections(blocks))
	return nil
}

func listConverters(cmd *cobra.Command, args []string) error {
	cat := converter.Default()
	qs := cat.Quantities()
	if len(args) == 1 {
		q, err := quantity.ParseQuantity(args[0])
		if err != nil {
			return err
		}
		qs = []quantity.Quantity{q}
	}
	blocks := make([]string, len(qs))
	for i, q := range qs {
		blocks[i] = renderer.Converters(q, cat.Converters(q))
	}
	fmt.Println(renderer.Sections(blocks))
	return nil
}

// findConverter accepts a converter label or its 1-based position in the list.
func findConverter(quantityName, ref string) (*converter.Converter, error) {
	q, err := quantity.ParseQuantity(quantityName)
	if err != nil {
		return nil, err
	}
	convs := converter.Default().Converters(q)

	if i, err := strconv.Atoi(ref); err == nil {
		if i < 1 || i > len(convs) {
			return nil, fmt.Errorf("%s has %d converters, no #%d", q, len(convs), i)
		}
		return convs[i-1], nil
	}
	for _, c := range convs {
		if strings.EqualFold(c.Label(), ref) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no converter %q for %s", ref, q)
}

func parseOperands(left, right string) (scientific.Value, scientific.Value, error) {
	l, err := scientific.Parse(left)
	if err != nil {
		return scientific.Value{}, scientific.Value{}, fmt.Errorf("left operand: %w", err)
	}
	r, err := scientific.Parse(right)
	if err != nil {
		return scientific.Value{}, scientific.Value{}, fmt.Errorf("right operand: %w", err)
	}
	return l, r, nil
}

func compute(cmd *cobra.Command, args []string) error {
	conv, err := findConverter(args[0], args[1])
	if err != nil {
		return err
	}
	left, right, err := parseOperands(args[2], args[3])
	if err != nil {
		return err
	}
	return show(conv, left, right)
}

func show(conv *converter.Converter, left, right scientific.Value) error {
	result, err := conv.Compute(left, right)
	if err != nil {
		return err
	}
	slog.Debug("computed", "converter", conv.Label(), "result", result.String())
	fmt.Println(renderer.Computation(conv, left, right, result))
	return nil
}

func convert(cmd *cobra.Command, args []string) error {
	v, err := scientific.Parse(args[0])
	if err != nil {
		return err
	}
	u, ok := quantity.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown unit %q", args[1])
	}
	out, err := v.ToUnit(u)
	if err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", renderer.Value(v), renderer.Value(out))
	return nil
}

func sweep(cmd *cobra.Command, args []string) error {
	conv, err := findConverter(args[0], args[1])
	if err != nil {
		return err
	}
	left, from, err := parseOperands(args[2], args[3])
	if err != nil {
		return err
	}
	to, err := scientific.Parse(sweepTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	points := cfg.Plot.Points
	if cmd.Flags().Changed("points") {
		points = sweepPoints
	}

	ys, unit, err := viz.Sweep(conv, left, from, to, points)
	if err != nil {
		return err
	}

	caption := fmt.Sprintf("%s (%s) over %s %s .. %s", conv.Result(), unit.Symbol(), conv.Partner(), from, to)
	fmt.Println(viz.Plot(ys, caption, cfg.Plot.Width, cfg.Plot.Height))
	return nil
}

func runPreset(cmd *cobra.Command, args []string) error {
	p, ok := cfg.Preset(args[0])
	if !ok {
		return fmt.Errorf("unknown preset: %s (available: %v)", args[0], cfg.PresetNames())
	}
	conv, left, right, err := p.Resolve(converter.Default())
	if err != nil {
		return fmt.Errorf("preset %s: %w", args[0], err)
	}
	return show(conv, left, right)
}

func runBatch(cmd *cobra.Command, args []string) error {
	jobs, err := batch.Load(args[0])
	if err != nil {
		return err
	}

	results, err := batch.NewRunner(converter.Default(), workers).Run(context.Background(), jobs)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		fmt.Println(r.Job.Name)
		if r.Err != nil {
			failed++
			fmt.Println(renderer.Error(r.Err))
			continue
		}
		fmt.Println(renderer.Computation(r.Converter, r.Left, r.Right, r.Value))
	}
	slog.Debug("batch finished", "jobs", len(jobs), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d computations failed", failed, len(jobs))
	}
	return nil
}
