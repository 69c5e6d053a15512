package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/theoremus-urban-solutions/campus-wayfinder/catalog"
	"github.com/theoremus-urban-solutions/campus-wayfinder/config"
	"github.com/theoremus-urban-solutions/campus-wayfinder/formatter"
	"github.com/theoremus-urban-solutions/campus-wayfinder/internal"
	"github.com/theoremus-urban-solutions/campus-wayfinder/server"
	"github.com/theoremus-urban-solutions/campus-wayfinder/stepper"
	"github.com/theoremus-urban-solutions/campus-wayfinder/wayfinding"
)

const sweepInterval = time.Minute

var (
	// Global flags
	configPath    string
	catalogSource string
	verbose       bool

	cfg    config.AppConfig
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wayfinder",
	Short: "Indoor/outdoor campus wayfinding",
	Long: `wayfinder plans multi-leg routes between rooms of a campus catalog.

A route is a sequence of indoor map views and at most one outdoor segment,
chosen by whether the rooms share a floor, a building, or neither.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadAppConfig(configPath)
		} else {
			cfg, err = config.LoadAppConfig()
			if errors.Is(err, config.ErrNotFound) {
				cfg, err = config.Default(), nil
			}
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if catalogSource != "" {
			cfg.Catalog.Source = catalogSource
		}
		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = internal.NewLogger(level)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the wayfinding HTTP API",
	RunE:  runServe,
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Print the legs between two rooms",
	Long: `Plans a single trip and prints it.

Example:
  wayfinder route --from s_7e282b843c0f8a66 --to s_411f8b3269cea1be --wheelchair`,
	RunE: runRoute,
}

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List room ids and labels",
	RunE:  runRooms,
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Write a gob snapshot of the catalog",
	RunE:  runSnapshot,
}

var (
	routeFrom       string
	routeTo         string
	routeWheelchair bool
	routeFormat     string
	routeWalk       []string
	roomsJSON       bool
	snapshotOut     string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default config.yml)")
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog", "", "catalog YAML path or URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	routeCmd.Flags().StringVar(&routeFrom, "from", "", "start room id")
	routeCmd.Flags().StringVar(&routeTo, "to", "", "end room id")
	routeCmd.Flags().BoolVar(&routeWheelchair, "wheelchair", false, "use wheelchair accessible entrances")
	routeCmd.Flags().StringVar(&routeFormat, "format", "json", "json|xml")
	routeCmd.Flags().StringSliceVar(&routeWalk, "step", nil, "stepper intents to apply in order: next,previous")

	roomsCmd.Flags().BoolVar(&roomsJSON, "json", false, "print picker options as JSON")

	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "snapshot file to write")
	_ = snapshotCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(serveCmd, routeCmd, roomsCmd, snapshotCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, err := loadCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return err
	}
	srv := server.New(cfg, catalog.NewRoomIndex(cat), logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(ctx) })
	g.Go(func() error { return srv.Sessions().RunSweeper(ctx, sweepInterval) })
	return g.Wait()
}

func runRoute(cmd *cobra.Command, args []string) error {
	if routeFormat != "json" && routeFormat != "xml" {
		return fmt.Errorf("unknown format %q", routeFormat)
	}
	cat, err := loadCatalog(cmd.Context(), cfg.Catalog, logger)
	if err != nil {
		return err
	}
	wheelchair := routeWheelchair
	if !cmd.Flags().Changed("wheelchair") {
		wheelchair = cfg.Navigation.WheelchairDefault
	}
	planner := wayfinding.NewPlanner(catalog.NewRoomIndex(cat))
	route := planner.Plan(wayfinding.Trip{StartRoomID: routeFrom, EndRoomID: routeTo, WheelchairAccess: wheelchair})
	if len(route.Legs) == 0 {
		logger.Warn("no route produced", zap.String("from", routeFrom), zap.String("to", routeTo))
	}

	st := stepper.New(route.Legs)
	for _, intent := range routeWalk {
		switch intent {
		case "next":
			st.Next()
		case "previous":
			st.Previous()
		default:
			return fmt.Errorf("unknown step %q", intent)
		}
	}
	res := formatter.WrapRoute("", route, st.State(), cat.Name)
	fmt.Fprintln(cmd.OutOrStdout(), string(formatter.NewResponseBuilder().Build(res, routeFormat)))
	return nil
}

func runRooms(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(cmd.Context(), cfg.Catalog, logger)
	if err != nil {
		return err
	}
	opts := catalog.PickerOptions(cat)
	if roomsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, o := range opts {
		fmt.Fprintf(tw, "%s\t%s\n", o.Value, o.Label)
	}
	return tw.Flush()
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	src := cfg.Catalog
	src.SnapshotPath = ""
	cat, err := loadCatalog(cmd.Context(), src, logger)
	if err != nil {
		return err
	}
	if err := catalog.SaveSnapshot(cat, snapshotOut); err != nil {
		return err
	}
	logger.Info("snapshot written", zap.String("path", snapshotOut))
	return nil
}
