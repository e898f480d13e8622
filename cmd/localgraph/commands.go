package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/placewise/localgraph/config"
	"github.com/placewise/localgraph/graph"
	"github.com/placewise/localgraph/location"
	"github.com/placewise/localgraph/schema"
	"github.com/placewise/localgraph/server"
)

// buildContext resolves the render context for a page target: "archive" or
// "location <id>".
func buildContext(ctx context.Context, opts *config.Options, store *location.FileStore, args []string) (*schema.Context, error) {
	rep := schema.ParseRepresentation(opts.Site.Represents)

	switch args[0] {
	case "archive":
		return schema.ArchivePageContext(opts.Site.URL, rep), nil
	case "location":
		if len(args) < 2 {
			return nil, fmt.Errorf("location target requires an id")
		}
		rec, err := store.ByID(ctx, args[1])
		if err != nil {
			return nil, err
		}
		if rec == nil || !rec.Published() {
			return nil, fmt.Errorf("no published location with id %q", args[1])
		}
		return schema.LocationPageContext(opts.Site.URL, rec, rep), nil
	default:
		return nil, fmt.Errorf("unknown target %q (want \"archive\" or \"location <id>\")", args[0])
	}
}

func openStore(opts *config.Options) (*location.FileStore, error) {
	store, err := location.NewFileStore(opts.LocationsFile, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("open locations: %w", err)
	}
	return store, nil
}

func renderCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "render {archive | location <id>}",
		Short: "Assemble and print the JSON-LD graph for a page",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(flags)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rctx, err := buildContext(ctx, opts, store, args)
			if err != nil {
				return err
			}

			assembler := schema.NewAssembler(opts, store, schema.WithLogger(slog.Default()))
			g, err := assembler.Assemble(ctx, rctx)
			if err != nil {
				return fmt.Errorf("assemble graph: %w", err)
			}

			data, err := g.JSON()
			if err != nil {
				return fmt.Errorf("serialize graph: %w", err)
			}
			fmt.Println(string(data))
			return nil
		},
	}
}

func serveCmd(flags *rootFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the structured-data preview server",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(flags)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			watcher, err := location.NewWatcher(location.WatcherConfig{
				Store:  store,
				Path:   opts.LocationsFile,
				Logger: slog.Default(),
			})
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			if err := watcher.Start(ctx); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Stop()

			srv := server.New(server.Config{
				Addr:   addr,
				Logger: slog.Default(),
			}, opts, store)

			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	return cmd
}

func publishCmd(flags *rootFlags) *cobra.Command {
	var natsURL string

	cmd := &cobra.Command{
		Use:   "publish {archive | location <id>}",
		Short: "Assemble a page graph and publish it to JetStream",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(flags)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			rctx, err := buildContext(ctx, opts, store, args)
			if err != nil {
				return err
			}

			assembler := schema.NewAssembler(opts, store, schema.WithLogger(slog.Default()))
			g, err := assembler.Assemble(ctx, rctx)
			if err != nil {
				return fmt.Errorf("assemble graph: %w", err)
			}

			url := natsURL
			if env := os.Getenv("NATS_URL"); env != "" {
				url = env
			}

			slog.Info("Connecting to NATS", "url", url)
			nc, err := nats.Connect(url, nats.Name(appName))
			if err != nil {
				return fmt.Errorf("connect to NATS: %w", err)
			}
			defer nc.Drain()

			publisher, err := graph.NewPublisher(ctx, nc)
			if err != nil {
				return err
			}
			if err := publisher.PublishPage(ctx, rctx, g); err != nil {
				return err
			}

			slog.Info("Published page graph",
				"request_id", rctx.RequestID,
				"canonical", rctx.Canonical,
				"nodes", len(g.Nodes))
			return nil
		},
	}

	cmd.Flags().StringVar(&natsURL, "nats-url", nats.DefaultURL, "NATS server URL")
	return cmd
}

func locationsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "locations",
		Short: "List the published locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(flags)
			if err != nil {
				return err
			}
			store, err := openStore(opts)
			if err != nil {
				return err
			}

			recs, err := store.Get(cmd.Context(), location.Filter{Status: location.StatusPublished})
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Println("No published locations.")
				return nil
			}
			for _, rec := range recs {
				fmt.Printf("%-12s %-30s %s\n", rec.ID, rec.Name, rec.Permalink)
			}
			return nil
		},
	}
}
