package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/logx"
	"storefront/internal/server"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Supplement storefront and admin console",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(newServeCmd(), newNormalizeCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logx.Init(logx.LoggerOpts{Environment: cfg.Environment()})

	srv, cleanup, err := server.NewServer(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		logx.Info().Str("addr", srv.Addr).Str("upstream", cfg.UpstreamURL).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-quit:
	}

	logx.Info().Msg("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logx.Error().Err(err).Msg("server shutdown")
	}
	logx.Info().Msg("server exiting")
	return nil
}

type normalizeReport struct {
	Shape    string      `json:"shape"`
	Key      string      `json:"key,omitempty"`
	Records  int         `json:"records"`
	Products interface{} `json:"products"`
}

func newNormalizeCmd() *cobra.Command {
	var present bool
	cmd := &cobra.Command{
		Use:   "normalize <file|->",
		Short: "Detect the shape of a saved product payload and print the normalized products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), payload, present)
		},
	}
	cmd.Flags().BoolVar(&present, "present", false, "include prices, badges and stock labels as shown on the storefront")
	return cmd
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}
	return data, nil
}

func writeReport(w io.Writer, payload []byte, present bool) error {
	det := catalog.DetectShape(payload)
	products := catalog.Normalize(payload)

	report := normalizeReport{
		Shape:    det.Shape.String(),
		Key:      det.Key,
		Records:  len(det.Records),
		Products: products,
	}
	if present {
		report.Products = catalog.PresentAll(products)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
