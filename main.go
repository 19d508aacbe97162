package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/goccy/go-json"
	"github.com/larynjahor/lifo/internal/config"
	"github.com/larynjahor/lifo/logging"
	"github.com/larynjahor/lifo/pkg/driver"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Fatalln(err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:           "lifo",
		Short:         "Run a JSON script of stack operations read from stdin",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			if cmd.Flags().Changed("strict") {
				cfg.Strict = strict
			}

			c := logging.Auto(cfg.Debug)
			defer c.Close()

			return run(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the YAML config")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.Flags().BoolVarP(&strict, "strict", "s", false, "stop at the first failing operation")

	return cmd
}

func run(ctx context.Context, cfg config.Config, r io.Reader, w io.Writer) error {
	var req driver.Request

	slog.Info("started lifo")
	defer slog.Info("exited lifo")

	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return err
	}

	resp, err := driver.New(cfg).Do(ctx, &req)
	if err != nil {
		if werr := writeResponse(w, resp); werr != nil {
			slog.Error("failed to write partial response", slog.Any("err", werr))
		}

		return err
	}

	return writeResponse(w, resp)
}

func writeResponse(w io.Writer, resp *driver.Response) error {
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return err
	}

	return nil
}
