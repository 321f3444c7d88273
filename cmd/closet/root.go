package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"closet/internal/closet"
	"closet/internal/config"
	"closet/internal/telemetry"
	"closet/internal/ui"
)

const version = "0.1.0"

// shutdownTimeout bounds the final span flush on exit.
const shutdownTimeout = 5 * time.Second

func newRootCmd() *cobra.Command {
	v := config.New()
	var configFile string

	cmd := &cobra.Command{
		Use:           "closet",
		Short:         "Closet Manager keeps track of your clothes",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a config.yaml")
	flags.Bool("alt-screen", true, "run in the terminal's alternate screen")
	flags.String("log-file", "", "append debug logs to this file")
	flags.String("trace-endpoint", "", "OTLP/HTTP collector host:port (empty disables tracing)")
	bindFlag(v, cmd, config.KeyAltScreen, "alt-screen")
	bindFlag(v, cmd, config.KeyLogFile, "log-file")
	bindFlag(v, cmd, config.KeyTraceEndpoint, "trace-endpoint")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func bindFlag(v *viper.Viper, cmd *cobra.Command, key, name string) {
	if err := v.BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %q: %v", name, err))
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "closet v%s\n", version)
		},
	}
}

func run(ctx context.Context, cfg config.Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "closet")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	shutdown, err := telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    cfg.Trace.Insecure,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			log.Printf("telemetry: shutdown: %v", err)
		}
	}()

	m := closet.NewManager()
	m.Subscribe(logChange)

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(ui.NewAppModel(m).AsTeaModel(), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func logChange(c closet.Change) {
	log.Printf("closet: %s item=%d open=%v items=%d status=%q",
		c.Op, c.ItemID, c.Closet.IsOpen, len(c.Closet.Clothes), c.Status)
}
