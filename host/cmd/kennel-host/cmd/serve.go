package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/cobra"

	"kennel/host/monitor"
	"kennel/host/serial"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Watch the console and serve metrics and status over HTTP",
	Long: `serve runs the same console monitor as watch and additionally exposes
/metrics (Prometheus) and /status (JSON) for scraping long soak tests.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":9190", "HTTP listen address")
	rootCmd.AddCommand(serveCmd)
}

// statusResponse is the /status payload.
type statusResponse struct {
	Device     string               `json:"device"`
	Session    monitor.Stats        `json:"session"`
	Boots      []monitor.BootRecord `json:"boots"`
	HostOS     string               `json:"host_os"`
	HostUptime uint64               `json:"host_uptime_seconds"`
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := serial.DefaultConfig(resolveDevice())
	cfg.Baud = baud
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	defer port.Close()

	history := monitor.NewHistory()
	metrics := monitor.NewMetrics()
	mon := monitor.New(log, history, metrics)

	router := mux.NewRouter()
	router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		resp := statusResponse{
			Device:  cfg.Device,
			Session: history.Stats(),
			Boots:   history.Boots(),
		}
		if info, err := host.Info(); err == nil {
			resp.HostOS = fmt.Sprintf("%s %s", info.Platform, info.PlatformVersion)
			resp.HostUptime = info.Uptime
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}).Methods(http.MethodGet)

	server := &http.Server{Addr: listenAddr, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		port.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	go func() {
		log.Info().Str("listen", listenAddr).Msg("serving metrics and status")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("http server")
		}
	}()

	log.Info().Str("device", cfg.Device).Msg("watching")
	if err := mon.Run(ctx, port); err != nil && ctx.Err() == nil {
		return fmt.Errorf("monitor: %w", err)
	}

	printSession(history)
	return nil
}
