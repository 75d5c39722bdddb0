package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"kennel/host/monitor"
	"kennel/host/serial"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Tail the firmware console and record restart history",
	Long: `watch opens the serial console, logs firmware activity as it happens,
and prints the session's restart table on exit (Ctrl-C).`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	log := newLogger()

	cfg := serial.DefaultConfig(resolveDevice())
	cfg.Baud = baud
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("open console: %w", err)
	}
	defer port.Close()

	history := monitor.NewHistory()
	mon := monitor.New(log, history, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Closing the port is what actually unblocks the reader on Ctrl-C.
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	log.Info().Str("device", cfg.Device).Msg("watching")
	if err := mon.Run(ctx, port); err != nil && ctx.Err() == nil {
		return fmt.Errorf("monitor: %w", err)
	}

	printSession(history)
	return nil
}

// printSession renders the restart table and session counters.
func printSession(history *monitor.History) {
	boots := history.Boots()
	stats := history.Stats()

	fmt.Println()
	if len(boots) == 0 {
		fmt.Println("no firmware boots observed this session")
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Time", "Cause", "Restart Counter")
		for _, b := range boots {
			table.Append([]string{
				b.At.Format("15:04:05"),
				b.Cause.String(),
				fmt.Sprintf("%d", b.Count),
			})
		}
		table.Render()
	}

	fmt.Printf("boots=%d arms=%d kicks=%d disarms=%d hangs=%d bad_frames=%d\n",
		stats.Boots, stats.Arms, stats.Kicks, stats.Disarms, stats.Hangs, stats.BadFrames)
}
