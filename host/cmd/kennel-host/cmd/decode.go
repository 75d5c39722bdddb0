package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kennel/host/monitor"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <capture-file>",
	Short: "Replay a captured console log through the frame decoder",
	Long: `decode reads a file of captured console output (for example from a
terminal emulator session), verifies every report frame, and prints the
restart table it reconstructs. Useful for post-mortems without the board
attached.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open capture: %w", err)
	}
	defer f.Close()

	log := newLogger()
	history := monitor.NewHistory()
	mon := monitor.New(log, history, nil)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		mon.ProcessLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read capture: %w", err)
	}

	printSession(history)
	return nil
}
