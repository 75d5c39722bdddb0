package cmd

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	device  string
	baud    int
	verbose bool
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "kennel-host",
	Short: "Host-side monitor for the kennel watchdog demo firmware",
	Long: `kennel-host tails the demo firmware's serial console, verifies and
decodes its report frames, and keeps a history of restarts with their
classified causes. The serve command additionally exposes the session
as Prometheus metrics and a JSON status endpoint.`,
}

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kennel/config)")
	rootCmd.PersistentFlags().StringVar(&device, "device", "", "serial device (default from config or /dev/ttyACM0)")
	rootCmd.PersistentFlags().IntVar(&baud, "baud", 115200, "baud rate (ignored by USB CDC consoles)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log firmware console text, not just frames")
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".kennel"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("KENNEL")
	viper.AutomaticEnv()

	// Missing config files are fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}

// resolveDevice applies the flag > config > default precedence.
func resolveDevice() string {
	if device != "" {
		return device
	}
	if v := viper.GetString("device"); v != "" {
		return v
	}
	return "/dev/ttyACM0"
}

// newLogger builds the console logger shared by all commands.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
