package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"co2sensor/host/logger"
	"co2sensor/host/monitor"
	"co2sensor/host/serial"
)

var (
	device      string
	baud        int
	readTimeout int
	logLevel    string
	metricsAddr string

	rootCmd = &cobra.Command{
		Use:   "co2sensor-monitor",
		Short: "Follow the firmware log stream.",
		Long: `Reads the firmware's log lines from its USB serial port and prints them.

Temperature reports are exported as prometheus metrics when --metrics-addr is set.
The command exits with the firmware's EXIT status, or 101 after a PANIC.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
)

// exitError carries a firmware exit status out of RunE.
type exitError struct {
	status int
}

func (e exitError) Error() string {
	return fmt.Sprintf("firmware exited with status %d", e.status)
}

func init() {
	defaults := serial.DefaultConfig("/dev/ttyACM0")

	rootCmd.Flags().StringVarP(&device, "device", "d", defaults.Device, "serial device path")
	rootCmd.Flags().IntVarP(&baud, "baud", "b", defaults.Baud, "baud rate (ignored for USB CDC)")
	rootCmd.Flags().IntVar(&readTimeout, "read-timeout", defaults.ReadTimeout, "serial read timeout in milliseconds")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "debug", "host log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
}

func run(cmd *cobra.Command, _ []string) error {
	lvl, ok := logger.ParseLogLevel(logLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", logLevel)
	}
	logger.SetLevel(lvl)
	log := logger.Logger()
	defer log.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	port, err := monitor.Connect(&serial.Config{
		Device:      device,
		Baud:        baud,
		ReadTimeout: readTimeout,
	})
	if err != nil {
		return err
	}
	defer port.Close()

	log.Infof("following %s", device)

	metrics := monitor.NewMetrics()
	if metricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, metricsAddr); err != nil {
				log.Errorw("metrics server stopped", "error", err)
			}
		}()
	}

	status, err := monitor.New(log, metrics).Run(ctx, port)
	if err != nil {
		return err
	}
	if status != monitor.ExitCodeSuccess {
		return exitError{status: status}
	}
	return nil
}

// exitCode maps the error returned by the root command to a process status.
func exitCode(err error) int {
	if err == nil {
		return monitor.ExitCodeSuccess
	}
	var exit exitError
	if errors.As(err, &exit) {
		return exit.status
	}
	return monitor.ExitCodeFailure
}

func main() {
	err := rootCmd.ExecuteContext(context.Background())
	var exit exitError
	if err != nil && !errors.As(err, &exit) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}
