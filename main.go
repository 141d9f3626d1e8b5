package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/andareed/siftly-sheetchart/config"
	"github.com/andareed/siftly-sheetchart/logging"
)

var Version = "dev"

var (
	logFile    string
	configPath string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheetchart [file.xlsx|file.xls|file.csv]",
		Short: "Zoomable terminal charts for spreadsheet time series",
		Long: `sheetchart charts a spreadsheet in the terminal. The first column is the
index, the second is drawn as a line and the rest as markers on it.
Scroll to zoom, drag to pan, click the legend to hide a series.`,
		Version:      Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runTUI,
	}

	rootCmd.PersistentFlags().StringVar(&logFile, "debug", "", "Write debug logs to file")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.Path()+")")
	rootCmd.AddCommand(newRenderCmd())
	return rootCmd
}

func setup() (*config.Config, func(), error) {
	cleanup, err := logging.SetupLogging(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return cfg, cleanup, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("sheetchart needs an interactive terminal; use 'sheetchart render' to write a PNG")
	}

	cfg, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	logging.Infof("sheetchart %s: Started", Version)

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	m, err := newModel(cfg, path)
	if err != nil {
		return err
	}
	defer m.zones.Close()

	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		logging.Errorf("Tea program error: %v", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
