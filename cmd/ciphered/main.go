package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tinytelemetry/ciphered/internal/terminal"
	"github.com/tinytelemetry/ciphered/internal/tui"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ciphered",
		Short: "Tabbed terminal toolbox for base64, hex, XOR and MD5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadCLIConfig(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return runTUI(cfg)
		},
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("ciphered %s\n  commit: %s\n  built:  %s\n", version, commit, buildTime))

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/ciphered/config.yml)")
	f.String("sample", "", "text the tool tabs encode")
	f.String("probe", "", "text the tool tabs try to decode")
	f.String("xor-key", "", "repeating key for the XOR tab")
	f.String("skin", "", "skin name, loaded from <config dir>/skins/<name>.yml")
	f.String("log-file", "", "write debug logs to this file")
	f.Bool("allow-non-tty", false, "run even when stdin is not a terminal")

	return cmd
}

func runTUI(cfg cliConfig) error {
	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return err
	}

	skin, err := tui.LoadSkin(cfg.Skin, cfg.ConfigDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	reg := tui.DefaultRegistry(tui.ContentOptions{
		Sample: cfg.Sample,
		Probe:  cfg.Probe,
		XORKey: cfg.XORKey,
	}, skin)
	app := tui.NewApp(reg, skin, tui.DefaultKeyMap())

	sess, err := terminal.Acquire(app, terminal.Options{AllowNonTTY: cfg.AllowNonTTY})
	if err != nil {
		closeLog()
		if terminal.IsKind(err, terminal.KindAcquire) {
			return fmt.Errorf("TUI requires a real terminal: %w", err)
		}
		return err
	}
	sess.OnRelease(closeLog)
	defer sess.Release()

	log.Printf("ciphered: starting with %d tabs, skin %q", reg.Len(), skin.Name)
	if _, err := sess.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// setupLogging sends the standard logger to path, or discards it: the
// terminal belongs to the UI while it runs.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "ciphered")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
