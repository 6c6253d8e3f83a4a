package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andareed/siftly-timepick/config"
	"github.com/andareed/siftly-timepick/logging"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "sftime",
		Short:        "Pick a time or a time range in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./sftime.yaml)")
	config.RegisterFlags(root.Flags())

	root.AddCommand(newVersionCmd(), newShowCmd(&cfgFile))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Version:", Version)
		},
	}
}

func newShowCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show [file]",
		Short: "Print a saved selection",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultSavePath
			if len(args) == 1 {
				path = args[0]
			} else if cfg, err := loadConfig(*cfgFile, cmd.Flags()); err == nil {
				path = cfg.SavePath
			}
			sel, err := LoadSelection(path)
			if err != nil {
				return fmt.Errorf("show %s: %w", path, err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "format: %s\n", sel.Format)
			fmt.Fprintf(out, "time:   %s\n", orNone(sel.Time))
			fmt.Fprintf(out, "range:  %s\n", orNone(strings.Join(sel.Range, " - ")))
			fmt.Fprintf(out, "saved:  %s\n", sel.SavedAt.Format("2006-01-02 15:04:05Z07:00"))
			return nil
		},
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func loadConfig(path string, fs *pflag.FlagSet) (*config.Config, error) {
	v, err := config.New(path)
	if err != nil {
		return nil, err
	}
	if err := config.BindFlags(v, fs); err != nil {
		return nil, err
	}
	return config.Load(v)
}

func run(cfg *config.Config) error {
	cleanup, err := logging.SetupLogging(cfg.Debug)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer cleanup()

	log.Println("sftime: Started")

	if _, err := tea.NewProgram(newModel(cfg), tea.WithAltScreen()).Run(); err != nil {
		log.Printf("Tea program error: %v", err)
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
