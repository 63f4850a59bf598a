package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vanityforge/vanityforge/internal/config"
	logpkg "github.com/vanityforge/vanityforge/internal/logger"
	"github.com/vanityforge/vanityforge/internal/ui"
	"github.com/vanityforge/vanityforge/pkg/keypair"
	"github.com/vanityforge/vanityforge/pkg/keypair/bitcoin"
	"github.com/vanityforge/vanityforge/pkg/keypair/ethereum"
	"github.com/vanityforge/vanityforge/pkg/keypair/solana"
	"github.com/vanityforge/vanityforge/pkg/keypair/tron"
	"github.com/vanityforge/vanityforge/pkg/pattern"
	"github.com/vanityforge/vanityforge/pkg/search"
)

const version = "0.1.0"

var configFile string

func main() {
	rootCmd := &cobra.Command{
		Use:     "vanityforge",
		Short:   "High-throughput vanity address generator",
		Version: version,
		Long: `vanityforge brute-forces keypairs until the derived address matches a
vanity pattern. Wildcards anchor the pattern: "dead*" is a prefix,
"*dead" a suffix, "*dead*" matches anywhere, "dead" must start and end
the address.`,
		RunE: runSearch,
	}

	rootCmd.Flags().StringP("pattern", "p", "", "Vanity pattern to search for (required)")
	rootCmd.Flags().StringP("network", "n", "ethereum", "Target network: ethereum, solana, bitcoin, tron")
	rootCmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of worker goroutines")
	rootCmd.Flags().Int("interval-ms", 250, "Progress report interval in milliseconds")
	rootCmd.Flags().StringP("save-dir", "s", "", "Directory to persist the winning keypair under (default: print only)")
	rootCmd.Flags().String("address-type", "taproot", "Bitcoin address type: taproot or legacy")
	rootCmd.Flags().StringP("log-file", "l", "", "Log file (default: stdout)")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (YAML)")

	bindings := map[string]string{
		"pattern":      "pattern",
		"network":      "network",
		"workers":      "workers",
		"interval_ms":  "interval-ms",
		"save_dir":     "save-dir",
		"address_type": "address-type",
		"log_file":     "log-file",
		"verbose":      "verbose",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	if err := config.SetupViper(configFile); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := setupLogging(cfg)
	if err != nil {
		return err
	}

	provider, err := selectProvider(cfg)
	if err != nil {
		return err
	}

	pat, err := pattern.Compile(cfg.Pattern, provider.Alphabet())
	if err != nil {
		return err
	}
	difficulty := pat.Difficulty()

	coordinator := search.New(provider,
		search.WithWorkers(cfg.Workers),
		search.WithInterval(cfg.Interval()),
		search.WithLogger(logger),
	)

	var frame atomic.Int64
	coordinator.Subscribe(func(snap search.Snapshot) {
		ui.PrintProgress(snap, difficulty, int(frame.Add(1)))
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		<-sigChan
		coordinator.Cancel()
	}()

	ui.PrintSearchInfo(provider.Name(), cfg.Pattern, cfg.Workers, difficulty)
	logger.Debugf("difficulty estimate: 1 in %d", difficulty)

	result, err := coordinator.Run(search.Request{
		Pattern:  cfg.Pattern,
		SavePath: cfg.SaveDir,
	})
	if err != nil {
		return err
	}

	ui.ClearLine()
	switch result.Outcome {
	case search.OutcomeFound:
		ui.PrintSuccess(provider.Name(), result)
	case search.OutcomeCancelled:
		ui.PrintCancelled(result)
	case search.OutcomeError:
		return result.Err
	}
	return nil
}

func selectProvider(cfg *config.Config) (keypair.Provider, error) {
	switch strings.ToLower(cfg.Network) {
	case "ethereum":
		return ethereum.New(), nil
	case "solana":
		return solana.New(), nil
	case "tron":
		return tron.New(), nil
	case "bitcoin":
		addrType, err := bitcoin.ParseAddressType(cfg.AddressType)
		if err != nil {
			return nil, err
		}
		return bitcoin.New(addrType), nil
	}
	return nil, errors.New("unsupported network: " + cfg.Network)
}

func setupLogging(cfg *config.Config) (*logpkg.Logger, error) {
	var logger *logpkg.Logger
	if cfg.LogFile != "" {
		file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logger = logpkg.NewWriter(file)
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		logger = logpkg.New()
	}
	logger.SetVerbose(cfg.Verbose)
	return logger, nil
}
