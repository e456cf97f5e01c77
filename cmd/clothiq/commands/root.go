package commands

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"clothiq/internal/app"
)

var (
	home       string
	catalogURL string
	backend    string
	passphrase string
	verbose    bool

	logger *zap.Logger
	wire   *app.Wire
)

// Execute runs the CLI until completion or an interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clothiq",
		Short: "Terminal clothing shop",
		Long: `clothiq browses the product catalog, keeps a cart and wishlist for the
session, and manages a single local account.

Run without arguments to open the interactive shop.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".clothiq")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if catalogURL != "" {
				cfg.Catalog.BaseURL = catalogURL
			}
			if backend != "" {
				cfg.Store.Backend = backend
			}
			if passphrase != "" {
				cfg.Store.Passphrase = passphrase
			}

			logger, err = app.NewLogger(cfg, verbose)
			if err != nil {
				return err
			}
			wire, err = app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("command start", zap.String("command", cmd.CommandPath()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if wire != nil {
				_ = wire.Close()
			}
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runShop,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&home, "home", "", "data dir (default ~/.clothiq)")
	pf.StringVar(&catalogURL, "catalog", "", "catalog base URL (default https://dummyjson.com)")
	pf.StringVar(&backend, "store", "", "local store backend: file or sqlite")
	pf.StringVarP(&passphrase, "passphrase", "p", "", "seal the file store with a passphrase")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		shopCmd(),
		signupCmd(),
		loginCmd(),
		logoutCmd(),
		profileCmd(),
		productsCmd(),
		productCmd(),
	)
	return root
}
