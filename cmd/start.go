package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hotwire-demo/core/config"
	"hotwire-demo/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the demo server",
	Long:  `Starts the HTTP server with the items and pages features and the public assets.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		store := openStore(cmd.Context(), cfg.Database, logg)

		src, err := openAssets(cfg)
		if err != nil {
			logg.Fatal("Failed to open assets", zap.Error(err))
		}

		app, err := newApp(cfg, logg, store, src)
		if err != nil {
			logg.Fatal("Failed to build app", zap.Error(err))
		}

		go func() {
			logg.Info("Server running", zap.String("url", "http://localhost:"+cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
