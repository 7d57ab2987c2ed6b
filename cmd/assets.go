package cmd

import (
	"fmt"

	"hotwire-demo/core/assets"
	"hotwire-demo/core/config"
	"hotwire-demo/core/logger"
	"hotwire-demo/core/storage"
	"hotwire-demo/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// assetsCmd represents the assets command
var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Manage public assets",
}

// assetsSyncCmd represents the assets sync command
var assetsSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload the embedded public assets to the storage bucket",
	Long:  `Uploads css/js from the binary to STORAGE_BUCKET under STORAGE_PREFIX so the server can run with SERVER_ASSETS_SOURCE=bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		minify, _ := cmd.Flags().GetBool("minify")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		keys, err := assets.Sync(cmd.Context(), client, web.Public(), assets.SyncOptions{
			Bucket: cfg.Storage.Bucket,
			Prefix: cfg.Storage.Prefix,
			Minify: minify,
		}, logg)
		if err != nil {
			return err
		}

		logg.Info("Assets synced",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Int("uploaded", len(keys)))
		return nil
	},
}

func init() {
	assetsSyncCmd.Flags().Bool("minify", true, "Minify css and js before upload")
	assetsCmd.AddCommand(assetsSyncCmd)
	RootCmd.AddCommand(assetsCmd)
}
