// Package cmd implements the dashgallery command line interface.
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dashgallery/internal/config"
	"dashgallery/internal/server"
)

func init() {
	rootCmd.Flags().StringP("root", "r", "videos", "Media directory containing one folder per video")
	lo.Must0(viper.BindPFlag(config.Root, rootCmd.Flags().Lookup("root")))

	rootCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	lo.Must0(viper.BindPFlag(config.Port, rootCmd.Flags().Lookup("port")))

	rootCmd.Flags().Bool("prune", false, "Periodically remove stale files from the export staging folder")
	lo.Must0(viper.BindPFlag(config.PruneEnable, rootCmd.Flags().Lookup("prune")))
}

var rootCmd = &cobra.Command{
	Use:   config.Name,
	Short: "Serve DASH video folders to a browser player",
	Long: `dashgallery discovers video folders under a media root and serves
their DASH manifests and segments to a dash.js player, alongside an
HTML gallery and a JSON listing of everything discoverable.`,
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	setupLog()

	root := viper.GetString(config.Root)
	if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
		return fmt.Errorf("invalid media directory: %s", root)
	}

	reserved := viper.GetString(config.Reserved)
	srv := server.New(root, reserved)

	addr := fmt.Sprintf(":%d", viper.GetInt(config.Port))
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Router(),
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if viper.GetBool(config.PruneEnable) {
		pruner := &server.Pruner{
			Dir:      filepath.Join(root, reserved),
			Interval: viper.GetDuration(config.PruneInterval),
			MaxAge:   viper.GetDuration(config.PruneMaxAge),
		}
		pruner.Start(ctx)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logrus.WithFields(logrus.Fields{"addr": addr, "root": root}).Info("server listening")
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("listen failed")
		}
	}()

	<-done
	logrus.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("graceful shutdown failed")
		return httpSrv.Close()
	}
	logrus.Info("server stopped")
	return nil
}

func setupLog() {
	level, err := logrus.ParseLevel(viper.GetString(config.LogLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
