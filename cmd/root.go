// Package cmd wires the application together and runs it.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AsthaPitambarwale/music-mood-dj/conf"
	"github.com/AsthaPitambarwale/music-mood-dj/log"
)

var rootCmd = &cobra.Command{
	Use:   "music-mood-dj",
	Short: "Mood-based playlist server",
	Long:  "Serves the music-mood-dj API: track uploads, LLM-assisted mood playlists and play statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := conf.Load(); err != nil {
			return err
		}
		log.SetLevel(conf.Server.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
	SilenceUsage: true,
}

// Execute runs the root command until interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("Startup failed", err)
		os.Exit(1)
	}
}

func runServer(ctx context.Context) error {
	return CreateServer().Run(ctx)
}
