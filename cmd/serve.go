package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/prefs"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/site"
)

const prefsRetention = 365 * 24 * time.Hour

var serveWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio over HTTP",
	Long: `The serve command loads the content document and serves the composed page,
single-section fragments and the theme toggle endpoint. With --watch the
document is reloaded whenever it changes on disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		doc, err := loadDocument(appConfig, log)
		if err != nil {
			return err
		}

		var store prefs.Store = prefs.NewMemoryStore()
		if appConfig.DB != "" {
			sqlStore, err := prefs.Open(appConfig.DB)
			if err != nil {
				return err
			}
			if n, err := sqlStore.Cleanup(ctx, prefsRetention); err != nil {
				log.Error(err, "theme preference cleanup failed", nil)
			} else if n > 0 {
				log.Info("removed stale theme preferences", map[string]any{"count": n})
			}
			store = sqlStore
		}
		defer store.Close()

		srv, err := server.New(server.Options{
			Document:     doc,
			Store:        store,
			ImagesDir:    appConfig.Images,
			DefaultTheme: appConfig.DefaultTheme(),
			Motion:       appConfig.Motion,
			Mode:         appConfig.Gin.Mode,
			Logger:       log,
		})
		if err != nil {
			return err
		}

		if serveWatch {
			go func() {
				err := site.Watch(ctx, []string{appConfig.Content}, site.DefaultDebounce, log, func() {
					doc, err := loadDocument(appConfig, log)
					if err != nil {
						log.Error(err, "reload failed, keeping previous document", nil)
						return
					}
					srv.SetDocument(doc)
					log.Info("content reloaded", map[string]any{"path": appConfig.Content})
				})
				if err != nil {
					log.Error(err, "watcher stopped", nil)
				}
			}()
		}

		return srv.Run(ctx, appConfig.Addr())
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "", "port to listen on")
	serveCmd.Flags().String("db", "", "sqlite database for theme preferences")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload the content document on change")
	_ = v.BindPFlag("port", serveCmd.Flags().Lookup("port"))
	_ = v.BindPFlag("db", serveCmd.Flags().Lookup("db"))
	rootCmd.AddCommand(serveCmd)
}
