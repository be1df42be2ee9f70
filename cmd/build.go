package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/site"
)

var buildWatch bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the portfolio as a static site",
	Long: `The build command renders the page to index.html in the output directory,
writes one fragment per section under sections/, and copies the static assets
and images next to it. With --watch it rebuilds whenever the content document
or images change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := runBuild(ctx); err != nil {
			return err
		}
		if !buildWatch {
			return nil
		}

		log.Info("watching for changes", map[string]any{"content": appConfig.Content, "images": appConfig.Images})
		return site.Watch(ctx, []string{appConfig.Content, appConfig.Images}, site.DefaultDebounce, log, func() {
			if err := runBuild(ctx); err != nil {
				log.Error(err, "rebuild failed", nil)
			}
		})
	},
}

func runBuild(ctx context.Context) error {
	doc, err := loadDocument(appConfig, log)
	if err != nil {
		return err
	}
	_, err = site.Build(ctx, site.Options{
		Document:  doc,
		ImagesDir: appConfig.Images,
		OutputDir: appConfig.Output,
		Theme:     appConfig.DefaultTheme(),
		Motion:    appConfig.Motion,
		Logger:    log,
	})
	return err
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild on change")
	_ = v.BindPFlag("output", buildCmd.Flags().Lookup("output"))
	rootCmd.AddCommand(buildCmd)
}
