package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
)

var (
	cfgFile   string
	appConfig *config.Config
	log       *logger.Logger
)

var v = config.New()

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site rendered from one content document",
	Long: `portfolio renders a single-page personal portfolio from a JSON or YAML
content document. It can serve the page over HTTP, build it as a static site,
validate the document, or copy contact details to the terminal clipboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	flags.String("content", "", "content document (.json, .yaml)")
	flags.String("images", "", "local images directory")
	flags.Bool("strict", false, "treat content validation issues as errors")
	flags.String("log-level", "", "log level (debug, info, warn, error)")

	_ = v.BindPFlag("content", flags.Lookup("content"))
	_ = v.BindPFlag("images", flags.Lookup("images"))
	_ = v.BindPFlag("strict", flags.Lookup("strict"))
	_ = v.BindPFlag("log.level", flags.Lookup("log-level"))
}

func initializeConfig(cmd *cobra.Command) error {
	used, err := config.ReadFile(v, cfgFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	appConfig = cfg

	log, err = logger.New(logger.Options{
		Level: cfg.Log.Level,
		Human: cfg.Log.Human,
		Out:   cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if used != "" {
		log.Debug("using config file", map[string]any{"path": used})
	}
	return nil
}
