package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soorajms0707/soorajms/internal/config"
)

var (
	cfgFile   string
	appConfig config.Config
	logger    = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "soorajms",
	Short: "Personal portfolio site",
	Long: `soorajms renders a single-page portfolio from YAML content. It can serve
the page over HTTP, export it as static files for hosting under a sub-path,
or check the rendered page for broken in-page navigation.`,
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
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("base-path", "", "URL prefix the site is hosted under")
	rootCmd.PersistentFlags().String("content", "", "content YAML file (default is the embedded content)")
}

// flagKeys maps config keys to the flags that may override them.
var flagKeys = map[string]string{
	"basePath":    "base-path",
	"contentFile": "content",
	"port":        "port",
	"outputDir":   "out",
}

func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()

	d := config.Defaults()
	v.SetDefault("basePath", d.BasePath)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("port", d.Port)
	v.SetDefault("contentFile", d.ContentFile)
	v.SetDefault("publicDir", d.PublicDir)
	v.SetDefault("profileImage", d.ProfileImage)
	v.SetDefault("resume", d.Resume)
	v.SetDefault("logLevel", d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("port", "PORTFOLIO_PORT", "PORT"); err != nil {
		return err
	}

	for key, name := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	usedFile := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		usedFile = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	appConfig.Normalize()
	if err := appConfig.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, _ := config.ParseLevel(appConfig.LogLevel)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if usedFile != "" {
		logger.Debug("using config file", "path", usedFile)
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	return nil
}
