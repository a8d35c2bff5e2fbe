// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the manuscript CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/manuscript/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger carries debug diagnostics; --verbose lowers its level.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// rootCmd is the base command for the manuscript CLI.
var rootCmd = &cobra.Command{
	Use:   "manuscript",
	Short: "Reformat Korean manuscript text files",
	Long: `manuscript cleans up manuscript drafts for publishing. It strips editorial
placeholder lines, keeps the #제목, #본문, #댓글 and #태그 section markers,
rewraps body and comment text into short paragraphs, and replaces photo
references with numbered (사진N) placeholders.

Reformatted copies are written next to the originals under a name that
never overwrites an existing file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./manuscript.yaml or ~/.config/manuscript/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-file diagnostics to stderr")
}

func initConfig() {
	setDefaults(viper.GetViper())

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("manuscript")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "manuscript"))
		}
	}

	viper.SetEnvPrefix("MANUSCRIPT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers the built-in configuration values.
func setDefaults(v *viper.Viper) {
	def := types.DefaultReformatConfig()
	v.SetDefault("reformat.body_width", def.BodyWidth)
	v.SetDefault("reformat.comment_width", def.CommentWidth)
	v.SetDefault("reformat.min_lines", def.MinLines)
	v.SetDefault("reformat.max_lines", def.MaxLines)
	v.SetDefault("reformat.width_mode", string(def.WidthMode))
	v.SetDefault("batch.progress_every", types.DefaultProgressEvery)
	v.SetDefault("batch.encoding", "utf-8")
	v.SetDefault("batch.output_dir", "")
	v.SetDefault("batch.continue_on_error", false)
}

// loadConfig decodes the merged defaults, config file, environment and
// flags.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Reformat.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
