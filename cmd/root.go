/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/valpere/quicktran/internal/config"
	"github.com/valpere/quicktran/internal/logger"
	"github.com/valpere/quicktran/internal/segmenter"
)

var version = "0.1.0"

var (
	cfgFile     string
	segmentMode bool
	checkMode   bool

	v      = viper.New()
	appCfg *config.Config
	appLog = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "quicktran [flags] [--] [text...]",
	Short: "Launcher translator between Chinese and English",
	Long: `A launcher script filter that translates its arguments with a chat
completion model and prints the result as launcher JSON items.

Chinese text is translated to English, everything else to Chinese.
Long text is split at sentence boundaries and translated piece by piece.

Flags are read only before the first word of the text, so every word after
it is part of the query. Launchers should call "quicktran -- {query}" so that
a query starting with a dash is not read as a flag.

Supported backends: openai (any OpenAI-compatible endpoint), ollama, google`,
	Version:           version,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runRoot,
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	_ = appLog.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// runRoot dispatches to the mode selected by flags. Without a mode flag the
// arguments are translated.
func runRoot(cmd *cobra.Command, args []string) error {
	switch {
	case checkMode:
		if len(args) > 0 {
			return fmt.Errorf("--check takes no text, got %d arguments", len(args))
		}
		return runCheck(cmd)
	case segmentMode:
		return runSegment(cmd, args)
	default:
		return runTranslate(cmd, args)
	}
}

// loadConfig builds appCfg and appLog before any command runs.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.ReadFile(v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	appCfg = cfg
	appLog = log.With(zap.String("request_id", uuid.NewString()))
	appLog.Debug("configuration loaded",
		zap.String("backend", cfg.Backend),
		zap.String("api_url", cfg.APIURL),
		zap.String("api_key", logger.MaskSecret(cfg.APIKey)),
		zap.String("model", cfg.Model),
		zap.Bool("fast_mode", cfg.FastMode),
	)
	return nil
}

func init() {
	config.SetDefaults(v)

	flags := rootCmd.Flags()
	flags.SetInterspersed(false)

	flags.StringVar(&cfgFile, "config", "", "Config file (default $HOME/.quicktran.yaml)")
	flags.String("backend", "", "Translation backend: openai, ollama or google")
	flags.String("api-url", "", "Chat completion endpoint URL")
	flags.String("model", "", "Model name")
	flags.Bool("debug", false, "Enable debug logging on stderr")
	flags.Bool("fast", false, "Shorten the pause between segment requests")
	flags.Int("threshold", segmenter.DefaultThreshold, "Length from which text is split into segments")
	flags.Int("max-segment-length", segmenter.DefaultMaxSegmentLength, "Maximum segment length in characters")
	flags.Duration("startup-delay", 0, "Wait before translating (launcher debounce, 0 disables)")
	flags.String("icon", "", "Icon path for launcher items")

	flags.BoolVar(&segmentMode, "segment", false, "Show how the text would be split instead of translating it")
	flags.BoolVar(&checkMode, "check", false, "Check that the configured backend is reachable")
	flags.DurationVar(&checkTimeout, "check-timeout", 10*time.Second, "Time limit for --check")
	rootCmd.MarkFlagsMutuallyExclusive("segment", "check")

	bindFlag("backend", "backend")
	bindFlag("api_url", "api-url")
	bindFlag("model", "model")
	bindFlag("debug", "debug")
	bindFlag("fast_mode", "fast")
	bindFlag("long_text_threshold", "threshold")
	bindFlag("max_segment_length", "max-segment-length")
	bindFlag("startup_delay", "startup-delay")
	bindFlag("icon_path", "icon")
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
		panic(err)
	}
}
