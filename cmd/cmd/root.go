/*
Copyright © 2025 Your Name

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
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"seogen/internal/config"
	"seogen/internal/core"
	"seogen/internal/llm"
	"seogen/internal/logger"
	"seogen/internal/pipeline"
	"seogen/internal/render"
	"seogen/internal/report"
	"seogen/internal/server"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seogen",
	Short: "seogen generates and validates SEO content for a topic",
	Long: `seogen generates structured SEO content (title, meta description,
summary) for a topic through an OpenAI-compatible completion service such as
a local Ollama instance, then validates the results against length and
keyword constraints and reports a pass/fail verdict.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.seogen.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load .env file if it exists (for local development)
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			logger.Warn("Failed to load .env file", "error", err.Error())
		}
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".seogen")
	}

	viper.SetEnvPrefix("seogen")
	viper.AutomaticEnv()

	config.SetDefaults()

	if err := viper.ReadInConfig(); err == nil {
		logger.Debug("Using config file", "path", viper.ConfigFileUsed())
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate [topic]",
	Short: "Generate SEO title, meta description, and summary for a topic",
	Long: `Generate an SEO title, meta description, and summary for the given
topic, validate them against length and keyword constraints, print a report,
and save the result as JSON.

Keywords may be supplied explicitly; when they are not, relevant keywords are
synthesized from the topic unless --no-synth is set. The content language is
detected from the topic unless --language is given.

Example:
  seogen generate "electric bicycles"
  seogen generate "электровелосипеды" --keywords "электровелосипед,город" -o out/seo.json
  seogen generate "electric bicycles" --no-synth --model qwen2.5:3b-instruct`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		topic := args[0]
		lang, _ := cmd.Flags().GetString("language")
		kws, _ := cmd.Flags().GetStringSlice("keywords")
		model, _ := cmd.Flags().GetString("model")
		noSynth, _ := cmd.Flags().GetBool("no-synth")
		outPath, _ := cmd.Flags().GetString("out")

		if err := runGenerate(topic, lang, kws, model, noSynth, outPath); err != nil {
			logger.Error("Failed to generate SEO content", err)
			os.Exit(1)
		}
	},
}

func runGenerate(topic, lang string, kws []string, model string, noSynth bool, outPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if model != "" {
		cfg.LLM.Model = model
	}
	if outPath == "" {
		outPath = cfg.Output.Path
	}

	logger.Info("Starting generation", "topic", topic, "model", cfg.LLM.Model)

	client := llm.New(cfg.LLM)
	p := pipeline.New(client, pipeline.Options{
		Model:        cfg.LLM.Model,
		KeywordCount: cfg.Keywords.Count,
	})

	res, err := p.Run(context.Background(), core.GenerationRequest{
		Topic:              topic,
		Language:           core.Language(lang),
		Keywords:           kws,
		SynthesizeKeywords: !noSynth,
		Model:              cfg.LLM.Model,
		Temperature:        cfg.LLM.Temperature,
		TopP:               cfg.LLM.TopP,
	})
	if err != nil {
		return err
	}

	fmt.Print(report.Format(res))

	if err := render.WriteResult(res, outPath); err != nil {
		// The result was generated and reported; only the artifact is lost.
		return fmt.Errorf("result generated but not saved: %w", err)
	}
	logger.Info("Result saved", "path", outPath)
	return nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation pipeline over HTTP",
	Long: `Start an HTTP server exposing the generation pipeline.

POST /api/generate accepts {"topic", "language", "keywords", "synthesize",
"model"} and responds with the generated result, the validation report, and
the aggregate verdict. GET /healthz reports liveness.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runServe(); err != nil {
			logger.Error("Server terminated", err)
			os.Exit(1)
		}
	},
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := llm.New(cfg.LLM)
	p := pipeline.New(client, pipeline.Options{
		Model:        cfg.LLM.Model,
		KeywordCount: cfg.Keywords.Count,
	})
	srv := server.New(p, cfg.Server)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		return srv.Shutdown(context.Background())
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(serveCmd)

	generateCmd.Flags().StringP("language", "l", "", "Content language: ru or en (default: detect from topic)")
	generateCmd.Flags().StringSlice("keywords", nil, "Comma-separated keywords to include and verify")
	generateCmd.Flags().StringP("model", "m", "", "Model identifier (default from config)")
	generateCmd.Flags().Bool("no-synth", false, "Do not synthesize keywords when none are supplied")
	generateCmd.Flags().StringP("out", "o", "", "Output file for the JSON result (default from config)")
}
