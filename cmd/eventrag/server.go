package eventrag

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairgate/eventrag"
	"github.com/fairgate/eventrag/pkg/config"
	"github.com/fairgate/eventrag/pkg/knowledge"
	"github.com/fairgate/eventrag/pkg/logger"
	"github.com/fairgate/eventrag/pkg/nlp"
	"github.com/fairgate/eventrag/pkg/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the EventRAG HTTP server",
	Long: `Start the EventRAG HTTP server to provide REST API access to the assistant.

The server provides endpoints for:
- Answering attendee questions (chat)
- Adding facts to the knowledge base
- Searching and summarizing events
- Health checks

Configuration can be provided through config files, environment variables, or command-line flags.`,
	RunE: runServer,
}

var (
	serverHost string
	serverPort int
	serverMode string
)

func init() {
	rootCmd.AddCommand(serverCmd)

	// Server-specific flags
	serverCmd.Flags().StringVar(&serverHost, "host", "localhost", "Server host")
	serverCmd.Flags().IntVar(&serverPort, "port", 8005, "Server port")
	serverCmd.Flags().StringVar(&serverMode, "mode", "release", "Server mode (debug, release, test)")

	// Completion service flags
	serverCmd.Flags().String("llm-model", "asi1-mini", "Completion model")
	serverCmd.Flags().String("llm-api-key", "", "Completion API key")
	serverCmd.Flags().String("llm-base-url", "", "Completion base URL")
	serverCmd.Flags().Float32("llm-temperature", 0.3, "Completion temperature")
}

func runServer(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with command-line flags
	overrideConfigWithFlags(cmd, cfg)

	// Validate configuration
	if err := validateServerConfig(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)

	assistant, err := buildAssistant(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}

	// Create and setup server
	srv := server.New(cfg, assistant, log)
	srv.Setup()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		fmt.Printf("\nReceived signal: %v\n", sig)

		// Create shutdown context with timeout
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Shutdown server
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}

		fmt.Println("Server stopped gracefully")
		return nil
	}
}

func overrideConfigWithFlags(cmd *cobra.Command, cfg *config.Config) {
	// Server flags
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = serverHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = serverPort
	}
	if cmd.Flags().Changed("mode") {
		cfg.Server.Mode = serverMode
	}

	// Completion service flags
	if cmd.Flags().Changed("llm-model") {
		cfg.LLM.Model, _ = cmd.Flags().GetString("llm-model")
	}
	if cmd.Flags().Changed("llm-api-key") {
		cfg.LLM.APIKey, _ = cmd.Flags().GetString("llm-api-key")
	}
	if cmd.Flags().Changed("llm-base-url") {
		cfg.LLM.BaseURL, _ = cmd.Flags().GetString("llm-base-url")
	}
	if cmd.Flags().Changed("llm-temperature") {
		cfg.LLM.Temperature, _ = cmd.Flags().GetFloat32("llm-temperature")
	}
}

func validateServerConfig(cfg *config.Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", cfg.Server.Port)
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("completion API key is required (set ASI1_API_KEY or llm.api_key)")
	}
	return nil
}

func buildAssistant(cfg *config.Config, log *slog.Logger) (*eventrag.Assistant, error) {
	base, err := knowledge.NewSeededBase()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed knowledge: %w", err)
	}

	client, err := nlp.NewOpenAIClient(cfg.LLM.APIKey, nlp.Config{
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		BaseURL:     cfg.LLM.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create completion client: %w", err)
	}

	var llm nlp.Client = client
	if cfg.CircuitBreaker.Enabled {
		llm = nlp.NewCircuitBreakerClient(client, cfg.CircuitBreaker, log, "llm")
	}

	classifier := nlp.NewClassifier(llm, log)
	generator := nlp.NewGenerator(llm, log)

	return eventrag.NewAssistant(base, classifier, generator, log), nil
}
