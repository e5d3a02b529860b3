package eventrag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fairgate/eventrag/pkg/config"
	"github.com/fairgate/eventrag/pkg/logger"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the assistant a single question",
	Long: `Ask the assistant a single question and print the answer.

Examples:
  eventrag ask "When is Devconnect?"
  eventrag ask what are the ticket prices for breakpoint`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

var askTimeout time.Duration

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().DurationVar(&askTimeout, "timeout", 60*time.Second, "Overall timeout for the question")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		return fmt.Errorf("completion API key is required (set ASI1_API_KEY or llm.api_key)")
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Format)

	assistant, err := buildAssistant(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize assistant: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), askTimeout)
	defer cancel()

	answer := assistant.Answer(ctx, strings.Join(args, " "))

	fmt.Println(answer.SelectedQuestion)
	fmt.Println(answer.HumanizedAnswer)
	return nil
}
