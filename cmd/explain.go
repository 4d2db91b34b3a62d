package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lyra-docs/lyra/internal/explainer"
)

var explainCmd = &cobra.Command{
	Use:   "explain [file|-]",
	Short: "Explain a code snippet from a file or stdin",
	Long:  `Sends the code in the given file (or stdin when the argument is "-" or omitted) to the configured AI provider and prints the markdown explanation.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		code, err := readCode(cmd.InOrStdin(), args)
		if err != nil {
			return err
		}

		provider, err := createLLMProviderFromConfig(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("creating LLM provider: %w", err)
		}

		history, closeHistory, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer closeHistory()

		exp := explainerFactory(cfg, provider, history)()
		fmt.Fprintln(os.Stderr, "LYRA is analyzing the code...")

		st, err := exp.Submit(cmd.Context(), code)
		if errors.Is(err, explainer.ErrEmptyInput) || errors.Is(err, explainer.ErrRequestFailed) {
			return errors.New(st.Error)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), st.Explanation)
		return nil
	},
}

func readCode(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func init() {
	rootCmd.AddCommand(explainCmd)
}
