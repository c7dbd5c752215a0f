package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemforge/internal/oracle"
)

var oracleCmd = &cobra.Command{
	Use:   "oracle",
	Short: "Inspect and test the oracle configuration",
}

var oracleCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the oracle configuration and run one test generation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := oracle.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("oracle configuration: %w", err)
		}

		ctx := cmd.Context()
		provider, err := oracle.NewProvider(ctx, cfg, nil)
		if err != nil {
			return err
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", provider.ModelID())
		fmt.Printf("Timeout:   %s\n", cfg.Timeout)

		start := time.Now()
		resp, err := provider.Generate(ctx, oracle.Request{
			System: "You confirm connectivity.",
			Messages: []oracle.Message{
				{Role: oracle.RoleUser, Content: "Reply with ok set to true."},
			},
			Schema: &oracle.Schema{
				Name:        "ping",
				Description: "Connectivity check",
				Definition: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"ok": map[string]any{"type": "boolean"},
					},
					"required":             []string{"ok"},
					"additionalProperties": false,
				},
			},
			MaxTokens: 64,
		})
		if err != nil {
			return fmt.Errorf("test generation failed: %w", err)
		}

		var out struct {
			OK bool `json:"ok"`
		}
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return fmt.Errorf("test generation returned undecodable output: %w", err)
		}

		fmt.Printf("Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Tokens:    %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		fmt.Printf("Result:    ok=%v\n", out.OK)
		return nil
	},
}

func init() {
	oracleCmd.AddCommand(oracleCheckCmd)
}
