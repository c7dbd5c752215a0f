package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/itemforge/internal/pipeline"
	"github.com/abhisek/itemforge/internal/request"
	"github.com/abhisek/itemforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an item set from a creation request file",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			return fmt.Errorf("a request file is required (-f request.yaml)")
		}

		req, err := loadRequest(file)
		if err != nil {
			return err
		}

		opts := pipeline.Options{}
		if cmd.Flags().Changed("count") {
			n, _ := cmd.Flags().GetInt("count")
			opts.ProblemCount = &n
		}
		if cmd.Flags().Changed("answers") {
			a, _ := cmd.Flags().GetBool("answers")
			opts.IncludeAnswers = &a
		}
		opts.MaxIterations, _ = cmd.Flags().GetInt("iterations")
		if cmd.Flags().Changed("threshold") {
			t, _ := cmd.Flags().GetFloat64("threshold")
			opts.ScoreThreshold = &t
		}

		// The event trail is best effort; a broken database never stops a
		// generation run.
		var events store.EventRepo
		if s, err := openStore(cmd); err != nil {
			warnf("event trail disabled: %v", err)
		} else {
			defer s.Close()
			events = s.EventRepo()
		}

		ctx := cmd.Context()
		provider, err := newProvider(ctx, events)
		if err != nil {
			return err
		}

		result := pipeline.New(provider, events).Run(ctx, req, opts)

		data, err := json.MarshalIndent(result.ItemSet, "", "  ")
		if err != nil {
			return fmt.Errorf("encode item set: %w", err)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
				return fmt.Errorf("write output file: %w", err)
			}
		} else {
			fmt.Println(string(data))
		}

		printRunSummary(result)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringP("file", "f", "", "Creation request file (YAML)")
	generateCmd.Flags().Int("count", 0, "Number of items to generate (1-50)")
	generateCmd.Flags().Bool("answers", false, "Include answers on every item")
	generateCmd.Flags().Int("iterations", 0, "Max evaluate/refine iterations (1-3)")
	generateCmd.Flags().Float64("threshold", 0, "Passing score threshold (0-10)")
	generateCmd.Flags().StringP("out", "o", "", "Write the item set JSON to a file instead of stdout")
}

func loadRequest(path string) (request.CreationRequest, error) {
	var req request.CreationRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request file: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request file: %w", err)
	}
	if len(req.Topics) == 0 {
		return req, fmt.Errorf("request file %s: at least one topic is required", path)
	}
	if len(req.Formats) == 0 {
		return req, fmt.Errorf("request file %s: at least one format is required", path)
	}
	return req, nil
}

func printRunSummary(result pipeline.RunResult) {
	meta := result.Metadata

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Run:        %s\n", meta.RunID)
	fmt.Fprintf(os.Stderr, "Items:      %d\n", len(result.ItemSet.Blocks))
	fmt.Fprintf(os.Stderr, "Iterations: %d\n", meta.Iterations)
	if len(meta.Evaluations) > 0 {
		last := meta.Evaluations[len(meta.Evaluations)-1]
		fmt.Fprintf(os.Stderr, "Score:      %.1f / threshold %.1f (pass=%v)\n", last.OverallScore, last.Threshold, last.Pass)
	}
	fmt.Fprintf(os.Stderr, "Duration:   %s\n", meta.Duration.Round(time.Millisecond))
	if meta.Degraded {
		fmt.Fprintln(os.Stderr, "Degraded:   yes")
	}
	for _, w := range meta.Warnings {
		warnf("%s", w)
	}
	fmt.Fprintf(os.Stderr, "%s\n", result.Message)
}
