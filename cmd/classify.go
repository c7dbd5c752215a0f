package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/itemforge/internal/classify"
	"github.com/abhisek/itemforge/internal/request"
)

var classifyCmd = &cobra.Command{
	Use:   "classify --kind <kind> <text>",
	Short: "Run one classifier unit over free text",
	Long:  "Runs one of the request classifiers (tags, topic, age, difficulty, situation, itemtype) over the given text and prints the result, including whether the oracle or the keyword fallback produced it.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		text := strings.Join(args, " ")

		ctx := cmd.Context()
		provider, err := newProvider(ctx, nil)
		if err != nil {
			return err
		}

		var result any
		switch kind {
		case "tags":
			result = classify.NewTagsUnit(provider).Suggest(ctx, request.CreationRequest{Description: text})
		case "topic":
			result = classify.NewTopicUnit(provider).Classify(ctx, text)
		case "age":
			result = classify.NewAgeBandUnit(provider).Classify(ctx, text)
		case "difficulty":
			result = classify.NewDifficultyUnit(provider).Classify(ctx, text)
		case "situation":
			result = classify.NewSituationUnit(provider).Classify(ctx, text)
		case "itemtype":
			max, _ := cmd.Flags().GetInt("max")
			result = classify.NewItemTypeUnit(provider).Recommend(ctx, text, max)
		default:
			return fmt.Errorf("unknown classifier kind %q (want tags, topic, age, difficulty, situation or itemtype)", kind)
		}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	classifyCmd.Flags().String("kind", "topic", "Classifier to run: tags, topic, age, difficulty, situation, itemtype")
	classifyCmd.Flags().Int("max", 3, "Max ranked types for --kind itemtype")
}
