package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// topicsCmd prints the effective topic and standards tables, so users
// can see exactly what the classifier will match before a run.
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Show the effective topic triggers and standards checklist",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Topics:")
		for _, t := range cfg.Topics {
			fmt.Printf("  %-14s %s\n", t.Name, strings.Join(t.Triggers, ", "))
		}

		fmt.Println("\nDisclosure standards:")
		for _, s := range cfg.Standards {
			fmt.Printf("  %-10s %-18s keywords: %s\n", s.Code, s.Title, strings.Join(s.Keywords, ", "))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}
