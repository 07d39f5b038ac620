package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soltrack/soltrack/internal/ingest"
	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>...",
	Short: "Ingest standards documents into the catalog",
	Long: "Extract curriculum standards from one or more documents and commit them " +
		"to the catalog. Documents with a recognized layout are parsed " +
		"deterministically; anything else goes through LLM extraction. Each " +
		"document commits complete-or-nothing, and a failed document does not " +
		"stop the batch.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetString("grade")
		pause, _ := cmd.Flags().GetDuration("pause")

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()

		// The LLM fallback is optional. Documents in a recognized layout
		// parse without it.
		var fallback *ingest.LLMExtractor
		if provider, err := newProvider(ctx, s); err == nil {
			fallback = ingest.NewLLMExtractor(provider)
		}

		svc := ingest.NewService(ingest.NewExtractor(fallback), s.StandardRepo())

		var created, updated, failed int
		for i, path := range args {
			if i > 0 && pause > 0 {
				time.Sleep(pause)
			}

			text, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
				failed++
				continue
			}

			res, err := svc.IngestDocument(ctx, string(text), ingest.Options{
				Source:  filepath.Base(path),
				Subject: subject,
				Grade:   grade,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
				failed++
				continue
			}

			meta := res.Document.Metadata
			fmt.Printf("✓ %s: %d created, %d updated", path, res.Created, res.Updated)
			if meta.Title != "" {
				fmt.Printf("  (%s)", meta.Title)
			}
			fmt.Println()
			created += res.Created
			updated += res.Updated
		}

		fmt.Printf("\n%d created, %d updated", created, updated)
		if failed > 0 {
			fmt.Printf(", %d document(s) failed", failed)
		}
		fmt.Println()

		if failed > 0 {
			return fmt.Errorf("%d of %d documents failed", failed, len(args))
		}
		return nil
	},
}

func init() {
	ingestCmd.Flags().String("subject", "", "Subject for standards that do not state one (e.g. mathematics)")
	ingestCmd.Flags().String("grade", "", "Grade for standards that do not state one (e.g. 3, Algebra1)")
	ingestCmd.Flags().Duration("pause", 2*time.Second, "Pause between documents to spread LLM load")
}
