package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List a document's version lineage",
	Long:  "List every stored version of a document, oldest first, with parent links.",
	RunE:  runHistory,
}

var (
	historyDatabaseURL string
	historyDocumentID  string
	historyRegister    string
)

func init() {
	historyCmd.Flags().StringVar(&historyDatabaseURL, "db-url", "", "PostgreSQL URL of the version store (required)")
	historyCmd.Flags().StringVar(&historyDocumentID, "document-id", "", "Document ID to list")
	historyCmd.Flags().StringVar(&historyRegister, "register", "", "Register a new document with this label and print its ID")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(_ *cobra.Command, _ []string) error {
	if historyDatabaseURL == "" {
		historyDatabaseURL = os.Getenv("DATABASE_URL")
	}
	if historyDatabaseURL == "" {
		return fmt.Errorf("database URL is required (use --db-url or DATABASE_URL)")
	}

	ctx := context.Background()
	st, err := store.Connect(ctx, historyDatabaseURL)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.EnsureSchema(ctx); err != nil {
		return err
	}

	if historyRegister != "" {
		id, err := st.CreateDocument(ctx, historyRegister)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Registered document %s (%q)\n", id, historyRegister)
		return nil
	}

	if historyDocumentID == "" {
		return fmt.Errorf("must provide --document-id or --register")
	}
	documentID, err := uuid.Parse(historyDocumentID)
	if err != nil {
		return fmt.Errorf("invalid document-id: %w", err)
	}

	versions, err := st.Lineage(ctx, documentID)
	if err != nil {
		return err
	}
	if len(versions) == 0 {
		fmt.Fprintln(os.Stdout, "No versions stored")
		return nil
	}

	for _, info := range versions {
		parent := "-"
		if info.ParentVersion != nil {
			parent = fmt.Sprintf("%d", *info.ParentVersion)
		}
		fmt.Fprintf(os.Stdout, "v%-4d parent=%-4s %s\n", info.Version, parent, info.CreatedAt)
	}
	return nil
}
