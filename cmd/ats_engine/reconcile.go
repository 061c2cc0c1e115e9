package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/ats-engine/internal/document"
	"github.com/jonathan/ats-engine/internal/reconcile"
	"github.com/jonathan/ats-engine/internal/store"
	"github.com/jonathan/ats-engine/internal/types"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Apply reviewed proposals to a résumé as a new version",
	Long:  "Apply a reviewed batch of rewrite proposals to a résumé document. The base comes from a text file, or from the version store when --db-url is set (latest version, or --base-version). Accepted proposals replace entry text in a new version; rejected and pending proposals carry the original text over. The batch is atomic.",
	RunE:  runReconcile,
}

var (
	reconcileResumeFile    string
	reconcileProposalsFile string
	reconcileOutFile       string
	reconcileDatabaseURL   string
	reconcileDocumentID    string
	reconcileBaseVersion   int
)

func init() {
	reconcileCmd.Flags().StringVarP(&reconcileResumeFile, "resume", "r", "", "Path to résumé text file (omit to load the base from the store)")
	reconcileCmd.Flags().StringVarP(&reconcileProposalsFile, "proposals", "p", "", "Path to reviewed proposals JSON file (required)")
	reconcileCmd.Flags().StringVarP(&reconcileOutFile, "out", "o", "", "Path to output document JSON file (default: stdout)")
	reconcileCmd.Flags().StringVar(&reconcileDatabaseURL, "db-url", "", "PostgreSQL URL of the version store (optional)")
	reconcileCmd.Flags().StringVar(&reconcileDocumentID, "document-id", "", "Document ID in the version store (required with --db-url)")
	reconcileCmd.Flags().IntVar(&reconcileBaseVersion, "base-version", 0, "Stored version to reconcile against (default: latest)")

	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	var st *store.Store
	var documentID uuid.UUID
	if reconcileDatabaseURL != "" {
		if reconcileDocumentID == "" {
			return fmt.Errorf("--document-id is required with --db-url")
		}
		documentID, err = uuid.Parse(reconcileDocumentID)
		if err != nil {
			return fmt.Errorf("invalid document-id: %w", err)
		}
		st, err = store.Connect(ctx, reconcileDatabaseURL)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	doc, err := loadBaseDocument(ctx, st, documentID)
	if err != nil {
		return err
	}

	if reconcileProposalsFile == "" {
		return fmt.Errorf("proposals file is required (use --proposals)")
	}
	proposalBytes, err := os.ReadFile(reconcileProposalsFile)
	if err != nil {
		return fmt.Errorf("failed to read proposals file: %w", err)
	}
	var proposals []types.ChangeProposal
	if err := json.Unmarshal(proposalBytes, &proposals); err != nil {
		return fmt.Errorf("failed to parse proposals JSON: %w", err)
	}

	next, realized, err := reconcile.Reconcile(doc, proposals)
	if err != nil {
		return fmt.Errorf("failed to reconcile proposals: %w", err)
	}

	accepted := 0
	for _, p := range realized {
		if p.Decision == types.DecisionAccepted {
			accepted++
		}
	}
	logger.Info("reconciled proposals",
		zap.Int("proposals", len(realized)),
		zap.Int("accepted", accepted),
		zap.Int("version", next.Version),
	)
	if accepted == 0 {
		fmt.Fprintln(os.Stderr, "No accepted proposals; document unchanged")
	}

	if st != nil && accepted > 0 {
		if err := st.SaveVersion(ctx, documentID, next); err != nil {
			return fmt.Errorf("failed to save version: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Saved version %d to document %s\n", next.Version, documentID)
	}

	return writeJSON(reconcileOutFile, next)
}

// loadBaseDocument resolves the base: an explicit résumé file wins;
// otherwise the store supplies it, a pinned version with --base-version or
// the latest without. Stored documents are re-validated on the way in.
func loadBaseDocument(ctx context.Context, st *store.Store, documentID uuid.UUID) (*types.Document, error) {
	if reconcileResumeFile != "" {
		return loadResume(reconcileResumeFile)
	}
	if st == nil {
		return nil, fmt.Errorf("must provide --resume, or --db-url with --document-id")
	}

	var doc *types.Document
	var err error
	if reconcileBaseVersion > 0 {
		doc, err = st.GetVersion(ctx, documentID, reconcileBaseVersion)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("version %d not found for document %s", reconcileBaseVersion, documentID)
		}
	} else {
		doc, err = st.LatestVersion(ctx, documentID)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			return nil, fmt.Errorf("no versions stored for document %s", documentID)
		}
	}

	if err := document.Validate(doc); err != nil {
		return nil, fmt.Errorf("stored version %d is malformed: %w", doc.Version, err)
	}
	return doc, nil
}
