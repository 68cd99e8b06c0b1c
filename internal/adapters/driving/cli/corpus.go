package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docfind/internal/adapters/driven/storage"
	"github.com/custodia-labs/docfind/internal/core/domain"
)

var corpusSection string

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Inspect and export the documentation corpus",
	Long: `List, view, or export the documentation topics docfind searches.

The corpus is the builtin topic set unless --corpus or corpus.path names a
TOML, YAML or SQLite file.`,
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documentation topics",
	Args:  cobra.NoArgs,
	RunE:  runCorpusList,
}

var corpusShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a documentation topic",
	Args:  cobra.ExactArgs(1),
	RunE:  runCorpusShow,
}

var corpusExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the corpus to a file",
	Long: `Write the loaded corpus to a TOML (.toml), YAML (.yaml, .yml) or SQLite
(.db, .sqlite, .sqlite3) file. Point corpus.path at the file to load it later.`,
	Args: cobra.ExactArgs(1),
	RunE: runCorpusExport,
}

func init() {
	corpusListCmd.Flags().StringVar(&corpusSection, "section", "", "only list topics in this section")
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusShowCmd)
	corpusCmd.AddCommand(corpusExportCmd)
	rootCmd.AddCommand(corpusCmd)
}

func runCorpusList(cmd *cobra.Command, _ []string) error {
	if err := loadCorpus(cmd.Context()); err != nil {
		return err
	}
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	filter := domain.SectionUnknown
	if corpusSection != "" {
		section, err := domain.ParseSection(corpusSection)
		if err != nil {
			return err
		}
		filter = section
	}

	docs, err := corpusService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	count := 0
	for i := range docs {
		if filter != domain.SectionUnknown && docs[i].Section != filter {
			continue
		}
		count++
		cmd.Printf("  %-18s %-24s %s\n", docs[i].ID, docs[i].Path, displayTitle(&docs[i]))
	}

	if count == 0 {
		cmd.Println("No documents found.")
		return nil
	}
	cmd.Println()
	cmd.Printf("Total: %d documents\n", count)
	return nil
}

func runCorpusShow(cmd *cobra.Command, args []string) error {
	if err := loadCorpus(cmd.Context()); err != nil {
		return err
	}
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	doc, err := corpusService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n\n", doc.ID)
	cmd.Printf("  Title:       %s\n", doc.Title)
	cmd.Printf("  Path:        %s\n", doc.Path)
	if section := doc.Section.Label(); section != "" {
		cmd.Printf("  Section:     %s\n", section)
	}
	if doc.Description != "" {
		cmd.Printf("  Description: %s\n", doc.Description)
	}
	if len(doc.Keywords) > 0 {
		cmd.Printf("  Keywords:    %s\n", strings.Join(doc.Keywords, ", "))
	}
	return nil
}

func runCorpusExport(cmd *cobra.Command, args []string) error {
	if err := loadCorpus(cmd.Context()); err != nil {
		return err
	}
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	writer, err := storage.NewCorpusWriter(args[0])
	if err != nil {
		return err
	}
	n, err := corpusService.Export(cmd.Context(), writer)
	if err != nil {
		return fmt.Errorf("failed to export corpus: %w", err)
	}

	cmd.Printf("Exported %d documents to %s\n", n, writer.Name())
	return nil
}
