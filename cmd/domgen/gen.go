package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/treefold-dev/treefold/internal/errors"
	"github.com/treefold-dev/treefold/internal/gen"
)

func tagsCmd() *cobra.Command {
	var (
		output string
		pkg    string
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "Generate the tag catalog (tags_gen.go)",
		Long: `Generate the closed catalog of element constructors, one per tag
name. The catalog is not extensible at run time; adding a tag means adding
it to the generator's list and rerunning this command.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := gen.Tags(pkg)
			if err != nil {
				return err
			}
			return writeGenerated(output, src)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tags_gen.go", "Output file")
	cmd.Flags().StringVar(&pkg, "package", "tags", "Package name for the generated file")

	return cmd
}

func tuplesCmd() *cobra.Command {
	var (
		output string
		pkg    string
		max    int
	)

	cmd := &cobra.Command{
		Use:   "tuples",
		Short: "Generate the fixed-arity tuple family (tuples_gen.go)",
		Long: `Generate the heterogeneous TupleN collections, one type per arity
from 2 up to the configured maximum.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := gen.Tuples(pkg, max)
			if err != nil {
				return err
			}
			return writeGenerated(output, src)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tuples_gen.go", "Output file")
	cmd.Flags().StringVar(&pkg, "package", "dom", "Package name for the generated file")
	cmd.Flags().IntVar(&max, "max", gen.MaxTupleArity, "Maximum tuple arity")

	return cmd
}

func allCmd() *cobra.Command {
	var root string

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Regenerate every generated file in the repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			tagsSrc, err := gen.Tags("tags")
			if err != nil {
				return err
			}
			if err := writeGenerated(filepath.Join(root, "pkg", "tags", "tags_gen.go"), tagsSrc); err != nil {
				return err
			}

			tuplesSrc, err := gen.Tuples("dom", gen.MaxTupleArity)
			if err != nil {
				return err
			}
			return writeGenerated(filepath.Join(root, "pkg", "dom", "tuples_gen.go"), tuplesSrc)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Repository root")

	return cmd
}

// writeGenerated writes src to outPath, always overwriting any existing
// file.
func writeGenerated(outPath string, src []byte) error {
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return errors.Wrap("G003", err).
			WithSuggestion("check that the output directory exists and is writable")
	}
	slog.Info("wrote generated file", "path", outPath, "bytes", len(src))
	return nil
}
