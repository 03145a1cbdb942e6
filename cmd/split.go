package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ammonelzinga/scripturelens-cli/internal/canon"
	"github.com/ammonelzinga/scripturelens-cli/internal/numbered"
	"github.com/ammonelzinga/scripturelens-cli/internal/splitter"
	"github.com/ammonelzinga/scripturelens-cli/internal/util"
)

func newSplitCommand() *cobra.Command {
	var input string
	var outputDir string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a master corpus file into per-book text files",
		Long:  "Split reads a plain-text Bible corpus, detects whether it uses the numbered BB:CCC:VVV format or decorative book headings, and writes one normalized text file per canonical book.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}

			lines, err := util.ReadLines(input)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return WrapCLIError(ExitCodeNotFound, err)
				}
				return WrapCLIError(ExitCodeFilesystem, err)
			}

			log := opts.Logger().WithField("component", "split")

			format := "heading"
			var bookLines map[string][]string
			if numbered.Detect(lines) {
				format = "numbered"
				bookLines = numbered.ParseLines(lines)
			} else {
				bookLines = map[string][]string{}
				for name, raw := range splitter.SplitBooks(lines) {
					bookLines[name] = splitter.NormalizeBook(raw)
				}
			}
			log.WithField("format", format).Info("detected corpus format")

			written := make([]string, 0, len(canon.Books))
			missing := make([]string, 0)
			counts := map[string]int{}
			out := cmd.OutOrStdout()
			for _, name := range canon.Books {
				body := bookLines[name]
				if len(body) == 0 {
					missing = append(missing, name)
					continue
				}
				file := canon.FileName(name, ".txt")
				if !opts.DryRun {
					content := strings.Join(body, "\n") + "\n"
					path := filepath.Join(outputDir, file)
					if err := util.WriteFileAtomic(path, []byte(content), 0o644); err != nil {
						return WrapCLIError(ExitCodeFilesystem, err)
					}
				}
				written = append(written, name)
				counts[name] = len(body)
				if !opts.JSONOutput {
					fmt.Fprintf(out, "Wrote %s: %d lines\n", name, len(body))
				}
			}

			for _, name := range missing {
				log.WithField("book", name).Warn("book not found in corpus")
				if !opts.JSONOutput {
					fmt.Fprintf(out, "Warning: %s not found in corpus\n", name)
				}
			}

			message := fmt.Sprintf("Split %d books into %s (%d missing)", len(written), outputDir, len(missing))
			data := map[string]interface{}{
				"format":      format,
				"output_dir":  outputDir,
				"written":     written,
				"missing":     missing,
				"line_counts": counts,
				"dry_run":     opts.DryRun,
			}
			return respond(cmd, opts, true, message, data)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Path to the master corpus text file")
	cmd.Flags().StringVar(&outputDir, "output-dir", "books", "Directory for per-book text files")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
