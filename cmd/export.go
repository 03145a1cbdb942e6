package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ammonelzinga/scripturelens-cli/internal/corpus"
	"github.com/ammonelzinga/scripturelens-cli/internal/exporter"
	"github.com/ammonelzinga/scripturelens-cli/internal/uploader"
)

func newExportCommand() *cobra.Command {
	var input string
	var booksDir string
	var outputDir string
	var upload bool
	var apiURL string
	var password string
	var tradition string
	var source string
	var work string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export books as structured JSON and optionally upload them",
		Long:  "Export parses a numbered master file or a directory of split book files into the canonical book/chapter/verse model, writes one JSON file per book, and can upload each book to the ingestion API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			if (input == "") == (booksDir == "") {
				return NewCLIError(ExitCodeValidation, "exactly one of --input or --books-dir is required")
			}

			exp := exporter.New(opts)
			out := cmd.OutOrStdout()

			var books []*corpus.Book
			var missing []string
			if input != "" {
				books, err = exp.FromMaster(input)
				if err != nil {
					if errors.Is(err, exporter.ErrUnsupportedMaster) {
						return WrapCLIError(ExitCodeFormat, fmt.Errorf("%s: %w", input, err))
					}
					if errors.Is(err, os.ErrNotExist) {
						return WrapCLIError(ExitCodeNotFound, err)
					}
					return WrapCLIError(ExitCodeFilesystem, err)
				}
			} else {
				books, missing, err = exp.FromBooksDir(booksDir)
				if err != nil {
					if errors.Is(err, os.ErrNotExist) {
						return WrapCLIError(ExitCodeNotFound, err)
					}
					return WrapCLIError(ExitCodeFilesystem, err)
				}
				for _, name := range missing {
					if !opts.JSONOutput {
						fmt.Fprintf(out, "Warning: %s not found in %s\n", name, booksDir)
					}
				}
			}

			written := 0
			writeFailures := 0
			if !opts.DryRun {
				for _, book := range books {
					if _, err := exp.WriteJSON(book, outputDir); err != nil {
						writeFailures++
						if !opts.JSONOutput {
							fmt.Fprintf(out, "Failed to write %s: %v\n", book.Name, err)
						}
						continue
					}
					written++
				}
			}

			uploaded := 0
			uploadFailures := 0
			if upload {
				if apiURL == "" {
					apiURL = opts.Upload.APIURL
				}
				if password == "" {
					password = opts.UploadPassword()
				}
				if tradition == "" {
					tradition = opts.Upload.Tradition
				}
				if source == "" {
					source = opts.Upload.Source
				}
				if work == "" {
					work = opts.Upload.Work
				}

				client := uploader.NewClient(opts, apiURL, password)
				meta := uploader.Metadata{Tradition: tradition, Source: source, Work: work}
				for _, book := range books {
					if opts.DryRun {
						continue
					}
					if err := client.Upload(book, meta); err != nil {
						uploadFailures++
						if !opts.JSONOutput {
							fmt.Fprintf(out, "Failed to upload %s: %v\n", book.Name, err)
						}
						continue
					}
					uploaded++
					if !opts.JSONOutput {
						fmt.Fprintf(out, "Uploaded %s (%d verses)\n", book.Name, book.VerseCount())
					}
				}
			}

			message := fmt.Sprintf("Exported %d books to %s", written, outputDir)
			if upload {
				message = fmt.Sprintf("%s, uploaded %d", message, uploaded)
			}
			data := map[string]interface{}{
				"books":           len(books),
				"written":         written,
				"write_failures":  writeFailures,
				"missing":         missing,
				"uploaded":        uploaded,
				"upload_failures": uploadFailures,
				"output_dir":      outputDir,
				"dry_run":         opts.DryRun,
			}
			if err := respond(cmd, opts, writeFailures == 0 && uploadFailures == 0, message, data); err != nil {
				return err
			}
			if uploadFailures > 0 {
				return WrapCLIError(ExitCodeUpload, fmt.Errorf("%d of %d uploads failed", uploadFailures, len(books)))
			}
			if writeFailures > 0 {
				return WrapCLIError(ExitCodeFilesystem, fmt.Errorf("%d of %d writes failed", writeFailures, len(books)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Numbered-format master file to export directly")
	cmd.Flags().StringVar(&booksDir, "books-dir", "", "Directory of split per-book text files")
	cmd.Flags().StringVar(&outputDir, "output-dir", "json", "Directory for per-book JSON files")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload each book to the ingestion API")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Ingestion API endpoint (default from config)")
	cmd.Flags().StringVar(&password, "password", "", "Upload password (default from UPLOAD_PASSWORD)")
	cmd.Flags().StringVar(&tradition, "tradition", "", "Tradition label attached to uploads")
	cmd.Flags().StringVar(&source, "source", "", "Source label attached to uploads")
	cmd.Flags().StringVar(&work, "work", "", "Work title attached to uploads")
	return cmd
}
