package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ammonelzinga/scripturelens-cli/internal/schema"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir|file>",
		Short: "Validate exported book JSON against the canonical schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := options()
			if err != nil {
				return err
			}
			target := args[0]

			info, err := os.Stat(target)
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					return WrapCLIError(ExitCodeNotFound, err)
				}
				return WrapCLIError(ExitCodeFilesystem, err)
			}

			v := schema.NewValidator(opts)
			out := cmd.OutOrStdout()

			if !info.IsDir() {
				res := v.ValidateFile(target)
				if opts.JSONOutput {
					return respond(cmd, opts, len(res.Errors) == 0, "validation complete", res)
				}
				if len(res.Errors) > 0 {
					fmt.Fprintf(out, "%s:\n", res.File)
					for _, msg := range res.Errors {
						fmt.Fprintf(out, "  - %s\n", msg)
					}
					return WrapCLIError(ExitCodeSchema, fmt.Errorf("validation failed for %s", res.File))
				}
				return respond(cmd, opts, true, fmt.Sprintf("%s passed validation", res.File), nil)
			}

			summary, err := v.ValidateDir(target)
			if err != nil {
				return WrapCLIError(ExitCodeFilesystem, err)
			}

			if opts.JSONOutput {
				return respond(cmd, opts, !summary.HasErrors(), "validation complete", summary)
			}
			if summary.HasErrors() {
				for _, res := range summary.Results {
					if len(res.Errors) == 0 {
						continue
					}
					fmt.Fprintf(out, "%s:\n", res.File)
					for _, msg := range res.Errors {
						fmt.Fprintf(out, "  - %s\n", msg)
					}
				}
				return WrapCLIError(ExitCodeSchema, fmt.Errorf("validation failed for %d files", summary.Invalid))
			}
			return respond(cmd, opts, true, fmt.Sprintf("Validated %d files", summary.Total), nil)
		},
	}
}
