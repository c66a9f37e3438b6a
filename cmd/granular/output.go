package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/granular/internal/export"
)

// createOutput opens the --output file. Replaced by tests.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeResult encodes sel to --output or the command's stdout.
func writeResult(cmd *cobra.Command, app *appContext, sel export.Selection) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if app.flags.output != "" {
		f, openErr := createOutput(app.flags.output)
		if openErr != nil {
			return fmt.Errorf("create output file: %w", openErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				app.log.Error(cerr, "close output file failed")
				err = fmt.Errorf("close output file: %w", cerr)
			}
		}()
		w = f
	}

	if err = export.Write(w, app.format, sel, clock); err != nil {
		app.log.Error(err, "write result failed")
		return err
	}
	app.log.WithFields(map[string]any{
		"format": string(app.format),
		"output": app.flags.output,
	}).Debug("result written")
	return nil
}
