package transcribe

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ahitagnied/lotus-app/internal/app"
	"github.com/ahitagnied/lotus-app/internal/app/transcription"
)

var verbose bool

func init() {
	Cmd.Flags().BoolVarP(&verbose, "verbose", "V", false, "Development logging")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe a local audio file with the configured provider",
	Long: `Transcribe a local audio file with the configured provider

The file goes through the same staging and provider path as an HTTP upload,
and the transcript is printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := app.Bootstrap(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		service, err := app.InitializeService(cfg, logger)
		if err != nil {
			return err
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", args[0], err)
		}
		defer f.Close()

		text, err := service.Transcribe(cmd.Context(), transcription.Upload{
			Filename: filepath.Base(args[0]),
			Reader:   f,
		})
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
