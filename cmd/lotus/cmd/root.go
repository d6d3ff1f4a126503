package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ahitagnied/lotus-app/cmd/lotus/cmd/serve"
	"github.com/ahitagnied/lotus-app/cmd/lotus/cmd/transcribe"
	"github.com/ahitagnied/lotus-app/cmd/lotus/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lotus",
	Short: "Audio transcription service backed by hosted speech-to-text providers",
	Long: `lotus accepts audio uploads over HTTP and returns their transcription.
- "lotus serve" starts the HTTP API (POST /transcribe/)
- "lotus transcribe <file>" transcribes a local file once
- Providers: openai (whisper-1) and gemini, selected by TRANSCRIPTION_PROVIDER`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
