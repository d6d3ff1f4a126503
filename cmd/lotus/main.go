package main

import "github.com/ahitagnied/lotus-app/cmd/lotus/cmd"

//go:generate swag init -g cmd/lotus/main.go -d ../../ -o ../../docs

// @title Lotus Transcription API
// @version 1.0
// @description Uploads audio and returns its speech-to-text transcript.
// @BasePath /
func main() {
	cmd.Execute()
}
