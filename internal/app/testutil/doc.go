// Package testutil provides shared helpers for tests across the service:
// a testify based MockTranscriber, WAV fixtures and multipart request bodies.
package testutil
