package main

import (
	"bufio"
	"circuits-lab/auth"
	"io"
	"log/slog"
	"strings"
)

// provideToken fills tokens with the configured token, or with the first
// line read from in, e.g. piped from a credential helper. Initialize waits
// for it either way.
func provideToken(log *slog.Logger, tokens *auth.AwaitableToken, configured string, in io.Reader) {
	if configured != "" {
		tokens.Set(configured)
		return
	}

	go func() {
		log.Debug("Waiting for the access token on stdin")
		scanner := bufio.NewScanner(in)
		scanner.Buffer(make([]byte, 0, 4096), 64<<10)
		if !scanner.Scan() {
			log.Error("No access token on stdin", "error", scanner.Err())
			tokens.Set("")
			return
		}
		tokens.Set(strings.TrimSpace(scanner.Text()))
	}()
}
