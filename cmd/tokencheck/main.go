// Command tokencheck performs one IMS client-credentials exchange with the
// configured credentials and reports whether it succeeded.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"aep-proxy/internal/auth"
	"aep-proxy/internal/config"
	"aep-proxy/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Setup(cfg.Log, os.Stderr); err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout)
	defer cancel()

	source := auth.NewIMSTokenSource(cfg.Credentials, &http.Client{Timeout: cfg.HTTPTimeout})
	token, err := source.FetchToken(ctx)
	if err != nil {
		var authErr *auth.AuthError
		if errors.As(err, &authErr) && authErr.Err != nil {
			// Only the operator sees the cause here.
			fmt.Fprintf(os.Stderr, "Error getting access token: %v\n", authErr.Err)
		}
		os.Exit(1)
	}

	fmt.Printf("Access token acquired: %s\n", mask(token))
}

// mask keeps the first eight characters of a token.
func mask(token string) string {
	const visible = 8
	if len(token) <= visible {
		return "********"
	}
	return fmt.Sprintf("%s...(%d chars)", token[:visible], len(token))
}
