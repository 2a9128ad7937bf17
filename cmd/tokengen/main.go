// tokengen mints an access token signed with the configured secret. It
// stands in for the external identity provider during development and
// operations; the server itself only validates tokens.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/foodstock-inventory/internal/auth"
	"github.com/foodstock-inventory/internal/config"
)

func main() {
	subject := flag.String("subject", "operator", "subject name embedded in the token")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to AUTH_TOKEN_TTL)")
	flag.Parse()

	cfg, err := config.LoadConfig("server")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	lifetime := cfg.Auth.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	token, err := auth.GenerateToken([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, *subject, lifetime)
	if err != nil {
		fmt.Printf("Failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires: %s\n", time.Now().Add(lifetime).Format(time.RFC3339))
}
