// Command devtoken mints a bearer token for calling the API locally.
// It reads JWT_SECRET and JWT_ISSUER the same way the server does.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Derezo/accounting-api/internal/platform/config"
	"github.com/Derezo/accounting-api/internal/utils"
	"github.com/google/uuid"
	flag "github.com/spf13/pflag"
)

func main() {
	userID := flag.StringP("user", "u", "", "user ID to put in the token subject (random when empty)")
	expiry := flag.DurationP("expiry", "e", time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if cfg.IsProduction {
		fmt.Fprintln(os.Stderr, "refusing to mint tokens with IS_PRODUCTION set")
		os.Exit(1)
	}

	if *userID == "" {
		*userID = uuid.NewString()
	}

	token, err := utils.GenerateJWT(*userID, cfg.JWTSecret, *expiry, cfg.JWTIssuer)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to sign token:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
