package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"meetslot/config"
	"meetslot/infras/jwt"
	"meetslot/shared/constant"
	"meetslot/shared/logger"
)

const (
	argLength = 2
)

// Mints an admin access token for the slot release endpoint.
func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Token subject is required, for example an operator email")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	token, err := jwt.New(cfg).GenerateAccessToken(os.Args[1], constant.RoleAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to generate token")
	}

	log.Info().Str("subject", os.Args[1]).Time("expiresAt", token.ExpiresAt).Msg("Admin token issued")

	fmt.Println(token.AccessToken) //nolint:forbidigo
}
