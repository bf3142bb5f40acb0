// The sandbox command serves a development ledger API seeded with demo data.
package main

import (
	"io"
	"os"
	"time"

	"github.com/equitrack/dashboard/internal/sandbox"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	output := io.Writer(os.Stdout)
	if logFormat, ok := os.LookupEnv("LOG_FORMAT"); (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}
	log.Logger = log.Output(output).With().Timestamp().Str("component", "sandbox").Logger()

	dsn := getEnv("SANDBOX_DSN", ":memory:")
	db, err := sandbox.Open(dsn, log.Logger)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Seed only empty databases so that file databases keep their changes
	var wallets int64
	if err := db.Model(&sandbox.Wallet{}).Count(&wallets).Error; err != nil {
		log.Fatal().Msg(err.Error())
	}

	profile := getEnv("SANDBOX_PROFILE", "1")
	if wallets == 0 {
		if err := sandbox.Seed(db, sandbox.DemoFixture(profile, time.Now())); err != nil {
			log.Fatal().Msg(err.Error())
		}
		log.Info().Str("profile", profile).Msg("Seeded demo data")
	}

	server := sandbox.NewServer(db, sandbox.ParseEnvelope(os.Getenv("SANDBOX_ENVELOPE")))

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
		return l.With().Str("request-id", requestid.Get(c)).Logger()
	})))
	server.Register(r.Group(sandbox.BasePath))

	address := ":" + getEnv("SANDBOX_PORT", "8080")
	log.Info().Str("address", address).Str("dsn", dsn).Msgf("Ledger API served at %s", sandbox.BasePath)

	if err := r.Run(address); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}

	return fallback
}
