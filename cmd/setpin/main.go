// Command setpin sets the admin PIN directly in the database, bypassing the
// HTTP surface. Used on first install and for recovery when the PIN is lost.
//
// Usage: setpin -pin 1234 [-db salon.db]
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"salondesk/internal/infra"
	"salondesk/internal/repository"
	"salondesk/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	pin := flag.String("pin", "", "new admin PIN (min 4 characters)")
	dbPath := flag.String("db", "salon.db", "path to the SQLite database")
	flag.Parse()

	if len(*pin) < 4 {
		log.Fatal().Msg("pin must be at least 4 characters")
	}

	db, err := infra.NewDatabase(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*pin), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash pin")
	}

	settings := repository.NewSettingsRepository(db)
	if err := settings.Set(context.Background(), service.SettingAdminPIN, string(hash)); err != nil {
		log.Fatal().Err(err).Msg("failed to store pin")
	}
	log.Info().Msg("admin PIN updated")
}
