// Command seed resets the database and fills it with demo users and notes.
// Intended for local development only.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/notekeeper/internal/dbx"
	"github.com/dmitrijs2005/notekeeper/internal/server/config"
	"github.com/dmitrijs2005/notekeeper/internal/server/models"
	"github.com/dmitrijs2005/notekeeper/internal/server/repositories/repomanager"
)

const demoPassword = "password123"

var sampleContents = []string{
	"Remember to water the plants before the weekend.",
	"Grocery list: eggs, flour, oat milk, coffee beans.",
	"Sketch out the onboarding flow for the side project.",
	"Book flights for the October trip while fares are low.",
	"Draft the retro notes and send them to the team.",
	"Try the sourdough recipe with a longer cold proof.",
}

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Println("seed: done")
}

func run(ctx context.Context, cfg *config.Config) error {

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	if _, err := db.ExecContext(ctx, "TRUNCATE notes, users RESTART IDENTITY CASCADE"); err != nil {
		return fmt.Errorf("truncate error: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash error: %w", err)
	}

	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		users := rm.Users(tx)
		notes := rm.Notes(tx)

		for i := 1; i <= 3; i++ {
			user, err := users.Create(ctx, &models.User{
				Username: fmt.Sprintf("user%d", i),
				ImageURL: fmt.Sprintf("https://picsum.photos/seed/user%d/200", i),
				Bio:      fmt.Sprintf("Demo account #%d.", i),
			}, string(hash))
			if err != nil {
				return err
			}

			for j := 0; j < 2+rand.Intn(3); j++ {
				if _, err := notes.Create(ctx, &models.Note{
					UserID:  user.ID,
					Title:   fmt.Sprintf("Note %d", j+1),
					Content: sampleContents[rand.Intn(len(sampleContents))],
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
