package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"parishledger/internal/database"
	"parishledger/internal/domain"
	"parishledger/internal/repository"
)

// Seeds the snapshot store with the documented starter dataset and creates
// the default office account.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "parish.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	store, err := repository.NewSnapshotStore(db)
	if err != nil {
		log.Fatal(err)
	}
	userRepo, err := repository.NewUserRepository(db)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	log.Println("Writing celebration snapshot...")
	if err := store.Save(ctx, repository.CelebrationsKey, repository.SeedCelebrations()); err != nil {
		log.Fatal(err)
	}

	log.Println("Writing intention snapshot...")
	if err := store.Save(ctx, repository.IntentionsKey, repository.SeedIntentions()); err != nil {
		log.Fatal(err)
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "cambiame"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Creating office account...")
	existing, err := userRepo.GetByUsername(ctx, "secretaria")
	if err != nil {
		log.Fatal(err)
	}
	if existing == nil {
		u := &domain.User{Username: "secretaria", PasswordHash: string(hash)}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Done.")
}
