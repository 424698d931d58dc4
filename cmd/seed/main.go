package main

import (
	"context"
	"flag"
	"log"

	"tutorhub/internal/config"
	"tutorhub/internal/seed"
	"tutorhub/internal/store"
)

// Writes the deterministic seed snapshot through the configured store
// backend, replacing whatever was persisted before. The server reseeds on
// its own when the store is empty; this command exists to reset a
// deployment to a known state.
func main() {
	force := flag.Bool("force", false, "overwrite an existing snapshot")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()
	st, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	ctx := context.Background()

	existing, err := st.Load(ctx)
	if err == nil && existing != nil && !*force {
		log.Fatal("A snapshot already exists; rerun with -force to overwrite")
	}

	snap := seed.Snapshot()
	if err := st.Save(ctx, snap); err != nil {
		log.Fatalf("Failed to persist seed snapshot: %v", err)
	}

	log.Printf("Seeded %s store: %d users, %d tutors, %d parents, %d posts, %d applications",
		cfg.StoreBackend, len(snap.Users), len(snap.Tutors), len(snap.Parents), len(snap.Posts), len(snap.Applications))
}

func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case config.StoreRedis:
		return store.NewRedisStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB), nil
	case config.StoreMySQL:
		return store.NewMySQLStore(cfg.MySQLDSN)
	default:
		return store.NewFileStore(cfg.DataFile), nil
	}
}
