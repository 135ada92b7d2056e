package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"oracle-veil/internal/config"
	"oracle-veil/internal/domain"
	"oracle-veil/internal/infra/db/postgres"
	"oracle-veil/internal/usecase"
)

// Seeds a fresh deployment: ensures the schema, creates the operator account
// if it does not exist yet, and mints an initial batch of access tokens.
// Safe to run more than once.
func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	username := flag.String("user", "operator", "operator account name")
	password := flag.String("pass", "", "operator account password (required when the account is missing)")
	count := flag.Int("tokens", 10, "number of access tokens to mint")
	flag.Parse()

	if err := run(*configPath, *username, *password, *count); err != nil {
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}
}

func run(configPath, username, password string, count int) error {
	cfg, err := config.LoadConfig(configPath, false)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPgxPool(ctx, cfg.Database.URL, int32(cfg.Database.MaxConns))
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()
	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	userUC := usecase.NewUserUseCase(postgres.NewPostgresUserRepo(pool))
	if _, err := userUC.FindByUsername(ctx, username); errors.Is(err, domain.ErrNotFound) {
		if password == "" {
			return fmt.Errorf("operator %q does not exist and -pass is empty", username)
		}
		if _, err := userUC.Register(ctx, username, password); err != nil {
			return fmt.Errorf("create operator: %w", err)
		}
		fmt.Printf("created operator %q\n", username)
	} else if err != nil {
		return fmt.Errorf("look up operator: %w", err)
	} else {
		fmt.Printf("operator %q already exists\n", username)
	}

	if count > 0 {
		tokenUC := usecase.NewTokenUseCase(postgres.NewPostgresTokenRepo(pool))
		minted := 0
		for count > 0 {
			batch := count
			if batch > usecase.MaxTokenBatch {
				batch = usecase.MaxTokenBatch
			}
			tokens, err := tokenUC.CreateTokens(ctx, batch)
			if err != nil {
				return fmt.Errorf("mint tokens (%d minted so far): %w", minted, err)
			}
			for _, t := range tokens {
				fmt.Println(t)
			}
			minted += len(tokens)
			count -= batch
		}
		fmt.Printf("minted %d access tokens\n", minted)
	}
	return nil
}
