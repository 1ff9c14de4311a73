package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/makaan/makaan-api/internal/adapters/password"
	"github.com/makaan/makaan-api/internal/bootstrap"
	"github.com/makaan/makaan-api/internal/data"
	"github.com/makaan/makaan-api/internal/devseed"
)

func runDBSeed(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "seed timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
	if err != nil {
		return err
	}
	defer closeQuietly(ctx, db.Close, "database")

	runCtx, cancel := context.WithTimeout(ctx.Ctx, *timeout)
	defer cancel()

	if err = bootstrap.RunMigrations(runCtx, db, ctx.Logger); err != nil {
		return err
	}
	return devseed.Run(runCtx, devseed.NewServices(db), ctx.Logger)
}

func runCreateUser(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "login email")
	pass := fs.String("password", "", "login password (min 6 characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *email == "" || *pass == "" {
		return errors.New("-name, -email and -password are required")
	}

	db, err := bootstrap.ConnectDB(ctx.Config.Postgres, ctx.Logger)
	if err != nil {
		return err
	}
	defer closeQuietly(ctx, db.Close, "database")

	hash, err := password.NewHasher(ctx.Config.Auth.BcryptCost).Hash(*pass)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user, err := data.NewUserRepo(db).Create(ctx.Ctx, *name, *email, hash)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	ctx.Logger.InfoContext(ctx.Ctx, "user created", "id", user.ID, "email", user.Email)
	return nil
}
