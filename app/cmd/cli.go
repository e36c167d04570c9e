package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/luxystore/luxy-api/app/configs"
	"github.com/luxystore/luxy-api/app/db/seeders"
	"github.com/luxystore/luxy-api/app/models"
	"github.com/luxystore/luxy-api/app/models/migrations"
	"github.com/luxystore/luxy-api/app/repositories"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					log.Println("✅ Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the fixed categories and demo products",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := seeders.DBSeed(db); err != nil {
						return err
					}
					log.Println("✅ Seeding complete")
					return nil
				},
			},
			{
				Name:  "create-admin",
				Usage: "Create a user (if needed) and grant them back-office access",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true, Usage: "admin email address"},
					&cli.StringFlag{Name: "password", Usage: "password for a newly created user"},
					&cli.StringFlag{Name: "name", Value: "Store Admin", Usage: "display name for a newly created user"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					return createAdmin(ctx, db, c.String("email"), c.String("password"), c.String("name"))
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session authentication and encryption keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {

					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					log.Println("✅ Key generation complete. Please copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func createAdmin(ctx context.Context, db *gorm.DB, email, password, name string) error {
	userRepo := repositories.NewUserRepository(db)
	adminRepo := repositories.NewAdminUserRepository(db)

	user, err := userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if user == nil {
		if password == "" {
			return fmt.Errorf("no user with email %s exists; pass --password to create one", email)
		}
		user = &models.User{
			ID:        uuid.New().String(),
			FirstName: name,
			Email:     email,
			Password:  password,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		log.Printf("✅ Created user %s", email)
	}

	existing, err := adminRepo.FindByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if existing != nil {
		log.Printf("User %s already has back-office access", email)
		return nil
	}

	if err := adminRepo.Create(ctx, &models.AdminUser{UserID: user.ID, Email: user.Email}); err != nil {
		return err
	}
	log.Printf("✅ Granted back-office access to %s", email)
	return nil
}
