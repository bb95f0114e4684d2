package cmd

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/sakhi-sarees/storefront/app/configs"
	"github.com/sakhi-sarees/storefront/app/db/seeders"
	"github.com/sakhi-sarees/storefront/app/models/migrations"
	"github.com/sakhi-sarees/storefront/app/repositories"
	"github.com/sakhi-sarees/storefront/app/utils/sessions"
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
				Usage: "Seed the catalog with demo categories, products, slides and testimonials",
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
				Name:  "purge-sessions",
				Usage: "Delete cart and wishlist rows whose session outlived its TTL",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					cutoff := time.Now().Add(-sessions.SessionTTL)

					carts, err := repositories.NewCartItemRepository(db).DeleteOlderThan(ctx, cutoff)
					if err != nil {
						return err
					}
					wishlists, err := repositories.NewWishlistRepository(db).DeleteOlderThan(ctx, cutoff)
					if err != nil {
						return err
					}
					log.Printf("✅ Purged %d cart rows and %d wishlist rows older than %s", carts, wishlists, cutoff.Format(time.RFC3339))
					return nil
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
