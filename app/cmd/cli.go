package cmd

import (
	"context"
	"log"
	"os"

	"github.com/DevarshLade/lade-studio/app/configs"
	"github.com/DevarshLade/lade-studio/app/db/seeders"
	"github.com/DevarshLade/lade-studio/app/models/migrations"
	"github.com/DevarshLade/lade-studio/app/repositories"
	"github.com/DevarshLade/lade-studio/app/services"
	"github.com/urfave/cli/v3"
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
				Usage: "Seed the catalog with sample categories and products",
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
				Name:  "repair-slugs",
				Usage: "Backfill and normalize product slugs",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					slugSvc := services.NewSlugService(repositories.NewProductRepository(db))
					result, err := slugSvc.RepairSlugs(ctx)
					if err != nil {
						return err
					}
					log.Printf("✅ Slug repair complete: %d scanned, %d repaired", result.Scanned, result.Repaired)
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
