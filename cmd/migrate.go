package cmd

import (
	"context"
	"log"
	"time"

	"citizen-collect/core/config"
	"citizen-collect/core/database"
	"citizen-collect/core/logger"
	"citizen-collect/core/storage"
	projectmodels "citizen-collect/feature/project/models"
	recordmodels "citizen-collect/feature/record/models"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the database schema and the storage bucket.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the database schema and ensure the storage bucket",
	Long: `Applies the GORM schema for all entities, including the unique indexes
the reconciler relies on, and creates the storage bucket if it is missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		if err := db.AutoMigrate(
			&projectmodels.Project{},
			&projectmodels.Section{},
			&projectmodels.Question{},
			&projectmodels.QuestionOption{},
			&recordmodels.Record{},
			&recordmodels.Image{},
			&recordmodels.SurveyAnswer{},
		); err != nil {
			return err
		}
		logg.Info("Database schema migrated")

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
		if err != nil {
			return err
		}
		if !exists {
			if err := client.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
				return err
			}
			logg.Info("Storage bucket created", zap.String("bucket", cfg.Storage.Bucket))
		} else {
			logg.Info("Storage bucket present", zap.String("bucket", cfg.Storage.Bucket))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
