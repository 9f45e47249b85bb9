package cli

import (
	"context"
	"sort"

	"course-quiz-service/internal/catalog"
	"course-quiz-service/internal/config"
	"course-quiz-service/internal/domain"
	"course-quiz-service/internal/infra/postgres"
	"course-quiz-service/internal/logger"
	"github.com/spf13/cobra"
)

// NewSeedCmd writes the built-in catalog into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the built-in course catalog into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()
			if err := runMigrations(cmd.Context(), cfg, log); err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg, log)
		},
	}
}

func runSeed(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	if cfg.Postgres.URL == "" {
		return errNoPostgres
	}
	db := postgres.OpenBun(cfg.Postgres.URL)
	defer db.Close()

	records := catalogRecords()
	if err := postgres.NewCourseWriter(db).UpsertAll(ctx, records); err != nil {
		return err
	}
	log.Info("catalog seeded", "courses", len(records))
	return nil
}

func catalogRecords() []domain.CourseRecord {
	byID := catalog.Records()
	records := make([]domain.CourseRecord, 0, len(byID))
	for _, rec := range byID {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].ID < records[j].ID })
	return records
}
