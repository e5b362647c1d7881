package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/keboola/db-merge/internal/pkg/encoding/json"
	"github.com/keboola/db-merge/internal/pkg/merge"
	"github.com/keboola/db-merge/internal/pkg/model"
	"github.com/keboola/db-merge/internal/pkg/storage"
	"github.com/keboola/db-merge/internal/pkg/utils/errors"
	"github.com/keboola/db-merge/internal/pkg/validator"
)

// planConfig is the content of the --config file.
type planConfig struct {
	Destination *model.Destination      `json:"destination" validate:"required"`
	Table       storage.TableDefinition `json:"table" validate:"required"`
}

func planCommand(root *rootCommand) *cobra.Command {
	var configPath string
	var sourceTable string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate the merge script for a destination configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			config, err := loadPlanConfig(ctx, configPath)
			if err != nil {
				return err
			}

			plan, err := merge.NewPlanner(root.logger).Plan(ctx, config.Destination, sourceTable, config.Table)
			if err != nil {
				return errors.PrefixError(err, "cannot plan the merge")
			}

			root.logger.Info(plan.Script())
			return nil
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the destination configuration file")
	cmd.Flags().StringVarP(&sourceTable, "source", "s", "", "name of the materialized source table")
	_ = cmd.MarkFlagRequired("config")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func loadPlanConfig(ctx context.Context, path string) (*planConfig, error) {
	// nolint: forbidigo
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf(`cannot read config "%s": %w`, path, err)
	}

	config := &planConfig{}
	if err := json.Decode(content, config); err != nil {
		return nil, errors.PrefixErrorf(err, `invalid config "%s"`, path)
	}
	if err := validator.New().Validate(ctx, config); err != nil {
		return nil, errors.PrefixErrorf(err, `invalid config "%s"`, path)
	}
	return config, nil
}
