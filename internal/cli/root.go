package cli

import (
	"context"
	"fmt"

	"github.com/Chimelu/hafak-surgicals-backend/internal/config"
	repository "github.com/Chimelu/hafak-surgicals-backend/internal/repositories"
	service "github.com/Chimelu/hafak-surgicals-backend/internal/services"
	"github.com/spf13/cobra"
)

// Deps are the collaborators the commands reach out to. Tests replace them.
type Deps struct {
	LoadConfig func(path string) (*config.Config, error)
	// OpenMaintenance connects to the database. The returned func releases
	// the connection.
	OpenMaintenance func(ctx context.Context, cfg *config.Config) (service.MaintenanceService, func() error, error)
}

func DefaultDeps() Deps {
	return Deps{
		LoadConfig:      config.LoadConfigFromPath,
		OpenMaintenance: openMaintenance,
	}
}

type app struct {
	deps       Deps
	configPath string
	cfg        *config.Config
}

func NewRootCmd(deps Deps) *cobra.Command {

	a := &app{deps: deps}

	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Maintenance tasks for the Hafak Surgicals catalog",
		Long:          "catalogctl seeds, inspects and clears the catalog database and keeps the hosted API awake",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.deps.LoadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			a.cfg = cfg
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file (defaults to the environment)")

	rootCmd.AddCommand(
		a.seedCmd(),
		a.clearCmd(),
		a.checkCmd(),
		a.createOwnerCmd(),
		a.pingCmd(),
		a.keepAliveCmd(),
	)

	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd(DefaultDeps()).Execute()
}

// withMaintenance opens the database for the duration of fn.
func (a *app) withMaintenance(ctx context.Context, fn func(service.MaintenanceService) error) error {

	svc, closeFn, err := a.deps.OpenMaintenance(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	return fn(svc)
}

func openMaintenance(ctx context.Context, cfg *config.Config) (service.MaintenanceService, func() error, error) {

	repo, err := repository.New(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewMaintenanceService(service.MaintenanceRepos{
		Users:       repository.NewUserRepo(repo.DB),
		Categories:  repository.NewCategoryRepo(repo.DB),
		Equipment:   repository.NewEquipmentRepo(repo.DB),
		Products:    repository.NewProductRepo(repo.DB),
		Maintenance: repository.NewMaintenanceRepo(repo.DB),
	}, cfg.Owner)

	return svc, repo.Close, nil
}
