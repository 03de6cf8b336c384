// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	adminstore "github.com/dalemusser/folioserve/internal/app/store/admin"
	"github.com/dalemusser/folioserve/internal/app/system/authutil"
	"github.com/dalemusser/folioserve/internal/app/system/normalize"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time startup work after the schema is ensured and before
// the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedAdminEmail != "" && appCfg.SeedAdminPassword != "" {
		if err := ensureAdminAccount(ctx, deps, appCfg, logger); err != nil {
			logger.Error("failed to seed admin account", zap.Error(err))
			return err
		}
	}
	return nil
}

// ensureAdminAccount creates the admin account from config when none exists.
// An existing account always wins; seeding never overwrites credentials.
func ensureAdminAccount(ctx context.Context, deps DBDeps, appCfg AppConfig, logger *zap.Logger) error {
	store := adminstore.New(deps.MongoDatabase)

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("admin account already exists, skipping seed")
		return nil
	}

	if err := authutil.ValidatePassword(appCfg.SeedAdminPassword); err != nil {
		return err
	}
	hash, err := authutil.HashPassword(appCfg.SeedAdminPassword)
	if err != nil {
		return err
	}

	acct, err := store.Create(ctx, models.AdminAccount{
		Email:        normalize.Email(appCfg.SeedAdminEmail),
		PasswordHash: hash,
		Name:         normalize.Name(appCfg.SeedAdminName),
	})
	if err != nil {
		return err
	}

	logger.Info("seeded admin account", zap.String("email", acct.Email))
	return nil
}
