package nakama

import (
	"context"
	"database/sql"
	"os"

	"deuces/internal/app"
	"deuces/internal/config"

	"github.com/charmbracelet/log"
	"github.com/heroiclabs/nakama-common/runtime"
)

// InitModule wires the rules RPCs for the Nakama runtime.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	cfg := config.Default()
	if env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string); ok && env[EnvConfigPath] != "" {
		loaded, err := config.Load(env[EnvConfigPath])
		if err != nil {
			logger.Error("Failed to load config %s: %v", env[EnvConfigPath], err)
			return err
		}
		cfg = loaded
	}

	svc, err := newRulesService(cfg)
	if err != nil {
		return err
	}
	rulesService = svc

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Deuces rules module loaded (cache size %d).", cfg.Cache.Size)
	return nil
}

func newRulesService(cfg *config.Config) (*app.Service, error) {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "deuces", Level: level})
	return app.NewService(cfg.Cache.Size, l)
}
