// Command seahorse runs the identity service: registration, login, and
// token-gated routes over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/skillsenselab/seahorse/account"
	"github.com/skillsenselab/seahorse/auth/jwt"
	"github.com/skillsenselab/seahorse/auth/password"
	"github.com/skillsenselab/seahorse/config"
	"github.com/skillsenselab/seahorse/database"
	"github.com/skillsenselab/seahorse/logger"
	"github.com/skillsenselab/seahorse/server"
	"github.com/skillsenselab/seahorse/server/middleware"
)

const serviceName = "seahorse"

func main() {
	cfg, err := config.Load(serviceName)
	if err != nil {
		logger.GetGlobalLogger().Fatal("Failed to load configuration", logger.ErrorFields("config", err))
	}

	logger.Init(cfg.Log, serviceName)
	log := logger.GetGlobalLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("Service failed", logger.ErrorFields("run", err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	priv, pub, err := cfg.Auth.LoadKeys()
	if err != nil {
		return err
	}

	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.Migrate {
		runner := database.NewMigrationRunner(db, log)
		for _, m := range account.Migrations() {
			runner.Add(m)
		}
		if err := runner.Run(); err != nil {
			return err
		}
	}

	jwtCfg := &jwt.Config{PrivateKey: priv, PublicKey: pub, TokenTTL: cfg.Auth.TokenTTL}
	issuer, err := jwt.NewIssuer(jwtCfg)
	if err != nil {
		return err
	}
	verifier, err := jwt.NewVerifier(jwtCfg)
	if err != nil {
		return err
	}

	hasher := password.NewBcryptHasher(password.WithCost(cfg.Auth.BcryptCost))
	store := account.NewStore(db)
	svc := account.NewService(store, hasher, issuer, log)
	handler := account.NewHandler(svc, account.CookieConfig{
		Name:   cfg.Auth.CookieName,
		TTL:    cfg.Auth.CookieTTL,
		Secure: cfg.Auth.CookieSecure,
	})

	srv := server.New(cfg.Server, log)
	authMW := middleware.Authenticate(middleware.AuthConfig{
		Verifier:   verifier,
		CookieName: cfg.Auth.CookieName,
	})
	handler.RegisterRoutes(srv.GinEngine(), authMW)

	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	return srv.Stop(context.Background())
}
