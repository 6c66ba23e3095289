package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/api"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/cli"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/config"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/flash"
	sessionrepo "github.com/hiyaat04-cloud/YFinanceApp/internal/client/repositories/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/services"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/client/session"
	"github.com/hiyaat04-cloud/YFinanceApp/internal/logging"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewFileLogger(cfg.LogFilePath, slog.LevelInfo)

	db, err := sessionrepo.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("opening session db: %v", err)
	}
	defer db.Close()

	sess := session.NewStore(db)
	if err := sess.Load(ctx); err != nil {
		log.Fatalf("loading session: %v", err)
	}

	fl := flash.NewStore(cfg.FlashTTL)

	transport := &api.AuthTransport{Tokens: sess}
	httpClient := &http.Client{Transport: transport}
	client := api.NewHTTPClient(cfg.BackendServerURL, httpClient, logger)

	auth := services.NewAuthService(client, sess, logger)
	watchlist := services.NewWatchlistService(client, sess)
	market := services.NewMarketService(client, cfg.DefaultExchange)

	app := cli.NewApp(cfg, sess, fl, auth, watchlist, market, logger)
	transport.OnAuthFailure = app.SessionExpired

	app.Run(ctx)
}
