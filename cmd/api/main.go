package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"beeclaimer/internal/api/handler"
	"beeclaimer/internal/datastore"
	"beeclaimer/internal/interfaces"
	"beeclaimer/internal/services"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	container := NewContainer()

	app := &cli.App{
		Name: "api",
		Commands: []*cli.Command{
			commandServer(container),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func commandServer(container *do.Injector) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Value: "0.0.0.0:8080",
				Usage: "serve address",
			},
		},
		Action: func(c *cli.Context) error {
			vs := do.MustInvokeNamed[map[string]string](container, "envs")
			router, err := handler.New(&handler.Config{
				Container: container,
				Mode:      vs["API_MODE"],
				Origins:   strings.Split(vs["API_ORIGINS"], ","),
			})
			if err != nil {
				return err
			}

			scheduler, err := do.Invoke[*services.Scheduler](container)
			if err != nil {
				return err
			}
			scheduler.StartClock()
			defer scheduler.StopClock()

			srv := &http.Server{
				Addr:    c.String("addr"),
				Handler: router,
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errWg, errCtx := errgroup.WithContext(ctx)

			errWg.Go(func() error {
				log.Printf("ListenAndServe: %s (%s)\n", c.String("addr"), vs["API_MODE"])
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})

			errWg.Go(func() error {
				<-errCtx.Done()
				return srv.Shutdown(context.TODO())
			})

			return errWg.Wait()
		},
	}
}

func NewContainer() *do.Injector {
	injector := do.New()

	vs := map[string]string{
		"API_MODE":         os.Getenv("API_MODE"),
		"API_ORIGINS":      os.Getenv("API_ORIGINS"),
		"BOT_TOKEN":        os.Getenv("BOT_TOKEN"),
		"TELEGRAM_CHAT_ID": os.Getenv("TELEGRAM_CHAT_ID"),
		"ADSGRAM_BLOCK_ID": os.Getenv("ADSGRAM_BLOCK_ID"),
		"ADMIN_PIN":        os.Getenv("ADMIN_PIN"),
	}

	if vs["API_MODE"] == "" {
		vs["API_MODE"] = "production"
	}
	if vs["API_ORIGINS"] == "" {
		vs["API_ORIGINS"] = "*"
	}

	do.ProvideNamedValue(injector, "envs", vs)

	do.Provide(injector, func(i *do.Injector) (*datastore.Ledger, error) {
		return datastore.NewLedger(datastore.SeedWithdrawals()...), nil
	})

	do.Provide(injector, func(i *do.Injector) (*datastore.Directory, error) {
		return datastore.NewDirectory(datastore.SeedUsers()...), nil
	})

	do.Provide(injector, func(i *do.Injector) (*services.Scheduler, error) {
		return services.NewScheduler(), nil
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceConfig, error) {
		return services.NewServiceConfig(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.Bot, error) {
		return services.NewBot(injector)
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.RewardGate, error) {
		gate, err := services.NewServiceAds(injector)
		if err != nil {
			return nil, err
		}
		return gate, nil
	})

	do.Provide(injector, func(i *do.Injector) (interfaces.Notifier, error) {
		bot, err := do.Invoke[*services.Bot](i)
		if err != nil {
			return nil, err
		}
		return bot, nil
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceReward, error) {
		return services.NewServiceReward(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceWithdrawal, error) {
		return services.NewServiceWithdrawal(injector)
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceUser, error) {
		return services.NewServiceUser(injector)
	})

	return injector
}
