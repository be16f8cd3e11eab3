package handler

import (
	"net/http"

	"beeclaimer/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "🐝")
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		bot, err := do.Invoke[*services.Bot](cfg.Container)
		if err != nil {
			return nil, err
		}

		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, headerAdminPin},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})

		routesAPIv1.Use(cors)
		routesAPIv1.Use(Authn(bot)) // Authn will NOT terminate unauthenticated requests.

		rw := groupReward{cfg.Container}
		routesAPIv1.GET("/session", rw.Session)
		routesAPIv1.POST("/faucet/claim", rw.ClaimFaucet)
		routesAPIv1.POST("/bonus/claim", rw.ClaimDailyBonus)
		routesAPIv1.POST("/mining/start", rw.StartMining)
		routesAPIv1.POST("/mining/stop", rw.StopMining)
		routesAPIv1.POST("/mining/collect", rw.CollectMining)

		w := groupWithdrawal{cfg.Container}
		routesAPIv1.POST("/withdrawals", w.Submit)
		routesAPIv1.GET("/withdrawals", w.History)

		u := groupUser{cfg.Container}
		routesAPIv1.GET("/referral", u.Referral)
		routesAPIv1.POST("/referral/link", u.InviteLink)

		routesAPIv1Admin := routesAPIv1.Group("/admin")
		{
			routesAPIv1Admin.Use(AuthnAdmin(cfg.Container))
			a := groupAdmin{cfg.Container}
			routesAPIv1Admin.GET("/config", a.GetConfig)
			routesAPIv1Admin.PUT("/config", a.UpdateConfig)
			routesAPIv1Admin.GET("/withdrawals", a.PendingWithdrawals)
			routesAPIv1Admin.POST("/withdrawals/:id/resolve", a.ResolveWithdrawal)
			routesAPIv1Admin.GET("/users", a.SearchUsers)
			routesAPIv1Admin.GET("/stats", a.Stats)
		}
	}

	return r, nil
}
