package handler

import (
	"beeclaimer/internal/models"
	"beeclaimer/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupAdmin struct {
	container *do.Injector
}

func (gr *groupAdmin) GetConfig(c echo.Context) error {
	serviceConfig, err := do.Invoke[*services.ServiceConfig](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, serviceConfig.Current(), nil)
}

type requestUpdateConfig struct {
	MinWithdraw     *float64 `json:"minWithdraw"`
	DailyReward     *float64 `json:"dailyReward"`
	FaucetReward    *float64 `json:"faucetReward"`
	MiningReward    *float64 `json:"miningReward"`
	FaucetInterval  *int     `json:"faucetInterval"`
	MiningInterval  *int     `json:"miningInterval"`
	ReferralPercent *float64 `json:"referralPercent"`
	AdsgramBlockID  *string  `json:"adsGramId"`
	TelegramToken   *string  `json:"telegramToken"`
	TelegramChatID  *string  `json:"telegramChatId"`
	AdminPin        *string  `json:"adminPin"`
}

func (gr *groupAdmin) UpdateConfig(c echo.Context) error {
	var req requestUpdateConfig
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceConfig, err := do.Invoke[*services.ServiceConfig](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	next := serviceConfig.Update(func(config *models.Config) {
		if req.MinWithdraw != nil {
			config.MinWithdraw = *req.MinWithdraw
		}
		if req.DailyReward != nil {
			config.DailyReward = *req.DailyReward
		}
		if req.FaucetReward != nil {
			config.FaucetReward = *req.FaucetReward
		}
		if req.MiningReward != nil {
			config.MiningReward = *req.MiningReward
		}
		if req.FaucetInterval != nil {
			config.FaucetInterval = *req.FaucetInterval
		}
		if req.MiningInterval != nil {
			config.MiningInterval = *req.MiningInterval
		}
		if req.ReferralPercent != nil {
			config.ReferralPercent = *req.ReferralPercent
		}
		if req.AdsgramBlockID != nil {
			config.AdsgramBlockID = *req.AdsgramBlockID
		}
		if req.TelegramToken != nil {
			config.TelegramToken = *req.TelegramToken
		}
		if req.TelegramChatID != nil {
			config.TelegramChatID = *req.TelegramChatID
		}
		if req.AdminPin != nil {
			config.AdminPin = *req.AdminPin
		}
	})

	return httpx.RestAbort(c, next, nil)
}

func (gr *groupAdmin) PendingWithdrawals(c echo.Context) error {
	serviceWithdrawal, err := do.Invoke[*services.ServiceWithdrawal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	records, err := serviceWithdrawal.Pending(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}
	return httpx.RestAbort(c, records, nil)
}

type requestResolveWithdrawal struct {
	Outcome models.WithdrawalStatus `json:"outcome"`
}

func (gr *groupAdmin) ResolveWithdrawal(c echo.Context) error {
	var req requestResolveWithdrawal
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	serviceWithdrawal, err := do.Invoke[*services.ServiceWithdrawal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	record, err := serviceWithdrawal.Resolve(c.Request().Context(), c.Param("id"), req.Outcome)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, record, nil)
}

func (gr *groupAdmin) SearchUsers(c echo.Context) error {
	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	users, err := serviceUser.SearchUsers(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}
	return httpx.RestAbort(c, users, nil)
}

func (gr *groupAdmin) Stats(c echo.Context) error {
	serviceUser, err := do.Invoke[*services.ServiceUser](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	stats, err := serviceUser.Stats(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}
	return httpx.RestAbort(c, stats, nil)
}
