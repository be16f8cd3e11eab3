package handler

import (
	"beeclaimer/internal/models"
	"beeclaimer/internal/pkg"
	"beeclaimer/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupReward struct {
	container *do.Injector
}

type channelView struct {
	models.ChannelState
	Countdown string `json:"countdown"`
}

func (gr *groupReward) Session(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	snapshot := serviceReward.Snapshot()
	channels := make([]channelView, 0, len(snapshot.Channels))
	for _, channel := range snapshot.Channels {
		channels = append(channels, channelView{channel, pkg.FormatCountdown(channel.Remaining)})
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"balance":  snapshot.Balance,
		"channels": channels,
	}, nil)
}

func (gr *groupReward) ClaimFaucet(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	reward, err := serviceReward.ClaimFaucet(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"reward":  reward,
		"balance": serviceReward.Balance(),
	}, nil)
}

func (gr *groupReward) ClaimDailyBonus(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	reward, err := serviceReward.ClaimDailyBonus(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"reward":  reward,
		"balance": serviceReward.Balance(),
	}, nil)
}

func (gr *groupReward) StartMining(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	if err := serviceReward.StartMining(c.Request().Context()); err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, serviceReward.Snapshot(), nil)
}

func (gr *groupReward) StopMining(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	if err := serviceReward.StopMining(c.Request().Context()); err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, serviceReward.Snapshot(), nil)
}

func (gr *groupReward) CollectMining(c echo.Context) error {
	serviceReward, err := do.Invoke[*services.ServiceReward](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	collected, err := serviceReward.CollectMining(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, map[string]interface{}{
		"collected": collected,
		"balance":   serviceReward.Balance(),
	}, nil)
}
