package handler

import (
	"errors"
	"strconv"

	"beeclaimer/internal/services"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"
)

type groupWithdrawal struct {
	container *do.Injector
}

type requestSubmitWithdrawal struct {
	Amount  string `json:"amount"`
	Address string `json:"address"`
}

func (gr *groupWithdrawal) Submit(c echo.Context) error {
	var req requestSubmitWithdrawal
	if err := c.Bind(&req); err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Invalid))
	}

	amount, err := strconv.ParseFloat(req.Amount, 64)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("amount must be a number"), errorx.Invalid))
	}

	serviceWithdrawal, err := do.Invoke[*services.ServiceWithdrawal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	record, err := serviceWithdrawal.Submit(c.Request().Context(), amount, req.Address)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}
	return httpx.RestAbort(c, record, nil)
}

func (gr *groupWithdrawal) History(c echo.Context) error {
	serviceWithdrawal, err := do.Invoke[*services.ServiceWithdrawal](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	records, err := serviceWithdrawal.History(c.Request().Context())
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}
	return httpx.RestAbort(c, records, nil)
}
