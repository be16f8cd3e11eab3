package services

import (
	"errors"
	"time"
)

var ErrChannelNotReady = errors.New("channel is not ready to claim")
var ErrMiningActive = errors.New("mining is already active")
var ErrMiningNotActive = errors.New("mining is not active")
var ErrNothingAccrued = errors.New("no mined balance to collect")
var ErrAdNotCompleted = errors.New("rewarded ad was not completed")
var ErrInvalidAmount = errors.New("invalid withdrawal amount")
var ErrBelowMinWithdraw = errors.New("amount is below the minimum withdrawal")
var ErrInsufficientBalance = errors.New("insufficient balance")
var ErrSubmitInProgress = errors.New("a withdrawal is already being submitted")
var ErrInvalidOutcome = errors.New("withdrawal can only be resolved to Completed or Rejected")

const (
	ENV_BOT_TOKEN            = "BOT_TOKEN"
	ENV_TELEGRAM_CHAT_ID     = "TELEGRAM_CHAT_ID"
	ENV_ADSGRAM_BLOCK_ID     = "ADSGRAM_BLOCK_ID"
	ENV_ADMIN_PIN            = "ADMIN_PIN"
	ENV_TELEGRAM_WEB_APP_URL = "TELEGRAM_WEB_APP_URL"

	// The daily bonus always resets to a full day, no matter what the
	// configured reward amount is at claim time.
	DAILY_BONUS_COOLDOWN_SECONDS = 86400

	TICK_SPEC = "@every 1s"

	ADSGRAM_API_BASE_URL = "https://api.adsgram.ai"

	REFERRAL_BOT_NAME = "BeeClaimerBot"

	SEED_BALANCE           = 0.01152
	SEED_FRIENDS_COUNT     = 12
	SEED_REFERRAL_EARNINGS = 0.00012

	WITHDRAW_FINALIZE_DELAY = 1 * time.Second
	AD_GATE_TIMEOUT         = 10 * time.Second
)
