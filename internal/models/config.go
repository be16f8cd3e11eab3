package models

// Config is one immutable version of the runtime configuration. Admin edits go
// through ServiceConfig.Update, which clones the current version, applies the
// changes and publishes the clone; a *Config obtained from ServiceConfig must
// never be mutated by the reader.
type Config struct {
	Version int `json:"version"`

	MinWithdraw     float64 `json:"minWithdraw"`
	DailyReward     float64 `json:"dailyReward"`
	FaucetReward    float64 `json:"faucetReward"`
	MiningReward    float64 `json:"miningReward"`
	FaucetInterval  int     `json:"faucetInterval"`
	MiningInterval  int     `json:"miningInterval"`
	ReferralPercent float64 `json:"referralPercent"`

	AdsgramBlockID string `json:"adsGramId"`
	TelegramToken  string `json:"-"`
	TelegramChatID string `json:"telegramChatId"`
	AdminPin       string `json:"-"`
}

func (config *Config) Clone() *Config {
	clone := *config
	return &clone
}

func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		MinWithdraw:     0.01,
		DailyReward:     0.0001,
		FaucetReward:    0.00001,
		MiningReward:    0.00001,
		FaucetInterval:  1800,
		MiningInterval:  18000,
		ReferralPercent: 15,
		AdsgramBlockID:  "YOUR_BLOCK_ID",
		TelegramToken:   "YOUR_BOT_TOKEN_HERE",
		TelegramChatID:  "YOUR_CHAT_ID_HERE",
		AdminPin:        "1234",
	}
}
