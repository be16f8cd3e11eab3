package models

type User struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	Balance    float64 `json:"balance"`
	Joined     string  `json:"joined"`
	LastActive string  `json:"last_active"`
}

type UserFromAuth struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsBot        bool   `json:"is_bot"`
	IsPremium    bool   `json:"is_premium"`
	LanguageCode string `json:"language_code"`
	PhotoURL     string `json:"photo_url"`
}

type UserStats struct {
	TotalUsers         int     `json:"total_users"`
	ActiveToday        int     `json:"active_today"`
	TotalDistributed   float64 `json:"total_distributed"`
	PendingWithdrawals int     `json:"pending_withdrawals"`
}

type ReferralSummary struct {
	FriendsCount    int     `json:"friends_count"`
	Earnings        float64 `json:"earnings"`
	ReferralPercent float64 `json:"referral_percent"`
}
