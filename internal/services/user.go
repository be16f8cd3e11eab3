package services

import (
	"context"
	"fmt"

	"beeclaimer/internal/datastore"
	"beeclaimer/internal/models"
	"beeclaimer/internal/pkg"

	"github.com/samber/do"
)

// ServiceUser serves the referral screen and the admin user/stats tabs over
// the seeded in-memory directory.
type ServiceUser struct {
	container     *do.Injector
	serviceConfig *ServiceConfig
	directory     *datastore.Directory
	ledger        *datastore.Ledger

	friendsCount     int
	referralEarnings float64
}

func NewServiceUser(container *do.Injector) (*ServiceUser, error) {
	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	directory, err := do.Invoke[*datastore.Directory](container)
	if err != nil {
		return nil, err
	}

	ledger, err := do.Invoke[*datastore.Ledger](container)
	if err != nil {
		return nil, err
	}

	return &ServiceUser{
		container:        container,
		serviceConfig:    serviceConfig,
		directory:        directory,
		ledger:           ledger,
		friendsCount:     SEED_FRIENDS_COUNT,
		referralEarnings: SEED_REFERRAL_EARNINGS,
	}, nil
}

func (service *ServiceUser) ReferralSummary(ctx context.Context) *models.ReferralSummary {
	config := service.serviceConfig.Current()
	return &models.ReferralSummary{
		FriendsCount:    service.friendsCount,
		Earnings:        service.referralEarnings,
		ReferralPercent: config.ReferralPercent,
	}
}

// InviteLink mints a fresh opaque referral deep link.
func (service *ServiceUser) InviteLink(ctx context.Context) string {
	return fmt.Sprintf("t.me/%s?start=user%s", REFERRAL_BOT_NAME, pkg.GenRefCode())
}

func (service *ServiceUser) SearchUsers(ctx context.Context, term string) ([]*models.User, error) {
	return datastore.FindUsers(ctx, service.directory, term)
}

func (service *ServiceUser) Stats(ctx context.Context) (*models.UserStats, error) {
	total, err := datastore.CountUsers(ctx, service.directory)
	if err != nil {
		return nil, err
	}

	activeToday, err := datastore.CountUsersActiveToday(ctx, service.directory)
	if err != nil {
		return nil, err
	}

	distributed, err := datastore.SumWithdrawalsByStatus(ctx, service.ledger, models.WithdrawalCompleted)
	if err != nil {
		return nil, err
	}

	pending, err := datastore.ListWithdrawalsByStatus(ctx, service.ledger, models.WithdrawalPending)
	if err != nil {
		return nil, err
	}

	return &models.UserStats{
		TotalUsers:         total,
		ActiveToday:        activeToday,
		TotalDistributed:   distributed,
		PendingWithdrawals: len(pending),
	}, nil
}
