package datastore

import (
	"context"
	"strings"
	"sync"

	"beeclaimer/internal/models"
)

// Directory is the in-memory user listing backing the admin stats tab.
type Directory struct {
	mu    sync.RWMutex
	users []*models.User
}

func NewDirectory(seed ...*models.User) *Directory {
	users := make([]*models.User, 0, len(seed))
	users = append(users, seed...)
	return &Directory{users: users}
}

// FindUsers matches the search term against username (case-insensitive) or ID.
func FindUsers(ctx context.Context, directory *Directory, term string) ([]*models.User, error) {
	directory.mu.RLock()
	defer directory.mu.RUnlock()

	term = strings.ToLower(term)
	users := []*models.User{}
	for _, user := range directory.users {
		if term != "" && !strings.Contains(strings.ToLower(user.Username), term) && !strings.Contains(user.ID, term) {
			continue
		}
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func CountUsers(ctx context.Context, directory *Directory) (int, error) {
	directory.mu.RLock()
	defer directory.mu.RUnlock()
	return len(directory.users), nil
}

func CountUsersActiveToday(ctx context.Context, directory *Directory) (int, error) {
	directory.mu.RLock()
	defer directory.mu.RUnlock()

	count := 0
	for _, user := range directory.users {
		// last-active markers older than a day use the "Nd ago" form
		if !strings.HasSuffix(user.LastActive, "d ago") {
			count++
		}
	}
	return count, nil
}

func SeedUsers() []*models.User {
	return []*models.User{
		{ID: "101", Username: "CryptoKing", Balance: 0.55, Joined: "2024-01-10", LastActive: "2h ago"},
		{ID: "102", Username: "TonMaster", Balance: 0.12, Joined: "2024-02-15", LastActive: "5m ago"},
		{ID: "103", Username: "BeeLover", Balance: 0.004, Joined: "2024-03-01", LastActive: "1d ago"},
	}
}
