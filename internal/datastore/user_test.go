package datastore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindUsers(t *testing.T) {
	directory := NewDirectory(SeedUsers()...)

	users, err := FindUsers(context.Background(), directory, "ton")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "TonMaster", users[0].Username)

	users, err = FindUsers(context.Background(), directory, "101")
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "CryptoKing", users[0].Username)

	users, err = FindUsers(context.Background(), directory, "")
	require.NoError(t, err)
	require.Len(t, users, 3)
}

func TestCountUsersActiveToday(t *testing.T) {
	directory := NewDirectory(SeedUsers()...)

	active, err := CountUsersActiveToday(context.Background(), directory)
	require.NoError(t, err)
	require.Equal(t, 2, active)
}
