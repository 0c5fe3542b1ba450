package seed

import (
	"context"
	"testing"
	"time"

	"fitconnect/internal/auth"
	"fitconnect/internal/connection"
	"fitconnect/internal/storage"
	"fitconnect/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	users, conns := Build("hash", time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC))

	require.Len(t, users, 20)
	require.Len(t, conns, 13)

	john := users[0]
	assert.Equal(t, "trainer-1", john.ID)
	assert.Equal(t, "trainer1@example.com", john.Email)
	assert.Equal(t, "John Smith", john.FullName())
	assert.Equal(t, []string{"client-1", "client-6"}, john.Clients)
	assert.Equal(t, "ach-1", john.TrainerProfile.Achievements[0].ID)
	assert.Equal(t, "ach-20", users[9].TrainerProfile.Achievements[1].ID)

	alice := users[10]
	assert.Equal(t, "client-1", alice.ID)
	assert.Equal(t, user.RoleClient, alice.Role)
	assert.Equal(t, []string{"trainer-1", "trainer-3"}, alice.Trainers)
	require.NotNil(t, alice.ClientProfile.Age)
	assert.Equal(t, 28, *alice.ClientProfile.Age)

	assert.Equal(t, "conn-13", conns[12].ID)
	assert.Equal(t, "trainer-10", conns[12].TrainerID)
	assert.Equal(t, "client-10", conns[12].ClientID)
}

func TestRun(t *testing.T) {
	store := storage.NewMemoryStore()
	users := user.NewRepository(store)
	conns := connection.NewRepository(store)
	ctx := context.Background()

	seeded, err := Run(ctx, users, conns)
	require.NoError(t, err)
	assert.True(t, seeded)

	trainers, err := users.List(ctx, user.RoleTrainer)
	require.NoError(t, err)
	assert.Len(t, trainers, 10)

	carol, err := users.FindByEmail(ctx, "client3@example.com")
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(carol.PasswordHash, Password))

	forCarol, err := conns.ListByClient(ctx, carol.ID)
	require.NoError(t, err)
	assert.Len(t, forCarol, 2)

	seeded, err = Run(ctx, users, conns)
	require.NoError(t, err)
	assert.False(t, seeded, "a populated store is left alone")

	all, err := users.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 20)
}
