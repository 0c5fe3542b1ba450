package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_GetMissing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectHGetAll("fitconnect:bookings").SetVal(map[string]string{})

	data, version, err := store.Get(context.Background(), KeyBookings)
	require.NoError(t, err)
	assert.Nil(t, data)
	assert.Equal(t, int64(0), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Get(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectHGetAll("fitconnect:availability").SetVal(map[string]string{
		"data":    `[{"id":"a-1"}]`,
		"version": "7",
	})

	data, version, err := store.Get(context.Background(), KeyAvailability)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a-1"}]`, string(data))
	assert.Equal(t, int64(7), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectHGetAll("fitconnect:users").SetErr(errors.New("connection refused"))

	_, _, err := store.Get(context.Background(), KeyUsers)
	assert.Error(t, err)
}

func TestRedisStore_Put(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectEvalSha(casScript.Hash(), []string{"fitconnect:bookings"}, "3", `[]`).SetVal(int64(4))

	version, err := store.Put(context.Background(), KeyBookings, []byte(`[]`), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_PutConflict(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client)

	mock.ExpectEvalSha(casScript.Hash(), []string{"fitconnect:bookings"}, "0", `[]`).SetVal(int64(-1))

	_, err := store.Put(context.Background(), KeyBookings, []byte(`[]`), 0)
	assert.ErrorIs(t, err, ErrVersionConflict)
}
