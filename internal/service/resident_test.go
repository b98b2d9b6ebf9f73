package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slava-del/RTAF/internal/model"
	"github.com/slava-del/RTAF/internal/repository/memory"
)

func TestSeedResidents(t *testing.T) {
	ctx := context.Background()
	stores := memory.New()

	assert.NoError(t, SeedResidents(ctx, stores.Residents))

	all, err := stores.Residents.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 6)

	internal, err := stores.Residents.List(ctx, model.SourceInternal)
	assert.NoError(t, err)
	assert.Len(t, internal, 3)

	external, err := stores.Residents.List(ctx, model.SourceExternal)
	assert.NoError(t, err)
	assert.Len(t, external, 3)

	// A second run must not duplicate the registry.
	assert.NoError(t, SeedResidents(ctx, stores.Residents))
	all, err = stores.Residents.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestResidentService_Get(t *testing.T) {
	ctx := context.Background()
	stores := memory.New()
	assert.NoError(t, SeedResidents(ctx, stores.Residents))

	svc := NewResidentService(stores.Residents)

	got, err := svc.Get(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "MD2304981", got.ResidentID)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}
