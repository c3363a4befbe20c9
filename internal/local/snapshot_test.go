package local

import (
	"testing"

	"github.com/hypecli/hype-cli/internal/cloud/hype"
	"github.com/hypecli/hype-cli/internal/utils/test/assert"

	"github.com/spf13/afero"
)

func TestStore(t *testing.T) {
	profile := hype.Profile{Firstname: "mario", Lastname: "rossi", Email: "user@example.com"}
	balance := hype.Balance{"amount": "42.00"}
	card := hype.Card{"status": "ACTIVE"}
	movements := hype.Movements{Months: []hype.MonthMovements{
		{Movements: []hype.Movement{{Title: "coffee", SubType: "PAYMENT", Amount: 1.2, Date: "2026-08-30"}}},
	}}

	t.Run("should round trip every snapshot", func(t *testing.T) {
		store := NewStoreWithFs(afero.NewMemMapFs(), "/snapshots")

		assert.Nil(t, store.WriteProfile(profile))
		assert.Nil(t, store.WriteBalance(balance))
		assert.Nil(t, store.WriteCard(card))
		assert.Nil(t, store.WriteMovements(movements))

		profileOut, profileErr := store.Profile()
		assert.Nil(t, profileErr)
		assert.Equal(t, profile, profileOut)

		balanceOut, balanceErr := store.Balance()
		assert.Nil(t, balanceErr)
		assert.Equal(t, balance, balanceOut)

		cardOut, cardErr := store.Card()
		assert.Nil(t, cardErr)
		assert.Equal(t, card, cardOut)

		movementsOut, movementsErr := store.Movements()
		assert.Nil(t, movementsErr)
		assert.Equal(t, movements, movementsOut)
	})

	t.Run("should report whether a profile snapshot exists", func(t *testing.T) {
		store := NewStoreWithFs(afero.NewMemMapFs(), "/snapshots")
		assert.False(t, store.HasProfile(), "an empty store should have no profile")

		assert.Nil(t, store.WriteProfile(profile))
		assert.True(t, store.HasProfile(), "the store should have a profile after a write")
	})

	t.Run("should error when reading a missing snapshot", func(t *testing.T) {
		store := NewStoreWithFs(afero.NewMemMapFs(), "/snapshots")
		_, err := store.Movements()
		assert.NotNil(t, err)
	})
}
