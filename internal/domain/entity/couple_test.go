package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouple_IsPaired(t *testing.T) {
	ownerID := uuid.New()
	partnerID := uuid.New()

	waiting := &Couple{ID: uuid.New(), OwnerUserID: ownerID}
	assert.False(t, waiting.IsPaired())

	paired := &Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &partnerID}
	assert.True(t, paired.IsPaired())
}

func TestCouple_Membership(t *testing.T) {
	ownerID := uuid.New()
	partnerID := uuid.New()
	strangerID := uuid.New()

	couple := &Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &partnerID}

	assert.True(t, couple.IsOwner(ownerID))
	assert.False(t, couple.IsOwner(partnerID))

	assert.True(t, couple.IsMember(ownerID))
	assert.True(t, couple.IsMember(partnerID))
	assert.False(t, couple.IsMember(strangerID))
}

func TestCouple_PartnerOf(t *testing.T) {
	ownerID := uuid.New()
	partnerID := uuid.New()

	couple := &Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &partnerID}

	// Each member sees the other as their partner.
	got := couple.PartnerOf(ownerID)
	require.NotNil(t, got)
	assert.Equal(t, partnerID, *got)

	got = couple.PartnerOf(partnerID)
	require.NotNil(t, got)
	assert.Equal(t, ownerID, *got)

	// A non-member sees nothing.
	assert.Nil(t, couple.PartnerOf(uuid.New()))
}

func TestCouple_PartnerOf_BeforePairing(t *testing.T) {
	ownerID := uuid.New()
	couple := &Couple{ID: uuid.New(), OwnerUserID: ownerID}

	assert.Nil(t, couple.PartnerOf(ownerID))
}
