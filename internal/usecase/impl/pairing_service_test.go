package impl

import (
	"context"
	"fmt"
	"testing"

	"checkin/internal/domain/entity"
	domainerrors "checkin/internal/domain/errors"
	"checkin/internal/domain/repository"
	mockRepo "checkin/internal/mocks/repository"
	mockSvc "checkin/internal/mocks/service"
	"checkin/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pairingServiceFixtures holds all test dependencies for pairing service tests.
type pairingServiceFixtures struct {
	service    usecase.PairingUsecase
	coupleRepo *mockRepo.MockCoupleRepository
	qrcode     *mockSvc.MockQRCodeService
	publisher  *mockSvc.MockEventPublisher
}

func createTestPairingService(t *testing.T) pairingServiceFixtures {
	coupleRepo := mockRepo.NewMockCoupleRepository(t)
	qrcode := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewPairingService(PairingServiceParams{
		CoupleRepo:     coupleRepo,
		QRCodeService:  qrcode,
		EventPublisher: publisher,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return pairingServiceFixtures{
		service:    svc,
		coupleRepo: coupleRepo,
		qrcode:     qrcode,
		publisher:  publisher,
	}
}

func TestPairingService_EnsureCouple_CreatesWhenMissing(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(nil, repository.ErrCoupleNotFound)

	fx.coupleRepo.EXPECT().
		CreateCouple(ctx, mock.AnythingOfType("*entity.Couple")).
		Return(nil)

	couple, err := fx.service.EnsureCouple(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, couple)
	assert.Equal(t, userID, couple.OwnerUserID)
	assert.Nil(t, couple.PartnerUserID)
	assert.NotEqual(t, uuid.Nil, couple.ID)
}

func TestPairingService_EnsureCouple_SecondCallUsesCache(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	couple := &entity.Couple{ID: uuid.New(), OwnerUserID: userID}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(couple, nil).
		Once()

	first, err := fx.service.EnsureCouple(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, couple.ID, first.ID)

	// The second call validates the remembered id instead of repeating the
	// membership query. The shared realm is probed first.
	fx.coupleRepo.EXPECT().
		FindCoupleByID(ctx, couple.ID, repository.RealmShared, userID).
		Return(couple, nil).
		Once()

	second, err := fx.service.EnsureCouple(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, couple.ID, second.ID)
}

func TestPairingService_EnsureCouple_AdoptsDuplicateCreate(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.Couple{ID: uuid.New(), OwnerUserID: userID}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(nil, repository.ErrCoupleNotFound).
		Once()

	fx.coupleRepo.EXPECT().
		CreateCouple(ctx, mock.AnythingOfType("*entity.Couple")).
		Return(repository.ErrDuplicateCouple)

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(existing, nil).
		Once()

	couple, err := fx.service.EnsureCouple(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, couple.ID)
}

func TestPairingService_CreateInviteLink_IssuesToken(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	couple := &entity.Couple{ID: uuid.New(), OwnerUserID: userID, Version: 3}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(couple, nil)

	var issued uuid.UUID
	fx.coupleRepo.EXPECT().
		SetInviteToken(ctx, couple.ID, mock.AnythingOfType("uuid.UUID"), int64(3)).
		Run(func(_ context.Context, _ uuid.UUID, token uuid.UUID, _ int64) {
			issued = token
		}).
		Return(nil)

	fx.qrcode.EXPECT().
		GenerateInviteQR(mock.AnythingOfType("uuid.UUID")).
		Return([]byte("png-bytes"), nil)

	link, err := fx.service.CreateInviteLink(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, issued, link.Token)
	assert.Equal(t, fmt.Sprintf("https://checkin.example/invite/%s", issued), link.URL)
	assert.Equal(t, fmt.Sprintf("checkin://invite?token=%s", issued), link.DeepLink)
	assert.Equal(t, []byte("png-bytes"), link.QRCode)
}

func TestPairingService_CreateInviteLink_ReusesOpenToken(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.New()
	couple := &entity.Couple{ID: uuid.New(), OwnerUserID: userID, InviteToken: &token}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(couple, nil)

	fx.qrcode.EXPECT().
		GenerateInviteQR(token).
		Return([]byte("png-bytes"), nil)

	link, err := fx.service.CreateInviteLink(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, token, link.Token)
}

func TestPairingService_CreateInviteLink_NotOwner(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	ownerID := uuid.New()
	couple := &entity.Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &userID}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(couple, nil)

	link, err := fx.service.CreateInviteLink(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrNotCoupleOwner)
}

func TestPairingService_CreateInviteLink_AlreadyPaired(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	partnerID := uuid.New()
	couple := &entity.Couple{ID: uuid.New(), OwnerUserID: userID, PartnerUserID: &partnerID}

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(couple, nil)

	link, err := fx.service.CreateInviteLink(ctx, userID)
	require.Error(t, err)
	assert.Nil(t, link)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaired)
}

func TestPairingService_CreateInviteLink_ConflictAdoptsStoredToken(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	coupleID := uuid.New()
	winner := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: userID, Version: 1}, nil).
		Once()

	fx.coupleRepo.EXPECT().
		SetInviteToken(ctx, coupleID, mock.AnythingOfType("uuid.UUID"), int64(1)).
		Return(repository.ErrCoupleConflict)

	// Another device issued a token first; the stored one wins.
	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: userID, InviteToken: &winner, Version: 2}, nil).
		Once()

	fx.qrcode.EXPECT().
		GenerateInviteQR(winner).
		Return([]byte("png-bytes"), nil)

	link, err := fx.service.CreateInviteLink(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, winner, link.Token)
}

func TestPairingService_AcceptInviteLink_Success(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	token := uuid.New()
	coupleID := uuid.New()

	pending := &entity.Couple{ID: coupleID, OwnerUserID: ownerID, InviteToken: &token}
	claimed := &entity.Couple{ID: coupleID, OwnerUserID: ownerID, PartnerUserID: &partnerID}

	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(pending, nil)

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, partnerID).
		Return(nil, repository.ErrCoupleNotFound)

	fx.coupleRepo.EXPECT().
		ClaimInvite(ctx, token, partnerID).
		Return(claimed, nil)

	fx.coupleRepo.EXPECT().
		FindCoupleByID(ctx, coupleID, repository.RealmShared, partnerID).
		Return(claimed, nil)

	fx.publisher.EXPECT().
		PublishCheckinEvent(mock.Anything, mock.AnythingOfType("*service.CheckinEvent")).
		Return(nil)

	status, err := fx.service.AcceptInviteLink(ctx, partnerID,
		fmt.Sprintf("https://checkin.example/invite/%s", token))
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.True(t, status.IsPaired)
	require.NotNil(t, status.CoupleID)
	assert.Equal(t, coupleID, *status.CoupleID)
	require.NotNil(t, status.PartnerID)
	assert.Equal(t, ownerID, *status.PartnerID)
}

func TestPairingService_AcceptInviteLink_DeepLinkForm(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	token := uuid.New()
	coupleID := uuid.New()

	claimed := &entity.Couple{ID: coupleID, OwnerUserID: ownerID, PartnerUserID: &partnerID}

	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: ownerID, InviteToken: &token}, nil)
	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, partnerID).
		Return(nil, repository.ErrCoupleNotFound)
	fx.coupleRepo.EXPECT().
		ClaimInvite(ctx, token, partnerID).
		Return(claimed, nil)
	fx.coupleRepo.EXPECT().
		FindCoupleByID(ctx, coupleID, repository.RealmShared, partnerID).
		Return(claimed, nil)
	fx.publisher.EXPECT().
		PublishCheckinEvent(mock.Anything, mock.AnythingOfType("*service.CheckinEvent")).
		Return(nil)

	status, err := fx.service.AcceptInviteLink(ctx, partnerID,
		fmt.Sprintf("checkin://invite?token=%s", token))
	require.NoError(t, err)
	assert.True(t, status.IsPaired)
}

func TestPairingService_AcceptInviteLink_OwnInvite(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	token := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(&entity.Couple{ID: uuid.New(), OwnerUserID: ownerID, InviteToken: &token}, nil)

	status, err := fx.service.AcceptInviteLink(ctx, ownerID,
		fmt.Sprintf("https://checkin.example/invite/%s", token))
	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrCannotAcceptOwnInvite)
}

func TestPairingService_AcceptInviteLink_ConsumedIsIdempotentForMember(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	token := uuid.New()

	// The token is gone because this same caller claimed it already.
	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(nil, repository.ErrCoupleNotFound)

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, partnerID).
		Return(&entity.Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &partnerID}, nil)

	status, err := fx.service.AcceptInviteLink(ctx, partnerID,
		fmt.Sprintf("https://checkin.example/invite/%s", token))
	require.NoError(t, err)
	assert.True(t, status.IsPaired)
}

func TestPairingService_AcceptInviteLink_ConsumedByOtherAccount(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(nil, repository.ErrCoupleNotFound)

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(nil, repository.ErrCoupleNotFound)

	status, err := fx.service.AcceptInviteLink(ctx, userID,
		fmt.Sprintf("https://checkin.example/invite/%s", token))
	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrInviteAlreadyClaimed)
}

func TestPairingService_AcceptInviteLink_AlreadyInAnotherCouple(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()
	token := uuid.New()
	somebody := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleByInviteToken(ctx, token).
		Return(&entity.Couple{ID: uuid.New(), OwnerUserID: somebody, InviteToken: &token}, nil)

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(&entity.Couple{ID: uuid.New(), OwnerUserID: userID}, nil)

	status, err := fx.service.AcceptInviteLink(ctx, userID,
		fmt.Sprintf("https://checkin.example/invite/%s", token))
	require.Error(t, err)
	assert.Nil(t, status)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaired)
}

func TestPairingService_AcceptInviteLink_LinkWithoutToken(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()

	status, err := fx.service.AcceptInviteLink(ctx, uuid.New(), "https://checkin.example/invite/")
	require.Error(t, err)
	assert.Nil(t, status)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVITE_NOT_FOUND", appErr.ErrorCode())
}

func TestPairingService_CheckPairingStatus_NoCouple(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(nil, repository.ErrCoupleNotFound)

	status, err := fx.service.CheckPairingStatus(ctx, userID)
	require.NoError(t, err)
	require.NotNil(t, status)
	assert.False(t, status.IsPaired)
	assert.Nil(t, status.CoupleID)
	assert.Nil(t, status.PartnerID)
}

func TestPairingService_CheckPairingStatus_Paired(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	coupleID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, ownerID).
		Return(&entity.Couple{ID: coupleID, OwnerUserID: ownerID, PartnerUserID: &partnerID}, nil)

	status, err := fx.service.CheckPairingStatus(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, status.IsPaired)
	assert.Equal(t, coupleID, *status.CoupleID)
	assert.Equal(t, partnerID, *status.PartnerID)
}

func TestPairingService_CompletePairing_SweepsLeftoverToken(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	token := uuid.New()
	coupleID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, ownerID).
		Return(&entity.Couple{
			ID:            coupleID,
			OwnerUserID:   ownerID,
			PartnerUserID: &partnerID,
			InviteToken:   &token,
		}, nil)

	fx.coupleRepo.EXPECT().ClearInviteToken(ctx, coupleID).Return(nil)

	err := fx.service.CompletePairing(ctx, ownerID)
	require.NoError(t, err)
}

func TestPairingService_CompletePairing_NothingToSweep(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, ownerID).
		Return(&entity.Couple{ID: uuid.New(), OwnerUserID: ownerID, PartnerUserID: &partnerID}, nil)

	err := fx.service.CompletePairing(ctx, ownerID)
	require.NoError(t, err)
}

func TestPairingService_CompletePairing_NoCouple(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, userID).
		Return(nil, repository.ErrCoupleNotFound)

	err := fx.service.CompletePairing(ctx, userID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNoCoupleScope)
}

func TestPairingService_CompletePairing_RevokeFailureIsSilent(t *testing.T) {
	fx := createTestPairingService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	partnerID := uuid.New()
	token := uuid.New()
	coupleID := uuid.New()

	fx.coupleRepo.EXPECT().
		FindCoupleForUser(ctx, ownerID).
		Return(&entity.Couple{
			ID:            coupleID,
			OwnerUserID:   ownerID,
			PartnerUserID: &partnerID,
			InviteToken:   &token,
		}, nil)

	fx.coupleRepo.EXPECT().
		ClearInviteToken(ctx, coupleID).
		Return(errors.New("connection reset"))

	err := fx.service.CompletePairing(ctx, ownerID)
	require.NoError(t, err)
}
