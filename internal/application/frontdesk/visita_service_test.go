package frontdesk

import (
	"context"
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func TestVisitaService_ExpectAndCheckIn(t *testing.T) {
	condoID := uuid.New()
	unitID := uuid.New()
	residentID := uuid.New()
	porteiroID := uuid.New()
	now := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

	visitaRepo := new(MockVisitaRepository)
	visitaRepo.On("Save", mock.Anything, mock.AnythingOfType("*frontdesk.Visita")).Return(nil)

	svc := NewVisitaService(visitaRepo)
	svc.SetClock(fixedClock(now))

	expectedAt := now.Add(2 * time.Hour)
	resp, err := svc.Expect(context.Background(), condoID, ExpectVisitaRequest{
		UnitID:       unitID.String(),
		AuthorizedBy: residentID.String(),
		VisitorName:  "Carlos Lima",
		VisitorDoc:   "123.456.789-00",
		ExpectedAt:   &expectedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, string(frontdesk.VisitaStatusExpected), resp.Status)
	require.NotNil(t, resp.AuthorizedBy)
	assert.Equal(t, residentID.String(), *resp.AuthorizedBy)

	visitaID := uuid.MustParse(resp.ID)
	stored, err := frontdesk.NewExpectedVisita(condoID, unitID, residentID, "Carlos Lima", "123.456.789-00", &expectedAt)
	require.NoError(t, err)
	stored.ID = visitaID
	visitaRepo.On("FindByIDForCondo", mock.Anything, condoID, visitaID).Return(stored, nil)

	checked, err := svc.CheckIn(context.Background(), condoID, resp.ID, porteiroID.String())
	require.NoError(t, err)
	assert.Equal(t, string(frontdesk.VisitaStatusCheckedIn), checked.Status)
	require.NotNil(t, checked.CheckedInAt)
	assert.Equal(t, now, *checked.CheckedInAt)
}

func TestVisitaService_WalkIn(t *testing.T) {
	condoID := uuid.New()
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	visitaRepo := new(MockVisitaRepository)
	visitaRepo.On("Save", mock.Anything, mock.AnythingOfType("*frontdesk.Visita")).Return(nil)

	svc := NewVisitaService(visitaRepo)
	svc.SetClock(fixedClock(now))

	resp, err := svc.WalkIn(context.Background(), condoID, WalkInVisitaRequest{
		UnitID:       uuid.New().String(),
		RegisteredBy: uuid.New().String(),
		VisitorName:  "Entregador iFood",
	})

	require.NoError(t, err)
	assert.Equal(t, string(frontdesk.VisitaStatusCheckedIn), resp.Status)
	assert.Nil(t, resp.AuthorizedBy)
	require.NotNil(t, resp.CheckedInAt)
	assert.Equal(t, now, *resp.CheckedInAt)
}

func TestVisitaService_CheckOut_RequiresCheckIn(t *testing.T) {
	condoID := uuid.New()
	visita, err := frontdesk.NewExpectedVisita(condoID, uuid.New(), uuid.New(), "Carlos Lima", "", nil)
	require.NoError(t, err)

	visitaRepo := new(MockVisitaRepository)
	visitaRepo.On("FindByIDForCondo", mock.Anything, condoID, visita.ID).Return(visita, nil)

	svc := NewVisitaService(visitaRepo)

	_, err = svc.CheckOut(context.Background(), condoID, visita.ID.String())
	assertCode(t, err, "INVALID_STATE")
	visitaRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestVisitaService_Cancel(t *testing.T) {
	condoID := uuid.New()
	visita, err := frontdesk.NewExpectedVisita(condoID, uuid.New(), uuid.New(), "Carlos Lima", "", nil)
	require.NoError(t, err)

	visitaRepo := new(MockVisitaRepository)
	visitaRepo.On("FindByIDForCondo", mock.Anything, condoID, visita.ID).Return(visita, nil)
	visitaRepo.On("Save", mock.Anything, visita).Return(nil)

	svc := NewVisitaService(visitaRepo)

	resp, err := svc.Cancel(context.Background(), condoID, visita.ID.String())
	require.NoError(t, err)
	assert.Equal(t, string(frontdesk.VisitaStatusCancelled), resp.Status)
}
