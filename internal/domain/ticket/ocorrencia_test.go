package ticket

import (
	"testing"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, code, domainErr.Code)
}

func newTestOcorrencia(t *testing.T) *Ocorrencia {
	t.Helper()
	unitID := uuid.New()
	o, err := NewOcorrencia(uuid.New(), &unitID, uuid.New(), CategoryMaintenance,
		"Vazamento na garagem", "Infiltracao perto da vaga 12")
	require.NoError(t, err)
	return o
}

func TestNewOcorrencia(t *testing.T) {
	t.Run("valid occurrence", func(t *testing.T) {
		o := newTestOcorrencia(t)
		assert.Equal(t, OcorrenciaStatusOpen, o.Status)
		assert.Empty(t, o.Comments)

		events := o.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeOcorrenciaOpened, events[0].EventType())
	})

	t.Run("common-area report without unit", func(t *testing.T) {
		_, err := NewOcorrencia(uuid.New(), nil, uuid.New(), CategorySecurity, "Portao aberto", "")
		assert.NoError(t, err)
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := NewOcorrencia(uuid.New(), nil, uuid.New(), CategoryOther, " ", "")
		assertCode(t, err, "INVALID_TITLE")
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := NewOcorrencia(uuid.New(), nil, uuid.New(), OcorrenciaCategory("PLUMBING"), "Titulo", "")
		assertCode(t, err, "INVALID_CATEGORY")
	})
}

func TestOcorrencia_Workflow(t *testing.T) {
	now := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	staff := uuid.New()

	t.Run("full workflow", func(t *testing.T) {
		o := newTestOcorrencia(t)

		require.NoError(t, o.Assign(staff))
		assert.Equal(t, OcorrenciaStatusInProgress, o.Status)
		assert.Equal(t, staff, *o.AssignedTo)

		require.NoError(t, o.Resolve("Encanamento trocado", now))
		assert.Equal(t, OcorrenciaStatusResolved, o.Status)
		assert.Equal(t, "Encanamento trocado", o.Resolution)

		require.NoError(t, o.Close(now.AddDate(0, 0, 2)))
		assert.Equal(t, OcorrenciaStatusClosed, o.Status)
	})

	t.Run("resolve directly from open", func(t *testing.T) {
		o := newTestOcorrencia(t)
		assert.NoError(t, o.Resolve("Resolvido na hora", now))
	})

	t.Run("resolution note required", func(t *testing.T) {
		o := newTestOcorrencia(t)
		assertCode(t, o.Resolve("  ", now), "INVALID_RESOLUTION")
	})

	t.Run("close requires resolved", func(t *testing.T) {
		o := newTestOcorrencia(t)
		assertCode(t, o.Close(now), "INVALID_STATE")
	})

	t.Run("reopen clears resolution", func(t *testing.T) {
		o := newTestOcorrencia(t)
		require.NoError(t, o.Resolve("Tentativa 1", now))
		require.NoError(t, o.Reopen())

		assert.Equal(t, OcorrenciaStatusInProgress, o.Status)
		assert.Empty(t, o.Resolution)
		assert.Nil(t, o.ResolvedAt)
		assert.Equal(t, 1, o.ReopenCount)
	})

	t.Run("closed is terminal", func(t *testing.T) {
		o := newTestOcorrencia(t)
		require.NoError(t, o.Resolve("Feito", now))
		require.NoError(t, o.Close(now))

		assertCode(t, o.Assign(staff), "INVALID_STATE")
		assertCode(t, o.Reopen(), "INVALID_STATE")
		assertCode(t, o.Resolve("de novo", now), "INVALID_STATE")
	})
}

func TestOcorrencia_Comments(t *testing.T) {
	o := newTestOcorrencia(t)
	resident := uuid.New()
	sindico := uuid.New()

	_, err := o.AddComment(resident, "O vazamento piorou", false)
	require.NoError(t, err)
	_, err = o.AddComment(sindico, "Orcamento aprovado em reuniao", true)
	require.NoError(t, err)

	assert.Len(t, o.Comments, 2)
	visible := o.VisibleComments()
	require.Len(t, visible, 1)
	assert.Equal(t, "O vazamento piorou", visible[0].Body)

	_, err = o.AddComment(resident, "  ", false)
	assertCode(t, err, "INVALID_COMMENT")

	require.NoError(t, o.Resolve("Feito", time.Now()))
	require.NoError(t, o.Close(time.Now()))
	_, err = o.AddComment(resident, "obrigado", false)
	assertCode(t, err, "INVALID_STATE")
}
