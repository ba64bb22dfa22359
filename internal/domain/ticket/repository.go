package ticket

import (
	"context"

	"github.com/google/uuid"
)

// OcorrenciaFilter carries query options for occurrence listings
type OcorrenciaFilter struct {
	UnitID     *uuid.UUID
	OpenedBy   *uuid.UUID
	Status     *OcorrenciaStatus
	Category   *OcorrenciaCategory
	AssignedTo *uuid.UUID
	Limit      int
	Offset     int
}

// OcorrenciaRepository persists occurrence tickets
type OcorrenciaRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Ocorrencia, error)
	FindByIDForCondo(ctx context.Context, condominiumID, id uuid.UUID) (*Ocorrencia, error)
	FindAllForCondo(ctx context.Context, condominiumID uuid.UUID, filter OcorrenciaFilter) ([]*Ocorrencia, error)
	Save(ctx context.Context, ocorrencia *Ocorrencia) error
	CountByStatus(ctx context.Context, condominiumID uuid.UUID) (map[OcorrenciaStatus]int64, error)
	CountForCondo(ctx context.Context, condominiumID uuid.UUID, filter OcorrenciaFilter) (int64, error)
}
