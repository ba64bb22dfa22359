package frontdesk

import (
	"time"

	"github.com/condo/backend/internal/domain/frontdesk"
)

// ExpectVisitaRequest pre-authorizes a visitor on behalf of a unit
type ExpectVisitaRequest struct {
	UnitID       string     `json:"unit_id" binding:"required,uuid"`
	AuthorizedBy string     `json:"authorized_by" binding:"required,uuid"`
	VisitorName  string     `json:"visitor_name" binding:"required,max=200"`
	VisitorDoc   string     `json:"visitor_doc" binding:"max=50"`
	ExpectedAt   *time.Time `json:"expected_at"`
	Notes        string     `json:"notes" binding:"max=500"`
}

// WalkInVisitaRequest registers an unannounced visitor at the gate
type WalkInVisitaRequest struct {
	UnitID       string `json:"unit_id" binding:"required,uuid"`
	RegisteredBy string `json:"registered_by" binding:"required,uuid"`
	VisitorName  string `json:"visitor_name" binding:"required,max=200"`
	VisitorDoc   string `json:"visitor_doc" binding:"max=50"`
	Notes        string `json:"notes" binding:"max=500"`
}

// VisitaResponse is the API representation of a visit
type VisitaResponse struct {
	ID           string     `json:"id"`
	UnitID       string     `json:"unit_id"`
	VisitorName  string     `json:"visitor_name"`
	VisitorDoc   string     `json:"visitor_doc,omitempty"`
	Status       string     `json:"status"`
	AuthorizedBy *string    `json:"authorized_by,omitempty"`
	ExpectedAt   *time.Time `json:"expected_at,omitempty"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `json:"checked_out_at,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// VisitaListFilter filters visit listings
type VisitaListFilter struct {
	UnitID   string
	Status   string
	From     *time.Time
	To       *time.Time
	Page     int
	PageSize int
}

// ToVisitaResponse converts a domain visit
func ToVisitaResponse(v *frontdesk.Visita) *VisitaResponse {
	resp := &VisitaResponse{
		ID:           v.ID.String(),
		UnitID:       v.UnitID.String(),
		VisitorName:  v.VisitorName,
		VisitorDoc:   v.VisitorDoc,
		Status:       string(v.Status),
		ExpectedAt:   v.ExpectedAt,
		CheckedInAt:  v.CheckedInAt,
		CheckedOutAt: v.CheckedOutAt,
		Notes:        v.Notes,
		CreatedAt:    v.CreatedAt,
	}
	if v.AuthorizedBy != nil {
		id := v.AuthorizedBy.String()
		resp.AuthorizedBy = &id
	}
	return resp
}

// ToVisitaResponses converts a list of domain visits
func ToVisitaResponses(visitas []*frontdesk.Visita) []*VisitaResponse {
	out := make([]*VisitaResponse, len(visitas))
	for i, v := range visitas {
		out[i] = ToVisitaResponse(v)
	}
	return out
}

// ReceiveEncomendaRequest registers a package at the front desk
type ReceiveEncomendaRequest struct {
	UnitID       string `json:"unit_id" binding:"required,uuid"`
	ReceivedBy   string `json:"received_by" binding:"required,uuid"`
	Description  string `json:"description" binding:"required,max=500"`
	Carrier      string `json:"carrier" binding:"max=100"`
	TrackingCode string `json:"tracking_code" binding:"max=100"`
}

// DeliverEncomendaRequest hands a package to a resident
type DeliverEncomendaRequest struct {
	DeliveredTo string `json:"delivered_to" binding:"required,max=200"`
}

// ReturnEncomendaRequest sends a package back to the carrier
type ReturnEncomendaRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// EncomendaResponse is the API representation of a package
type EncomendaResponse struct {
	ID           string     `json:"id"`
	UnitID       string     `json:"unit_id"`
	Description  string     `json:"description"`
	Carrier      string     `json:"carrier,omitempty"`
	TrackingCode string     `json:"tracking_code,omitempty"`
	Status       string     `json:"status"`
	ReceivedAt   time.Time  `json:"received_at"`
	DeliveredAt  *time.Time `json:"delivered_at,omitempty"`
	DeliveredTo  string     `json:"delivered_to,omitempty"`
	ReturnedAt   *time.Time `json:"returned_at,omitempty"`
	DaysHeld     int        `json:"days_held"`
	Notes        string     `json:"notes,omitempty"`
}

// EncomendaListFilter filters package listings
type EncomendaListFilter struct {
	UnitID   string
	Status   string
	Page     int
	PageSize int
}
