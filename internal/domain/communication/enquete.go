package communication

import (
	"fmt"
	"strings"
	"time"

	"github.com/condo/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// EnqueteStatus represents the status of a poll
type EnqueteStatus string

const (
	EnqueteStatusOpen   EnqueteStatus = "OPEN"
	EnqueteStatusClosed EnqueteStatus = "CLOSED"
)

// EnqueteOption is one of the choices residents vote on
type EnqueteOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// Voto records a unit's vote. One vote per unit; the unit, not the
// resident, is the voting entity in assemblies.
type Voto struct {
	UnitID   uuid.UUID `json:"unit_id"`
	UserID   uuid.UUID `json:"user_id"`
	OptionID int       `json:"option_id"`
	CastAt   time.Time `json:"cast_at"`
}

// Enquete is a poll among the units of the condominium
type Enquete struct {
	shared.CondoAggregateRoot
	Question string          `json:"question"`
	Options  []EnqueteOption `json:"options"`
	Status   EnqueteStatus   `json:"status"`
	Votes    []Voto          `json:"votes"`
	OpensAt  time.Time       `json:"opens_at"`
	ClosesAt time.Time       `json:"closes_at"`
	ClosedAt *time.Time      `json:"closed_at"`
}

// NewEnquete creates an open poll with at least two options
func NewEnquete(condominiumID, authorID uuid.UUID, question string, optionLabels []string, opensAt, closesAt time.Time) (*Enquete, error) {
	if strings.TrimSpace(question) == "" {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Poll question cannot be empty")
	}
	if len(optionLabels) < 2 {
		return nil, shared.NewDomainError("INVALID_OPTIONS", "Poll needs at least two options")
	}
	if !closesAt.After(opensAt) {
		return nil, shared.NewDomainError("INVALID_WINDOW", "Poll close must be after its open")
	}

	options := make([]EnqueteOption, 0, len(optionLabels))
	seen := make(map[string]bool)
	for i, label := range optionLabels {
		label = strings.TrimSpace(label)
		if label == "" {
			return nil, shared.NewDomainError("INVALID_OPTIONS", "Poll option cannot be empty")
		}
		if seen[label] {
			return nil, shared.NewDomainError("INVALID_OPTIONS", "Poll options must be distinct")
		}
		seen[label] = true
		options = append(options, EnqueteOption{ID: i + 1, Label: label})
	}

	return &Enquete{
		CondoAggregateRoot: shared.NewCondoAggregateRootWithCreator(condominiumID, authorID),
		Question:           strings.TrimSpace(question),
		Options:            options,
		Status:             EnqueteStatusOpen,
		Votes:              make([]Voto, 0),
		OpensAt:            opensAt,
		ClosesAt:           closesAt,
	}, nil
}

// CastVote records a vote for the unit. A unit votes once; repeat
// attempts fail regardless of which resident tries.
func (e *Enquete) CastVote(unitID, userID uuid.UUID, optionID int, now time.Time) error {
	if e.Status != EnqueteStatusOpen {
		return shared.NewDomainError("POLL_CLOSED", "Poll is no longer open")
	}
	if now.Before(e.OpensAt) || now.After(e.ClosesAt) {
		return shared.NewDomainError("POLL_CLOSED", "Poll is outside its voting window")
	}

	valid := false
	for _, opt := range e.Options {
		if opt.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return shared.NewDomainError("INVALID_OPTION", fmt.Sprintf("Poll has no option %d", optionID))
	}

	for _, v := range e.Votes {
		if v.UnitID == unitID {
			return shared.NewDomainError("ALREADY_VOTED", "Unit has already voted in this poll")
		}
	}

	e.Votes = append(e.Votes, Voto{
		UnitID:   unitID,
		UserID:   userID,
		OptionID: optionID,
		CastAt:   now,
	})
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Close ends the poll early or at its scheduled close
func (e *Enquete) Close(now time.Time) error {
	if e.Status != EnqueteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Poll is already closed")
	}

	e.Status = EnqueteStatusClosed
	e.ClosedAt = &now
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// Results tallies votes per option ID
func (e *Enquete) Results() map[int]int {
	results := make(map[int]int, len(e.Options))
	for _, opt := range e.Options {
		results[opt.ID] = 0
	}
	for _, v := range e.Votes {
		results[v.OptionID]++
	}
	return results
}
