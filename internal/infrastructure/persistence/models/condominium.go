package models

import (
	"github.com/condo/backend/internal/domain/condominium"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CondominiumModel is the persistence model for condominiums.
// Settings are flattened into prefixed columns.
type CondominiumModel struct {
	AggregateModel
	Code                        string                        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name                        string                        `gorm:"type:varchar(200);not null"`
	CNPJ                        string                        `gorm:"type:varchar(14);index"`
	Status                      condominium.CondominiumStatus `gorm:"type:varchar(20);not null;default:'active';index"`
	Address                     string                        `gorm:"type:varchar(500)"`
	City                        string                        `gorm:"type:varchar(100)"`
	State                       string                        `gorm:"type:varchar(2)"`
	ZipCode                     string                        `gorm:"type:varchar(20)"`
	ContactName                 string                        `gorm:"type:varchar(100)"`
	ContactPhone                string                        `gorm:"type:varchar(50)"`
	ContactEmail                string                        `gorm:"type:varchar(200)"`
	SettingsTimezone            string                        `gorm:"type:varchar(50);not null;default:'America/Sao_Paulo'"`
	SettingsCurrency            string                        `gorm:"type:varchar(3);not null;default:'BRL'"`
	SettingsBoletoDueDay        int                           `gorm:"not null;default:10"`
	SettingsLatePaymentFinePct  string                        `gorm:"type:varchar(20);not null;default:'2.00'"`
	SettingsMonthlyInterestPct  string                        `gorm:"type:varchar(20);not null;default:'1.00'"`
	SettingsVisitorLogRetention int                           `gorm:"not null;default:365"`
	Notes                       string                        `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CondominiumModel) TableName() string {
	return "condominiums"
}

// ToDomain converts the persistence model to a domain Condominium entity.
func (m *CondominiumModel) ToDomain() *condominium.Condominium {
	c := &condominium.Condominium{
		Code:         m.Code,
		Name:         m.Name,
		CNPJ:         m.CNPJ,
		Status:       m.Status,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		ZipCode:      m.ZipCode,
		ContactName:  m.ContactName,
		ContactPhone: m.ContactPhone,
		ContactEmail: m.ContactEmail,
		Settings: condominium.CondominiumSettings{
			Timezone:            m.SettingsTimezone,
			Currency:            m.SettingsCurrency,
			BoletoDueDay:        m.SettingsBoletoDueDay,
			LatePaymentFinePct:  m.SettingsLatePaymentFinePct,
			MonthlyInterestPct:  m.SettingsMonthlyInterestPct,
			VisitorLogRetention: m.SettingsVisitorLogRetention,
		},
		Notes: m.Notes,
	}
	m.PopulateAggregateRoot(&c.BaseAggregateRoot)
	return c
}

// FromDomain populates the persistence model from a domain Condominium entity.
func (m *CondominiumModel) FromDomain(c *condominium.Condominium) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Code = c.Code
	m.Name = c.Name
	m.CNPJ = c.CNPJ
	m.Status = c.Status
	m.Address = c.Address
	m.City = c.City
	m.State = c.State
	m.ZipCode = c.ZipCode
	m.ContactName = c.ContactName
	m.ContactPhone = c.ContactPhone
	m.ContactEmail = c.ContactEmail
	m.SettingsTimezone = c.Settings.Timezone
	m.SettingsCurrency = c.Settings.Currency
	m.SettingsBoletoDueDay = c.Settings.BoletoDueDay
	m.SettingsLatePaymentFinePct = c.Settings.LatePaymentFinePct
	m.SettingsMonthlyInterestPct = c.Settings.MonthlyInterestPct
	m.SettingsVisitorLogRetention = c.Settings.VisitorLogRetention
	m.Notes = c.Notes
}

// CondominiumModelFromDomain creates a new persistence model from a domain Condominium entity.
func CondominiumModelFromDomain(c *condominium.Condominium) *CondominiumModel {
	m := &CondominiumModel{}
	m.FromDomain(c)
	return m
}

// UnidadeModel is the persistence model for units
type UnidadeModel struct {
	CondoAggregateModel
	Bloco        string                      `gorm:"type:varchar(20)"`
	Numero       string                      `gorm:"type:varchar(20);not null;index"`
	FracaoIdeal  decimal.Decimal             `gorm:"type:decimal(10,6);not null;default:0"`
	AreaM2       decimal.Decimal             `gorm:"type:decimal(10,2);not null;default:0"`
	Occupancy    condominium.OccupancyStatus `gorm:"type:varchar(20);not null;default:'VACANT'"`
	OwnerUserID  *uuid.UUID                  `gorm:"type:uuid;index"`
	TenantUserID *uuid.UUID                  `gorm:"type:uuid;index"`
	Active       bool                        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (UnidadeModel) TableName() string {
	return "unidades"
}

// ToDomain converts the persistence model to a domain Unidade entity.
func (m *UnidadeModel) ToDomain() *condominium.Unidade {
	u := &condominium.Unidade{
		Bloco:        m.Bloco,
		Numero:       m.Numero,
		FracaoIdeal:  m.FracaoIdeal,
		AreaM2:       m.AreaM2,
		Occupancy:    m.Occupancy,
		OwnerUserID:  m.OwnerUserID,
		TenantUserID: m.TenantUserID,
		Active:       m.Active,
	}
	m.PopulateCondoAggregateRoot(&u.CondoAggregateRoot)
	return u
}

// FromDomain populates the persistence model from a domain Unidade entity.
func (m *UnidadeModel) FromDomain(u *condominium.Unidade) {
	m.FromDomainCondoAggregateRoot(u.CondoAggregateRoot)
	m.Bloco = u.Bloco
	m.Numero = u.Numero
	m.FracaoIdeal = u.FracaoIdeal
	m.AreaM2 = u.AreaM2
	m.Occupancy = u.Occupancy
	m.OwnerUserID = u.OwnerUserID
	m.TenantUserID = u.TenantUserID
	m.Active = u.Active
}

// UnidadeModelFromDomain creates a new persistence model from a domain Unidade entity.
func UnidadeModelFromDomain(u *condominium.Unidade) *UnidadeModel {
	m := &UnidadeModel{}
	m.FromDomain(u)
	return m
}
