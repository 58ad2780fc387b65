package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MessageStatusNew      = "new"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"
)

// ContactMessage is a lead sent from the storefront contact form,
// optionally about a specific car.
type ContactMessage struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Email     string     `json:"email" gorm:"not null;index"`
	Phone     string     `json:"phone"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message" gorm:"type:text;not null"`
	CarID     *uuid.UUID `json:"car_id" gorm:"type:uuid;index"`
	Car       *Car       `json:"car,omitempty" gorm:"foreignKey:CarID;references:ID;constraint:OnDelete:SET NULL"`
	Status    string     `json:"status" gorm:"not null;default:'new';check:status IN ('new', 'read', 'replied', 'archived');index"`
	IPAddress string     `json:"-"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime;index:,sort:desc"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (m *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.Must(uuid.NewV7())
	}
	if m.Status == "" {
		m.Status = MessageStatusNew
	}
	return nil
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// ContactMessageRequest is the public contact form payload
type ContactMessageRequest struct {
	Name    string     `json:"name" binding:"required,min=2,max=120" example:"Ana Machava"`
	Email   string     `json:"email" binding:"required,email" example:"ana@example.com"`
	Phone   string     `json:"phone" binding:"omitempty,max=30" example:"+258 84 000 0000"`
	Subject string     `json:"subject" binding:"omitempty,max=200" example:"Test drive"`
	Message string     `json:"message" binding:"required,min=5,max=5000" example:"Is the Hilux still available?"`
	CarID   *uuid.UUID `json:"car_id" example:"018d1234-5678-7abc-def0-123456789abc"`
}

// UpdateMessageStatusRequest changes where a lead is in the follow-up flow
type UpdateMessageStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read replied archived" example:"replied"`
}
