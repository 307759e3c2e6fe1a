package models

import (
	"time"

	"gorm.io/datatypes"
)

// Owner is the local record for an externally authenticated user. UID is the
// identity provider's stable subject identifier.
type Owner struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	UID        string  `json:"uid" gorm:"uniqueIndex;not null;size:128"`
	Name       string  `json:"name" gorm:"size:150"`
	Email      string  `json:"email" gorm:"uniqueIndex;not null;size:255"`
	University *string `json:"university" gorm:"size:150"`

	Preferences datatypes.JSON `json:"preferences"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sheets []Sheet `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

func (Owner) TableName() string {
	return "owners"
}
