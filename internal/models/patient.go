package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

func IsValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Patient rows are hard-deleted; removal cascades to every mapping that
// references the patient, active or not.
type Patient struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID         uint           `gorm:"not null;index"`
	FirstName      string         `gorm:"size:100;not null"`
	LastName       string         `gorm:"size:100;not null"`
	DateOfBirth    datatypes.Date `gorm:"not null"`
	Gender         string         `gorm:"size:1;not null"`
	Phone          string         `gorm:"size:15;not null"`
	Email          string         `gorm:"not null"`
	Address        string         `gorm:"not null"`
	MedicalHistory string

	// Relationships
	User     User                   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Mappings []PatientDoctorMapping `gorm:"foreignKey:PatientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
