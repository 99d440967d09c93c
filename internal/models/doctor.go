package models

import "time"

var Specializations = []string{
	"CARDIOLOGY",
	"DERMATOLOGY",
	"NEUROLOGY",
	"PEDIATRICS",
	"ORTHOPEDICS",
	"PSYCHIATRY",
	"GENERAL",
	"OTHER",
}

func IsValidSpecialization(s string) bool {
	for _, spec := range Specializations {
		if s == spec {
			return true
		}
	}
	return false
}

type Doctor struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID            uint    `gorm:"not null;index"`
	FirstName         string  `gorm:"size:100;not null"`
	LastName          string  `gorm:"size:100;not null"`
	Specialization    string  `gorm:"size:50;not null"`
	LicenseNumber     string  `gorm:"size:50;uniqueIndex;not null"`
	Phone             string  `gorm:"size:15;not null"`
	Email             string  `gorm:"not null"`
	YearsOfExperience int     `gorm:"not null"`
	ConsultationFee   float64 `gorm:"type:decimal(10,2);not null"`
	Available         bool    `gorm:"not null;default:true"`

	// Relationships
	User     User                   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Mappings []PatientDoctorMapping `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (d *Doctor) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName + " - " + d.Specialization
}
