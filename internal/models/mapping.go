package models

import (
	"time"

	"gorm.io/datatypes"
)

// PatientDoctorMapping links a patient to a doctor. Removal from the API is
// logical (IsActive flips to false, the row stays as history); rows only
// leave the table when the referenced patient or doctor is deleted.
//
// The partial unique index is the authoritative guard for the
// one-active-mapping-per-pair rule: two concurrent creates can both pass the
// application-level existence check, but only one insert survives.
type PatientDoctorMapping struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	PatientID    uint           `gorm:"not null;uniqueIndex:idx_active_patient_doctor,where:is_active"`
	DoctorID     uint           `gorm:"not null;uniqueIndex:idx_active_patient_doctor"`
	AssignedDate datatypes.Date `gorm:"not null"`
	Notes        string
	IsActive     bool `gorm:"not null;default:true;index"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
