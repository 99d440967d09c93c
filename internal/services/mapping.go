package services

import (
	"errors"
	"time"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/apperrors"
	"github.com/carelink-dev/carelink/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MappingRequest struct {
	Patient uint   `json:"patient" binding:"required"`
	Doctor  uint   `json:"doctor" binding:"required"`
	Notes   string `json:"notes"`
}

// CreateMapping assigns a doctor to one of the caller's patients. The
// existence check and the insert run in one transaction; if a concurrent
// create slips past the check anyway, the partial unique index rejects the
// insert and the violation is reported as the same conflict.
func CreateMapping(callerID uint, req MappingRequest) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping

	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, req.Patient).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Patient not found")
			}
			return err
		}

		var doctor models.Doctor
		if err := tx.First(&doctor, req.Doctor).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Doctor not found")
			}
			return err
		}

		// The doctor is a shared directory entry; only the patient must
		// belong to the caller.
		if patient.UserID != callerID {
			return apperrors.Authorization("You can only assign doctors to your own patients")
		}

		var count int64
		if err := tx.Model(&models.PatientDoctorMapping{}).
			Where("patient_id = ? AND doctor_id = ? AND is_active = ?", patient.ID, doctor.ID, true).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperrors.Conflict("This patient is already assigned to this doctor")
		}

		mapping = models.PatientDoctorMapping{
			PatientID:    patient.ID,
			DoctorID:     doctor.ID,
			AssignedDate: datatypes.Date(time.Now()),
			Notes:        req.Notes,
			IsActive:     true,
		}

		if err := tx.Create(&mapping).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Conflict("This patient is already assigned to this doctor")
			}
			return err
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return GetMapping(mapping.ID)
}

func GetMapping(id uint) (*models.PatientDoctorMapping, error) {
	var mapping models.PatientDoctorMapping

	err := db.DB.Preload("Patient.User").Preload("Doctor.User").
		First(&mapping, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Mapping not found")
		}
		return nil, err
	}
	return &mapping, nil
}

// ListActiveMappings returns all currently-active mappings, optionally
// restricted to one patient. Most recent assignment first; ties broken by id
// so the order is deterministic.
func ListActiveMappings(patientID *uint) ([]models.PatientDoctorMapping, error) {
	query := db.DB.Preload("Patient.User").Preload("Doctor.User").
		Where("is_active = ?", true).
		Order("assigned_date DESC, id DESC")

	if patientID != nil {
		query = query.Where("patient_id = ?", *patientID)
	}

	var mappings []models.PatientDoctorMapping
	if err := query.Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// ListMappingsForPatient is the per-patient convenience read; it returns the
// same rows as ListActiveMappings filtered to that patient.
func ListMappingsForPatient(patientID uint) ([]models.PatientDoctorMapping, error) {
	return ListActiveMappings(&patientID)
}

// DeactivateMapping logically removes a mapping. The caller must own the
// referenced patient. Deactivating an already-inactive mapping is a no-op,
// not an error.
func DeactivateMapping(callerID, id uint) error {
	var mapping models.PatientDoctorMapping

	if err := db.DB.Preload("Patient").First(&mapping, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Mapping not found")
		}
		return err
	}

	if mapping.Patient.UserID != callerID {
		return apperrors.Authorization("You can only manage mappings for your own patients")
	}

	if !mapping.IsActive {
		return nil
	}

	return db.DB.Model(&mapping).Update("is_active", false).Error
}
