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

const dateLayout = "2006-01-02"

type PatientRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	DateOfBirth    string `json:"date_of_birth" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Address        string `json:"address" binding:"required"`
	MedicalHistory string `json:"medical_history"`
}

// PatientPatch is the partial-update variant: nil fields are left untouched.
type PatientPatch struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	DateOfBirth    *string `json:"date_of_birth"`
	Gender         *string `json:"gender"`
	Phone          *string `json:"phone"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Address        *string `json:"address"`
	MedicalHistory *string `json:"medical_history"`
}

func (r PatientRequest) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if !validPhone(r.Phone) {
		fieldErrors["phone"] = "Phone number must contain only digits, spaces, hyphens, or plus sign."
	}
	if !models.IsValidGender(r.Gender) {
		fieldErrors["gender"] = "Gender must be one of: M, F, O."
	}
	if _, err := time.Parse(dateLayout, r.DateOfBirth); err != nil {
		fieldErrors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format."
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (r PatientPatch) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if r.Phone != nil && !validPhone(*r.Phone) {
		fieldErrors["phone"] = "Phone number must contain only digits, spaces, hyphens, or plus sign."
	}
	if r.Gender != nil && !models.IsValidGender(*r.Gender) {
		fieldErrors["gender"] = "Gender must be one of: M, F, O."
	}
	if r.DateOfBirth != nil {
		if _, err := time.Parse(dateLayout, *r.DateOfBirth); err != nil {
			fieldErrors["date_of_birth"] = "Date of birth must be in YYYY-MM-DD format."
		}
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListPatients returns the caller's patients, newest first.
func ListPatients(callerID uint) ([]models.Patient, error) {
	var patients []models.Patient

	err := db.DB.Preload("User").
		Where("user_id = ?", callerID).
		Order("created_at DESC, id DESC").
		Find(&patients).Error

	if err != nil {
		return nil, err
	}
	return patients, nil
}

func GetPatient(callerID, id uint) (*models.Patient, error) {
	var patient models.Patient

	err := db.DB.Preload("User").
		Where("id = ? AND user_id = ?", id, callerID).
		First(&patient).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Patient not found")
		}
		return nil, err
	}
	return &patient, nil
}

func CreatePatient(callerID uint, req PatientRequest) (*models.Patient, error) {
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	dob, _ := time.Parse(dateLayout, req.DateOfBirth)

	patient := models.Patient{
		UserID:         callerID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateOfBirth:    datatypes.Date(dob),
		Gender:         req.Gender,
		Phone:          req.Phone,
		Email:          req.Email,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
	}

	if err := db.DB.Create(&patient).Error; err != nil {
		return nil, err
	}

	return GetPatient(callerID, patient.ID)
}

func UpdatePatient(callerID, id uint, req PatientRequest) (*models.Patient, error) {
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	patient, err := GetPatient(callerID, id)
	if err != nil {
		return nil, err
	}

	dob, _ := time.Parse(dateLayout, req.DateOfBirth)

	patient.FirstName = req.FirstName
	patient.LastName = req.LastName
	patient.DateOfBirth = datatypes.Date(dob)
	patient.Gender = req.Gender
	patient.Phone = req.Phone
	patient.Email = req.Email
	patient.Address = req.Address
	patient.MedicalHistory = req.MedicalHistory

	if err := db.DB.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

func PatchPatient(callerID, id uint, patch PatientPatch) (*models.Patient, error) {
	if fieldErrors := patch.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	patient, err := GetPatient(callerID, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		patient.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		patient.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *patch.DateOfBirth)
		patient.DateOfBirth = datatypes.Date(dob)
	}
	if patch.Gender != nil {
		patient.Gender = *patch.Gender
	}
	if patch.Phone != nil {
		patient.Phone = *patch.Phone
	}
	if patch.Email != nil {
		patient.Email = *patch.Email
	}
	if patch.Address != nil {
		patient.Address = *patch.Address
	}
	if patch.MedicalHistory != nil {
		patient.MedicalHistory = *patch.MedicalHistory
	}

	if err := db.DB.Save(patient).Error; err != nil {
		return nil, err
	}
	return patient, nil
}

// DeletePatient removes the patient and every mapping that references it,
// active or historical, in one transaction.
func DeletePatient(callerID, id uint) error {
	patient, err := GetPatient(callerID, id)
	if err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", patient.ID).
			Delete(&models.PatientDoctorMapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(patient).Error
	})
}

func validPhone(phone string) bool {
	if phone == "" {
		return false
	}
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return true
}
