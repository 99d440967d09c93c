package services

import (
	"errors"
	"strings"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/apperrors"
	"github.com/carelink-dev/carelink/internal/models"
	"gorm.io/gorm"
)

type DoctorRequest struct {
	FirstName         string   `json:"first_name" binding:"required"`
	LastName          string   `json:"last_name" binding:"required"`
	Specialization    string   `json:"specialization" binding:"required"`
	LicenseNumber     string   `json:"license_number" binding:"required"`
	Phone             string   `json:"phone" binding:"required"`
	Email             string   `json:"email" binding:"required,email"`
	YearsOfExperience *int     `json:"years_of_experience" binding:"required"`
	ConsultationFee   *float64 `json:"consultation_fee" binding:"required"`
	Available         *bool    `json:"available"`
}

type DoctorPatch struct {
	FirstName         *string  `json:"first_name"`
	LastName          *string  `json:"last_name"`
	Specialization    *string  `json:"specialization"`
	LicenseNumber     *string  `json:"license_number"`
	Phone             *string  `json:"phone"`
	Email             *string  `json:"email" binding:"omitempty,email"`
	YearsOfExperience *int     `json:"years_of_experience"`
	ConsultationFee   *float64 `json:"consultation_fee"`
	Available         *bool    `json:"available"`
}

func (r DoctorRequest) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if !models.IsValidSpecialization(r.Specialization) {
		fieldErrors["specialization"] = "Specialization must be one of: " + strings.Join(models.Specializations, ", ") + "."
	}
	if !validPhone(r.Phone) {
		fieldErrors["phone"] = "Phone number must contain only digits, spaces, hyphens, or plus sign."
	}
	if r.YearsOfExperience != nil && *r.YearsOfExperience < 0 {
		fieldErrors["years_of_experience"] = "Years of experience cannot be negative."
	}
	if r.ConsultationFee != nil && *r.ConsultationFee < 0 {
		fieldErrors["consultation_fee"] = "Consultation fee cannot be negative."
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (r DoctorPatch) Validate() map[string]string {
	fieldErrors := make(map[string]string)

	if r.Specialization != nil && !models.IsValidSpecialization(*r.Specialization) {
		fieldErrors["specialization"] = "Specialization must be one of: " + strings.Join(models.Specializations, ", ") + "."
	}
	if r.Phone != nil && !validPhone(*r.Phone) {
		fieldErrors["phone"] = "Phone number must contain only digits, spaces, hyphens, or plus sign."
	}
	if r.YearsOfExperience != nil && *r.YearsOfExperience < 0 {
		fieldErrors["years_of_experience"] = "Years of experience cannot be negative."
	}
	if r.ConsultationFee != nil && *r.ConsultationFee < 0 {
		fieldErrors["consultation_fee"] = "Consultation fee cannot be negative."
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

// ListDoctors returns the shared directory, visible to every authenticated
// caller regardless of owner.
func ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor

	err := db.DB.Preload("User").
		Order("last_name, first_name").
		Find(&doctors).Error

	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func GetDoctor(id uint) (*models.Doctor, error) {
	var doctor models.Doctor

	err := db.DB.Preload("User").First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Doctor not found")
		}
		return nil, err
	}
	return &doctor, nil
}

func CreateDoctor(callerID uint, req DoctorRequest) (*models.Doctor, error) {
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	doctor := models.Doctor{
		UserID:            callerID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Specialization:    req.Specialization,
		LicenseNumber:     req.LicenseNumber,
		Phone:             req.Phone,
		Email:             req.Email,
		YearsOfExperience: *req.YearsOfExperience,
		ConsultationFee:   *req.ConsultationFee,
		Available:         true,
	}
	if req.Available != nil {
		doctor.Available = *req.Available
	}

	if err := db.DB.Create(&doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("A doctor with this license number already exists.")
		}
		return nil, err
	}

	return GetDoctor(doctor.ID)
}

// getOwnedDoctor scopes mutation to the identity that created the record.
func getOwnedDoctor(callerID, id uint) (*models.Doctor, error) {
	var doctor models.Doctor

	err := db.DB.Where("id = ? AND user_id = ?", id, callerID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Doctor not found")
		}
		return nil, err
	}
	return &doctor, nil
}

func UpdateDoctor(callerID, id uint, req DoctorRequest) (*models.Doctor, error) {
	if fieldErrors := req.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	doctor, err := getOwnedDoctor(callerID, id)
	if err != nil {
		return nil, err
	}

	doctor.FirstName = req.FirstName
	doctor.LastName = req.LastName
	doctor.Specialization = req.Specialization
	doctor.LicenseNumber = req.LicenseNumber
	doctor.Phone = req.Phone
	doctor.Email = req.Email
	doctor.YearsOfExperience = *req.YearsOfExperience
	doctor.ConsultationFee = *req.ConsultationFee
	if req.Available != nil {
		doctor.Available = *req.Available
	}

	if err := db.DB.Save(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("A doctor with this license number already exists.")
		}
		return nil, err
	}
	return GetDoctor(doctor.ID)
}

func PatchDoctor(callerID, id uint, patch DoctorPatch) (*models.Doctor, error) {
	if fieldErrors := patch.Validate(); fieldErrors != nil {
		return nil, apperrors.Validation(fieldErrors)
	}

	doctor, err := getOwnedDoctor(callerID, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		doctor.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		doctor.LastName = *patch.LastName
	}
	if patch.Specialization != nil {
		doctor.Specialization = *patch.Specialization
	}
	if patch.LicenseNumber != nil {
		doctor.LicenseNumber = *patch.LicenseNumber
	}
	if patch.Phone != nil {
		doctor.Phone = *patch.Phone
	}
	if patch.Email != nil {
		doctor.Email = *patch.Email
	}
	if patch.YearsOfExperience != nil {
		doctor.YearsOfExperience = *patch.YearsOfExperience
	}
	if patch.ConsultationFee != nil {
		doctor.ConsultationFee = *patch.ConsultationFee
	}
	if patch.Available != nil {
		doctor.Available = *patch.Available
	}

	if err := db.DB.Save(doctor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("A doctor with this license number already exists.")
		}
		return nil, err
	}
	return GetDoctor(doctor.ID)
}

// DeleteDoctor removes the doctor and every mapping that references it.
func DeleteDoctor(callerID, id uint) error {
	doctor, err := getOwnedDoctor(callerID, id)
	if err != nil {
		return err
	}

	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", doctor.ID).
			Delete(&models.PatientDoctorMapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(doctor).Error
	})
}
