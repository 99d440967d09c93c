package types

import (
	"time"

	"github.com/carelink-dev/carelink/internal/models"
)

const dateLayout = "2006-01-02"

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PatientResponse struct {
	ID             uint      `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	DateOfBirth    string    `json:"date_of_birth"`
	Gender         string    `json:"gender"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	Address        string    `json:"address"`
	MedicalHistory string    `json:"medical_history"`
	UserName       string    `json:"user_name"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DoctorResponse struct {
	ID                uint      `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Specialization    string    `json:"specialization"`
	LicenseNumber     string    `json:"license_number"`
	Phone             string    `json:"phone"`
	Email             string    `json:"email"`
	YearsOfExperience int       `json:"years_of_experience"`
	ConsultationFee   float64   `json:"consultation_fee"`
	Available         bool      `json:"available"`
	UserName          string    `json:"user_name"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// MappingResponse carries the raw foreign keys plus denormalized snapshots
// of the patient and doctor, so clients do not need follow-up lookups.
type MappingResponse struct {
	ID             uint            `json:"id"`
	PatientID      uint            `json:"patient"`
	DoctorID       uint            `json:"doctor"`
	PatientName    string          `json:"patient_name"`
	DoctorName     string          `json:"doctor_name"`
	PatientDetails PatientResponse `json:"patient_details"`
	DoctorDetails  DoctorResponse  `json:"doctor_details"`
	AssignedDate   string          `json:"assigned_date"`
	Notes          string          `json:"notes"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func NewPatientResponse(p *models.Patient) PatientResponse {
	return PatientResponse{
		ID:             p.ID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    time.Time(p.DateOfBirth).Format(dateLayout),
		Gender:         p.Gender,
		Phone:          p.Phone,
		Email:          p.Email,
		Address:        p.Address,
		MedicalHistory: p.MedicalHistory,
		UserName:       p.User.Name,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewDoctorResponse(d *models.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:                d.ID,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Specialization:    d.Specialization,
		LicenseNumber:     d.LicenseNumber,
		Phone:             d.Phone,
		Email:             d.Email,
		YearsOfExperience: d.YearsOfExperience,
		ConsultationFee:   d.ConsultationFee,
		Available:         d.Available,
		UserName:          d.User.Name,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func NewMappingResponse(m *models.PatientDoctorMapping) MappingResponse {
	return MappingResponse{
		ID:             m.ID,
		PatientID:      m.PatientID,
		DoctorID:       m.DoctorID,
		PatientName:    m.Patient.FullName(),
		DoctorName:     m.Doctor.DisplayName(),
		PatientDetails: NewPatientResponse(&m.Patient),
		DoctorDetails:  NewDoctorResponse(&m.Doctor),
		AssignedDate:   time.Time(m.AssignedDate).Format(dateLayout),
		Notes:          m.Notes,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
