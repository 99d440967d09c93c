package services

import (
	"path/filepath"
	"testing"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/models"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
)

// setupTestDB points the shared store at a throwaway SQLite file. The DSN
// takes the write lock at BEGIN (_txlock=immediate) so concurrent
// transactions queue on the busy timeout instead of deadlocking on lock
// upgrade, which keeps the race test deterministic.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "carelink_test.db") +
		"?_busy_timeout=10000&_journal_mode=WAL&_txlock=immediate&_foreign_keys=on"

	require.NoError(t, db.ConnectDatabase(sqlite.Open(dsn)))
	require.NoError(t, db.MigrateDatabase())
}

func createTestUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret pass"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, PasswordHash: string(hash)}
	require.NoError(t, db.DB.Create(&user).Error)
	return &user
}

func validPatientRequest() PatientRequest {
	return PatientRequest{
		FirstName:      "John",
		LastName:       "Smith",
		DateOfBirth:    "1990-05-01",
		Gender:         models.GenderMale,
		Phone:          "+20 100-555-1234",
		Email:          "john.smith@example.com",
		Address:        "12 Nile Street, Cairo",
		MedicalHistory: "None",
	}
}

func validDoctorRequest(license string) DoctorRequest {
	years := 10
	fee := 250.0
	return DoctorRequest{
		FirstName:         "Gregory",
		LastName:          "House",
		Specialization:    "CARDIOLOGY",
		LicenseNumber:     license,
		Phone:             "+1 555 010 2030",
		Email:             "house@example.com",
		YearsOfExperience: &years,
		ConsultationFee:   &fee,
	}
}

func createTestPatient(t *testing.T, ownerID uint) *models.Patient {
	t.Helper()

	patient, err := CreatePatient(ownerID, validPatientRequest())
	require.NoError(t, err)
	return patient
}

func createTestDoctor(t *testing.T, ownerID uint, license string) *models.Doctor {
	t.Helper()

	doctor, err := CreateDoctor(ownerID, validDoctorRequest(license))
	require.NoError(t, err)
	return doctor
}
