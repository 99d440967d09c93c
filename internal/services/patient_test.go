package services

import (
	"testing"

	"github.com/carelink-dev/carelink/db"
	"github.com/carelink-dev/carelink/internal/apperrors"
	"github.com/carelink-dev/carelink/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePatient(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Jane Doe", "jane@x.com")

	patient, err := CreatePatient(owner.ID, validPatientRequest())
	require.NoError(t, err)

	assert.Equal(t, owner.ID, patient.UserID)
	assert.Equal(t, "John Smith", patient.FullName())
	assert.Equal(t, "Jane Doe", patient.User.Name)
}

func TestCreatePatient_Validation(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Jane Doe", "jane@x.com")

	tests := []struct {
		name   string
		mutate func(*PatientRequest)
		field  string
	}{
		{"letters in phone", func(r *PatientRequest) { r.Phone = "555-CALL-NOW" }, "phone"},
		{"empty phone", func(r *PatientRequest) { r.Phone = "" }, "phone"},
		{"unknown gender", func(r *PatientRequest) { r.Gender = "X" }, "gender"},
		{"bad date", func(r *PatientRequest) { r.DateOfBirth = "01/05/1990" }, "date_of_birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPatientRequest()
			tt.mutate(&req)

			_, err := CreatePatient(owner.ID, req)
			appErr, ok := apperrors.From(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			assert.Contains(t, appErr.Fields, tt.field)
		})
	}
}

func TestListPatients_OwnerScoped(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@x.com")
	bob := createTestUser(t, "Bob", "bob@x.com")

	createTestPatient(t, alice.ID)
	createTestPatient(t, alice.ID)
	createTestPatient(t, bob.ID)

	alicePatients, err := ListPatients(alice.ID)
	require.NoError(t, err)
	assert.Len(t, alicePatients, 2)
	for _, p := range alicePatients {
		assert.Equal(t, alice.ID, p.UserID)
	}

	bobPatients, err := ListPatients(bob.ID)
	require.NoError(t, err)
	assert.Len(t, bobPatients, 1)
}

func TestListPatients_NewestFirst(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Jane Doe", "jane@x.com")

	first := createTestPatient(t, owner.ID)
	second := createTestPatient(t, owner.ID)
	third := createTestPatient(t, owner.ID)

	patients, err := ListPatients(owner.ID)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, []uint{third.ID, second.ID, first.ID},
		[]uint{patients[0].ID, patients[1].ID, patients[2].ID})
}

func TestUpdatePatient_NotOwned(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "Alice", "alice@x.com")
	bob := createTestUser(t, "Bob", "bob@x.com")

	patient := createTestPatient(t, alice.ID)

	_, err := UpdatePatient(bob.ID, patient.ID, validPatientRequest())
	appErr, ok := apperrors.From(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.KindNotFound, appErr.Kind)
}

func TestPatchPatient(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Jane Doe", "jane@x.com")
	patient := createTestPatient(t, owner.ID)

	newPhone := "+44 20 7946 0958"
	patched, err := PatchPatient(owner.ID, patient.ID, PatientPatch{Phone: &newPhone})
	require.NoError(t, err)

	assert.Equal(t, newPhone, patched.Phone)
	assert.Equal(t, patient.FirstName, patched.FirstName, "untouched fields must survive a patch")
}

func TestDeletePatient_CascadesToMappings(t *testing.T) {
	setupTestDB(t)
	owner := createTestUser(t, "Jane Doe", "jane@x.com")
	patient := createTestPatient(t, owner.ID)
	doctorA := createTestDoctor(t, owner.ID, "LIC-A")
	doctorB := createTestDoctor(t, owner.ID, "LIC-B")

	// One active and one historical mapping.
	_, err := CreateMapping(owner.ID, MappingRequest{Patient: patient.ID, Doctor: doctorA.ID})
	require.NoError(t, err)
	inactive, err := CreateMapping(owner.ID, MappingRequest{Patient: patient.ID, Doctor: doctorB.ID})
	require.NoError(t, err)
	require.NoError(t, DeactivateMapping(owner.ID, inactive.ID))

	require.NoError(t, DeletePatient(owner.ID, patient.ID))

	var count int64
	require.NoError(t, db.DB.Model(&models.PatientDoctorMapping{}).
		Where("patient_id = ?", patient.ID).Count(&count).Error)
	assert.Zero(t, count, "both active and inactive mappings must be removed")
}
