package handlers

import (
	"net/http"
	"strconv"

	"github.com/carelink-dev/carelink/internal/services"
	"github.com/carelink-dev/carelink/internal/types"
	"github.com/carelink-dev/carelink/internal/utils"
	"github.com/gin-gonic/gin"
)

func CreateMapping(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.MappingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mapping, err := services.CreateMapping(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Doctor assigned to patient successfully",
		"data":    types.NewMappingResponse(mapping),
	})
}

// ListMappings returns active mappings, optionally filtered by ?patient_id=.
func ListMappings(ctx *gin.Context) {
	var patientID *uint

	if raw := ctx.Query("patient_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient_id"})
			return
		}
		id := uint(parsed)
		patientID = &id
	}

	mappings, err := services.ListActiveMappings(patientID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.MappingResponse, 0, len(mappings))
	for i := range mappings {
		response = append(response, types.NewMappingResponse(&mappings[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// ListPatientDoctors returns the active mappings for one patient, wrapped in
// the {patient_id, doctors} envelope.
func ListPatientDoctors(ctx *gin.Context) {
	patientID, ok := parseIDParam(ctx, "patient_id")
	if !ok {
		return
	}

	mappings, err := services.ListMappingsForPatient(patientID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	doctors := make([]types.MappingResponse, 0, len(mappings))
	for i := range mappings {
		doctors = append(doctors, types.NewMappingResponse(&mappings[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"patient_id": patientID,
		"doctors":    doctors,
	})
}

func DeleteMapping(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := services.DeactivateMapping(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Doctor removed from patient successfully"})
}
