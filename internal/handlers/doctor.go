package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/carelink-dev/carelink/internal/services"
	"github.com/carelink-dev/carelink/internal/types"
	"github.com/carelink-dev/carelink/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

func ListDoctors(ctx *gin.Context) {
	doctors, err := services.ListDoctors()
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]types.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		response = append(response, types.NewDoctorResponse(&doctors[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetDoctor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	doctor, err := services.GetDoctor(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, types.NewDoctorResponse(doctor))
}

func CreateDoctor(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req services.DoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := services.CreateDoctor(userID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"message": "Doctor created successfully",
		"data":    types.NewDoctorResponse(doctor),
	})
}

func UpdateDoctor(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req services.DoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := services.UpdateDoctor(userID, id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated successfully",
		"data":    types.NewDoctorResponse(doctor),
	})
}

func PatchDoctor(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var patch services.DoctorPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := services.PatchDoctor(userID, id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Doctor updated successfully",
		"data":    types.NewDoctorResponse(doctor),
	})
}

func DeleteDoctor(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := services.DeleteDoctor(userID, id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Doctor deleted successfully"})
}

// ExportDoctors streams the doctor directory as an xlsx workbook.
func ExportDoctors(ctx *gin.Context) {
	doctors, err := services.ListDoctors()
	if err != nil {
		respondError(ctx, err)
		return
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Doctors"
	index, err := file.NewSheet(sheet)
	if err != nil {
		respondError(ctx, err)
		return
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		respondError(ctx, err)
		return
	}

	headers := []string{"ID", "Name", "Specialization", "License Number", "Phone", "Email", "Experience (years)", "Consultation Fee", "Available"}
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	for row, doctor := range doctors {
		values := []interface{}{
			doctor.ID,
			doctor.FirstName + " " + doctor.LastName,
			doctor.Specialization,
			doctor.LicenseNumber,
			doctor.Phone,
			doctor.Email,
			doctor.YearsOfExperience,
			doctor.ConsultationFee,
			doctor.Available,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		respondError(ctx, err)
		return
	}

	filename := fmt.Sprintf("doctors-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
