package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mams/backend/internal/app/models"
	"github.com/mams/backend/internal/app/models/dto"
	"github.com/mams/backend/internal/app/services"
	"github.com/mams/backend/internal/middleware"
)

// StudentController handles student record operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// AddStudent creates a new student record
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student := &models.Student{
		GrNo:         req.GrNo,
		Name:         req.Name,
		EnrollNo:     req.EnrollNo,
		AcademicYear: req.AcademicYear,
	}
	if err := c.studentService.AddStudent(ctx, student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Student added successfully"})
}

// GetAllStudents lists the GR number of every student
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	students, err := c.studentService.ListAllStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetAvailableForPlacement lists students that have no placement record yet
func (c *StudentController) GetAvailableForPlacement(ctx *gin.Context) {
	students, err := c.studentService.ListAvailableForPlacement(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// GetAvailableForDocuments lists students that have no document set yet
func (c *StudentController) GetAvailableForDocuments(ctx *gin.Context) {
	students, err := c.studentService.ListAvailableForDocuments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
