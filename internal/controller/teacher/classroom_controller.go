package teacher

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/service"
)

type ClassroomController struct {
	classroomSvc service.ClassroomService
}

func NewClassroomController(classroomSvc service.ClassroomService) *ClassroomController {
	return &ClassroomController{classroomSvc: classroomSvc}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrWrongClassroom):
		return http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// CreateClassroom godoc
// @Summary Create a classroom with its roster
// @Description Register a new classroom and its initial student roster in one call
// @Tags Teacher - Classrooms
// @Accept json
// @Produce json
// @Param classroom body dto.ClassroomCreateDTO true "Classroom data including students"
// @Success 201 {object} dto.ClassroomResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/classrooms [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.ClassroomCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateClassroom: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.classroomSvc.CreateClassroom(req)
	if err != nil {
		log.Error().Err(err).Str("userID", req.UserID).Msg("Failed to create classroom")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetClassrooms godoc
// @Summary List a teacher's classrooms
// @Tags Teacher - Classrooms
// @Produce json
// @Param user_id query string true "Owning teacher's user id"
// @Success 200 {array} dto.ClassroomResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Missing user_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/classrooms [get]
func (c *ClassroomController) GetClassrooms(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id query parameter is required"})
		return
	}

	resp, err := c.classroomSvc.GetClassroomsByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list classrooms")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetClassroom godoc
// @Summary Get a classroom with its roster
// @Tags Teacher - Classrooms
// @Produce json
// @Param classroom_id path int true "Classroom ID"
// @Success 200 {object} dto.ClassroomResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Router /teacher/classrooms/{classroom_id} [get]
func (c *ClassroomController) GetClassroom(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("classroom_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid classroom ID format"})
		return
	}

	resp, err := c.classroomSvc.GetClassroom(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("classroomID", id).Msg("Failed to get classroom")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// UpdateClassroom godoc
// @Summary Update a classroom and reconcile its roster
// @Description Saves classroom metadata and the submitted roster. Students absent from the submission are removed along with their survey responses.
// @Tags Teacher - Classrooms
// @Accept json
// @Produce json
// @Param classroom_id path int true "Classroom ID"
// @Param classroom body dto.ClassroomUpdateDTO true "Classroom data including the full roster"
// @Success 200 {object} dto.ClassroomResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/classrooms/{classroom_id} [put]
func (c *ClassroomController) UpdateClassroom(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("classroom_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid classroom ID format"})
		return
	}

	var req dto.ClassroomUpdateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("UpdateClassroom: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.classroomSvc.UpdateClassroom(uint(id), req)
	if err != nil {
		log.Error().Err(err).Uint64("classroomID", id).Msg("Failed to update classroom")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
