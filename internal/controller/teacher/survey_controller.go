package teacher

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"
	"github.com/teacher-kiwi/sociogram/config"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/service"
)

type SurveyController struct {
	builderSvc service.SurveyBuilderService
	tokenSvc   service.TokenService
	cfg        *config.Config
}

func NewSurveyController(builderSvc service.SurveyBuilderService, tokenSvc service.TokenService, cfg *config.Config) *SurveyController {
	return &SurveyController{builderSvc: builderSvc, tokenSvc: tokenSvc, cfg: cfg}
}

func (c *SurveyController) surveyURL(token string) string {
	return fmt.Sprintf("%s/survey?token=%s", c.cfg.SurveyBaseURL, token)
}

// CreateSurvey godoc
// @Summary Compose a survey for a classroom
// @Description Create a survey from an ordered, weighted question list. New custom question texts are saved for reuse. A share token is issued on creation.
// @Tags Teacher - Surveys
// @Accept json
// @Produce json
// @Param survey body dto.SurveyCreateDTO true "Survey composition"
// @Success 201 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Classroom not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/surveys [post]
func (c *SurveyController) CreateSurvey(ctx *gin.Context) {
	var req dto.SurveyCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("CreateSurvey: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.builderSvc.CreateSurvey(req)
	if err != nil {
		log.Error().Err(err).Uint("classroomID", req.ClassroomID).Msg("Failed to create survey")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSurvey godoc
// @Summary Get a survey with its ordered questions
// @Tags Teacher - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /teacher/surveys/{survey_id} [get]
func (c *SurveyController) GetSurvey(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid survey ID format"})
		return
	}

	resp, err := c.builderSvc.GetSurvey(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", id).Msg("Failed to get survey")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetClassroomSurveys godoc
// @Summary List surveys composed for a classroom
// @Tags Teacher - Surveys
// @Produce json
// @Param classroom_id path int true "Classroom ID"
// @Success 200 {array} dto.SurveyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/classrooms/{classroom_id}/surveys [get]
func (c *SurveyController) GetClassroomSurveys(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("classroom_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid classroom ID format"})
		return
	}

	resp, err := c.builderSvc.GetSurveysByClassroom(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("classroomID", id).Msg("Failed to list surveys")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ListQuestions godoc
// @Summary List questions available to a teacher
// @Description Default question bank plus the teacher's previously authored custom questions
// @Tags Teacher - Surveys
// @Produce json
// @Param user_id query string true "Owning teacher's user id"
// @Success 200 {array} dto.QuestionDTO
// @Failure 400 {object} dto.ErrorResponse "Missing user_id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/questions [get]
func (c *SurveyController) ListQuestions(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id query parameter is required"})
		return
	}

	resp, err := c.builderSvc.ListQuestions(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to list questions")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// IssueToken godoc
// @Summary Issue or reuse a survey share token
// @Description Returns the current token while it is inside its validity window, otherwise rotates it
// @Tags Teacher - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.TokenResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/surveys/{survey_id}/token [post]
func (c *SurveyController) IssueToken(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid survey ID format"})
		return
	}

	token, err := c.tokenSvc.Issue(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", id).Msg("Failed to issue survey token")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.TokenResponseDTO{Token: token})
}

// GetSurveyLink godoc
// @Summary Get the shareable survey URL
// @Description Issues or reuses the token and returns the URL students open to take the survey
// @Tags Teacher - Surveys
// @Produce json
// @Param survey_id path int true "Survey ID"
// @Success 200 {object} dto.SurveyLinkDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Router /teacher/surveys/{survey_id}/link [get]
func (c *SurveyController) GetSurveyLink(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid survey ID format"})
		return
	}

	token, err := c.tokenSvc.Issue(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", id).Msg("Failed to issue survey token")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.SurveyLinkDTO{
		SurveyID: uint(id),
		Token:    token,
		URL:      c.surveyURL(token),
	})
}

// GetSurveyQR godoc
// @Summary Get a QR code for the survey link
// @Description Issues or reuses the token and renders the survey URL as a PNG QR code
// @Tags Teacher - Surveys
// @Produce png
// @Param survey_id path int true "Survey ID"
// @Success 200 {file} file "PNG image"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Survey not found"
// @Failure 500 {object} dto.ErrorResponse "QR encoding failed"
// @Router /teacher/surveys/{survey_id}/qr [get]
func (c *SurveyController) GetSurveyQR(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid survey ID format"})
		return
	}

	token, err := c.tokenSvc.Issue(uint(id))
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", id).Msg("Failed to issue survey token")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	png, err := qrcode.Encode(c.surveyURL(token), qrcode.Medium, 256)
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", id).Msg("Failed to encode QR code")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to encode QR code"})
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}
