// Package student holds the token-gated handlers used by the survey-taking
// page. There is no account or session: the share token in the JSON body is
// the only credential, and every handler re-verifies it.
package student

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/service"
)

type SurveyController struct {
	tokenSvc      service.TokenService
	accessSvc     service.SurveyAccessService
	submissionSvc service.SubmissionService
}

func NewSurveyController(tokenSvc service.TokenService, accessSvc service.SurveyAccessService, submissionSvc service.SubmissionService) *SurveyController {
	return &SurveyController{tokenSvc: tokenSvc, accessSvc: accessSvc, submissionSvc: submissionSvc}
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrWrongClassroom):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// VerifyToken godoc
// @Summary Check whether a survey token is usable
// @Description An unknown or expired token is not an error here: the response is 200 with valid=false so the page can show a friendly message
// @Tags Student - Survey
// @Accept json
// @Produce json
// @Param request body dto.TokenRequestDTO true "Survey token"
// @Success 200 {object} dto.VerifyResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /survey/verify [post]
func (c *SurveyController) VerifyToken(ctx *gin.Context) {
	var req dto.TokenRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	access, err := c.tokenSvc.Verify(req.Token)
	if err != nil {
		if errors.Is(err, service.ErrTokenInvalid) {
			ctx.JSON(http.StatusOK, dto.VerifyResponseDTO{Valid: false})
			return
		}
		log.Error().Err(err).Msg("Token verification failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	surveyID := access.SurveyID
	ctx.JSON(http.StatusOK, dto.VerifyResponseDTO{Valid: true, SurveyID: &surveyID})
}

// ListStudents godoc
// @Summary Roster for the identity-selection screen
// @Tags Student - Survey
// @Accept json
// @Produce json
// @Param request body dto.TokenRequestDTO true "Survey token"
// @Success 200 {object} dto.StudentListDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /survey/students [post]
func (c *SurveyController) ListStudents(ctx *gin.Context) {
	var req dto.TokenRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.accessSvc.ListStudents(req.Token)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list students for token")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSurveyData godoc
// @Summary Full survey payload for the answering flow
// @Description Questions in order with weights, the roster, and the classroom header, in one response
// @Tags Student - Survey
// @Accept json
// @Produce json
// @Param request body dto.TokenRequestDTO true "Survey token"
// @Success 200 {object} dto.SurveyDataDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Router /survey/data [post]
func (c *SurveyController) GetSurveyData(ctx *gin.Context) {
	var req dto.TokenRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := c.accessSvc.LoadSurveyData(req.Token)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load survey data for token")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// SubmitResponses godoc
// @Summary Submit all of a respondent's answers
// @Description Writes every answered question and its nominated peers in one transaction. A respondent outside the survey's classroom is rejected and nothing is written.
// @Tags Student - Survey
// @Accept json
// @Produce json
// @Param request body dto.SubmitResponsesDTO true "Token, respondent and buffered answers"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or answers"
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired token"
// @Failure 403 {object} dto.ErrorResponse "Respondent is not in the survey's classroom"
// @Failure 500 {object} dto.ErrorResponse "Write failed"
// @Router /survey/responses [post]
func (c *SurveyController) SubmitResponses(ctx *gin.Context) {
	var req dto.SubmitResponsesDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := c.submissionSvc.Submit(req); err != nil {
		log.Warn().Err(err).Uint("respondentID", req.RespondentID).Msg("Response submission rejected")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.SubmitResultDTO{Success: true})
}
