package teacher

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/teacher-kiwi/sociogram/internal/dto"
	"github.com/teacher-kiwi/sociogram/internal/service"
)

type ResultsController struct {
	resultsSvc service.ResultsService
	summarySvc service.SummaryService
}

func NewResultsController(resultsSvc service.ResultsService, summarySvc service.SummaryService) *ResultsController {
	return &ResultsController{resultsSvc: resultsSvc, summarySvc: summarySvc}
}

// GetResults godoc
// @Summary Survey results matrix for a classroom
// @Description For every student in the classroom, the peer they nominated for each survey question, or no target when they did not answer
// @Tags Teacher - Results
// @Produce json
// @Param classroom_id path int true "Classroom ID"
// @Param survey_id query int true "Survey ID"
// @Success 200 {object} dto.ResultsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid or missing IDs"
// @Failure 404 {object} dto.ErrorResponse "Survey not found or not in this classroom"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teacher/classrooms/{classroom_id}/results [get]
func (c *ResultsController) GetResults(ctx *gin.Context) {
	classroomID, err := strconv.ParseUint(ctx.Param("classroom_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid classroom ID format"})
		return
	}
	surveyID, err := strconv.ParseUint(ctx.Query("survey_id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "survey_id query parameter is required"})
		return
	}

	resp, err := c.resultsSvc.GetSurveyResults(uint(surveyID))
	if err != nil {
		log.Error().Err(err).Uint64("surveyID", surveyID).Msg("Failed to build survey results")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}
	if resp.Classroom.ID != uint(classroomID) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Survey does not belong to this classroom"})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetSummary godoc
// @Summary AI-written summary of one student's nominations
// @Description Packages the student's nominations and sends them to the configured summary backend. Stored data is never modified by this call.
// @Tags Teacher - Results
// @Accept json
// @Produce json
// @Param request body dto.SummaryRequestDTO true "Survey and student to summarize"
// @Success 200 {object} dto.SummaryResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 404 {object} dto.ErrorResponse "Survey or student not found"
// @Failure 502 {object} dto.ErrorResponse "Summary backend failed"
// @Router /teacher/results/summary [post]
func (c *ResultsController) GetSummary(ctx *gin.Context) {
	var req dto.SummaryRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("GetSummary: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payload, err := c.resultsSvc.BuildSummaryPayload(req.SurveyID, req.StudentID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", req.SurveyID).Uint("studentID", req.StudentID).Msg("Failed to build summary payload")
		ctx.JSON(statusFromError(err), dto.ErrorResponse{Error: err.Error()})
		return
	}

	summary, err := c.summarySvc.Summarize(*payload)
	if err != nil {
		log.Error().Err(err).Uint("studentID", req.StudentID).Msg("Summary generation failed")
		ctx.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "Summary generation failed: " + err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, dto.SummaryResponseDTO{Summary: summary})
}
