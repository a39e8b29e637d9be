package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"questions-backend/internal/domains/question"
	"questions-backend/internal/shared/response"
	"questions-backend/pkg/logger"
)

// Response messages. Clients match on them, keep them stable.
const (
	msgCreated        = "Question created successfully."
	msgInvalidData    = "Missing or invalid request data"
	msgInvalidQuery   = "Invalid query parameters"
	msgNotFound       = "Question not found"
	msgNotFoundDelete = "Question not found."
	msgGetFailed      = "Failed to retrieve question"
	msgUpdated        = "Successfully updated the question."
	msgUpdateFailed   = "Server could not update question due to database connection error"
	msgDeleted        = "Successfully deleted the question"
	msgDeleteFailed   = "Server could not delete question because of database connection error"
)

// ============================================================
// HANDLER STRUCT
// ============================================================
type QuestionHandler struct {
	service question.Service
}

func NewQuestionHandler(svc question.Service) *QuestionHandler {
	return &QuestionHandler{
		service: svc,
	}
}

// RegisterRoutes mounts the five question routes on rg.
func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// ========== CREATE: POST /questions ==========
// Any failure, validation or storage, answers 400.
func (h *QuestionHandler) Create(c *gin.Context) {
	var req question.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Create: invalid body", err)
		response.BadRequest(c, msgInvalidData)
		return
	}

	if _, err := h.service.Create(c.Request.Context(), &req); err != nil {
		logger.Error("Create: failed", err)
		response.BadRequest(c, msgInvalidData)
		return
	}

	response.Created(c, msgCreated)
}

// ========== LIST: GET /questions?title=&category= ==========
func (h *QuestionHandler) List(c *gin.Context) {
	var filter question.QuestionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		logger.Error("List: invalid query", err)
		response.BadRequest(c, msgInvalidQuery)
		return
	}

	questions, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		logger.Error("List: failed", err)
		response.BadRequest(c, msgInvalidQuery)
		return
	}

	response.List(c, questions)
}

// ========== GET: GET /questions/:id ==========
// The id is forwarded untouched; storage decides whether it is valid.
func (h *QuestionHandler) GetByID(c *gin.Context) {
	q, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, question.ErrQuestionNotFound) {
			response.NotFound(c, msgNotFound)
			return
		}
		logger.Error("GetByID: failed", err)
		response.InternalServerError(c, msgGetFailed)
		return
	}

	response.Data(c, http.StatusOK, q)
}

// ========== UPDATE: PUT /questions/:id ==========
// Full replacement: title, description and category are all required.
func (h *QuestionHandler) Update(c *gin.Context) {
	var req question.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Update: invalid body", err)
		response.BadRequest(c, msgInvalidData)
		return
	}

	err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	switch {
	case err == nil:
		response.OK(c, msgUpdated)
	case errors.Is(err, question.ErrInvalidInput):
		response.BadRequest(c, msgInvalidData)
	case errors.Is(err, question.ErrQuestionNotFound):
		response.NotFound(c, msgNotFound)
	default:
		logger.Error("Update: failed", err)
		response.InternalServerError(c, msgUpdateFailed)
	}
}

// ========== DELETE: DELETE /questions/:id ==========
func (h *QuestionHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		response.OK(c, msgDeleted)
	case errors.Is(err, question.ErrQuestionNotFound):
		response.NotFound(c, msgNotFoundDelete)
	default:
		logger.Error("Delete: failed", err)
		response.Message(c, http.StatusInternalServerError, response.KeyMessage, msgDeleteFailed)
	}
}
