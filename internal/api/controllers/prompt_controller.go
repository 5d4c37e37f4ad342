package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"thumbforge/internal/models/request_models"
	"thumbforge/internal/services"
	"thumbforge/pkg/utils"
)

type PromptController struct {
	promptService services.PromptServiceInterface
}

func NewPromptController(promptService services.PromptServiceInterface) *PromptController {
	return &PromptController{promptService: promptService}
}

// ListPrompts godoc
// @Summary Browse the prompt library
// @Tags Prompts
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {object} utils.APIResponse
// @Router /prompts [get]
func (p *PromptController) ListPrompts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	prompts, err := p.promptService.ListPrompts(c.Request.Context(), c.Query("category"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prompts, "")
}

// SearchPrompts godoc
// @Summary Semantic search over the prompt library
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body request_models.SearchPromptRequest true "Search Request"
// @Success 200 {object} utils.APIResponse
// @Router /prompts/search [post]
func (p *PromptController) SearchPrompts(c *gin.Context) {
	var request request_models.SearchPromptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prompts, err := p.promptService.SearchPrompts(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prompts, "")
}

// CreatePrompt godoc
// @Summary Add a prompt template (admin)
// @Tags Prompts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePromptRequest true "Create Prompt Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /prompts [post]
func (p *PromptController) CreatePrompt(c *gin.Context) {
	var request request_models.CreatePromptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	prompt, err := p.promptService.CreatePrompt(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, prompt, "Prompt created")
}
