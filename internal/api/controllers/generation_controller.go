package controllers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"thumbforge/internal/models/request_models"
	"thumbforge/internal/services"
	"thumbforge/pkg/utils"
)

// maxReferenceImageBytes caps one uploaded reference file.
const maxReferenceImageBytes = 8 << 20

type GenerationController struct {
	generationService services.GenerationServiceInterface
}

func NewGenerationController(generationService services.GenerationServiceInterface) *GenerationController {
	return &GenerationController{generationService: generationService}
}

// Generate godoc
// @Summary Generate a thumbnail (debits 1 credit on success)
// @Tags Generations
// @Accept mpfd
// @Produce json
// @Param prompt formData string true "Prompt"
// @Param style formData string false "Style"
// @Param aspect_ratio formData string false "Aspect ratio"
// @Param size formData string false "Size"
// @Param quality formData string false "Quality"
// @Param reference_images formData file false "Reference images (max 5)"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /generate [post]
func (g *GenerationController) Generate(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var request request_models.GenerateRequest
	if err := c.ShouldBind(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	refs, err := readReferenceImages(c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := g.generationService.Generate(c.Request.Context(), accountID, request, refs)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "Thumbnail generated")
}

// Gallery godoc
// @Summary List the account's generations
// @Tags Generations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gallery [get]
func (g *GenerationController) Gallery(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := g.generationService.ListGallery(c.Request.Context(), accountID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, result, "")
}

// Delete godoc
// @Summary Delete one of the account's generations
// @Tags Generations
// @Produce json
// @Param id path string true "Generation ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /gallery/{id} [delete]
func (g *GenerationController) Delete(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	generationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid generation id")
		return
	}

	if err := g.generationService.DeleteGeneration(c.Request.Context(), accountID, generationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Generation deleted")
}

func readReferenceImages(c *gin.Context) ([]utils.ReferenceImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil // no multipart body, no references
	}

	files := form.File["reference_images"]
	if len(files) > utils.MaxReferenceImages {
		return nil, utils.ErrTooManyReferenceImages
	}

	refs := make([]utils.ReferenceImage, 0, len(files))
	for _, header := range files {
		ref, err := readReferenceImage(header)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func readReferenceImage(header *multipart.FileHeader) (utils.ReferenceImage, error) {
	if header.Size > maxReferenceImageBytes {
		return utils.ReferenceImage{}, utils.ErrInvalidGenerationParams
	}

	file, err := header.Open()
	if err != nil {
		return utils.ReferenceImage{}, utils.ErrInvalidGenerationParams
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxReferenceImageBytes))
	if err != nil {
		return utils.ReferenceImage{}, utils.ErrInvalidGenerationParams
	}

	return utils.ReferenceImage{Format: imageFormat(header), Data: data}, nil
}

func imageFormat(header *multipart.FileHeader) string {
	contentType := header.Header.Get("Content-Type")
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "jpeg"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return "png"
	}
}
