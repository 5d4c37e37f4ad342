package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"thumbforge/internal/models/request_models"
	"thumbforge/internal/models/response_models"
	"thumbforge/internal/services"
	"thumbforge/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{accountService: accountService}
}

// Register godoc
// @Summary Register a new account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign Up Request"
// @Success 200 {object} utils.APIResponse
// @Router /auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var request request_models.SignUpRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := a.accountService.CreateAccount(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Account created successfully")
}

// Login godoc
// @Summary Log in and receive a JWT
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login Request"
// @Success 200 {object} utils.APIResponse
// @Router /auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var request request_models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Logged in successfully")
}

// Me godoc
// @Summary Current account profile and balance
// @Tags Accounts
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /me [get]
func (a *AccountController) Me(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	profile, err := a.accountService.GetProfile(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "")
}

// AdjustCredits godoc
// @Summary Add or deduct credits (administrative)
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.CreditsRequest true "Credits Request"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /credits [post]
func (a *AccountController) AdjustCredits(c *gin.Context) {
	accountID, ok := currentAccountID(c)
	if !ok {
		return
	}

	var request request_models.CreditsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	balance, err := a.accountService.AdjustCredits(c.Request.Context(), accountID, request)
	if err != nil {
		// The admin deduct endpoint reports an uncovered balance as a plain
		// bad request rather than a purchase prompt.
		if err == utils.ErrInsufficientCredits {
			utils.RespondError(c, http.StatusBadRequest, "Insufficient credits")
			return
		}
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, gin.H{"credits": balance}, "Credits updated")
}

// currentAccountID pulls the authenticated account id set by the JWT
// middleware; responds 401 itself when missing or malformed.
func currentAccountID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetString("user_id")
	if raw == "" {
		utils.RespondError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid session identity")
		return uuid.Nil, false
	}
	return id, true
}
