package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atgs/internal/application/user/usecases"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
	"atgs/internal/shared/utils"
)

type UserHandler struct {
	signupUC    usecases.SignupExecutor
	getUserUC   usecases.GetUserExecutor
	listUsersUC usecases.ListUsersExecutor
	logger      logger.Interface
}

func NewUserHandler(
	signupUC usecases.SignupExecutor,
	getUserUC usecases.GetUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
) *UserHandler {
	return &UserHandler{
		signupUC:    signupUC,
		getUserUC:   getUserUC,
		listUsersUC: listUsersUC,
		logger:      logger.NewLogger(),
	}
}

// Signup handles POST /api/users
func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Role:        req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

// GetUser handles GET /api/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := usecases.ListUsersQuery{}
	if role := c.Query("role"); role != "" {
		query.Role = &role
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, len(result.Users))
}
