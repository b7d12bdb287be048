package ticket

import (
	"github.com/gin-gonic/gin"

	"atgs/internal/application/ticket/usecases"
	"atgs/internal/interfaces/http/middleware"
	"atgs/internal/shared/errors"
	"atgs/internal/shared/logger"
	"atgs/internal/shared/utils"
)

type TicketHandler struct {
	listTicketsUC  usecases.ListTicketsExecutor
	submitTicketUC usecases.SubmitTicketExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	listTicketsUC usecases.ListTicketsExecutor,
	submitTicketUC usecases.SubmitTicketExecutor,
) *TicketHandler {
	return &TicketHandler{
		listTicketsUC:  listTicketsUC,
		submitTicketUC: submitTicketUC,
		logger:         logger.NewLogger(),
	}
}

// ListTickets handles GET /api/tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID := c.GetUint(middleware.UserIDKey)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		UserID: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, len(result.Tickets))
}

// SubmitTicket handles POST /api/tickets
func (h *TicketHandler) SubmitTicket(c *gin.Context) {
	var req SubmitTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for submit ticket", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID := c.GetUint(middleware.UserIDKey)

	result, err := h.submitTicketUC.Execute(c.Request.Context(), usecases.SubmitTicketCommand{
		AuthorID:   userID,
		Department: req.Department,
		Priority:   req.Priority,
		Subject:    req.Subject,
		Message:    req.Message,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket submitted successfully")
}
