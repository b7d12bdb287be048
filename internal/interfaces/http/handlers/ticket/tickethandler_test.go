package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atgs/internal/application/ticket/dto"
	"atgs/internal/application/ticket/usecases"
	"atgs/internal/interfaces/http/middleware"
	"atgs/internal/shared/errors"
)

type mockListTicketsExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error)
}

func (m *mockListTicketsExecutor) Execute(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockSubmitTicketExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.SubmitTicketCommand) (*dto.TicketDTO, error)
}

func (m *mockSubmitTicketExecutor) Execute(ctx context.Context, cmd usecases.SubmitTicketCommand) (*dto.TicketDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

func setupRouter(handler *TicketHandler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
	})
	r.GET("/api/tickets", handler.ListTickets)
	r.POST("/api/tickets", handler.SubmitTicket)
	return r
}

func TestTicketHandler_ListTickets(t *testing.T) {
	t.Run("returns tickets for the caller", func(t *testing.T) {
		listUC := &mockListTicketsExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
				assert.Equal(t, uint(7), query.UserID)
				return &usecases.ListTicketsResult{
					Tickets: []dto.TicketDTO{
						{ID: 1, AuthorID: 7, Subject: "First", Status: "open", CreatedAt: time.Now(), LastUpdated: time.Now()},
					},
				}, nil
			},
		}
		handler := NewTicketHandler(listUC, &mockSubmitTicketExecutor{})
		router := setupRouter(handler, 7)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Items []dto.TicketDTO `json:"items"`
				Total int             `json:"total"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, 1, body.Data.Total)
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "First", body.Data.Items[0].Subject)
	})

	t.Run("use case error is translated", func(t *testing.T) {
		listUC := &mockListTicketsExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
				return nil, errors.NewNotFoundError("user not found")
			},
		}
		handler := NewTicketHandler(listUC, &mockSubmitTicketExecutor{})
		router := setupRouter(handler, 9)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTicketHandler_SubmitTicket(t *testing.T) {
	t.Run("successful submission", func(t *testing.T) {
		submitUC := &mockSubmitTicketExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.SubmitTicketCommand) (*dto.TicketDTO, error) {
				assert.Equal(t, uint(3), cmd.AuthorID)
				assert.Equal(t, "Housing", cmd.Department)
				return &dto.TicketDTO{ID: 12, AuthorID: 3, Subject: cmd.Subject, Status: "open"}, nil
			},
		}
		handler := NewTicketHandler(&mockListTicketsExecutor{}, submitUC)
		router := setupRouter(handler, 3)

		payload, _ := json.Marshal(map[string]any{
			"department": "Housing",
			"subject":    "Dorm issue",
			"message":    "Heater is broken",
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var body struct {
			Success bool          `json:"success"`
			Data    dto.TicketDTO `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, uint(12), body.Data.ID)
	})

	t.Run("validation error from use case", func(t *testing.T) {
		submitUC := &mockSubmitTicketExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.SubmitTicketCommand) (*dto.TicketDTO, error) {
				return nil, errors.NewValidationError("subject is required")
			},
		}
		handler := NewTicketHandler(&mockListTicketsExecutor{}, submitUC)
		router := setupRouter(handler, 3)

		payload, _ := json.Marshal(map[string]any{"message": "no subject"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewTicketHandler(&mockListTicketsExecutor{}, &mockSubmitTicketExecutor{})
		router := setupRouter(handler, 3)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/tickets", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
