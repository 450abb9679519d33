package handler

import (
	"log/slog"
	"net/http"

	"herbaciarnia/internal/delivery/http/response"
	"herbaciarnia/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	NewsletterUC usecase.NewsletterUsecase
	ContactUC    usecase.ContactUsecase
	Logger       *slog.Logger
}

// EngagementHandler holds dependencies for newsletter and contact handlers
type EngagementHandler struct {
	newsletterUC usecase.NewsletterUsecase
	contactUC    usecase.ContactUsecase
	logger       *slog.Logger
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		newsletterUC: params.NewsletterUC,
		contactUC:    params.ContactUC,
		logger:       params.Logger,
	}
}

// SubscribeRequest represents the request body for a newsletter signup
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscribeResponse reports whether the signup created a new subscription
type SubscribeResponse struct {
	Subscribed bool `json:"subscribed"`
}

// SubscribeNewsletter handles newsletter signups
func (h *EngagementHandler) SubscribeNewsletter(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowy adres e-mail")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	created, err := h.newsletterUC.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Ten adres jest już zapisany"
	status := http.StatusOK
	if created {
		message = "Zapisano do newslettera"
		status = http.StatusCreated
	}

	return response.Success(c, status, SubscribeResponse{Subscribed: created}, message)
}

// SubmitContactMessage handles contact form submissions
func (h *EngagementHandler) SubmitContactMessage(c echo.Context) error {
	var form usecase.ContactForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Nieprawidłowe dane wiadomości")
	}

	if err := c.Validate(&form); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.contactUC.SubmitMessage(c.Request().Context(), form); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Wiadomość wysłana")
}
