package handler

import (
	"net/http"
	"time"

	"github.com/Dim-Aks/Bot-shop/internal/delivery/http/response"
	"github.com/Dim-Aks/Bot-shop/internal/domain/entity"
	"github.com/Dim-Aks/Bot-shop/internal/usecase"

	"github.com/labstack/echo/v4"
)

// MailingHandler holds dependencies for mailing management handlers.
type MailingHandler struct {
	uc usecase.MailingUsecase
}

// NewMailingHandler is the constructor for MailingHandler, injected by Fx.
func NewMailingHandler(uc usecase.MailingUsecase) *MailingHandler {
	return &MailingHandler{uc: uc}
}

type mailingRequest struct {
	Text      string    `json:"text"`
	MediaFile string    `json:"media_file"`
	SendAt    time.Time `json:"send_at"`
}

type mailingResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text,omitempty"`
	MediaFile string    `json:"media_file,omitempty"`
	SendAt    time.Time `json:"send_at"`
	Sent      bool      `json:"sent"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMailingResponse(mailing *entity.Mailing) mailingResponse {
	return mailingResponse{
		ID:        mailing.ID,
		Text:      mailing.Text,
		MediaFile: mailing.MediaFile,
		SendAt:    mailing.SendAt,
		Sent:      mailing.Sent,
		CreatedAt: mailing.CreatedAt,
		UpdatedAt: mailing.UpdatedAt,
	}
}

// List handles the mailing listing request.
func (h *MailingHandler) List(c echo.Context) error {
	mailings, err := h.uc.List(c.Request().Context())
	if err != nil {
		return translateError(err)
	}

	items := make([]mailingResponse, 0, len(mailings))
	for _, mailing := range mailings {
		items = append(items, toMailingResponse(mailing))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get handles the single mailing request.
func (h *MailingHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	mailing, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toMailingResponse(mailing), "")
}

// Create handles the mailing creation request.
func (h *MailingHandler) Create(c echo.Context) error {
	var input mailingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mailing input")
	}

	mailing := &entity.Mailing{
		Text:      input.Text,
		MediaFile: input.MediaFile,
		SendAt:    input.SendAt,
	}
	if err := h.uc.Create(c.Request().Context(), mailing); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusCreated, toMailingResponse(mailing), "Mailing created")
}

// Update handles the mailing update request.
func (h *MailingHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var input mailingRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid mailing input")
	}

	mailing := &entity.Mailing{
		ID:        id,
		Text:      input.Text,
		MediaFile: input.MediaFile,
		SendAt:    input.SendAt,
	}
	if err := h.uc.Update(c.Request().Context(), mailing); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, toMailingResponse(mailing), "Mailing updated")
}

// Delete handles the mailing deletion request.
func (h *MailingHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mailing deleted")
}

// Send handles the fan-out request and reports the delivery counts.
func (h *MailingHandler) Send(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	report, err := h.uc.Send(c.Request().Context(), id)
	if err != nil {
		return translateError(err)
	}

	return response.Success(c, http.StatusOK, report, "Mailing sent")
}
