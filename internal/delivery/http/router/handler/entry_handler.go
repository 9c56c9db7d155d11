package handler

import (
	"log/slog"
	"net/http"
	"time"

	"checkin/internal/delivery/http/middleware"
	"checkin/internal/delivery/http/response"
	"checkin/internal/domain/entity"
	"checkin/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// dayParamLayout is the URL form of the :date path parameter.
const dayParamLayout = "2006-01-02"

// saveEntryRequest is the payload for one prompt submission. Only the fields
// belonging to the submitted prompt are read.
type saveEntryRequest struct {
	Prompt        string `json:"prompt" validate:"required,oneof=morning evening"`
	MorningNeed   string `json:"morning_need"`
	EveningMood   *int   `json:"evening_mood"`
	Gratitude     string `json:"gratitude"`
	TomorrowGreat string `json:"tomorrow_great"`
}

// EntryHandler holds dependencies for daily-entry handlers.
type EntryHandler struct {
	uc     usecase.EntryUsecase
	logger *slog.Logger
}

// NewEntryHandler is the constructor for EntryHandler, injected by Fx.
func NewEntryHandler(uc usecase.EntryUsecase, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Save merges one prompt submission into today's entry.
func (h *EntryHandler) Save(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req saveEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Prompt must be morning or evening")
	}

	input := &usecase.SaveEntryInput{
		Prompt:        entity.PromptType(req.Prompt),
		MorningNeed:   req.MorningNeed,
		Gratitude:     req.Gratitude,
		TomorrowGreat: req.TomorrowGreat,
	}
	if req.EveningMood != nil {
		mood := entity.Mood(*req.EveningMood)
		input.EveningMood = &mood
	}

	entry, err := h.uc.SaveEntry(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// Today returns the caller's entry for today, or null if none exists yet.
func (h *EntryHandler) Today(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entry, err := h.uc.FetchTodayEntry(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// Day returns both members' entries for the given day, partitioned by author.
func (h *EntryHandler) Day(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	day, err := time.Parse(dayParamLayout, c.Param("date"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Date must be in yyyy-mm-dd form")
	}

	entries, err := h.uc.FetchEntriesForDay(c.Request().Context(), userID, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries)
}
