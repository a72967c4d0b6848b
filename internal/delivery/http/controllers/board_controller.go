package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventsboard/internal/delivery/http/helpers"
	"eventsboard/internal/domain"
	"eventsboard/internal/services"
)

// SearchRequest is the request body for PUT /board/search.
type SearchRequest struct {
	Query string `json:"query"`
}

// CategoryRequest is the request body for PUT /board/category. An empty
// category clears the filter.
type CategoryRequest struct {
	Category string `json:"category"`
}

// EventView is an event card: the event plus its category names.
// swagger:model EventView
type EventView struct {
	domain.Event
	CategoryNames []string `json:"categoryNames"`
}

// BoardResponse is the visible part of the events list.
// swagger:model BoardResponse
type BoardResponse struct {
	Events     []EventView            `json:"events"`
	Filters    domain.FilterState     `json:"filters"`
	CanReset   bool                   `json:"can_reset"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// FormResponse is the data needed to render the new-event form.
// swagger:model FormResponse
type FormResponse struct {
	MinDate    string            `json:"min_date"`
	Categories []domain.Category `json:"categories"`
	Users      []domain.User     `json:"users"`
}

// LocationResponse is the body of GET /board/location.
type LocationResponse struct {
	Location string `json:"location"`
}

// BoardController serves the events board.
type BoardController struct {
	Logger  *slog.Logger
	Board   *services.Board
	Inbox   *services.Inbox
	History *services.History
}

func NewBoardController(logger *slog.Logger, board *services.Board, inbox *services.Inbox, history *services.History) *BoardController {
	return &BoardController{
		Logger:  logger,
		Board:   board,
		Inbox:   inbox,
		History: history,
	}
}

// GetBoard godoc
// @Summary List visible events
// @Description Returns the events passing the current search and category filters. page and page_size are optional; without page_size all visible events are returned.
// @Tags board
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param page_size query int false "Events per page (max 100)"
// @Success 200 {object} helpers.APIResponse{data=BoardResponse}
// @Router /board [get]
func (c *BoardController) GetBoard(w http.ResponseWriter, r *http.Request) {
	c.writeBoard(w, r, c.Board.Engine.Visible())
}

// Search godoc
// @Summary Set the search query
// @Description Filters event titles by case-insensitive substring, combined with the active category filter.
// @Tags board
// @Accept json
// @Produce json
// @Param body body SearchRequest true "Search query"
// @Success 200 {object} helpers.APIResponse{data=BoardResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /board/search [put]
func (c *BoardController) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.writeBoard(w, r, c.Board.Engine.ApplySearch(req.Query))
}

// FilterCategory godoc
// @Summary Set the category filter
// @Description Shows only events tagged with the category. A non-numeric category yields an empty list; an empty one clears the filter.
// @Tags board
// @Accept json
// @Produce json
// @Param body body CategoryRequest true "Category id"
// @Success 200 {object} helpers.APIResponse{data=BoardResponse}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /board/category [put]
func (c *BoardController) FilterCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	c.writeBoard(w, r, c.Board.Engine.ApplyCategory(req.Category))
}

// ResetFilters godoc
// @Summary Clear all filters
// @Tags board
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=BoardResponse}
// @Router /board/filters [delete]
func (c *BoardController) ResetFilters(w http.ResponseWriter, r *http.Request) {
	c.writeBoard(w, r, c.Board.Engine.Reset())
}

// Reload godoc
// @Summary Reload events and reference data from the backend
// @Tags board
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=BoardResponse}
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /board/reload [post]
func (c *BoardController) Reload(w http.ResponseWriter, r *http.Request) {
	if err := c.Board.Reload(context.WithoutCancel(r.Context())); err != nil {
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, err.Error())
		return
	}
	c.writeBoard(w, r, c.Board.Engine.Visible())
}

func (c *BoardController) writeBoard(w http.ResponseWriter, r *http.Request, visible []domain.Event) {
	params := helpers.ParsePagination(r)
	page := domain.Paginate(visible, params)
	views := make([]EventView, 0, len(page))
	for _, e := range page {
		views = append(views, EventView{Event: e, CategoryNames: c.Board.Engine.CategoryNames(e)})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BoardResponse{
		Events:     views,
		Filters:    c.Board.Engine.State(),
		CanReset:   c.Board.Engine.CanReset(),
		Pagination: helpers.NewPaginationMeta(params.Page, params.PageSize, len(visible)),
	})
}

// OpenForm godoc
// @Summary Open the new-event form
// @Description Opens the authoring surface and fixes the minimum start/end time to the current minute.
// @Tags form
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=FormResponse}
// @Router /board/form [get]
func (c *BoardController) OpenForm(w http.ResponseWriter, r *http.Request) {
	minDate := c.Board.Workflow.Open()
	ref := c.Board.Workflow.Reference()
	categories, users := ref.Categories, ref.Users
	if categories == nil {
		categories = []domain.Category{}
	}
	if users == nil {
		users = []domain.User{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FormResponse{MinDate: minDate, Categories: categories, Users: users})
}

// CloseForm godoc
// @Summary Close the new-event form
// @Tags form
// @Success 204
// @Router /board/form [delete]
func (c *BoardController) CloseForm(w http.ResponseWriter, r *http.Request) {
	c.Board.Workflow.Close()
	w.WriteHeader(http.StatusNoContent)
}

// CreateEvent godoc
// @Summary Submit the new-event form
// @Description Validates the form, creates the event on the backend and redirects to its detail view via the Location header.
// @Tags form
// @Accept json
// @Produce json
// @Param event body domain.EventForm true "Form values; category and organizer ids may be strings or numbers"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or validation_failed"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (form closed or submission in progress)"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /board/events [post]
func (c *BoardController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var form domain.EventForm
	if !helpers.DecodeAndValidate(w, r, &form) {
		return
	}
	// A submission runs to completion even if the client goes away.
	created, err := c.Board.Workflow.Submit(context.WithoutCancel(r.Context()), form)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			helpers.WriteValidationError(w, verrs)
		case errors.Is(err, domain.ErrSubmissionInProgress), errors.Is(err, domain.ErrFormClosed):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, err.Error())
		}
		return
	}
	w.Header().Set("Location", domain.EventPath(created.ID))
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// Notifications godoc
// @Summary Drain pending notifications
// @Tags board
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Notification}
// @Router /board/notifications [get]
func (c *BoardController) Notifications(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Inbox.Drain())
}

// Location godoc
// @Summary Current navigation target
// @Tags board
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=LocationResponse}
// @Router /board/location [get]
func (c *BoardController) Location(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, LocationResponse{Location: c.History.Current()})
}

// Health responds 200 with the number of loaded events.
func (c *BoardController) Health(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]any{"status": "ok", "events": c.Board.Engine.Len()})
}
