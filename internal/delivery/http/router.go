package http

import (
	"log/slog"
	"net/http"

	"github.com/justinas/alice"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "eventsboard/docs"
	"eventsboard/internal/delivery/http/controllers"
	"eventsboard/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes wrapped in
// the request id, logging and CORS middleware.
func NewRouter(logger *slog.Logger, board *controllers.BoardController, allowedOrigins []string) http.Handler {
	mux := http.NewServeMux()

	// Events list
	mux.HandleFunc("GET /board", board.GetBoard)
	mux.HandleFunc("PUT /board/search", board.Search)
	mux.HandleFunc("PUT /board/category", board.FilterCategory)
	mux.HandleFunc("DELETE /board/filters", board.ResetFilters)
	mux.HandleFunc("POST /board/reload", board.Reload)
	mux.HandleFunc("GET /board/notifications", board.Notifications)
	mux.HandleFunc("GET /board/location", board.Location)

	// New-event form
	mux.HandleFunc("GET /board/form", board.OpenForm)
	mux.HandleFunc("DELETE /board/form", board.CloseForm)
	mux.HandleFunc("POST /board/events", board.CreateEvent)

	mux.HandleFunc("GET /healthz", board.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return alice.New(
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.CORS(allowedOrigins),
	).Then(mux)
}
