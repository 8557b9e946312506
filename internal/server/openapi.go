package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "GeoStats API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the GeoStats country-guessing game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/session
	postSession, _ := r.NewOperationContext(http.MethodPost, "/api/session")
	postSession.SetSummary("Create session")
	postSession.SetDescription("Creates a new game session in the menu and returns its bearer token.")
	postSession.AddReqStructure(SessionRequest{})
	postSession.AddRespStructure(SessionResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSession.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postSession)

	// GET /api/game/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/game/state")
	getState.SetSummary("Get game state")
	getState.SetDescription("Returns the full localized session view. Requires Bearer token.")
	getState.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getState.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(getState)

	// POST /api/game/start
	postStart, _ := r.NewOperationContext(http.MethodPost, "/api/game/start")
	postStart.SetSummary("Start game")
	postStart.SetDescription("Begins a fresh game with the given life budget (10, 5, or 3 on the menu).")
	postStart.AddReqStructure(StartRequest{})
	postStart.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postStart.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postStart)

	// POST /api/game/guess
	postGuess, _ := r.NewOperationContext(http.MethodPost, "/api/game/guess")
	postGuess.SetSummary("Submit a guess")
	postGuess.SetDescription("Compares the guess against the current country, accent- and case-insensitively.")
	postGuess.AddReqStructure(GuessRequest{})
	postGuess.AddRespStructure(GuessResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postGuess.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postGuess)

	// POST /api/game/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/game/hint")
	postHint.SetSummary("Request a hint")
	postHint.SetDescription("Reveals one hint category at the cost of a life. Ignored at a single life or after three hints.")
	postHint.AddRespStructure(HintResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postHint)

	// POST /api/game/advance
	postAdvance, _ := r.NewOperationContext(http.MethodPost, "/api/game/advance")
	postAdvance.SetSummary("Advance")
	postAdvance.SetDescription("Confirm accelerator: next round after success, restart after gameover, menu from the leaderboard.")
	postAdvance.AddRespStructure(GameStateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postAdvance)

	// POST /api/game/language
	postLanguage, _ := r.NewOperationContext(http.MethodPost, "/api/game/language")
	postLanguage.SetSummary("Toggle language")
	postLanguage.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postLanguage)

	// POST /api/game/leaderboard
	postBoard, _ := r.NewOperationContext(http.MethodPost, "/api/game/leaderboard")
	postBoard.SetSummary("Show leaderboard")
	postBoard.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postBoard)

	// POST /api/game/menu
	postMenu, _ := r.NewOperationContext(http.MethodPost, "/api/game/menu")
	postMenu.SetSummary("Return to menu")
	postMenu.AddRespStructure(StatusResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postMenu)

	// GET /api/game/suggestions
	getSuggest, _ := r.NewOperationContext(http.MethodGet, "/api/game/suggestions")
	getSuggest.SetSummary("Suggestions")
	getSuggest.SetDescription("Country names containing the normalized input, in the session's display language.")
	getSuggest.AddRespStructure(SuggestionsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSuggest)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("Session event stream")
	getEvents.SetDescription("SSE stream of status changes and fun-fact arrivals.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/leaderboard
	getBoard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getBoard.SetSummary("Leaderboard")
	getBoard.SetDescription("Top 10 of the reference entries merged with the persisted personal best.")
	getBoard.AddRespStructure(LeaderboardResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getBoard)

	// POST /api/admin/reset-score
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/admin/reset-score")
	postReset.SetSummary("Reset best score")
	postReset.AddReqStructure(AdminResetRequest{})
	postReset.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	postReset.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusUnauthorized))
	_ = r.AddOperation(postReset)

	// GET /ws/feed
	getWSFeed, _ := r.NewOperationContext(http.MethodGet, "/ws/feed")
	getWSFeed.SetSummary("Websocket event feed")
	getWSFeed.SetDescription("Upgrades to a websocket pushing the same events as the SSE stream.")
	getWSFeed.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSFeed)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, err := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Write(data)
	}
}
