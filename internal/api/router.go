package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /health", h.health)

	// Words
	mux.HandleFunc("POST /words", h.createWord)
	mux.HandleFunc("GET /words", h.listWords)
	mux.HandleFunc("GET /words/{wordID}", h.getWord)
	mux.HandleFunc("PUT /words/{wordID}", h.updateWord)
	mux.HandleFunc("DELETE /words/{wordID}", h.deleteWord)

	// Export / Import
	mux.HandleFunc("GET /export", h.exportAll)
	mux.HandleFunc("POST /import", h.importAll)

	// Sessions
	mux.HandleFunc("POST /sessions", h.createSession)
	mux.HandleFunc("GET /sessions/{sessionID}", h.getSession)
	mux.HandleFunc("DELETE /sessions/{sessionID}", h.abandonSession)
	mux.HandleFunc("POST /sessions/{sessionID}/matching/left", h.selectLeft)
	mux.HandleFunc("POST /sessions/{sessionID}/matching/right", h.selectRight)
	mux.HandleFunc("POST /sessions/{sessionID}/typing", h.submitTyping)
	mux.HandleFunc("POST /sessions/{sessionID}/sentence/place", h.placeFragment)
	mux.HandleFunc("POST /sessions/{sessionID}/sentence/remove", h.removeFragment)
	mux.HandleFunc("POST /sessions/{sessionID}/sentence/check", h.checkSentence)
	mux.HandleFunc("POST /sessions/{sessionID}/listening/choose", h.chooseOption)
	mux.HandleFunc("POST /sessions/{sessionID}/listening/replay", h.replayAudio)
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.advance)
	mux.HandleFunc("GET /results", h.listResults)
}
