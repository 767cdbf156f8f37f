package httpx

import "net/http"

type healthStatus struct {
	Status string `json:"status"`
}

// healthHandler answers liveness probes. It never touches session storage or the API.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodHead {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		return
	}
	WriteJSON(w, http.StatusOK, healthStatus{Status: "ok"})
}
