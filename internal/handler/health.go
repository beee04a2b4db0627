package handler

import "net/http"

// messageResponse is the generic {"message": ...} body used by the health
// check and the delete endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// Health handles GET /.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Healthy"})
}
