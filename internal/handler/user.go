package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tripweaver/backend/internal/domain"
)

type createUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	created, err := s.users.Create(r.Context(), domain.User{
		Email:    req.Email,
		FullName: req.FullName,
	})
	if err != nil {
		writeError(w, err, "user not found")
		return
	}

	writeJSON(w, http.StatusCreated, userToResponse(created))
}

// ListUsers handles GET /users.
func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		writeError(w, err, "user not found")
		return
	}

	resp := make([]userResponse, len(users))
	for i, u := range users {
		resp[i] = userToResponse(u)
	}
	writeJSON(w, http.StatusOK, resp)
}

func userToResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
