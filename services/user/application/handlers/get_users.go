package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	appsvcs "github.com/ghuser/backoffice/services/user/application/services"
)

// GetUsersHandler handles GET /api/users requests: all users, or one user
// when the id query parameter is present.
type GetUsersHandler struct {
	svc *appsvcs.Services
}

// NewGetUsersHandler returns a GetUsersHandler backed by the given services.
func NewGetUsersHandler(svc *appsvcs.Services) *GetUsersHandler {
	return &GetUsersHandler{svc: svc}
}

// Execute lists users or fetches one by id.
//
//	@Summary		List users
//	@Description	Lists all users, or fetches one by id
//	@Tags			users
//	@Produce		json
//	@Param			id	query		int	false	"User ID"
//	@Success		200	{object}	httpx.Envelope
//	@Failure		404	{object}	httpx.Envelope
//	@Router			/users [get]
func (h *GetUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
			return
		}

		user, err := h.svc.User.FindByID(r.Context(), id)
		if err != nil {
			errhttp.WriteError(w, h.svc.AppCode, err)
			return
		}
		httpx.Success(w, h.svc.AppCode, toUserResponse(user))
		return
	}

	users, err := h.svc.User.FindAll(r.Context())
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}
	httpx.Success(w, h.svc.AppCode, toUserResponses(users))
}
