package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/user/application/services"
)

// PutUserHandler handles PUT /api/users/{id} requests.
type PutUserHandler struct {
	svc *appsvcs.Services
}

// NewPutUserHandler returns a PutUserHandler backed by the given services.
func NewPutUserHandler(svc *appsvcs.Services) *PutUserHandler {
	return &PutUserHandler{svc: svc}
}

// Execute replaces a user's profile fields.
//
//	@Summary		Update user
//	@Description	Replaces the user's name, email and phone
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"User ID"
//	@Param			request	body		UserRequest	true	"User update request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		404		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/users/{id} [put]
func (h *PutUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.Fail(w, http.StatusBadRequest, h.svc.AppCode, httpx.CodeBadRequest, "id must be an integer")
		return
	}

	req, ok := pkgvalidator.ValidateRequest[UserRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	user, err := h.svc.User.Update(r.Context(), id, req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toUserResponse(user))
}
