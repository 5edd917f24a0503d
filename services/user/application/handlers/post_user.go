package handlers

import (
	"net/http"

	"github.com/ghuser/backoffice/pkg/errhttp"
	"github.com/ghuser/backoffice/pkg/httpx"
	pkgvalidator "github.com/ghuser/backoffice/pkg/validator"
	appsvcs "github.com/ghuser/backoffice/services/user/application/services"
)

// PostUserHandler handles POST /api/users requests.
type PostUserHandler struct {
	svc *appsvcs.Services
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services) *PostUserHandler {
	return &PostUserHandler{svc: svc}
}

// Execute creates a new back-office user.
//
//	@Summary		Create user
//	@Description	Creates a user; email addresses are unique
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UserRequest	true	"User creation request"
//	@Success		200		{object}	httpx.Envelope
//	@Failure		400		{object}	httpx.Envelope
//	@Failure		409		{object}	httpx.Envelope
//	@Router			/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[UserRequest](w, r, h.svc.AppCode)
	if !ok {
		return
	}

	user, err := h.svc.User.Create(r.Context(), req.FirstName, req.LastName, req.Email, req.Phone)
	if err != nil {
		errhttp.WriteError(w, h.svc.AppCode, err)
		return
	}

	httpx.Success(w, h.svc.AppCode, toUserResponse(user))
}
