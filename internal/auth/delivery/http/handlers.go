package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/pkg/response"
	"textbook-rag/pkg/scope"
)

// SignUp godoc
// @Summary     Register a reader
// @Description Creates an account with background information and sets the session cookie.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signUpReq true "Account data"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/auth/sign-up [POST]
func (h *handler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignUpReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignUp(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "auth.delivery.http.SignUp: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setSessionCookie(c, out.Token, out.ExpiresAt)
	response.Created(c, h.newAuthResp(out, "Account created successfully"))
}

// SignIn godoc
// @Summary     Sign in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signInReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/auth/sign-in [POST]
func (h *handler) SignIn(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignInReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SignIn(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.setSessionCookie(c, out.Token, out.ExpiresAt)
	response.OK(c, h.newAuthResp(out, "Login successful"))
}

// Session godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     401 {object} response.Resp "Not signed in"
// @Router      /api/auth/session [GET]
func (h *handler) Session(c *gin.Context) {
	ctx := c.Request.Context()

	user, err := h.uc.Session(ctx, scope.GetScopeFromContext(ctx))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, sessionResp{User: newUserResp(user)})
}

// SignOut godoc
// @Summary     Sign out
// @Description Clears the session cookie. Tokens are stateless, so a copied Bearer token stays valid until it expires.
// @Tags        Auth
// @Produce     json
// @Success     200 {object} signOutResp
// @Router      /api/auth/sign-out [POST]
func (h *handler) SignOut(c *gin.Context) {
	h.clearSessionCookie(c)
	response.OK(c, signOutResp{Success: true})
}
