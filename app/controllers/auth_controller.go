package controllers

import (
	"errors"
	"net/http"

	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/app/services"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/bind"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/response"
	"github.com/ganesh12122/Stark-Products-E-Commerce-Website/pkg/session"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userCredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AdminLogin authenticates a console admin and flags the session.
func (c *AuthController) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if errs, err := bind.JSON(r, &req); err != nil || errs != nil {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := c.service.AdminLogin(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Internal(w)
		return
	}

	sess := session.FromCtx(r)
	sess.Set(services.AdminSessionFlag, true)
	if err := sess.Save(w); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Login successful")
}

// AdminLogout drops the admin flag. The rest of the session is kept, the
// same cookie may still carry a storefront login.
func (c *AuthController) AdminLogout(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	sess.Delete(services.AdminSessionFlag)
	if err := sess.Save(w); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Logged out successfully")
}

// CheckAuth reports whether the caller holds an admin session. Always 200.
func (c *AuthController) CheckAuth(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]bool{
		"isAuthenticated": session.FromCtx(r).GetBool(services.AdminSessionFlag),
	})
}

// UserLogin authenticates a storefront user.
func (c *AuthController) UserLogin(w http.ResponseWriter, r *http.Request) {
	var req userCredentialsRequest
	if errs, err := bind.JSON(r, &req); err != nil || errs != nil {
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if _, err := c.service.UserLogin(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		response.Internal(w)
		return
	}

	sess := session.FromCtx(r)
	sess.Set(services.UserSessionFlag, true)
	if err := sess.Save(w); err != nil {
		response.Internal(w)
		return
	}
	response.Message(w, "Login successful")
}

// UserSignup registers a storefront account. A duplicate email is a client
// error, not a store fault.
func (c *AuthController) UserSignup(w http.ResponseWriter, r *http.Request) {
	var req userCredentialsRequest
	if errs, err := bind.JSON(r, &req); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.JSON(w, http.StatusBadRequest, map[string]interface{}{"errors": errs})
		return
	}

	if _, err := c.service.Signup(r.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			response.Error(w, http.StatusBadRequest, "Email already registered")
			return
		}
		response.Internal(w)
		return
	}
	response.Message(w, "Signup successful")
}
