// Package authapi provides the single-admin account endpoints.
//
// Endpoints:
//   - POST /api/auth/signup   - create the one admin account (open until it exists)
//   - POST /api/auth/login    - exchange credentials for a bearer token
//   - GET  /api/auth/profile  - current admin profile (token required)
//   - PUT  /api/auth/profile  - update profile, optionally the password (token required)
//
// Login failures use one message for unknown email and wrong password so
// the endpoint cannot be used to probe which address the admin registered.
package authapi

import (
	"errors"
	"net/http"
	"strings"

	adminstore "github.com/dalemusser/folioserve/internal/app/store/admin"
	"github.com/dalemusser/folioserve/internal/app/system/auth"
	"github.com/dalemusser/folioserve/internal/app/system/authutil"
	"github.com/dalemusser/folioserve/internal/app/system/inputval"
	"github.com/dalemusser/folioserve/internal/app/system/jsonutil"
	"github.com/dalemusser/folioserve/internal/app/system/network"
	"github.com/dalemusser/folioserve/internal/app/system/normalize"
	"github.com/dalemusser/folioserve/internal/app/system/timeouts"
	"github.com/dalemusser/folioserve/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// loginFailedMessage is returned for both unknown email and bad password.
const loginFailedMessage = "Invalid email or password"

// Handler handles admin account API requests.
type Handler struct {
	store  *adminstore.Store
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewHandler creates a new authapi handler.
func NewHandler(store *adminstore.Store, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, logger: logger}
}

type signupInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Signup handles POST /signup. The application permits exactly one admin
// account; once it exists every further signup fails.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var in signupInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	in.Email = normalize.Email(in.Email)
	in.Name = normalize.Name(in.Name)

	if in.Email == "" || !inputval.IsValidEmail(in.Email) {
		jsonutil.BadRequest(w, "A valid email address is required.")
		return
	}
	if err := authutil.ValidatePassword(in.Password); err != nil {
		jsonutil.BadRequest(w, err.Error())
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "admin signup")
	defer cancel()

	count, err := h.store.Count(ctx)
	if err != nil {
		h.logger.Error("failed to count admin accounts", zap.Error(err))
		jsonutil.StoreError(w, "Failed to create account", err)
		return
	}
	if count > 0 {
		jsonutil.BadRequest(w, "An admin account already exists.")
		return
	}

	hash, err := authutil.HashPassword(in.Password)
	if err != nil {
		h.logger.Error("failed to hash password", zap.Error(err))
		jsonutil.StoreError(w, "Failed to create account", err)
		return
	}

	acct, err := h.store.Create(ctx, models.AdminAccount{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
	})
	if err != nil {
		// Unique email index backstops a signup race.
		if mongo.IsDuplicateKeyError(err) {
			jsonutil.BadRequest(w, "An admin account already exists.")
			return
		}
		h.logger.Error("failed to create admin account", zap.Error(err))
		jsonutil.StoreError(w, "Failed to create account", err)
		return
	}

	token, err := h.tokens.Issue(acct.ID, acct.Email, acct.Name)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		jsonutil.StoreError(w, "Failed to create account", err)
		return
	}

	h.logger.Info("admin account created", zap.String("email", acct.Email))
	jsonutil.Created(w, loginResponse{Token: token, Admin: acct}, "Account created")
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse carries the token alongside the profile.
type loginResponse struct {
	Token string               `json:"token"`
	Admin *models.AdminAccount `json:"admin"`
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}

	in.Email = normalize.Email(in.Email)
	if in.Email == "" || in.Password == "" {
		jsonutil.BadRequest(w, "Email and password are required.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "admin login")
	defer cancel()

	acct, err := h.store.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.logger.Info("login failed: unknown email",
				zap.String("ip", network.ClientIP(r)),
			)
			jsonutil.Unauthorized(w, loginFailedMessage)
			return
		}
		h.logger.Error("failed to look up admin account", zap.Error(err))
		jsonutil.StoreError(w, "Login failed", err)
		return
	}

	if !authutil.CheckPassword(in.Password, acct.PasswordHash) {
		h.logger.Info("login failed: wrong password",
			zap.String("ip", network.ClientIP(r)),
		)
		jsonutil.Unauthorized(w, loginFailedMessage)
		return
	}

	token, err := h.tokens.Issue(acct.ID, acct.Email, acct.Name)
	if err != nil {
		h.logger.Error("failed to issue token", zap.Error(err))
		jsonutil.StoreError(w, "Login failed", err)
		return
	}

	h.logger.Info("admin logged in", zap.String("email", acct.Email))
	jsonutil.OKMessage(w, loginResponse{Token: token, Admin: acct}, "Login successful")
}

// Profile handles GET /profile.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		jsonutil.Unauthorized(w, "Authentication required")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "admin profile fetch")
	defer cancel()

	acct, err := h.store.GetByID(ctx, claims.AdminObjectID())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Account not found")
			return
		}
		h.logger.Error("failed to fetch admin account", zap.Error(err))
		jsonutil.StoreError(w, "Failed to fetch profile", err)
		return
	}
	jsonutil.OK(w, acct)
}

type profileInput struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	ProfileImageURL *string `json:"profile_image_url"`
	Password        *string `json:"password"`
}

// UpdateProfile handles PUT /profile. Absent fields stay untouched; a
// present password field changes the password.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentClaims(r)
	if !ok {
		jsonutil.Unauthorized(w, "Authentication required")
		return
	}

	var in profileInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "Invalid JSON payload")
		return
	}
	if in.Name == nil && in.Email == nil && in.ProfileImageURL == nil && in.Password == nil {
		jsonutil.BadRequest(w, "Nothing to update.")
		return
	}

	upd := adminstore.ProfileUpdate{ProfileImageURL: in.ProfileImageURL}

	if in.Name != nil {
		name := normalize.Name(*in.Name)
		if name == "" {
			jsonutil.BadRequest(w, "Name must not be empty.")
			return
		}
		upd.Name = &name
	}
	if in.Email != nil {
		email := normalize.Email(*in.Email)
		if !inputval.IsValidEmail(email) {
			jsonutil.BadRequest(w, "A valid email address is required.")
			return
		}
		upd.Email = &email
	}
	if in.Password != nil {
		if err := authutil.ValidatePassword(*in.Password); err != nil {
			jsonutil.BadRequest(w, err.Error())
			return
		}
		hash, err := authutil.HashPassword(*in.Password)
		if err != nil {
			h.logger.Error("failed to hash password", zap.Error(err))
			jsonutil.StoreError(w, "Failed to update profile", err)
			return
		}
		upd.PasswordHash = &hash
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.logger, "admin profile update")
	defer cancel()

	acct, err := h.store.Update(ctx, claims.AdminObjectID(), upd)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			jsonutil.NotFound(w, "Account not found")
			return
		}
		h.logger.Error("failed to update admin account", zap.Error(err))
		jsonutil.StoreError(w, "Failed to update profile", err)
		return
	}

	fields := []string{}
	if in.Name != nil {
		fields = append(fields, "name")
	}
	if in.Email != nil {
		fields = append(fields, "email")
	}
	if in.ProfileImageURL != nil {
		fields = append(fields, "profile_image_url")
	}
	if in.Password != nil {
		fields = append(fields, "password")
	}
	h.logger.Info("admin profile updated", zap.String("fields", strings.Join(fields, ",")))

	jsonutil.OKMessage(w, acct, "Profile updated")
}
