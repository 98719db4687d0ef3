// Package handlers contains the HTTP endpoints. Each handler validates its
// payload, delegates to the account service, and maps domain errors to
// status codes in one place.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/mpetrovic-dev/usermgmt/internal/service"
	"github.com/mpetrovic-dev/usermgmt/internal/utils"
	"go.uber.org/zap"
)

type UserHandler struct {
	accounts *service.AccountService
	logger   *zap.Logger
}

func NewUserHandler(accounts *service.AccountService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// POST /users
// Create godoc
// @Summary Create a new user
// @Description Registers a user account and issues its API key.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User to create"
// @Success 201 {object} models.User
// @Failure 400 {object} utils.Message
// @Failure 409 {object} utils.Message
// @Security ApiKeyAuth
// @Router /users [post]
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req service.CreateUserRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Error("invalid user creation payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("invalid user creation payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("creating user", zap.String("email", req.Email))

	user, err := h.accounts.AddUser(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, "User creation failed.", err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, user)
}

// ByID dispatches /users/{id} by method.
func (h *UserHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil || id == uuid.Nil {
		h.logger.Error("user id is missing or invalid")
		utils.ErrorResponse(w, http.StatusBadRequest, "User ID is required.")
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		utils.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// GET /users/{id}
// get godoc
// @Summary Retrieve a user by ID
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.Message
// @Failure 404 {object} utils.Message
// @Security ApiKeyAuth
// @Router /users/{id} [get]
func (h *UserHandler) get(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	h.logger.Info("fetching user", zap.String("user_id", id.String()))

	user, err := h.accounts.GetUserByID(r.Context(), id)
	if err != nil {
		writeError(w, h.logger, "Failed to retrieve user.", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, user)
}

// PUT /users/{id}
// update godoc
// @Summary Update an existing user
// @Description Applies profile fields; username and password are immutable.
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to apply"
// @Success 200 {object} utils.Message
// @Failure 400 {object} utils.Message
// @Failure 404 {object} utils.Message
// @Failure 409 {object} utils.Message
// @Security ApiKeyAuth
// @Router /users/{id} [put]
func (h *UserHandler) update(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	var req service.UpdateUserRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Error("invalid user update payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("invalid user update payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("updating user", zap.String("user_id", id.String()))

	if _, err := h.accounts.UpdateUser(r.Context(), id, req); err != nil {
		writeError(w, h.logger, "User update failed.", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Message{Message: "User has been successfully updated."})
}

// DELETE /users/{id}
// delete godoc
// @Summary Delete a user
// @Description Removes the account together with its API-key grant.
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} utils.Message
// @Failure 404 {object} utils.Message
// @Security ApiKeyAuth
// @Router /users/{id} [delete]
func (h *UserHandler) delete(w http.ResponseWriter, r *http.Request, id uuid.UUID) {
	h.logger.Info("deleting user", zap.String("user_id", id.String()))

	if err := h.accounts.DeleteUser(r.Context(), id); err != nil {
		writeError(w, h.logger, "User deletion failed.", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Message{Message: "User has been successfully deleted."})
}
