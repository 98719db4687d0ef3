package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mpetrovic-dev/usermgmt/internal/service"
	"github.com/mpetrovic-dev/usermgmt/internal/utils"
	"go.uber.org/zap"
)

type ClientHandler struct {
	accounts *service.AccountService
	logger   *zap.Logger
}

func NewClientHandler(accounts *service.AccountService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{
		accounts: accounts,
		logger:   logger,
	}
}

type loginResponse struct {
	APIKey string `json:"apiKey"`
}

// POST /clients
// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and returns the account's API key.
// @Tags Clients
// @Accept json
// @Produce json
// @Param credentials body service.UserLoginRequest true "Login credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {object} utils.Message
// @Failure 401 {object} utils.Message
// @Router /clients [post]
func (h *ClientHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req service.UserLoginRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.logger.Error("invalid login payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.Error("invalid login payload", zap.Error(err))
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("login attempt", zap.String("username", req.UserName))

	apiKey, err := h.accounts.AuthenticateUser(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeError(w, h.logger, "User login failed.", err)
		return
	}

	h.logger.Info("login successful", zap.String("username", req.UserName))
	utils.JSONResponse(w, http.StatusOK, loginResponse{APIKey: apiKey})
}
