package client

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/client/usecases"
	"ddportal/internal/interfaces/http/handlers/common"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type ClientHandler struct {
	createClientUC      usecases.CreateClientExecutor
	getClientUC         usecases.GetClientExecutor
	listClientsUC       usecases.ListClientsExecutor
	updateClientUC      usecases.UpdateClientExecutor
	archiveClientUC     usecases.ArchiveClientExecutor
	resetSupportCycleUC usecases.ResetSupportCycleExecutor
	logger              logger.Interface
}

func NewClientHandler(
	createClientUC usecases.CreateClientExecutor,
	getClientUC usecases.GetClientExecutor,
	listClientsUC usecases.ListClientsExecutor,
	updateClientUC usecases.UpdateClientExecutor,
	archiveClientUC usecases.ArchiveClientExecutor,
	resetSupportCycleUC usecases.ResetSupportCycleExecutor,
) *ClientHandler {
	return &ClientHandler{
		createClientUC:      createClientUC,
		getClientUC:         getClientUC,
		listClientsUC:       listClientsUC,
		updateClientUC:      updateClientUC,
		archiveClientUC:     archiveClientUC,
		resetSupportCycleUC: resetSupportCycleUC,
		logger:              logger.NewLogger(),
	}
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(common.ActorFromContext(c).ID)

	result, err := h.createClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	query := usecases.GetClientQuery{
		ClientID:      clientID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}

	result, err := h.getClientUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	req, err := parseListClientsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listClientsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Clients, result.Total, result.Page, result.PageSize)
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateClientCommand{
		ClientID:               clientID,
		CompanyName:            req.CompanyName,
		ContactEmail:           req.ContactEmail,
		Status:                 req.Status,
		SupportMinutesPerMonth: req.SupportMinutesPerMonth,
		ActorID:                common.ActorFromContext(c).ID,
	}

	result, err := h.updateClientUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

// ArchiveClient handles DELETE /clients/:id
func (h *ClientHandler) ArchiveClient(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ArchiveClientCommand{
		ClientID: clientID,
		ActorID:  common.ActorFromContext(c).ID,
	}

	if err := h.archiveClientUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ResetSupportCycle handles POST /clients/:id/support-cycle/reset
func (h *ClientHandler) ResetSupportCycle(c *gin.Context) {
	clientID, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty POST resets the cycle as of now.
	var req ResetSupportCycleRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for reset support cycle", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	var cycleStart time.Time
	if req.CycleStart != nil {
		cycleStart = *req.CycleStart
	}

	cmd := usecases.ResetSupportCycleCommand{
		ClientID:   clientID,
		CycleStart: cycleStart,
		ActorID:    common.ActorFromContext(c).ID,
	}

	result, err := h.resetSupportCycleUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Support cycle reset successfully", result)
}
