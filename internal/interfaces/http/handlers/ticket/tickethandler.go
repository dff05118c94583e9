package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/ticket/usecases"
	"ddportal/internal/interfaces/http/handlers/common"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC    usecases.CreateTicketExecutor
	getTicketUC       usecases.GetTicketExecutor
	listTicketsUC     usecases.ListTicketsExecutor
	claimTicketUC     usecases.ClaimTicketExecutor
	unclaimTicketUC   usecases.UnclaimTicketExecutor
	resolveTicketUC   usecases.ResolveTicketExecutor
	setStatusUC       usecases.SetTicketStatusExecutor
	addCommentUC      usecases.AddCommentExecutor
	deleteTicketUC    usecases.DeleteTicketExecutor
	logTimeUC         usecases.LogTimeExecutor
	updateTimeEntryUC usecases.UpdateTimeEntryExecutor
	deleteTimeEntryUC usecases.DeleteTimeEntryExecutor
	listTimeEntriesUC usecases.ListTimeEntriesExecutor
	logger            logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	claimTicketUC usecases.ClaimTicketExecutor,
	unclaimTicketUC usecases.UnclaimTicketExecutor,
	resolveTicketUC usecases.ResolveTicketExecutor,
	setStatusUC usecases.SetTicketStatusExecutor,
	addCommentUC usecases.AddCommentExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	logTimeUC usecases.LogTimeExecutor,
	updateTimeEntryUC usecases.UpdateTimeEntryExecutor,
	deleteTimeEntryUC usecases.DeleteTimeEntryExecutor,
	listTimeEntriesUC usecases.ListTimeEntriesExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:    createTicketUC,
		getTicketUC:       getTicketUC,
		listTicketsUC:     listTicketsUC,
		claimTicketUC:     claimTicketUC,
		unclaimTicketUC:   unclaimTicketUC,
		resolveTicketUC:   resolveTicketUC,
		setStatusUC:       setStatusUC,
		addCommentUC:      addCommentUC,
		deleteTicketUC:    deleteTicketUC,
		logTimeUC:         logTimeUC,
		updateTimeEntryUC: updateTimeEntryUC,
		deleteTimeEntryUC: deleteTimeEntryUC,
		listTimeEntriesUC: listTimeEntriesUC,
		logger:            logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(common.ActorFromContext(c))

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	query := usecases.GetTicketQuery{
		TicketID:      ticketID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := req.ToQuery(common.ActorFromContext(c))

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.PageSize)
}

// ClaimTicket handles POST /tickets/:id/claim
func (h *TicketHandler) ClaimTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ClaimTicketCommand{
		TicketID: ticketID,
		ActorID:  common.ActorFromContext(c).ID,
	}

	result, err := h.claimTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket claimed successfully", result)
}

// UnclaimTicket handles POST /tickets/:id/unclaim
func (h *TicketHandler) UnclaimTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UnclaimTicketCommand{
		TicketID: ticketID,
		ActorID:  common.ActorFromContext(c).ID,
	}

	result, err := h.unclaimTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket unclaimed successfully", result)
}

// ResolveTicket handles POST /tickets/:id/resolve
func (h *TicketHandler) ResolveTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ResolveTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for resolve ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ResolveTicketCommand{
		TicketID:   ticketID,
		Resolution: req.Resolution,
		Close:      req.Close,
		ActorID:    common.ActorFromContext(c).ID,
	}

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket resolved successfully", result)
}

// SetStatus handles PUT /tickets/:id/status
func (h *TicketHandler) SetStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set ticket status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SetTicketStatusCommand{
		TicketID: ticketID,
		Status:   req.Status,
		ActorID:  common.ActorFromContext(c).ID,
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket status updated successfully", result)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := common.ActorFromContext(c)
	cmd := usecases.AddCommentCommand{
		TicketID:      ticketID,
		Content:       req.Content,
		IsInternal:    req.IsInternal,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID: ticketID,
		ActorID:  common.ActorFromContext(c).ID,
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// LogTime handles POST /tickets/:id/time-entries
func (h *TicketHandler) LogTime(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req LogTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for log time", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(ticketID, common.ActorFromContext(c).ID)

	result, err := h.logTimeUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Time entry logged successfully")
}

// ListTimeEntries handles GET /tickets/:id/time-entries
func (h *TicketHandler) ListTimeEntries(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListTimeEntriesQuery{
		TicketID: ticketID,
		ActorID:  common.ActorFromContext(c).ID,
	}

	entries, err := h.listTimeEntriesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", entries)
}

// UpdateTimeEntry handles PUT /time-entries/:id
func (h *TicketHandler) UpdateTimeEntry(c *gin.Context) {
	entryID, err := utils.ParseIDParam(c, "id", "time entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update time entry", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateTimeEntryCommand{
		EntryID:     entryID,
		Minutes:     req.Minutes,
		Description: req.Description,
		ActorID:     common.ActorFromContext(c).ID,
	}

	result, err := h.updateTimeEntryUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Time entry updated successfully", result)
}

// DeleteTimeEntry handles DELETE /time-entries/:id
func (h *TicketHandler) DeleteTimeEntry(c *gin.Context) {
	entryID, err := utils.ParseIDParam(c, "id", "time entry")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTimeEntryCommand{
		EntryID: entryID,
		ActorID: common.ActorFromContext(c).ID,
	}

	if err := h.deleteTimeEntryUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
