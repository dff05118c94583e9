package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ddportal/internal/application/project/usecases"
	"ddportal/internal/interfaces/http/handlers/common"
	"ddportal/internal/shared/logger"
	"ddportal/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC  usecases.CreateProjectExecutor
	getProjectUC     usecases.GetProjectExecutor
	listProjectsUC   usecases.ListProjectsExecutor
	updateProjectUC  usecases.UpdateProjectExecutor
	deleteProjectUC  usecases.DeleteProjectExecutor
	createPhaseUC    usecases.CreatePhaseExecutor
	setPhaseStatusUC usecases.SetPhaseStatusExecutor
	updatePhaseUC    usecases.UpdatePhaseExecutor
	deletePhaseUC    usecases.DeletePhaseExecutor
	reorderPhasesUC  usecases.ReorderPhasesExecutor
	applyTemplateUC  usecases.ApplyPhaseTemplateExecutor
	createTemplateUC usecases.CreateTemplateExecutor
	listTemplatesUC  usecases.ListTemplatesExecutor
	logger           logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	getProjectUC usecases.GetProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	updateProjectUC usecases.UpdateProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
	createPhaseUC usecases.CreatePhaseExecutor,
	setPhaseStatusUC usecases.SetPhaseStatusExecutor,
	updatePhaseUC usecases.UpdatePhaseExecutor,
	deletePhaseUC usecases.DeletePhaseExecutor,
	reorderPhasesUC usecases.ReorderPhasesExecutor,
	applyTemplateUC usecases.ApplyPhaseTemplateExecutor,
	createTemplateUC usecases.CreateTemplateExecutor,
	listTemplatesUC usecases.ListTemplatesExecutor,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC:  createProjectUC,
		getProjectUC:     getProjectUC,
		listProjectsUC:   listProjectsUC,
		updateProjectUC:  updateProjectUC,
		deleteProjectUC:  deleteProjectUC,
		createPhaseUC:    createPhaseUC,
		setPhaseStatusUC: setPhaseStatusUC,
		updatePhaseUC:    updatePhaseUC,
		deletePhaseUC:    deletePhaseUC,
		reorderPhasesUC:  reorderPhasesUC,
		applyTemplateUC:  applyTemplateUC,
		createTemplateUC: createTemplateUC,
		listTemplatesUC:  listTemplatesUC,
		logger:           logger.NewLogger(),
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(common.ActorFromContext(c).ID)

	result, err := h.createProjectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	query := usecases.GetProjectQuery{
		ProjectID:     projectID,
		ActorID:       actor.ID,
		ActorRole:     actor.Role,
		ActorClientID: actor.ClientID,
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	req, err := parseListProjectsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := req.ToQuery(common.ActorFromContext(c))

	result, err := h.listProjectsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, result.Page, result.PageSize)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdateProjectCommand{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		ActorID:     common.ActorFromContext(c).ID,
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", result)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteProjectCommand{
		ProjectID: projectID,
		ActorID:   common.ActorFromContext(c).ID,
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreatePhase handles POST /projects/:id/phases
func (h *ProjectHandler) CreatePhase(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create phase", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	orderIndex := -1
	if req.OrderIndex != nil {
		orderIndex = *req.OrderIndex
	}

	cmd := usecases.CreatePhaseCommand{
		ProjectID:   projectID,
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  orderIndex,
		ActorID:     common.ActorFromContext(c).ID,
	}

	result, err := h.createPhaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Phase created successfully")
}

// ReorderPhases handles PUT /projects/:id/phases/order
func (h *ProjectHandler) ReorderPhases(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReorderPhasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for reorder phases", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ReorderPhasesCommand{
		ProjectID: projectID,
		PhaseIDs:  req.PhaseIDs,
		ActorID:   common.ActorFromContext(c).ID,
	}

	if err := h.reorderPhasesUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Phases reordered successfully", nil)
}

// ApplyTemplate handles POST /projects/:id/phases/apply-template
func (h *ProjectHandler) ApplyTemplate(c *gin.Context) {
	projectID, err := utils.ParseIDParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ApplyTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for apply template", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.ApplyPhaseTemplateCommand{
		ProjectID:  projectID,
		TemplateID: req.TemplateID,
		ActorID:    common.ActorFromContext(c).ID,
	}

	result, err := h.applyTemplateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Template applied successfully", result)
}

// SetPhaseStatus handles PUT /phases/:id/status
func (h *ProjectHandler) SetPhaseStatus(c *gin.Context) {
	phaseID, err := utils.ParseIDParam(c, "id", "phase")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req SetPhaseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for set phase status", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SetPhaseStatusCommand{
		PhaseID: phaseID,
		Status:  req.Status,
		Notes:   req.Notes,
		ActorID: common.ActorFromContext(c).ID,
	}

	result, err := h.setPhaseStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Phase status updated successfully", result)
}

// UpdatePhase handles PUT /phases/:id
func (h *ProjectHandler) UpdatePhase(c *gin.Context) {
	phaseID, err := utils.ParseIDParam(c, "id", "phase")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update phase", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.UpdatePhaseCommand{
		PhaseID:     phaseID,
		Name:        req.Name,
		Description: req.Description,
		Notes:       req.Notes,
		ActorID:     common.ActorFromContext(c).ID,
	}

	result, err := h.updatePhaseUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Phase updated successfully", result)
}

// DeletePhase handles DELETE /phases/:id
func (h *ProjectHandler) DeletePhase(c *gin.Context) {
	phaseID, err := utils.ParseIDParam(c, "id", "phase")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeletePhaseCommand{
		PhaseID: phaseID,
		ActorID: common.ActorFromContext(c).ID,
	}

	if err := h.deletePhaseUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CreateTemplate handles POST /phase-templates
func (h *ProjectHandler) CreateTemplate(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create template", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := req.ToCommand(common.ActorFromContext(c).ID)

	result, err := h.createTemplateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Phase template created successfully")
}

// ListTemplates handles GET /phase-templates
func (h *ProjectHandler) ListTemplates(c *gin.Context) {
	templates, err := h.listTemplatesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", templates)
}
