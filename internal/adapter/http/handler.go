package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"swarmdeck/internal/adapter/viewstore"
	"swarmdeck/internal/app/command"
	"swarmdeck/internal/app/mediator"
	"swarmdeck/internal/app/ports"
	"swarmdeck/internal/domain/ops"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CommandSubmitter is the command path as the HTTP layer sees it. The
// scheduler satisfies it, adding the off-cycle refresh on acceptance.
type CommandSubmitter interface {
	Submit(ctx context.Context, cmd ops.Command) bool
}

type Handler struct {
	Med       *mediator.Mediator
	Submitter CommandSubmitter
	Views     *viewstore.Store
	Build     command.Builder
	KPI       kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	views := s.Group("/api/views")
	views.GET("/agents", h.agentView)
	views.GET("/tasks", h.taskView)
	views.GET("/scene", h.sceneView)

	meta := s.Group("/api/meta")
	meta.GET("/templates", h.templates)
	meta.GET("/template-content", h.templateContent)
	meta.GET("/task-ids", h.taskIDs)
	meta.GET("/command-options", h.commandOptions)

	s.GET("/api/simulation/running", h.simulationRunning)
	s.POST("/api/commands", h.submitCommand)
	s.GET("/ops/kpi", h.kpi)
}

// agentView serves the latest scheduler-refreshed view when one exists,
// falling back to a direct backend fetch before the first refresh lands.
func (h Handler) agentView(c context.Context, ctx *app.RequestContext) {
	if h.Views != nil {
		if v, ok := h.Views.AgentView(); ok {
			ctx.JSON(consts.StatusOK, v)
			return
		}
	}
	v, err := h.Med.FetchAgentView(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, v)
}

func (h Handler) taskView(c context.Context, ctx *app.RequestContext) {
	if h.Views != nil {
		if v, ok := h.Views.TaskView(); ok {
			ctx.JSON(consts.StatusOK, v)
			return
		}
	}
	v, err := h.Med.FetchTaskView(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, v)
}

// sceneView serves the cached scene, unless ?t= asks for a specific
// timestamp, which always goes to the backend.
func (h Handler) sceneView(c context.Context, ctx *app.RequestContext) {
	var at *float64
	if raw := string(ctx.Query("t")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeErrorBody(ctx, consts.StatusBadRequest, "invalid_timestamp", "t must be a number")
			return
		}
		at = &v
	}

	if at == nil && h.Views != nil {
		if v, ok := h.Views.SceneView(); ok {
			ctx.JSON(consts.StatusOK, v)
			return
		}
	}
	v, err := h.Med.FetchSceneView(c, at)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, v)
}

func (h Handler) templates(c context.Context, ctx *app.RequestContext) {
	names, err := h.Med.ListTemplates(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"templates": names})
}

func (h Handler) templateContent(c context.Context, ctx *app.RequestContext) {
	name := strings.TrimSpace(string(ctx.Query("name")))
	if name == "" {
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_name", "name query parameter is required")
		return
	}
	content, err := h.Med.TemplateContent(c, name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"name": name, "content": content})
}

func (h Handler) taskIDs(c context.Context, ctx *app.RequestContext) {
	ids, err := h.Med.ListTaskIDs(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"task_ids": ids})
}

func (h Handler) commandOptions(c context.Context, ctx *app.RequestContext) {
	opts, err := h.Med.ListCommandOptions(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"options": opts})
}

func (h Handler) simulationRunning(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{
		"running": h.Med.IsSimulationRunning(c),
		"time":    h.Med.CurrentTime(c),
	})
}

type commandRequest struct {
	Type        string  `json:"type"`
	Instruction string  `json:"instruction"`
	Template    *string `json:"template"`
	TaskID      string  `json:"task_id"`
	Command     string  `json:"command"`
}

// submitCommand builds the canonical envelope for the requested type and
// relays it. The backend's boolean acknowledgement is the only failure
// signal; a false lands as 502 so callers can distinguish backend refusal
// from bad input.
func (h Handler) submitCommand(c context.Context, ctx *app.RequestContext) {
	var body commandRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	var (
		cmd    ops.Command
		intent command.Intent
		err    error
	)
	switch ops.CommandType(body.Type) {
	case ops.CommandCreateTask:
		var ct ops.CreateTask
		ct, err = h.Build.CreateTask(body.Instruction, body.Template)
		cmd = ct
		intent = command.ClassifyIntent(body.Instruction)
	case ops.CommandUpdateTask:
		cmd, err = h.Build.UpdateTask(body.TaskID, body.Command)
	case ops.CommandReplan:
		cmd = h.Build.Replan()
	case ops.CommandStartSimulation:
		cmd = h.Build.StartSimulation()
	default:
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_command_type", "unknown command type")
		return
	}
	if err != nil {
		writeError(ctx, err)
		return
	}

	if !h.Submitter.Submit(c, cmd) {
		writeErrorBody(ctx, consts.StatusBadGateway, "command_rejected", "backend rejected command")
		return
	}

	resp := map[string]any{
		"accepted": true,
		"command":  cmd,
	}
	if intent != "" {
		resp["intent"] = string(intent)
	}
	ctx.JSON(consts.StatusOK, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, command.ErrEmptyInstruction),
		errors.Is(err, command.ErrMissingTaskID),
		errors.Is(err, command.ErrMissingOption):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
