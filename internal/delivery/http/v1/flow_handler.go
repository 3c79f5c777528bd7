package v1

import (
	"encoding/json"
	"io"
	"net/http"

	"go-jobmatch-backend/internal/delivery/http/middleware"
	"go-jobmatch-backend/internal/delivery/http/response"
	"go-jobmatch-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// maxAttachmentSize bounds a single uploaded file (photos, resumes, logos).
const maxAttachmentSize = 5 << 20 // 5 MB

type FlowHandler struct {
	flowUC domain.FlowUsecase
}

func NewFlowHandler(r *gin.RouterGroup, flowUC domain.FlowUsecase) {
	handler := &FlowHandler{flowUC: flowUC}

	flows := r.Group("/flows/:flow")
	{
		flows.POST("/start", handler.Start)
		flows.GET("", handler.State)
		flows.PATCH("/fields", handler.SetFields)
		flows.POST("/toggle", handler.Toggle)
		flows.POST("/availability", handler.ToggleAvailability)
		flows.POST("/prompts", handler.SetPrompt)
		flows.POST("/attachments", middleware.UploadRateLimitMiddleware(), handler.Attach)
		flows.POST("/advance", handler.Advance)
		flows.POST("/retreat", handler.Retreat)
		flows.POST("/skip", handler.Skip)
	}
}

func (h *FlowHandler) flowParams(c *gin.Context) (string, domain.FlowName) {
	return c.GetString(string(domain.KeyUserID)), domain.FlowName(c.Param("flow"))
}

// Start godoc
// @Summary      Start a profile flow
// @Description  Opens (or restarts) a wizard session for the given flow, seeded from previously saved data
// @Tags         flows
// @Produce      json
// @Param        flow  path      string  true  "Flow name"  Enums(personal, professional, company, completion)
// @Success      200   {object}  response.Response{data=domain.FlowState}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /flows/{flow}/start [post]
// @Security     BearerAuth
func (h *FlowHandler) Start(c *gin.Context) {
	userID, flow := h.flowParams(c)

	state, err := h.flowUC.Start(c.Request.Context(), userID, flow)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Flow started", state)
}

// State godoc
// @Summary      Get flow state
// @Description  Returns the current step, field values and validity of the active session
// @Tags         flows
// @Produce      json
// @Param        flow  path      string  true  "Flow name"
// @Success      200   {object}  response.Response{data=domain.FlowState}
// @Failure      404   {object}  response.Response
// @Router       /flows/{flow} [get]
// @Security     BearerAuth
func (h *FlowHandler) State(c *gin.Context) {
	userID, flow := h.flowParams(c)

	state, err := h.flowUC.State(c.Request.Context(), userID, flow)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Flow state", state)
}

// SetFields godoc
// @Summary      Set flow fields
// @Description  Writes one or more field values into the active session
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        flow     path      string                true  "Flow name"
// @Param        request  body      map[string]interface{}  true  "Field name to value map"
// @Success      200      {object}  response.Response{data=domain.FlowState}
// @Failure      400      {object}  response.Response
// @Router       /flows/{flow}/fields [patch]
// @Security     BearerAuth
func (h *FlowHandler) SetFields(c *gin.Context) {
	userID, flow := h.flowParams(c)

	var fields map[string]json.RawMessage
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	state, err := h.flowUC.SetFields(c.Request.Context(), userID, flow, fields)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Fields updated", state)
}

// Toggle godoc
// @Summary      Toggle a multi-select option
// @Description  Flips one value in a capped multi-select field; at the cap the toggle is inert
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        flow     path      string                true  "Flow name"
// @Param        request  body      domain.ToggleRequest  true  "Field and value"
// @Success      200      {object}  response.Response{data=domain.FlowState}
// @Failure      400      {object}  response.Response
// @Router       /flows/{flow}/toggle [post]
// @Security     BearerAuth
func (h *FlowHandler) Toggle(c *gin.Context) {
	userID, flow := h.flowParams(c)

	var req domain.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	state, err := h.flowUC.Toggle(c.Request.Context(), userID, flow, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Selection updated", state)
}

// ToggleAvailability godoc
// @Summary      Toggle an availability cell
// @Description  Flips one day/slot cell of the availability grid
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        flow     path      string                             true  "Flow name"
// @Param        request  body      domain.AvailabilityToggleRequest  true  "Day and slot"
// @Success      200      {object}  response.Response{data=domain.FlowState}
// @Failure      400      {object}  response.Response
// @Router       /flows/{flow}/availability [post]
// @Security     BearerAuth
func (h *FlowHandler) ToggleAvailability(c *gin.Context) {
	userID, flow := h.flowParams(c)

	var req domain.AvailabilityToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	state, err := h.flowUC.ToggleAvailability(c.Request.Context(), userID, flow, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Availability updated", state)
}

// SetPrompt godoc
// @Summary      Fill a personality prompt slot
// @Description  Sets prompt and answer for one of the three slots; a prompt can be used in one slot only
// @Tags         flows
// @Accept       json
// @Produce      json
// @Param        flow     path      string                true  "Flow name"
// @Param        request  body      domain.PromptRequest  true  "Slot, prompt and answer"
// @Success      200      {object}  response.Response{data=domain.FlowState}
// @Failure      400      {object}  response.Response
// @Router       /flows/{flow}/prompts [post]
// @Security     BearerAuth
func (h *FlowHandler) SetPrompt(c *gin.Context) {
	userID, flow := h.flowParams(c)

	var req domain.PromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	state, err := h.flowUC.SetPrompt(c.Request.Context(), userID, flow, &req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Prompt updated", state)
}

// Attach godoc
// @Summary      Attach a file to the flow
// @Description  Queues a pending upload (photo, resume, logo) on the session; files are stored at submission
// @Tags         flows
// @Accept       multipart/form-data
// @Produce      json
// @Param        flow   path      string  true  "Flow name"
// @Param        field  formData  string  true  "Target field"
// @Param        file   formData  file    true  "File to upload"
// @Success      200    {object}  response.Response{data=domain.FlowState}
// @Failure      400    {object}  response.Response
// @Router       /flows/{flow}/attachments [post]
// @Security     BearerAuth
func (h *FlowHandler) Attach(c *gin.Context) {
	userID, flow := h.flowParams(c)

	field := c.PostForm("field")
	if field == "" {
		response.Error(c, http.StatusBadRequest, "Missing field parameter", nil)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing file: "+err.Error(), nil)
		return
	}
	if fileHeader.Size > maxAttachmentSize {
		response.Error(c, http.StatusBadRequest, "File exceeds the 5MB limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Cannot read file", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxAttachmentSize))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Cannot read file", nil)
		return
	}

	state, err := h.flowUC.Attach(c.Request.Context(), userID, flow,
		field, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "File attached", state)
}

// Advance godoc
// @Summary      Advance the flow
// @Description  Moves to the next step when the current one is valid; on the last step compiles and saves the flow
// @Tags         flows
// @Produce      json
// @Param        flow  path      string  true  "Flow name"
// @Success      200   {object}  response.Response{data=domain.FlowState}
// @Failure      400   {object}  response.Response
// @Router       /flows/{flow}/advance [post]
// @Security     BearerAuth
func (h *FlowHandler) Advance(c *gin.Context) {
	userID, flow := h.flowParams(c)

	state, err := h.flowUC.Advance(c.Request.Context(), userID, flow)
	if err != nil {
		c.Error(err)
		return
	}
	msg := "Step advanced"
	if state.Completed {
		msg = "Profile saved"
	}
	response.Success(c, http.StatusOK, msg, state)
}

// Retreat godoc
// @Summary      Go back one step
// @Description  Moves to the previous step; at the first step this is a no-op
// @Tags         flows
// @Produce      json
// @Param        flow  path      string  true  "Flow name"
// @Success      200   {object}  response.Response{data=domain.FlowState}
// @Router       /flows/{flow}/retreat [post]
// @Security     BearerAuth
func (h *FlowHandler) Retreat(c *gin.Context) {
	userID, flow := h.flowParams(c)

	state, err := h.flowUC.Retreat(c.Request.Context(), userID, flow)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Step retreated", state)
}

// Skip godoc
// @Summary      Skip the current step
// @Description  Advances without the validity gate; only allowed on skippable steps
// @Tags         flows
// @Produce      json
// @Param        flow  path      string  true  "Flow name"
// @Success      200   {object}  response.Response{data=domain.FlowState}
// @Failure      400   {object}  response.Response
// @Router       /flows/{flow}/skip [post]
// @Security     BearerAuth
func (h *FlowHandler) Skip(c *gin.Context) {
	userID, flow := h.flowParams(c)

	state, err := h.flowUC.Skip(c.Request.Context(), userID, flow)
	if err != nil {
		c.Error(err)
		return
	}
	msg := "Step skipped"
	if state.Completed {
		msg = "Profile saved"
	}
	response.Success(c, http.StatusOK, msg, state)
}
