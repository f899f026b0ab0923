package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Service health
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Start the background worker
	// (POST /worker/start)
	StartWorker(w http.ResponseWriter, r *http.Request)
	// Stop the background worker
	// (POST /worker/stop)
	StopWorker(w http.ResponseWriter, r *http.Request)
	// List threads
	// (GET /threads)
	ListThreads(w http.ResponseWriter, r *http.Request, params ListThreadsParams)
	// Get or create the thread for a contact and channel
	// (POST /threads)
	CreateThread(w http.ResponseWriter, r *http.Request)
	// Get a thread
	// (GET /threads/{id})
	GetThread(w http.ResponseWriter, r *http.Request, id string)
	// List thread history
	// (GET /threads/{id}/messages)
	ListThreadMessages(w http.ResponseWriter, r *http.Request, id string, params ListMessagesParams)
	// Log a message on a thread
	// (POST /threads/{id}/messages)
	AppendThreadMessage(w http.ResponseWriter, r *http.Request, id string)
	// Snooze a thread
	// (POST /threads/{id}/snooze)
	SnoozeThread(w http.ResponseWriter, r *http.Request, id string)
	// Toggle thread mute
	// (POST /threads/{id}/mute)
	ToggleThreadMute(w http.ResponseWriter, r *http.Request, id string)
	// Reset the unread counter
	// (POST /threads/{id}/read)
	MarkThreadRead(w http.ResponseWriter, r *http.Request, id string)
	// SLA instances of a thread
	// (GET /threads/{id}/sla)
	GetThreadSla(w http.ResponseWriter, r *http.Request, id string)
	// Send or queue a message
	// (POST /messages/send)
	SendMessage(w http.ResponseWriter, r *http.Request)
	// List templates
	// (GET /templates)
	ListTemplates(w http.ResponseWriter, r *http.Request, params ListTemplatesParams)
	// Create a template
	// (POST /templates)
	CreateTemplate(w http.ResponseWriter, r *http.Request)
	// Get a template
	// (GET /templates/{id})
	GetTemplate(w http.ResponseWriter, r *http.Request, id string)
	// Update a template
	// (PUT /templates/{id})
	UpdateTemplate(w http.ResponseWriter, r *http.Request, id string)
	// Deactivate a template
	// (DELETE /templates/{id})
	DeleteTemplate(w http.ResponseWriter, r *http.Request, id string)
	// List template versions
	// (GET /templates/{id}/versions)
	ListTemplateVersions(w http.ResponseWriter, r *http.Request, id string)
	// Create a draft version
	// (POST /templates/{id}/versions)
	CreateTemplateVersion(w http.ResponseWriter, r *http.Request, id string)
	// Render a template
	// (POST /templates/{id}/render)
	RenderTemplate(w http.ResponseWriter, r *http.Request, id string)
	// Approve a draft version
	// (POST /template-versions/{id}/approve)
	ApproveTemplateVersion(w http.ResponseWriter, r *http.Request, id string)
	// List pending outbox items
	// (GET /outbox)
	ListOutbox(w http.ResponseWriter, r *http.Request, params ListOutboxParams)
	// Get an outbox item
	// (GET /outbox/{id})
	GetOutboxItem(w http.ResponseWriter, r *http.Request, id string)
	// Approve and send an outbox item
	// (POST /outbox/{id}/approve)
	ApproveOutboxItem(w http.ResponseWriter, r *http.Request, id string)
	// Reject an outbox item
	// (POST /outbox/{id}/reject)
	RejectOutboxItem(w http.ResponseWriter, r *http.Request, id string)
	// List active SLA policies
	// (GET /sla/policies)
	ListSlaPolicies(w http.ResponseWriter, r *http.Request)
	// Create an SLA policy
	// (POST /sla/policies)
	CreateSlaPolicy(w http.ResponseWriter, r *http.Request)
	// Run the inbound SLA hook
	// (POST /sla/threads/{id}/inbound)
	TriggerSlaInbound(w http.ResponseWriter, r *http.Request, id string)
	// Run the outbound SLA hook
	// (POST /sla/threads/{id}/outbound)
	TriggerSlaOutbound(w http.ResponseWriter, r *http.Request, id string)
	// Mark overdue SLAs breached
	// (POST /sla/sweep)
	SweepSlaBreaches(w http.ResponseWriter, r *http.Request)
	// List reminders
	// (GET /reminders)
	ListReminders(w http.ResponseWriter, r *http.Request, params ListRemindersParams)
	// Schedule a reminder
	// (POST /reminders)
	ScheduleReminder(w http.ResponseWriter, r *http.Request)
	// Dispatch due reminders now
	// (POST /reminders/dispatch)
	DispatchReminders(w http.ResponseWriter, r *http.Request)
	// Cancel a pending reminder
	// (POST /reminders/{id}/cancel)
	CancelReminder(w http.ResponseWriter, r *http.Request, id string)
	// Inbound SMS callback
	// (POST /webhooks/sms/inbound)
	InboundSmsWebhook(w http.ResponseWriter, r *http.Request)
	// Delivery status callback
	// (POST /webhooks/delivery-status)
	DeliveryStatusWebhook(w http.ResponseWriter, r *http.Request)
	// Voice call status callback
	// (POST /webhooks/voice/status)
	VoiceStatusWebhook(w http.ResponseWriter, r *http.Request)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// HealthCheck operation middleware
func (siw *ServerInterfaceWrapper) HealthCheck(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.HealthCheck(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// StartWorker operation middleware
func (siw *ServerInterfaceWrapper) StartWorker(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.StartWorker(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// StopWorker operation middleware
func (siw *ServerInterfaceWrapper) StopWorker(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.StopWorker(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListThreads operation middleware
func (siw *ServerInterfaceWrapper) ListThreads(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListThreadsParams

	// ------------- Optional query parameter "contact_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "contact_id", r.URL.Query(), &params.ContactId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "contact_id", Err: err})
		return
	}

	// ------------- Optional query parameter "channel" -------------

	err = runtime.BindQueryParameter("form", true, false, "channel", r.URL.Query(), &params.Channel)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "channel", Err: err})
		return
	}

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &params.Status)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "status", Err: err})
		return
	}

	// ------------- Optional query parameter "unread_only" -------------

	err = runtime.BindQueryParameter("form", true, false, "unread_only", r.URL.Query(), &params.UnreadOnly)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "unread_only", Err: err})
		return
	}

	// ------------- Optional query parameter "include_snoozed" -------------

	err = runtime.BindQueryParameter("form", true, false, "include_snoozed", r.URL.Query(), &params.IncludeSnoozed)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "include_snoozed", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListThreads(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateThread operation middleware
func (siw *ServerInterfaceWrapper) CreateThread(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateThread(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetThread operation middleware
func (siw *ServerInterfaceWrapper) GetThread(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetThread(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListThreadMessages operation middleware
func (siw *ServerInterfaceWrapper) ListThreadMessages(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	// Parameter object where we will unmarshal all parameters from the context
	var params ListMessagesParams

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "before_seq" -------------

	err = runtime.BindQueryParameter("form", true, false, "before_seq", r.URL.Query(), &params.BeforeSeq)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "before_seq", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListThreadMessages(w, r, id, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// AppendThreadMessage operation middleware
func (siw *ServerInterfaceWrapper) AppendThreadMessage(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.AppendThreadMessage(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SnoozeThread operation middleware
func (siw *ServerInterfaceWrapper) SnoozeThread(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SnoozeThread(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ToggleThreadMute operation middleware
func (siw *ServerInterfaceWrapper) ToggleThreadMute(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ToggleThreadMute(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// MarkThreadRead operation middleware
func (siw *ServerInterfaceWrapper) MarkThreadRead(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.MarkThreadRead(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetThreadSla operation middleware
func (siw *ServerInterfaceWrapper) GetThreadSla(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetThreadSla(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SendMessage operation middleware
func (siw *ServerInterfaceWrapper) SendMessage(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SendMessage(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListTemplates operation middleware
func (siw *ServerInterfaceWrapper) ListTemplates(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListTemplatesParams

	// ------------- Optional query parameter "include_inactive" -------------

	err = runtime.BindQueryParameter("form", true, false, "include_inactive", r.URL.Query(), &params.IncludeInactive)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "include_inactive", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTemplates(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateTemplate operation middleware
func (siw *ServerInterfaceWrapper) CreateTemplate(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTemplate(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetTemplate operation middleware
func (siw *ServerInterfaceWrapper) GetTemplate(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetTemplate(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// UpdateTemplate operation middleware
func (siw *ServerInterfaceWrapper) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.UpdateTemplate(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DeleteTemplate operation middleware
func (siw *ServerInterfaceWrapper) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeleteTemplate(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListTemplateVersions operation middleware
func (siw *ServerInterfaceWrapper) ListTemplateVersions(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListTemplateVersions(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateTemplateVersion operation middleware
func (siw *ServerInterfaceWrapper) CreateTemplateVersion(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateTemplateVersion(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// RenderTemplate operation middleware
func (siw *ServerInterfaceWrapper) RenderTemplate(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RenderTemplate(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ApproveTemplateVersion operation middleware
func (siw *ServerInterfaceWrapper) ApproveTemplateVersion(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ApproveTemplateVersion(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListOutbox operation middleware
func (siw *ServerInterfaceWrapper) ListOutbox(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListOutboxParams

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListOutbox(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetOutboxItem operation middleware
func (siw *ServerInterfaceWrapper) GetOutboxItem(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetOutboxItem(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ApproveOutboxItem operation middleware
func (siw *ServerInterfaceWrapper) ApproveOutboxItem(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ApproveOutboxItem(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// RejectOutboxItem operation middleware
func (siw *ServerInterfaceWrapper) RejectOutboxItem(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.RejectOutboxItem(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListSlaPolicies operation middleware
func (siw *ServerInterfaceWrapper) ListSlaPolicies(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListSlaPolicies(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CreateSlaPolicy operation middleware
func (siw *ServerInterfaceWrapper) CreateSlaPolicy(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CreateSlaPolicy(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// TriggerSlaInbound operation middleware
func (siw *ServerInterfaceWrapper) TriggerSlaInbound(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.TriggerSlaInbound(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// TriggerSlaOutbound operation middleware
func (siw *ServerInterfaceWrapper) TriggerSlaOutbound(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.TriggerSlaOutbound(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SweepSlaBreaches operation middleware
func (siw *ServerInterfaceWrapper) SweepSlaBreaches(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SweepSlaBreaches(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListReminders operation middleware
func (siw *ServerInterfaceWrapper) ListReminders(w http.ResponseWriter, r *http.Request) {
	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params ListRemindersParams

	// ------------- Optional query parameter "status" -------------

	err = runtime.BindQueryParameter("form", true, false, "status", r.URL.Query(), &params.Status)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "status", Err: err})
		return
	}

	// ------------- Optional query parameter "target_type" -------------

	err = runtime.BindQueryParameter("form", true, false, "target_type", r.URL.Query(), &params.TargetType)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "target_type", Err: err})
		return
	}

	// ------------- Optional query parameter "target_id" -------------

	err = runtime.BindQueryParameter("form", true, false, "target_id", r.URL.Query(), &params.TargetId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "target_id", Err: err})
		return
	}

	// ------------- Optional query parameter "limit" -------------

	err = runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &params.Limit)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "limit", Err: err})
		return
	}

	// ------------- Optional query parameter "offset" -------------

	err = runtime.BindQueryParameter("form", true, false, "offset", r.URL.Query(), &params.Offset)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "offset", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListReminders(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ScheduleReminder operation middleware
func (siw *ServerInterfaceWrapper) ScheduleReminder(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ScheduleReminder(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DispatchReminders operation middleware
func (siw *ServerInterfaceWrapper) DispatchReminders(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DispatchReminders(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// CancelReminder operation middleware
func (siw *ServerInterfaceWrapper) CancelReminder(w http.ResponseWriter, r *http.Request) {
	var err error

	// ------------- Path parameter "id" -------------
	var id string

	err = runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.CancelReminder(w, r, id)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InboundSmsWebhook operation middleware
func (siw *ServerInterfaceWrapper) InboundSmsWebhook(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.InboundSmsWebhook(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// DeliveryStatusWebhook operation middleware
func (siw *ServerInterfaceWrapper) DeliveryStatusWebhook(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.DeliveryStatusWebhook(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// VoiceStatusWebhook operation middleware
func (siw *ServerInterfaceWrapper) VoiceStatusWebhook(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.VoiceStatusWebhook(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InvalidParamFormatError is reported when a path or query parameter
// cannot be bound.
type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

// Handler creates http.Handler with routing matching the API.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{})
}

type ChiServerOptions struct {
	BaseURL          string
	BaseRouter       chi.Router
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching the API,
// mounted on r.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	return HandlerWithOptions(si, ChiServerOptions{
		BaseRouter: r,
	})
}

// HandlerWithOptions creates http.Handler with additional options.
func HandlerWithOptions(si ServerInterface, options ChiServerOptions) http.Handler {
	r := options.BaseRouter

	if r == nil {
		r = chi.NewRouter()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}
	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/health", wrapper.HealthCheck)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/worker/start", wrapper.StartWorker)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/worker/stop", wrapper.StopWorker)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/threads", wrapper.ListThreads)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/threads", wrapper.CreateThread)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/threads/{id}", wrapper.GetThread)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/threads/{id}/messages", wrapper.ListThreadMessages)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/threads/{id}/messages", wrapper.AppendThreadMessage)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/threads/{id}/snooze", wrapper.SnoozeThread)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/threads/{id}/mute", wrapper.ToggleThreadMute)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/threads/{id}/read", wrapper.MarkThreadRead)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/threads/{id}/sla", wrapper.GetThreadSla)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/messages/send", wrapper.SendMessage)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/templates", wrapper.ListTemplates)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/templates", wrapper.CreateTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/templates/{id}", wrapper.GetTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Put(options.BaseURL+"/templates/{id}", wrapper.UpdateTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Delete(options.BaseURL+"/templates/{id}", wrapper.DeleteTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/templates/{id}/versions", wrapper.ListTemplateVersions)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/templates/{id}/versions", wrapper.CreateTemplateVersion)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/templates/{id}/render", wrapper.RenderTemplate)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/template-versions/{id}/approve", wrapper.ApproveTemplateVersion)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/outbox", wrapper.ListOutbox)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/outbox/{id}", wrapper.GetOutboxItem)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/outbox/{id}/approve", wrapper.ApproveOutboxItem)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/outbox/{id}/reject", wrapper.RejectOutboxItem)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/sla/policies", wrapper.ListSlaPolicies)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/sla/policies", wrapper.CreateSlaPolicy)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/sla/threads/{id}/inbound", wrapper.TriggerSlaInbound)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/sla/threads/{id}/outbound", wrapper.TriggerSlaOutbound)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/sla/sweep", wrapper.SweepSlaBreaches)
	})
	r.Group(func(r chi.Router) {
		r.Get(options.BaseURL+"/reminders", wrapper.ListReminders)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/reminders", wrapper.ScheduleReminder)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/reminders/dispatch", wrapper.DispatchReminders)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/reminders/{id}/cancel", wrapper.CancelReminder)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/webhooks/sms/inbound", wrapper.InboundSmsWebhook)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/webhooks/delivery-status", wrapper.DeliveryStatusWebhook)
	})
	r.Group(func(r chi.Router) {
		r.Post(options.BaseURL+"/webhooks/voice/status", wrapper.VoiceStatusWebhook)
	})

	return r
}
