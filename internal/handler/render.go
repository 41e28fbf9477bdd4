package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/villafrance/frontend/internal/domain"
	"github.com/villafrance/frontend/internal/logger"
	"github.com/villafrance/frontend/internal/middleware"
	"github.com/villafrance/frontend/internal/session"
)

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error         string
	Success       string
	User          *domain.UserProfile
	Authenticated bool
	CSRFToken     string
	EmailPrefill  string
}

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common CommonTemplateData
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) CommonTemplateData {
	common := CommonTemplateData{
		CSRFToken: middleware.GetCSRFTokenFromContext(r),
	}

	sess := session.FromRequest(r)
	if sess.Authenticated() {
		common.Authenticated = true
		common.User = sess.User
	}

	common.Error = h.consumeFlash(w, r, flashCookieError)
	common.Success = h.consumeFlash(w, r, flashCookieSuccess)
	common.EmailPrefill = h.consumeFlash(w, r, emailPrefillCookie)

	return common
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, name string, data any, errMsg string) {
	tmpl, ok := h.getTemplate(name)
	if !ok {
		http.Error(w, fmt.Sprintf("Template %s not found", name), http.StatusInternalServerError)
		return
	}

	common := h.initCommonTemplateData(w, r)
	if errMsg != "" {
		common.Error = errMsg
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		http.Error(w, "Internal Server Error rendering template", http.StatusInternalServerError)
		return
	}

	_, _ = buf.WriteTo(w)
}
