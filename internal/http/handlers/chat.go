package handlers

import (
	nethttp "net/http"

	"github.com/blakethaselberger/StarsOps-sub001/internal/chat"
	"github.com/blakethaselberger/StarsOps-sub001/internal/http/requestutil"
)

// Chat proxies one conversation turn upstream. The credential is checked
// before the body is read, so an unconfigured server never decodes input.
func (h *Handler) Chat(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		methodNotAllowed(w, r, h.logger, nethttp.MethodPost)
		return
	}
	if h.chat == nil {
		ce := &chat.Error{Kind: chat.KindConfiguration, Err: chat.ErrMissingCredential}
		writeError(w, r, ce.Status(), ce.Message(), h.logger)
		return
	}
	if err := h.chat.Preflight(r.Context()); err != nil {
		h.writeChatError(w, r, err)
		return
	}

	var req chat.Request
	if err := requestutil.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	reply, err := h.chat.Complete(r.Context(), req)
	if err != nil {
		h.writeChatError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, reply, h.logger)
}

func (h *Handler) writeChatError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	ce := chat.Classify(err)
	writeError(w, r, ce.Status(), ce.Message(), h.logger)
}
