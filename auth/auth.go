package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Handler owns the token signing secret; constructed in main.
type Handler struct {
	secret []byte
}

func NewHandler(secret []byte) *Handler {
	return &Handler{secret: secret}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.registerHandler(w, r)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.loginHandler(w, r)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.meHandler(w, r)
}
