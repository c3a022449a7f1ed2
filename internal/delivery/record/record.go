package record

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"sgf_keeper/internal/bootstrap"
	sgferrors "sgf_keeper/internal/errors"
	"sgf_keeper/internal/httpresponse"
	recorduc "sgf_keeper/internal/usecase/record"
	"sgf_keeper/internal/utils"
)

const sgfContentType = "application/x-go-sgf; charset=utf-8"

type RecordHandler struct {
	cfg      bootstrap.Config
	log      *zap.SugaredLogger
	recordUC *recorduc.RecordUseCase
}

func NewRecordHandler(cfg bootstrap.Config, log *zap.SugaredLogger, recordUC *recorduc.RecordUseCase) *RecordHandler {
	return &RecordHandler{
		cfg:      cfg,
		log:      log,
		recordUC: recordUC,
	}
}

func (h *RecordHandler) Routes(r chi.Router) {
	r.Post("/canonicalize", h.HandleCanonicalize)
	r.Get("/live", h.HandleLive)
	r.Route("/records", func(r chi.Router) {
		r.Post("/", h.HandleImport)
		r.Get("/", h.HandleList)
		r.Get("/{id}", h.HandleGet)
		r.Delete("/{id}", h.HandleDelete)
		r.Get("/{id}/sgf", h.HandleGetSGF)
		r.Get("/{id}/tree", h.HandleGetTree)
		r.Get("/{id}/pdf", h.HandleGetPDF)
	})
}

// strict is the configured policy unless the request asks for ?lax=1.
func (h *RecordHandler) strict(r *http.Request) bool {
	if lax, err := strconv.ParseBool(r.URL.Query().Get("lax")); err == nil {
		return !lax
	}
	return h.cfg.StrictParsing
}

func (h *RecordHandler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := utils.ReadRequestBody(r)
	if errors.Is(err, sgferrors.ErrBodyTooLarge) {
		h.log.Infof("request body rejected: %v", err)
		httpresponse.WriteError(w, err)
		return nil, false
	}
	if err != nil {
		h.log.Error("Failed to read body:", err)
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}
	return body, true
}

func (h *RecordHandler) HandleCanonicalize(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	canonical, _, err := h.recordUC.Canonicalize(string(body), h.strict(r))
	if err != nil {
		h.log.Infof("canonicalize rejected: %v", err)
		httpresponse.WriteError(w, err)
		return
	}

	httpresponse.WriteText(w, http.StatusOK, sgfContentType, canonical)
}

func (h *RecordHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}

	rec, err := h.recordUC.Import(r.Context(), string(body), h.strict(r))
	if err != nil {
		h.log.Errorf("import failed: %v", err)
		httpresponse.WriteError(w, err)
		return
	}

	h.log.Info("New record imported with id: " + rec.ID)
	httpresponse.WriteResponseWithStatus(w, http.StatusCreated, rec)
}

func (h *RecordHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest, httpresponse.ErrorResponse{ErrorDescription: "page must be a positive integer"})
			return
		}
		page = n
	}

	resp, err := h.recordUC.ListRecords(r.Context(), r.URL.Query().Get("player"), page)
	if err != nil {
		h.log.Error(err)
		httpresponse.WriteError(w, err)
		return
	}

	httpresponse.WriteResponseWithStatus(w, http.StatusOK, resp)
}

func (h *RecordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.recordUC.GetRecord(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, rec)
}

func (h *RecordHandler) HandleGetSGF(w http.ResponseWriter, r *http.Request) {
	text, err := h.recordUC.GetSGF(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	httpresponse.WriteText(w, http.StatusOK, sgfContentType, text)
}

func (h *RecordHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.recordUC.DeleteRecord(r.Context(), id); err != nil {
		httpresponse.WriteError(w, err)
		return
	}
	h.log.Infof("record %s deleted", id)
	httpresponse.WriteResponseWithStatus(w, http.StatusOK, JsonOKResponse{Text: "record deleted"})
}

type JsonOKResponse struct {
	Text string `json:"text"`
}
