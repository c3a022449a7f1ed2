package record

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"

	"sgf_keeper/internal/httpresponse"
	"sgf_keeper/internal/render"
)

func (h *RecordHandler) HandleGetTree(w http.ResponseWriter, r *http.Request) {
	trees, err := h.recordUC.GetTrees(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "", "json":
		httpresponse.WriteResponseWithStatus(w, http.StatusOK, trees)
	case "yaml":
		out, err := yaml.Marshal(trees)
		if err != nil {
			h.log.Errorf("yaml export failed: %v", err)
			httpresponse.WriteInternalErrorResponse(w)
			return
		}
		httpresponse.WriteText(w, http.StatusOK, "application/yaml; charset=utf-8", string(out))
	default:
		httpresponse.WriteResponseWithStatus(w, http.StatusBadRequest,
			httpresponse.ErrorResponse{ErrorDescription: "format must be json or yaml"})
	}
}

func (h *RecordHandler) HandleGetPDF(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rec, err := h.recordUC.GetRecord(ctx, id)
	if err != nil {
		httpresponse.WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err = render.RenderPDF(rec.Name, rec.SGF, &buf); err != nil {
		h.log.Errorf("pdf export of %s failed: %v", id, err)
		httpresponse.WriteInternalErrorResponse(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+id+`.pdf"`)
	_, _ = w.Write(buf.Bytes())
}
