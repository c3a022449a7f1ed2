package record

import (
	"net/http"

	"github.com/gorilla/websocket"

	"sgf_keeper/internal/domain/record"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type LiveResponse struct {
	record.CanonicalResponse
	Error string `json:"error,omitempty"`
}

// HandleLive answers every text frame with its canonical form, so an editor
// can preview formatting while typing.
func (h *RecordHandler) HandleLive(w http.ResponseWriter, r *http.Request) {
	strict := h.strict(r)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("upgrade error:", err)
		return
	}
	defer conn.Close()

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Error("read error:", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var resp LiveResponse
		canonical, collection, err := h.recordUC.Canonicalize(string(data), strict)
		if err != nil {
			resp.Error = err.Error()
		} else {
			resp.SGF = canonical
			resp.TreeCount = len(collection.Trees)
		}

		if err = conn.WriteJSON(resp); err != nil {
			h.log.Error("write error:", err)
			return
		}
	}
}
