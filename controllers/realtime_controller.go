package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"resort-backend/services"
	"resort-backend/utils"

	"github.com/gin-gonic/gin"
)

type RealtimeController struct {
	Notifier *services.Notifier
}

func NewRealtimeController(notifier *services.Notifier) *RealtimeController {
	return &RealtimeController{Notifier: notifier}
}

// Stream serves change events for one table as server-sent events. The client
// re-fetches the table on every event; the stream carries no row diffs beyond
// what the publisher included.
func (rc *RealtimeController) Stream(c *gin.Context) {
	table := c.Param("table")
	if table == "" {
		utils.JSONError(c, http.StatusBadRequest, "table required")
		return
	}

	events, cancel, err := rc.Notifier.Subscribe(c.Request.Context(), table)
	if err != nil {
		utils.JSONError(c, http.StatusServiceUnavailable, err.Error())
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				return true
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
