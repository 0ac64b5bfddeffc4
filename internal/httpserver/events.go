package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"plantstore/internal/realtime"
)

// orderEventsHandler streams order changes to the caller as server-sent
// events, filtered to orders the caller can see (their own purchases, or
// sales of their nursery).
func orderEventsHandler(events EventSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := currentProfile(c)
		flusher, ok := c.Writer.(http.Flusher)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming unsupported"})
			return
		}

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")
		c.Writer.WriteHeader(http.StatusOK)
		flusher.Flush()

		ch, cancel := events.SubscribeOrders(c.Request.Context())
		defer cancel()

		for {
			select {
			case <-c.Request.Context().Done():
				return
			case ev, ok := <-ch:
				if !ok {
					return
				}
				if !visibleTo(ev, p.ID) {
					continue
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				fmt.Fprintf(c.Writer, "id: %s\nevent: order\ndata: %s\n\n", ev.ID, payload)
				flusher.Flush()
			}
		}
	}
}

func visibleTo(ev realtime.OrderEvent, profileID string) bool {
	if ev.Order.UserID == profileID {
		return true
	}
	return ev.Order.NurseryID != nil && *ev.Order.NurseryID == profileID
}
