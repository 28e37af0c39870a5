package tallyhttp

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/weegigs/tally-go/tally"
)

// changeBuffer bounds how far a slow consumer can fall behind before
// intermediate changes are dropped. Watch notification must never block the
// container, so the tap spills rather than stalls.
const changeBuffer = 64

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamChanges upgrades the connection and streams the counter over it: the
// current snapshot first, then every subsequent change until the client
// disconnects.
func (service *httpService) streamChanges() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			service.log.Info().Err(err).Msg("failed to upgrade change stream")
			return
		}
		defer ws.Close()

		changes := make(chan tally.Change, changeBuffer)
		subscription := service.counter.Watch(tally.ObserverFunc(func(change tally.Change) {
			select {
			case changes <- change:
			default:
			}
		}))
		defer subscription.Cancel()

		// subscribing before reading the snapshot means a change can be
		// delivered twice, but never lost; consumers gate on the revision
		snapshot, err := service.counter.Current(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to read the counter for streaming")
			return
		}

		if err := ws.WriteJSON(CounterResource(snapshot)); err != nil {
			return
		}

		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case change := <-changes:
				if err := ws.WriteJSON(change); err != nil {
					return
				}
			case <-closed:
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}
