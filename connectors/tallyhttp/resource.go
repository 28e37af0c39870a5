package tallyhttp

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/weegigs/tally-go/tally"
)

const resourceType = "tally:counter"

type Resource map[string]any

func CounterResource(snapshot tally.Snapshot) Resource {
	return Resource{
		"value":     snapshot.Value,
		"$type":     resourceType,
		"$revision": snapshot.Revision.String(),
	}
}

func (service *httpService) encode(w http.ResponseWriter, snapshot tally.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(CounterResource(snapshot)); err != nil {
		service.log.Info().Err(err).Msg("failed to encode counter resource")
	}
}
