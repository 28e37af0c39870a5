package tallyhttp

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/weegigs/tally-go/tally"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func NewHandler(counter tally.Service, options ...HandlerOption) http.Handler {
	service := &httpService{counter: counter}
	for _, option := range options {
		option(service)
	}

	if service.log == nil {
		service.log = &log.Logger
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("GET", "/counter", service.currentValue())
	r.Method("POST", "/counter", service.executeCommand())
	r.Method("GET", "/counter/changes", service.streamChanges())

	return otelhttp.NewHandler(r, "tally-http")
}

type httpService struct {
	log     *zerolog.Logger
	counter tally.Service
}

func (service *httpService) currentValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, err := service.counter.Current(r.Context())
		if err != nil {
			service.log.Info().Err(err).Msg("failed to read the counter")
			http.Error(w, "failed to read the counter", http.StatusInternalServerError)
			return
		}

		service.encode(w, snapshot)
	}
}

func (service *httpService) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		var command tally.RemoteCommand
		if err := json.UnmarshalContext(r.Context(), body, &command); err != nil {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		snapshot, err := service.counter.Execute(r.Context(), command)
		if err != nil {
			service.log.Info().
				Err(err).
				Str("command", command.CommandName.String()).
				Msg("failed to execute command")
			http.Error(w, "failed to execute command", statusFor(err))
			return
		}

		service.encode(w, snapshot)
	}
}

func statusFor(err error) int {
	var missing tally.CommandNotFoundError
	if errors.As(err, &missing) {
		return http.StatusBadRequest
	}

	var invalid tally.InvalidAmountError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}

	var encoding *tally.InvalidEncodingError
	if errors.As(err, &encoding) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
