package support

import (
	"errors"
	"os"
)

const defaultListenAddress = ":9080"

func ListenAddress() string {
	address := os.Getenv("TALLY_LISTEN_ADDRESS")
	if len(address) == 0 {
		return defaultListenAddress
	}

	return address
}

// NatsURL reports the relay endpoint. Deployments without a relay leave it
// unset and run local wiring.
func NatsURL() (string, error) {
	url, ok := os.LookupEnv("TALLY_NATS_URL")
	if !ok || len(url) == 0 {
		return "", errors.New("TALLY_NATS_URL is not set")
	}

	return url, nil
}

func RelayConfigured() bool {
	_, err := NatsURL()
	return err == nil
}

func TraceConsole() bool {
	return os.Getenv("TALLY_TRACE") == "console"
}
