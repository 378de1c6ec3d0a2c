package influx

import (
	"context"
	"errors"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultPingTimeout    = 5 * time.Second
)

// NewClient returns a configured time-series store client. Requests connect
// lazily; call Ping to verify reachability.
func NewClient(url, token string) (influxdb2.Client, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("influx: url is empty")
	}

	opts := influxdb2.DefaultOptions().SetHTTPRequestTimeout(uint(defaultRequestTimeout / time.Second))
	return influxdb2.NewClientWithOptions(url, token, opts), nil
}

// Ping verifies the server is reachable with a bounded timeout.
func Ping(ctx context.Context, client influxdb2.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	ok, err := client.Ping(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("influx: server not ready")
	}
	return nil
}
