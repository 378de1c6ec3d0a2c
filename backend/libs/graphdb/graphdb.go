package graphdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/config"
)

const (
	defaultConnTimeout    = 5 * time.Second
	defaultMaxPoolSize    = 25
	defaultAcquireTimeout = time.Minute
	defaultPingTimeout    = 5 * time.Second
)

// NewDriver returns a configured graph store driver. Connections are opened
// lazily; call Ping to verify reachability.
func NewDriver(uri, username, password string) (neo4j.DriverWithContext, error) {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil, errors.New("graphdb: uri is empty")
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""), func(c *config.Config) {
		c.SocketConnectTimeout = defaultConnTimeout
		c.MaxConnectionPoolSize = defaultMaxPoolSize
		c.ConnectionAcquisitionTimeout = defaultAcquireTimeout
	})
	if err != nil {
		return nil, err
	}

	return driver, nil
}

// Ping verifies connectivity with a bounded timeout.
func Ping(ctx context.Context, driver neo4j.DriverWithContext) error {
	ctx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	return driver.VerifyConnectivity(ctx)
}
