package customHttpClient

import (
	"net/http"

	"docchat/internal/config"
)

// The oracle and embedding clients hit the same endpoint on every exchange;
// a shared pooled transport avoids re-dialing it.
var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

var pooledClient = &http.Client{Transport: customTransport}

func PooledClient() *http.Client {
	return pooledClient
}
