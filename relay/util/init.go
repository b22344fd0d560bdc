package util

import (
	"net/http"
	"time"

	"github.com/rtaylor52242/logo-animator-studio/common/config"
	"github.com/rtaylor52242/logo-animator-studio/common/logger"
	"github.com/rtaylor52242/logo-animator-studio/service"
)

var httpClient *http.Client
var ImpatientHTTPClient *http.Client

func init() {
	client, err := service.NewProxyHttpClient(config.UpstreamProxy)
	if err != nil {
		logger.FatalLog("failed to initialize upstream HTTP client: " + err.Error())
	}
	httpClient = client
	if config.UpstreamProxy == "" && config.RelayTimeout != 0 {
		httpClient = &http.Client{
			Timeout: time.Duration(config.RelayTimeout) * time.Second,
		}
	}

	ImpatientHTTPClient = &http.Client{
		Timeout: 5 * time.Second,
	}
}

func GetHttpClient() *http.Client {
	return httpClient
}
