package transport

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/http/httpproxy"
)

// NewHTTPClient builds the client used for webhook delivery.
// A zero timeout leaves requests unbounded. When proxyURL is empty the
// HTTPS_PROXY, HTTP_PROXY and NO_PROXY environment variables apply.
func NewHTTPClient(timeout time.Duration, proxyURL string) *http.Client {
	proxyCfg := httpproxy.FromEnvironment()
	if proxyURL != "" {
		proxyCfg.HTTPProxy = proxyURL
		proxyCfg.HTTPSProxy = proxyURL
	}
	proxyFunc := proxyCfg.ProxyFunc()

	base := &http.Transport{}
	if def, ok := http.DefaultTransport.(*http.Transport); ok {
		base = def.Clone()
	}
	base.Proxy = func(req *http.Request) (*url.URL, error) {
		return proxyFunc(req.URL)
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: base,
	}
}
