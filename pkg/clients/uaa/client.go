package uaa

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/openkcm/common-sdk/pkg/commoncfg"

	"github.com/openkcm/uaa-client/pkg/config"
	"github.com/openkcm/uaa-client/pkg/utils/errs"
	"github.com/openkcm/uaa-client/pkg/utils/httpclient"
)

const (
	ApplicationJson = "application/json"

	HeaderAuthorization = "Authorization"
	HeaderIfMatch       = "If-Match"

	apiName = "UAA"
)

var (
	ErrAuthToken                = errors.New("failed to load the auth token")
	ErrParsingClientCertificate = errors.New("failed to parse client certificate x509 pair")
)

// Client is a facade over the UAA SCIM API for a single target. Beyond its
// immutable target and credential it holds no state, so it is safe for
// concurrent use.
type Client struct {
	logger     hclog.Logger
	httpClient *http.Client
	target     string
	authHeader string
}

// NewClient builds a Client from configuration. The bearer token is resolved
// through its source reference; an optional mTLS block switches the
// transport to client-certificate authentication.
func NewClient(cfg *config.Config, logger hclog.Logger) (*Client, error) {
	token, err := commoncfg.LoadValueFromSourceRef(cfg.Token)
	if err != nil {
		return nil, errs.Wrap(ErrAuthToken, err)
	}

	httpClient := &http.Client{}

	if cfg.MTLS != nil {
		mtls, err := commoncfg.LoadMTLSConfig(cfg.MTLS)
		if err != nil {
			return nil, errs.Wrap(ErrParsingClientCertificate, err)
		}

		httpClient.Transport = &http.Transport{
			TLSClientConfig: mtls,
		}
	}

	return &Client{
		logger:     logger,
		httpClient: httpClient,
		target:     strings.TrimRight(cfg.Host, "/"),
		authHeader: "Bearer " + string(token),
	}, nil
}

// NewTokenClient builds a Client for a target from an already-acquired
// bearer token. A nil tlsConfig leaves the default transport in place.
func NewTokenClient(target, token string, tlsConfig *tls.Config, logger hclog.Logger) *Client {
	httpClient := &http.Client{}
	if tlsConfig != nil {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: tlsConfig,
		}
	}

	return &Client{
		logger:     logger,
		httpClient: httpClient,
		target:     strings.TrimRight(target, "/"),
		authHeader: "Bearer " + token,
	}
}

// Target returns the base URL this client talks to.
func (c *Client) Target() string {
	return c.target
}

func (c *Client) doRequest(req *http.Request, hasBody bool) (*http.Response, error) {
	if hasBody {
		req.Header.Set("Content-Type", ApplicationJson)
	}

	req.Header.Set("Accept", ApplicationJson)
	req.Header.Set(HeaderAuthorization, c.authHeader)

	return c.httpClient.Do(req)
}

func (c *Client) executeHTTPRequest(
	ctx context.Context,
	method string,
	resourcePath string,
	query url.Values,
	body Resource,
	extraHeaders http.Header,
) (*http.Response, error) {
	var reader *bytes.Reader

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}

		reader = bytes.NewReader(jsonBody)
	}

	var req *http.Request

	var err error
	if reader != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.target+resourcePath, reader)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.target+resourcePath, nil)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if query != nil {
		req.URL.RawQuery = query.Encode()
	}

	for name, values := range extraHeaders {
		for _, value := range values {
			req.Header.Set(name, value)
		}
	}

	resp, err := c.doRequest(req, body != nil)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	return resp, nil
}

func (c *Client) closeBody(operation string, resp *http.Response) {
	err := resp.Body.Close()
	if err != nil {
		c.logger.Error("failed to close "+operation+" response body", "error", err)
	}
}

// getJSON issues a GET and decodes the reply with top-level keys lower-cased.
func (c *Client) getJSON(ctx context.Context, resourcePath string, query url.Values) (Resource, error) {
	resp, err := c.executeHTTPRequest(ctx, http.MethodGet, resourcePath, query, nil, nil)
	if err != nil {
		return nil, err
	}

	defer c.closeBody("GET", resp)

	reply, err := httpclient.DecodeResponseDown(ctx, apiName, resp, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return Resource(reply), nil
}

func (c *Client) postJSON(ctx context.Context, resourcePath string, body Resource) (Resource, error) {
	resp, err := c.executeHTTPRequest(ctx, http.MethodPost, resourcePath, nil, body, nil)
	if err != nil {
		return nil, err
	}

	defer c.closeBody("POST", resp)

	reply, err := httpclient.DecodeResponseDown(ctx, apiName, resp, http.StatusOK, http.StatusCreated)
	if err != nil {
		return nil, err
	}

	return Resource(reply), nil
}

func (c *Client) putJSON(
	ctx context.Context,
	resourcePath string,
	body Resource,
	extraHeaders http.Header,
) (Resource, error) {
	resp, err := c.executeHTTPRequest(ctx, http.MethodPut, resourcePath, nil, body, extraHeaders)
	if err != nil {
		return nil, err
	}

	defer c.closeBody("PUT", resp)

	reply, err := httpclient.DecodeResponseDown(ctx, apiName, resp, http.StatusOK, http.StatusNoContent)
	if err != nil {
		return nil, err
	}

	return Resource(reply), nil
}

func (c *Client) deleteJSON(ctx context.Context, resourcePath string) error {
	resp, err := c.executeHTTPRequest(ctx, http.MethodDelete, resourcePath, nil, nil, nil)
	if err != nil {
		return err
	}

	defer c.closeBody("DELETE", resp)

	_, err = httpclient.DecodeResponseDown(ctx, apiName, resp, http.StatusOK, http.StatusNoContent)

	return err
}
