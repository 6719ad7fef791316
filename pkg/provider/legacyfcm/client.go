package legacyfcm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/pushwork/fcm-push-client/pkg/provider"
)

const (
	// DefaultEndpoint of the legacy HTTP API:
	// https://firebase.google.com/docs/cloud-messaging/http-server-ref
	DefaultEndpoint = "https://fcm.googleapis.com/fcm/send"

	// EnvAPIKey names the environment fallback for the server key.
	EnvAPIKey = "FCM_API_KEY"

	ContentType = "application/json"
)

// Client for the legacy FCM API.
// Legacy FCM/GCM API (https://firebase.google.com/docs/cloud-messaging/migrate-v1):
// 1. copy server key from: https://console.firebase.google.com/project/_/settings/cloudmessaging/
// 2. add to request header: Authorization:key=<server key>
type Client struct {
	client   *http.Client
	endpoint string

	// authorization key:
	// https://firebase.google.com/docs/cloud-messaging/migrate-v1#before_2
	headerAuthorization string
}

type Option func(*Client) error

// WithEndpoint replaces the default endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) error {
		if endpoint == "" {
			return errors.New("empty endpoint")
		}
		c.endpoint = endpoint
		return nil
	}
}

// WithTimeout replaces the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) error {
		if timeout > 0 {
			c.client.Timeout = timeout
		}
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client. Later options that
// touch the client, like WithTimeout or WithProxies, apply to the
// replacement.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) error {
		if client == nil {
			return errors.New("nil http client")
		}
		c.client = client
		return nil
	}
}

// WithProxies routes requests through a proxy, keyed by target scheme.
// A map without an 'http' or 'https' entry is ignored silently.
func WithProxies(proxies map[string]string) Option {
	return func(c *Client) error {

		byScheme := make(map[string]*url.URL, 2)
		for _, scheme := range []string{"http", "https"} {
			raw, ok := proxies[scheme]
			if !ok {
				continue
			}

			u, err := url.Parse(raw)
			if err != nil {
				return errors.Wrap(err, scheme+" proxy url")
			}

			byScheme[scheme] = u
		}

		if len(byScheme) == 0 {
			return nil
		}

		c.client.Transport = &http.Transport{
			Proxy: func(req *http.Request) (*url.URL, error) {
				return byScheme[req.URL.Scheme], nil
			},
		}

		return nil
	}
}

// New creates a client. An empty key falls back to the FCM_API_KEY
// environment variable; if neither is set, construction fails with
// ErrAuthentication.
func New(apiKey string, opts ...Option) (*Client, error) {

	if apiKey == "" {
		apiKey = os.Getenv(EnvAPIKey)
	}

	if apiKey == "" {
		return nil, errors.Wrap(ErrAuthentication, "missing server key")
	}

	c := &Client{
		endpoint:            DefaultEndpoint,
		headerAuthorization: "key=" + apiKey,
		client: &http.Client{
			Timeout: time.Second * 10,
		},
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Endpoint returns the target of the send requests.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// RequestHeaders returns the headers of every send request.
func (c *Client) RequestHeaders() http.Header {

	h := make(http.Header, 2)
	h.Set("Content-Type", ContentType)
	h.Set("Authorization", c.headerAuthorization)

	return h
}

// Send posts one payload per chunk of at most MaxRecipients registration
// ids and returns the parsed answers in chunk order. The first failing
// chunk aborts the remaining ones.
func (c *Client) Send(ctx context.Context, message *Message) ([]*Response, error) {

	payloads, err := message.Payloads()
	if err != nil {
		return nil, err
	}

	retval := make([]*Response, 0, len(payloads))
	for _, payload := range payloads {
		resp, err := c.SendPayload(ctx, payload)
		if err != nil {
			return nil, err
		}

		retval = append(retval, resp)
	}

	return retval, nil
}

// SendPayload posts a single prebuilt payload and classifies the answer:
// 200 is parsed, 401 fails with ErrAuthentication, 400 fails with
// *BadRequestError carrying the server text, everything else fails with
// ErrServerUnavailable.
func (c *Client) SendPayload(ctx context.Context, payload []byte) (*Response, error) {

	req, err := c.newRequest(ctx, payload)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return c.parseResponse(res, payload)

	case http.StatusUnauthorized:
		return nil, errors.Wrap(ErrAuthentication, "http status 401")

	case http.StatusBadRequest:
		body, _ := io.ReadAll(io.LimitReader(res.Body, provider.MaxErrorBody))
		return nil, &BadRequestError{Body: string(bytes.TrimSpace(body))}

	default:
		return nil, errors.Wrap(ErrServerUnavailable, "http status "+strconv.Itoa(res.StatusCode))
	}
}

func (c *Client) parseResponse(res *http.Response, payload []byte) (*Response, error) {

	retval := &Response{
		StatusCode: res.StatusCode,
		Results:    make([]*ResponseResult, 0),
	}

	// only a known-empty body skips the parse; an unknown length (-1,
	// chunked transfer encoding) still carries results
	if res.ContentLength == 0 {
		return retval, nil
	}

	if err := provider.DecodeJSONResponse(res.Body, retval); err != nil {
		outInfo, errEncode := provider.JSONWithoutSecrets(json.RawMessage(payload))
		if errEncode != nil {
			outInfo = []byte(errEncode.Error())
		}
		return nil, errors.Wrap(err, "invalid fcm response: source: "+string(outInfo))
	}

	if retval.Results == nil {
		retval.Results = make([]*ResponseResult, 0)
	}

	return retval, nil
}

func (c *Client) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", c.headerAuthorization)
	req.Header.Set("Content-Type", ContentType)
	req = req.WithContext(ctx)

	return req, nil
}
