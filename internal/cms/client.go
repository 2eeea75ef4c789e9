package cms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
)

// productsQuery fetches the entire catalog in one round trip. The CMS
// collection has no pagination on this side, so no variables are sent.
const productsQuery = `query {
  products {
    id
    name
    images {
      id
      url
      fileName
      width
      height
    }
    price
    sale
    createdAt
    inStock
    description{
      text
    }
  }
}`

// FetchError reports a failed catalog fetch. StatusCode is zero when
// the failure happened before an HTTP status was available (network or
// decoding errors).
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("catalog fetch failed: status %d", e.StatusCode)
	}
	return fmt.Sprintf("catalog fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the catalog from the CMS GraphQL endpoint.
type Client struct {
	endpoint string
	httpc    *http.Client
}

// NewClient creates a client for the given GraphQL endpoint. An empty
// endpoint is accepted; fetches will then fail and callers are expected
// to degrade to an empty catalog.
func NewClient(endpoint string) *Client {
	return &Client{endpoint: endpoint, httpc: http.DefaultClient}
}

type graphqlRequest struct {
	Query string `json:"query"`
}

type productsEnvelope struct {
	Data struct {
		Products []json.RawMessage `json:"products"`
	} `json:"data"`
}

// FetchProducts posts the fixed catalog query and returns the decoded
// product list. A missing or empty products field is an empty catalog,
// not an error.
func (c *Client) FetchProducts(ctx context.Context) ([]Product, error) {
	body, err := json.Marshal(graphqlRequest{Query: productsQuery})
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return decodeProducts(raw)
}

// decodeProducts accepts both response shapes seen from the CMS: the
// standard {"data":{"products":[...]}} envelope and a bare array.
// Records that fail to decode or lack an id or name are logged and
// dropped rather than propagated.
func decodeProducts(raw []byte) ([]Product, error) {
	var records []json.RawMessage

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, &FetchError{Err: fmt.Errorf("unexpected response shape: %w", err)}
		}
	} else {
		var env productsEnvelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, &FetchError{Err: fmt.Errorf("unexpected response shape: %w", err)}
		}
		records = env.Data.Products
	}

	products := make([]Product, 0, len(records))
	for _, rec := range records {
		var p Product
		if err := json.Unmarshal(rec, &p); err != nil {
			log.Printf("cms: dropping malformed product record: %v", err)
			continue
		}
		if p.ID == "" || p.Name == "" {
			log.Printf("cms: dropping product record without id or name")
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
