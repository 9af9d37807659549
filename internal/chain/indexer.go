package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

// IndexerClient queries the chain indexer's GraphQL endpoint for fungible
// asset balances and metadata.
type IndexerClient struct {
	endpoint string
	http     *http.Client
}

// NewIndexerClient creates an indexer client for the given GraphQL endpoint.
func NewIndexerClient(endpoint string) *IndexerClient {
	return &IndexerClient{
		endpoint: endpoint,
		http:     &http.Client{},
	}
}

const balanceQuery = `query AssetBalance($owner: String, $asset: String) {
  current_fungible_asset_balances(
    where: {owner_address: {_eq: $owner}, asset_type: {_eq: $asset}}
  ) {
    amount
  }
}`

const metadataQuery = `query AssetMetadata($asset: String) {
  fungible_asset_metadata(where: {asset_type: {_eq: $asset}}) {
    decimals
  }
}`

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// Balance returns the raw integer amount the owner holds of the given asset,
// as a decimal string. A missing balance row is returned as "0".
func (c *IndexerClient) Balance(ctx context.Context, owner string, asset string) (string, error) {
	var data struct {
		Balances []struct {
			Amount json.Number `json:"amount"`
		} `json:"current_fungible_asset_balances"`
	}

	err := c.query(ctx, balanceQuery, map[string]interface{}{"owner": owner, "asset": asset}, &data)
	if err != nil {
		return "", err
	}

	if len(data.Balances) == 0 {
		return "0", nil
	}
	return data.Balances[0].Amount.String(), nil
}

// Decimals returns the decimal count of the given asset's metadata. The
// second return value reports whether metadata was found; callers apply their
// own default when it was not.
func (c *IndexerClient) Decimals(ctx context.Context, asset string) (int, bool, error) {
	var data struct {
		Metadata []struct {
			Decimals int `json:"decimals"`
		} `json:"fungible_asset_metadata"`
	}

	err := c.query(ctx, metadataQuery, map[string]interface{}{"asset": asset}, &data)
	if err != nil {
		return 0, false, err
	}

	if len(data.Metadata) == 0 {
		return 0, false, nil
	}
	return data.Metadata[0].Decimals, true, nil
}

func (c *IndexerClient) query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return errors.Wrap(err, "failed to marshal graphql request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create graphql request")
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "indexer query failed")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return errors.Errorf("indexer returned %d", res.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return errors.Wrap(err, "failed to decode indexer response")
	}
	if len(envelope.Errors) > 0 {
		return errors.Errorf("indexer query error: %s", envelope.Errors[0].Message)
	}

	return json.Unmarshal(envelope.Data, out)
}
