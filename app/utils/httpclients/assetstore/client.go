package assetstore

import (
	"context"
	"fmt"

	"chesscoach.app/pgn-gateway/app/utils/httpclients"
	"chesscoach.app/pgn-gateway/config/environment_variables"
	"resty.dev/v3"
)

var AssetStoreRestyClient *resty.Client

func Init() {
	AssetStoreRestyClient = httpclients.NewClient("AssetStoreClient")
	AssetStoreRestyClient.SetBaseURL(environment_variables.EnvironmentVariables.ASSET_STORE_BASE_URL)
}

// Resource is one asset descriptor returned by the store's search API.
type Resource struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
}

// SearchResponse is the payload of a search query.
type SearchResponse struct {
	TotalCount int        `json:"total_count"`
	Resources  []Resource `json:"resources"`
}

type searchRequest struct {
	Expression string `json:"expression"`
	MaxResults int    `json:"max_results"`
}

type Client struct {
	folderPrefix string
}

func NewClient() *Client {
	prefix := environment_variables.EnvironmentVariables.PGN_FOLDER_PREFIX
	if prefix == "" {
		prefix = "pgn"
	}
	return &Client{folderPrefix: prefix}
}

// SearchLevel queries the asset store for the raw files stored under one
// level's folder. The caller's context bounds the wait.
func (c *Client) SearchLevel(ctx context.Context, level string) (*SearchResponse, error) {
	var result SearchResponse
	resp, err := AssetStoreRestyClient.R().
		SetContext(ctx).
		SetBasicAuth(
			environment_variables.EnvironmentVariables.ASSET_STORE_API_KEY,
			environment_variables.EnvironmentVariables.ASSET_STORE_API_SECRET,
		).
		SetHeader("Content-Type", "application/json").
		SetBody(searchRequest{
			Expression: fmt.Sprintf(`folder="%s/%s" AND resource_type:raw`, c.folderPrefix, level),
			MaxResults: 500,
		}).
		SetResult(&result).
		Post("/resources/search")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("asset store search returned %s", resp.Status())
	}
	return &result, nil
}
