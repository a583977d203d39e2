// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package connectors

import (
	"context"
	"fmt"
	"net/url"

	"github.com/burrows3/AnimalMind/internal/httputil"
	"github.com/burrows3/AnimalMind/pkg/types"
)

// vetSignalsTerm is the canned query for recent veterinary case literature.
const vetSignalsTerm = "veterinary case report drug"

// esearchResponse is the subset of the PubMed esearch JSON we read.
type esearchResponse struct {
	ESearchResult struct {
		IDList []string `json:"idlist"`
	} `json:"esearchresult"`
}

// FetchPubMedDocs searches PubMed for term and returns one normalized
// document per matching PMID, newest first.
func (c *Client) FetchPubMedDocs(ctx context.Context, term string) ([]types.Document, error) {
	searchURL := fmt.Sprintf(
		"%s/esearch.fcgi?db=pubmed&term=%s&retmax=%d&sort=date&retmode=json",
		c.PubMedBaseURL, url.QueryEscape(term), c.Cfg.MaxResults)

	var resp esearchResponse
	if err := httputil.GetJSON(ctx, c.HTTP, searchURL, c.Cfg.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("pubmed search: %w", err)
	}

	docs := make([]types.Document, 0, len(resp.ESearchResult.IDList))
	for _, pmid := range resp.ESearchResult.IDList {
		docs = append(docs, NormalizeDocument(types.Document{
			ID:                "pmid:" + pmid,
			Source:            "pubmed",
			URL:               fmt.Sprintf("https://pubmed.ncbi.nlm.nih.gov/%s/", pmid),
			Title:             "PubMed " + pmid,
			Date:              isoNow(),
			AbstractOrSnippet: "Query match: " + term,
			DocType:           "review",
		}))
	}
	return docs, nil
}

// FetchVetSignals fetches the latest veterinary case-report literature.
func (c *Client) FetchVetSignals(ctx context.Context) ([]types.Document, error) {
	return c.FetchPubMedDocs(ctx, vetSignalsTerm)
}
