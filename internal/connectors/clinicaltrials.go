// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package connectors

import (
	"context"
	"fmt"
	"net/url"

	"github.com/burrows3/AnimalMind/internal/httputil"
	"github.com/burrows3/AnimalMind/pkg/types"
)

// studiesResponse is the subset of the ClinicalTrials.gov v2 API we read.
type studiesResponse struct {
	Studies []ctgovStudy `json:"studies"`
}

type ctgovStudy struct {
	ProtocolSection struct {
		IdentificationModule struct {
			NCTID      string `json:"nctId"`
			BriefTitle string `json:"briefTitle"`
		} `json:"identificationModule"`
		ConditionsModule struct {
			Conditions []string `json:"conditions"`
		} `json:"conditionsModule"`
		DesignModule struct {
			Phases []string `json:"phases"`
		} `json:"designModule"`
	} `json:"protocolSection"`
}

// FetchFailedTrials searches ClinicalTrials.gov for trials matching term
// with the given overall status (e.g. "TERMINATED") and returns one
// normalized document per study.
func (c *Client) FetchFailedTrials(ctx context.Context, term, status string) ([]types.Document, error) {
	searchURL := fmt.Sprintf(
		"%s/studies?query.term=%s&filter.overallStatus=%s&pageSize=%d",
		c.CTGovBaseURL, url.QueryEscape(term), url.QueryEscape(status), c.Cfg.MaxResults)

	var resp studiesResponse
	if err := httputil.GetJSON(ctx, c.HTTP, searchURL, c.Cfg.UserAgent, &resp); err != nil {
		return nil, fmt.Errorf("clinicaltrials search: %w", err)
	}

	docs := make([]types.Document, 0, len(resp.Studies))
	for _, study := range resp.Studies {
		docs = append(docs, studyToDocument(study))
	}
	return docs, nil
}

func studyToDocument(study ctgovStudy) types.Document {
	ident := study.ProtocolSection.IdentificationModule
	title := ident.BriefTitle
	if title == "" {
		title = "Clinical trial"
	}
	id := ident.NCTID
	if id == "" {
		id = title
	}

	condition := ""
	if conds := study.ProtocolSection.ConditionsModule.Conditions; len(conds) > 0 {
		condition = conds[0]
	}
	snippet := "Condition: " + condition
	if phases := study.ProtocolSection.DesignModule.Phases; len(phases) > 0 {
		snippet += "; Phase: " + phases[0]
	}

	studyURL := ""
	if ident.NCTID != "" {
		studyURL = "https://clinicaltrials.gov/study/" + ident.NCTID
	}

	var conditions []string
	if condition != "" {
		conditions = []string{condition}
	}

	return NormalizeDocument(types.Document{
		ID:                "ctgov:" + id,
		Source:            "clinicaltrials",
		URL:               studyURL,
		Title:             title,
		Date:              isoNow(),
		AbstractOrSnippet: snippet,
		DocType:           "trial",
		Entities:          types.DocumentEntities{Conditions: conditions},
	})
}
