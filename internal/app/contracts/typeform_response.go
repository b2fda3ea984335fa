package contracts

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"typeform-connector/internal/pkg/constvars"
	"typeform-connector/internal/pkg/typeform_dto"
)

type ResponseTypeformClient interface {
	FindResponses(ctx context.Context) (*typeform_dto.ResponseList, error)
	FindResponsesAfter(ctx context.Context, cursorToken string) (*typeform_dto.ResponseList, error)
	SearchResponses(ctx context.Context, params ResponseSearchParams) (*typeform_dto.ResponseList, error)
}

// ResponseSearchParams covers the query surface of the responses
// listing endpoint. Zero-valued fields are left out of the query.
type ResponseSearchParams struct {
	PageSize  int
	Since     string
	Until     string
	After     string
	Before    string
	Completed *bool
	Sort      string
	Query     string
	Fields    []string
}

// ToQueryParam converts ResponseSearchParams into URL query parameters.
func (p ResponseSearchParams) ToQueryParam() url.Values {
	q := url.Values{}
	if p.PageSize > 0 {
		q.Add(constvars.URLQueryParamPageSize, strconv.Itoa(p.PageSize))
	}
	if p.Since != "" {
		q.Add(constvars.URLQueryParamSince, p.Since)
	}
	if p.Until != "" {
		q.Add(constvars.URLQueryParamUntil, p.Until)
	}
	if p.After != "" {
		q.Add(constvars.URLQueryParamAfter, p.After)
	}
	if p.Before != "" {
		q.Add(constvars.URLQueryParamBefore, p.Before)
	}
	if p.Completed != nil {
		q.Add(constvars.URLQueryParamCompleted, strconv.FormatBool(*p.Completed))
	}
	if p.Sort != "" {
		q.Add(constvars.URLQueryParamSort, p.Sort)
	}
	if p.Query != "" {
		q.Add(constvars.URLQueryParamQuery, p.Query)
	}
	if len(p.Fields) > 0 {
		q.Add(constvars.URLQueryParamFields, strings.Join(p.Fields, ","))
	}
	return q
}
