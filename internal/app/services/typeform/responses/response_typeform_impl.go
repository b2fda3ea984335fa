package responses

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
	"typeform-connector/internal/app/config"
	"typeform-connector/internal/app/contracts"
	"typeform-connector/internal/pkg/constvars"
	"typeform-connector/internal/pkg/exceptions"
	"typeform-connector/internal/pkg/typeform_dto"
	"typeform-connector/internal/pkg/utils"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Bound on how much of an error body is read back for diagnostics.
const maxErrorBodySize = 1 << 20

type responseTypeformClient struct {
	BaseUrl    string
	FormID     string
	Token      string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewResponseTypeformClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.ResponseTypeformClient {
	baseUrl := internalConfig.Typeform.BaseUrl
	if baseUrl == "" {
		baseUrl = constvars.TypeformBaseUrl
	}
	return &responseTypeformClient{
		BaseUrl: baseUrl,
		FormID:  internalConfig.Typeform.FormID,
		Token:   internalConfig.Typeform.AccessToken,
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Typeform.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *responseTypeformClient) FindResponses(ctx context.Context) (*typeform_dto.ResponseList, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("responseTypeformClient.FindResponses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, c.FormID),
	)

	requestURL := fmt.Sprintf(constvars.TypeformResponsesUrlFormat, c.BaseUrl, c.FormID)
	return c.getResponseList(ctx, requestID, requestURL)
}

func (c *responseTypeformClient) FindResponsesAfter(ctx context.Context, cursorToken string) (*typeform_dto.ResponseList, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("responseTypeformClient.FindResponsesAfter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, c.FormID),
		zap.String(constvars.LoggingCursorTokenKey, cursorToken),
	)

	requestURL := fmt.Sprintf(constvars.TypeformResponsesAfterUrlFormat, c.BaseUrl, c.FormID, cursorToken, constvars.TypeformCursorPageSize)
	return c.getResponseList(ctx, requestID, requestURL)
}

func (c *responseTypeformClient) SearchResponses(ctx context.Context, params contracts.ResponseSearchParams) (*typeform_dto.ResponseList, error) {
	requestID := utils.GetRequestID(ctx)
	queryParams := params.ToQueryParam()
	c.Log.Info("responseTypeformClient.SearchResponses called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, c.FormID),
		zap.String(constvars.LoggingQueryParamsKey, queryParams.Encode()),
	)

	requestURL := fmt.Sprintf(constvars.TypeformResponsesUrlFormat, c.BaseUrl, c.FormID)
	if encoded := queryParams.Encode(); encoded != "" {
		requestURL = requestURL + "?" + encoded
	}
	return c.getResponseList(ctx, requestID, requestURL)
}

func (c *responseTypeformClient) getResponseList(ctx context.Context, requestID, requestURL string) (*typeform_dto.ResponseList, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		c.Log.Error("responseTypeformClient error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.Token)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("responseTypeformClient error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		providerErr := decodeTypeformError(resp.Body)
		c.Log.Error("responseTypeformClient Typeform API error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(providerErr),
		)
		return nil, exceptions.ErrTypeformAPIRequest(providerErr, constvars.ResourceTypeformResponses, resp.StatusCode)
	}

	responseList := new(typeform_dto.ResponseList)
	err = json.NewDecoder(resp.Body).Decode(responseList)
	if err != nil {
		c.Log.Error("responseTypeformClient error decoding response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTypeformResponses)
	}

	err = utils.ValidateStruct(responseList)
	if err != nil {
		c.Log.Error("responseTypeformClient response payload failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrValidateResponse(err, constvars.ResourceTypeformResponses)
	}

	c.Log.Info("responseTypeformClient fetched responses",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, c.FormID),
		zap.Int(constvars.LoggingItemCountKey, len(responseList.Items)),
	)
	return responseList, nil
}

// decodeTypeformError reads a bounded slice of a non-2xx body and
// extracts Typeform's code/description pair when one is present.
func decodeTypeformError(body io.Reader) error {
	bodyBytes, err := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
	if err != nil {
		return err
	}

	var typeformError typeform_dto.TypeformError
	err = json.Unmarshal(bodyBytes, &typeformError)
	if err != nil || typeformError.Code == "" {
		return nil
	}
	return fmt.Errorf("%s: %s", typeformError.Code, typeformError.Description)
}
