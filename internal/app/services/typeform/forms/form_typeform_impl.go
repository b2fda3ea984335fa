package forms

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

const maxErrorBodySize = 1 << 20

type formTypeformClient struct {
	BaseUrl    string
	Token      string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewFormTypeformClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.FormTypeformClient {
	baseUrl := internalConfig.Typeform.BaseUrl
	if baseUrl == "" {
		baseUrl = constvars.TypeformBaseUrl
	}
	return &formTypeformClient{
		BaseUrl: baseUrl,
		Token:   internalConfig.Typeform.AccessToken,
		HttpClient: &http.Client{
			Timeout: time.Duration(internalConfig.Typeform.RequestTimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

func (c *formTypeformClient) FindFormByID(ctx context.Context, formID string) (*typeform_dto.Form, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("formTypeformClient.FindFormByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, formID),
	)

	requestURL := fmt.Sprintf(constvars.TypeformFormUrlFormat, c.BaseUrl, formID)
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		c.Log.Error("formTypeformClient.FindFormByID error creating HTTP request",
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
		c.Log.Error("formTypeformClient.FindFormByID error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= constvars.StatusMultipleChoices {
		providerErr := decodeTypeformError(resp.Body)
		c.Log.Error("formTypeformClient.FindFormByID Typeform API error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(providerErr),
		)
		return nil, exceptions.ErrTypeformAPIRequest(providerErr, constvars.ResourceTypeformForm, resp.StatusCode)
	}

	form := new(typeform_dto.Form)
	err = json.NewDecoder(resp.Body).Decode(form)
	if err != nil {
		c.Log.Error("formTypeformClient.FindFormByID error decoding response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceTypeformForm)
	}

	err = utils.ValidateStruct(form)
	if err != nil {
		c.Log.Error("formTypeformClient.FindFormByID form payload failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, requestURL),
			zap.Error(err),
		)
		return nil, exceptions.ErrValidateResponse(err, constvars.ResourceTypeformForm)
	}

	c.Log.Info("formTypeformClient.FindFormByID fetched form",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormIDKey, form.ID),
	)
	return form, nil
}

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
