package main

import (
	"context"
	"typeform-connector/internal/app/config"
	"typeform-connector/internal/app/drivers/logger"
	"typeform-connector/internal/app/services/typeform/forms"
	"typeform-connector/internal/app/services/typeform/responses"
	"typeform-connector/internal/pkg/constvars"
	"typeform-connector/internal/pkg/typeform_dto"
	"typeform-connector/internal/pkg/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	if internalConfig.Typeform.FormID == "" || internalConfig.Typeform.AccessToken == "" {
		log.Fatal("TYPEFORM_FORM_ID and TYPEFORM_ACCESS_TOKEN must be set")
	}

	responseClient := responses.NewResponseTypeformClient(internalConfig, zapLogger)
	formClient := forms.NewFormTypeformClient(internalConfig, zapLogger)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())

	form, err := formClient.FindFormByID(ctx, internalConfig.Typeform.FormID)
	if err != nil {
		log.Fatalf("fetch form definition: %v", err)
	}
	log.Infof("form %q has %d fields", form.Title, len(form.Fields))

	responseList, err := responseClient.FindResponses(ctx)
	if err != nil {
		log.Fatalf("fetch responses: %v", err)
	}
	if responseList.TotalItems != nil {
		log.Infof("form has %d responses in total", *responseList.TotalItems)
	}

	for _, response := range responseList.Items {
		printResponse(log, response)
	}

	// Page through newer submissions one response at a time by
	// threading each page's last token into the next cursor fetch.
	cursorToken, ok := responseList.LastToken()
	for ok {
		page, err := responseClient.FindResponsesAfter(ctx, cursorToken)
		if err != nil {
			log.Fatalf("fetch responses after %s: %v", cursorToken, err)
		}
		for _, response := range page.Items {
			printResponse(log, response)
		}
		cursorToken, ok = page.LastToken()
	}
}

func printResponse(log *logrus.Logger, response typeform_dto.Response) {
	log.Infof("response %s submitted=%t score=%d", response.Token, response.IsSubmitted(), response.Calculated.Score)
	for _, answer := range response.Answers {
		content, err := answer.Content()
		if err != nil {
			log.Warnf("  answer for %s: %v", answer.Field.ID, err)
			continue
		}
		log.Infof("  answer for %s (%s): %v", answer.Field.ID, answer.Type, content)
	}
}
