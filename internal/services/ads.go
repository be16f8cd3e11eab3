package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"beeclaimer/internal/models"

	"github.com/gojek/heimdall/v7/httpclient"
	"github.com/samber/do"
)

// ServiceAds asks the Adsgram reward endpoint whether the viewer finished the
// ad. Callers (the claim state machine) treat any error from Show as
// fail-open, so this client only reports what it saw.
type ServiceAds struct {
	serviceConfig *ServiceConfig
	client        *httpclient.Client
	baseURL       string
}

func NewServiceAds(container *do.Injector) (*ServiceAds, error) {
	serviceConfig, err := do.Invoke[*ServiceConfig](container)
	if err != nil {
		return nil, err
	}

	client := httpclient.NewClient(
		httpclient.WithHTTPTimeout(AD_GATE_TIMEOUT),
		httpclient.WithRetryCount(2),
	)

	return &ServiceAds{
		serviceConfig: serviceConfig,
		client:        client,
		baseURL:       ADSGRAM_API_BASE_URL,
	}, nil
}

func (service *ServiceAds) Show(ctx context.Context) (*models.AdResult, error) {
	config := service.serviceConfig.Current()

	url := fmt.Sprintf("%s/adv?blockId=%s", service.baseURL, config.AdsgramBlockID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := service.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("adsgram responded with %d", resp.StatusCode)
	}

	var result models.AdResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}
