package hubtel

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/accessviewafrica/summit-registration/registration"
)

type callbackEnvelope struct {
	ResponseCode string `json:"ResponseCode"`
	Status       string `json:"Status"`
	Data         struct {
		CheckoutID          string  `json:"CheckoutId"`
		SalesInvoiceID      string  `json:"SalesInvoiceId"`
		ClientReference     string  `json:"ClientReference"`
		Status              string  `json:"Status"`
		Amount              float64 `json:"Amount"`
		CustomerPhoneNumber string  `json:"CustomerPhoneNumber"`
		Description         string  `json:"Description"`
		PaymentDetails      struct {
			MobileMoneyNumber string `json:"MobileMoneyNumber"`
			PaymentType       string `json:"PaymentType"`
			Channel           string `json:"Channel"`
		} `json:"PaymentDetails"`
	} `json:"Data"`
}

// ParseCallback normalises a checkout webhook body. The per-transaction status
// in Data wins over the envelope status. Field validation is left to the
// reconciler.
func ParseCallback(body []byte) (registration.CallbackNotification, error) {
	var env callbackEnvelope
	err := json.Unmarshal(body, &env)
	if err != nil {
		return registration.CallbackNotification{}, registration.NewMalformedCallbackError("Callback body is not valid JSON", err)
	}

	status := strings.TrimSpace(env.Data.Status)
	if status == "" {
		status = strings.TrimSpace(env.Status)
	}

	payerPhone := env.Data.CustomerPhoneNumber
	if payerPhone == "" {
		payerPhone = env.Data.PaymentDetails.MobileMoneyNumber
	}

	data := registration.PaymentData{
		TransactionID: env.Data.SalesInvoiceID,
		CheckoutID:    env.Data.CheckoutID,
		Method:        env.Data.PaymentDetails.PaymentType,
		Channel:       env.Data.PaymentDetails.Channel,
		PayerPhone:    payerPhone,
		Description:   env.Data.Description,
	}
	if env.Data.Amount > 0 {
		data.Amount = money.NewFromFloat(env.Data.Amount, defaultCurrency)
	}

	return registration.CallbackNotification{
		ClientReference: strings.TrimSpace(env.Data.ClientReference),
		ProviderStatus:  status,
		ProviderData:    data,
	}, nil
}
