package api

import (
	"context"
	"log/slog"

	"github.com/accessviewafrica/summit-registration/ptr"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/oapi-codegen/runtime/types"
)

func (a *API) PostInitiatePayment(ctx context.Context, request PostInitiatePaymentRequestObject) (PostInitiatePaymentResponseObject, error) {
	if request.Body == nil {
		return PostInitiatePayment400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	initiated, err := registration.InitiatePayment(ctx, registration.InitiatePaymentRequest{
		EventType: request.Body.EventType,
		Customer:  apiCustomerInfoToCustomerInfo(request.Body.CustomerInfo),
	}, a.checkoutURLs, a.eventRepo, a.db, a.provider)
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to initiate payment", err)
		return PostInitiatePaymentdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	a.getLoggerOrBaseLogger(ctx).Info("Initiated payment",
		slog.String("client-reference", initiated.Registration.ClientReference),
		slog.String("event-type", initiated.Event.ID),
	)

	resp := PostInitiatePayment200JSONResponse{
		Success:           true,
		ClientReference:   initiated.Registration.ClientReference,
		CheckoutUrl:       initiated.Checkout.CheckoutURL,
		CheckoutDirectUrl: ptr.NonEmpty(initiated.Checkout.CheckoutDirectURL),
		CheckoutId:        ptr.NonEmpty(initiated.Checkout.CheckoutID),
	}
	if initiated.Event.Price != nil {
		resp.Amount = initiated.Event.Price.AsMajorUnits()
		resp.Currency = initiated.Event.Price.Currency().Code
	}
	return resp, nil
}

func (a *API) GetRegistration(ctx context.Context, request GetRegistrationRequestObject) (GetRegistrationResponseObject, error) {
	reg, err := a.db.GetRegistration(ctx, request.ClientReference)
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to get registration", err)
		return GetRegistrationdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return GetRegistration200JSONResponse(registrationToApiRegistration(reg)), nil
}

// GetTransactionStatus always answers with a status when the registration
// exists. Provider trouble only shows up as providerError.
func (a *API) GetTransactionStatus(ctx context.Context, request GetTransactionStatusRequestObject) (GetTransactionStatusResponseObject, error) {
	result, err := a.reconciler.ReconcileFromPoll(ctx, request.ClientReference, registration.ProviderIDs{
		TransactionID:        ptr.Value(request.Params.HubtelTransactionId),
		NetworkTransactionID: ptr.Value(request.Params.NetworkTransactionId),
	})
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to check transaction status", err)
		return GetTransactionStatusdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return GetTransactionStatus200JSONResponse{
		ClientReference:    request.ClientReference,
		Status:             PaymentStatus(result.Status.String()),
		Source:             TransactionStatusSource(result.Source),
		ProviderConfigured: result.ProviderConfigured,
		ProviderStatus:     ptr.NonEmpty(result.ProviderStatus),
		ProviderError:      ptr.NonEmpty(result.ProviderError),
		RecordError:        ptr.NonEmpty(result.RecordError),
		LastProviderCheck:  result.LastProviderCheck,
		Updated:            result.Changed,
	}, nil
}

func apiCustomerInfoToCustomerInfo(c CustomerInfo) registration.CustomerInfo {
	return registration.CustomerInfo{
		FullName:     c.FullName,
		Email:        string(c.Email),
		Phone:        c.Phone,
		Organization: c.Organization,
		IsMember:     ptr.Value(c.IsMember),
	}
}

func customerInfoToApiCustomerInfo(c registration.CustomerInfo) CustomerInfo {
	return CustomerInfo{
		FullName:     c.FullName,
		Email:        types.Email(c.Email),
		Phone:        c.Phone,
		Organization: c.Organization,
		IsMember:     ptr.Bool(c.IsMember),
	}
}

func registrationToApiRegistration(reg registration.Registration) Registration {
	return Registration{
		ClientReference:   reg.ClientReference,
		EventType:         reg.EventType,
		CustomerInfo:      customerInfoToApiCustomerInfo(reg.CustomerInfo),
		PaymentStatus:     PaymentStatus(reg.PaymentStatus.String()),
		PaymentData:       paymentDataToApiPaymentData(reg.PaymentData),
		LastProviderCheck: reg.LastProviderCheck,
		ReminderCount:     reg.ReminderCount,
		LastReminderSent:  reg.LastReminderSent,
		CreatedAt:         reg.CreatedAt,
		UpdatedAt:         reg.UpdatedAt,
	}
}

func paymentDataToApiPaymentData(data *registration.PaymentData) *PaymentData {
	if data == nil {
		return nil
	}

	out := &PaymentData{
		TransactionId:         ptr.NonEmpty(data.TransactionID),
		ExternalTransactionId: ptr.NonEmpty(data.ExternalTransactionID),
		CheckoutId:            ptr.NonEmpty(data.CheckoutID),
		Method:                ptr.NonEmpty(data.Method),
		Channel:               ptr.NonEmpty(data.Channel),
		PayerPhone:            ptr.NonEmpty(data.PayerPhone),
		CompletedAt:           data.CompletedAt,
		FailedAt:              data.FailedAt,
	}
	if data.Amount != nil {
		out.Amount = ptr.Float64(data.Amount.AsMajorUnits())
		out.Currency = ptr.String(data.Amount.Currency().Code)
	}
	return out
}
