package api

import (
	"context"
	"log/slog"

	"github.com/accessviewafrica/summit-registration/ptr"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/accessviewafrica/summit-registration/slices"
)

const (
	defaultAdminPageSize = 25
	maxAdminPageSize     = 100
)

func (a *API) GetAdminRegistrations(ctx context.Context, request GetAdminRegistrationsRequestObject) (GetAdminRegistrationsResponseObject, error) {
	limit := defaultAdminPageSize

	if request.Params.Limit != nil {
		userLimit := *request.Params.Limit
		if userLimit < 1 || userLimit > maxAdminPageSize {
			return GetAdminRegistrations400JSONResponse{
				Code:    LimitOutOfBounds,
				Message: "Limit must be between 1 and 100",
			}, nil
		}
		limit = userLimit
	}

	var filter registration.ListFilter
	if request.Params.Status != nil {
		status, ok := registration.ParsePaymentStatus(string(*request.Params.Status))
		if !ok {
			return GetAdminRegistrations400JSONResponse{
				Code:    InputValidationError,
				Message: "Unknown payment status",
			}, nil
		}
		filter.Status = &status
	}

	result, err := a.db.ListRegistrations(ctx, filter, int32(limit), request.Params.Cursor)
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to list registrations", err)
		return GetAdminRegistrationsdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	return GetAdminRegistrations200JSONResponse{
		Data:        slices.Map(result.Data, registrationToApiRegistration),
		Cursor:      result.Cursor,
		HasNextPage: result.HasNextPage,
	}, nil
}

func (a *API) PostAdminRegistrationComplete(ctx context.Context, request PostAdminRegistrationCompleteRequestObject) (PostAdminRegistrationCompleteResponseObject, error) {
	if request.Body == nil {
		return PostAdminRegistrationComplete400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	reg, err := a.reconciler.CompleteManually(ctx, request.ClientReference, manualPaymentToPaymentData(request.Body))
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to complete registration", err)
		return PostAdminRegistrationCompletedefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	a.getLoggerOrBaseLogger(ctx).Info("Manually completed registration", slog.String("client-reference", request.ClientReference))
	return PostAdminRegistrationComplete200JSONResponse(registrationToApiRegistration(reg)), nil
}

func (a *API) PostAdminRegistrationRemind(ctx context.Context, request PostAdminRegistrationRemindRequestObject) (PostAdminRegistrationRemindResponseObject, error) {
	reg, err := a.reconciler.SendPaymentReminder(ctx, request.ClientReference, "")
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to send payment reminder", err)
		return PostAdminRegistrationReminddefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	a.getLoggerOrBaseLogger(ctx).Info("Sent payment reminder",
		slog.String("client-reference", request.ClientReference),
		slog.Int("reminder-count", reg.ReminderCount),
	)
	return PostAdminRegistrationRemind200JSONResponse(registrationToApiRegistration(reg)), nil
}

func (a *API) PostAdminOfflineRegistration(ctx context.Context, request PostAdminOfflineRegistrationRequestObject) (PostAdminOfflineRegistrationResponseObject, error) {
	if request.Body == nil {
		return PostAdminOfflineRegistration400JSONResponse{
			Code:    EmptyBody,
			Message: "Must specify a JSON body in the request",
		}, nil
	}

	reg, err := a.reconciler.RegisterOffline(ctx, registration.InitiatePaymentRequest{
		EventType: request.Body.EventType,
		Customer:  apiCustomerInfoToCustomerInfo(request.Body.CustomerInfo),
	}, manualPaymentToPaymentData(request.Body.Payment), a.eventRepo)
	if err != nil {
		status, body := a.registrationError(ctx, "Failed to record offline registration", err)
		return PostAdminOfflineRegistrationdefaultJSONResponse{Body: body, StatusCode: status}, nil
	}

	a.getLoggerOrBaseLogger(ctx).Info("Recorded offline registration", slog.String("client-reference", reg.ClientReference))
	return PostAdminOfflineRegistration200JSONResponse(registrationToApiRegistration(reg)), nil
}

func manualPaymentToPaymentData(payment *ManualPayment) registration.PaymentData {
	if payment == nil {
		return registration.PaymentData{}
	}

	return registration.PaymentData{
		TransactionID: ptr.Value(payment.TransactionId),
		Method:        ptr.Value(payment.Method),
	}
}
