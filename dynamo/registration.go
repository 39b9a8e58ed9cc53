package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/accessviewafrica/summit-registration/registration"
	"github.com/accessviewafrica/summit-registration/slices"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

var _ registration.Repository = &DB{}

const (
	registrationEntityName = "REGISTRATION"

	defaultPageSize = 25

	// Fixed width so GSI1SK sorts chronologically as a string.
	sortableTimeFormat = "2006-01-02T15:04:05.000000000Z"
)

type registrationDynamo struct {
	PK     string
	SK     string
	GSI1PK string
	GSI1SK string

	ClientReference   string
	EventType         string
	CustomerInfo      registration.CustomerInfo
	PaymentStatus     registration.PaymentStatus
	PaymentData       *paymentDataDynamo `dynamodbav:",omitempty"`
	LastProviderCheck *time.Time         `dynamodbav:",omitempty"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ReminderCount     int
	LastReminderSent  *time.Time `dynamodbav:",omitempty"`
}

type paymentDataDynamo struct {
	TransactionID         string
	ExternalTransactionID string
	CheckoutID            string
	// Amount is stored in minor units.
	Amount      int64
	Currency    string
	Method      string
	Channel     string
	PayerPhone  string
	Description string
	CompletedAt *time.Time `dynamodbav:",omitempty"`
	FailedAt    *time.Time `dynamodbav:",omitempty"`
}

func registrationPK(clientReference string) string {
	return fmt.Sprintf("%s#%s", registrationEntityName, clientReference)
}

func registrationSK(clientReference string) string {
	return registrationPK(clientReference)
}

func registrationGSI1SK(createdAt time.Time, clientReference string) string {
	return fmt.Sprintf("%s#%s#%s", registrationEntityName, createdAt.UTC().Format(sortableTimeFormat), clientReference)
}

func registrationKey(clientReference string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: registrationPK(clientReference)},
		"SK": &types.AttributeValueMemberS{Value: registrationSK(clientReference)},
	}
}

func registrationToDynamo(reg registration.Registration) registrationDynamo {
	return registrationDynamo{
		PK:                registrationPK(reg.ClientReference),
		SK:                registrationSK(reg.ClientReference),
		GSI1PK:            registrationEntityName,
		GSI1SK:            registrationGSI1SK(reg.CreatedAt, reg.ClientReference),
		ClientReference:   reg.ClientReference,
		EventType:         reg.EventType,
		CustomerInfo:      reg.CustomerInfo,
		PaymentStatus:     reg.PaymentStatus,
		PaymentData:       paymentDataToDynamo(reg.PaymentData),
		LastProviderCheck: reg.LastProviderCheck,
		CreatedAt:         reg.CreatedAt,
		UpdatedAt:         reg.UpdatedAt,
		ReminderCount:     reg.ReminderCount,
		LastReminderSent:  reg.LastReminderSent,
	}
}

func dynamoToRegistration(dynReg registrationDynamo) registration.Registration {
	return registration.Registration{
		ClientReference:   dynReg.ClientReference,
		EventType:         dynReg.EventType,
		CustomerInfo:      dynReg.CustomerInfo,
		PaymentStatus:     dynReg.PaymentStatus,
		PaymentData:       dynamoToPaymentData(dynReg.PaymentData),
		LastProviderCheck: dynReg.LastProviderCheck,
		CreatedAt:         dynReg.CreatedAt,
		UpdatedAt:         dynReg.UpdatedAt,
		ReminderCount:     dynReg.ReminderCount,
		LastReminderSent:  dynReg.LastReminderSent,
	}
}

func paymentDataToDynamo(data *registration.PaymentData) *paymentDataDynamo {
	if data == nil {
		return nil
	}

	dynData := &paymentDataDynamo{
		TransactionID:         data.TransactionID,
		ExternalTransactionID: data.ExternalTransactionID,
		CheckoutID:            data.CheckoutID,
		Method:                data.Method,
		Channel:               data.Channel,
		PayerPhone:            data.PayerPhone,
		Description:           data.Description,
		CompletedAt:           data.CompletedAt,
		FailedAt:              data.FailedAt,
	}
	if data.Amount != nil {
		dynData.Amount = data.Amount.Amount()
		dynData.Currency = data.Amount.Currency().Code
	}
	return dynData
}

func dynamoToPaymentData(dynData *paymentDataDynamo) *registration.PaymentData {
	if dynData == nil {
		return nil
	}

	data := &registration.PaymentData{
		TransactionID:         dynData.TransactionID,
		ExternalTransactionID: dynData.ExternalTransactionID,
		CheckoutID:            dynData.CheckoutID,
		Method:                dynData.Method,
		Channel:               dynData.Channel,
		PayerPhone:            dynData.PayerPhone,
		Description:           dynData.Description,
		CompletedAt:           dynData.CompletedAt,
		FailedAt:              dynData.FailedAt,
	}
	if dynData.Currency != "" {
		data.Amount = money.New(dynData.Amount, dynData.Currency)
	}
	return data
}

func (d *DB) CreateRegistration(ctx context.Context, reg registration.Registration) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	item, err := attributevalue.MarshalMap(registrationToDynamo(reg))
	if err != nil {
		return registration.NewFailedToTranslateToDBModelError("Failed to translate registration to dynamo model", err)
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithCondition(expression.Name("PK").AttributeNotExists()))

	_, err = d.dynamoClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(d.tableName),
		Item:                      item,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return registration.NewDuplicateReferenceError(fmt.Sprintf("Registration with client reference %q already exists", reg.ClientReference), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError("CreateRegistration timed out")
		} else {
			return registration.NewFailedToWriteError("Failed PutItem call", err)
		}
	}

	return nil
}

func (d *DB) GetRegistration(ctx context.Context, clientReference string) (registration.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := d.dynamoClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(d.tableName),
		Key:            registrationKey(clientReference),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return registration.Registration{}, registration.NewTimeoutError("GetRegistration timed out")
		}
		return registration.Registration{}, registration.NewFailedToFetchError(fmt.Sprintf("Failed to fetch registration %q", clientReference), err)
	}

	if len(resp.Item) == 0 {
		return registration.Registration{}, registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with client reference %q not found", clientReference), nil)
	}

	var dynReg registrationDynamo
	err = attributevalue.UnmarshalMap(resp.Item, &dynReg)
	if err != nil {
		return registration.Registration{}, registration.NewFailedToTranslateToDBModelError(fmt.Sprintf("Failed to read registration %q from dynamo", clientReference), err)
	}

	return dynamoToRegistration(dynReg), nil
}

func (d *DB) UpdatePaymentStatus(ctx context.Context, clientReference string, expected registration.PaymentStatus, update registration.StatusUpdate) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	set := expression.Set(expression.Name("PaymentStatus"), expression.Value(update.Status)).
		Set(expression.Name("UpdatedAt"), expression.Value(update.UpdatedAt))
	if update.PaymentData != nil {
		set = set.Set(expression.Name("PaymentData"), expression.Value(paymentDataToDynamo(update.PaymentData)))
	}
	if update.LastProviderCheck != nil {
		set = set.Set(expression.Name("LastProviderCheck"), expression.Value(*update.LastProviderCheck))
	}

	expr := exprMustBuild(expression.NewBuilder().
		WithUpdate(set).
		WithCondition(expression.Name("PK").AttributeExists().
			And(expression.Name("PaymentStatus").Equal(expression.Value(expected)))))

	_, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       registrationKey(clientReference),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return false, nil
		} else if errors.Is(err, context.DeadlineExceeded) {
			return false, registration.NewTimeoutError("UpdatePaymentStatus timed out")
		} else {
			return false, registration.NewFailedToWriteError(fmt.Sprintf("Failed to update payment status of %q", clientReference), err)
		}
	}

	return true, nil
}

func (d *DB) TouchProviderCheck(ctx context.Context, clientReference string, at time.Time) error {
	return d.updateExisting(ctx, clientReference, "TouchProviderCheck",
		expression.Set(expression.Name("LastProviderCheck"), expression.Value(at)))
}

func (d *DB) RecordReminder(ctx context.Context, clientReference string, at time.Time) error {
	return d.updateExisting(ctx, clientReference, "RecordReminder",
		expression.Add(expression.Name("ReminderCount"), expression.Value(1)).
			Set(expression.Name("LastReminderSent"), expression.Value(at)))
}

// updateExisting applies a bookkeeping update that never touches the payment status.
func (d *DB) updateExisting(ctx context.Context, clientReference string, op string, update expression.UpdateBuilder) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	expr := exprMustBuild(expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.Name("PK").AttributeExists()))

	_, err := d.dynamoClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(d.tableName),
		Key:                       registrationKey(clientReference),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condCheckFailedErr *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailedErr) {
			return registration.NewRegistrationDoesNotExistsError(fmt.Sprintf("Registration with client reference %q not found", clientReference), err)
		} else if errors.Is(err, context.DeadlineExceeded) {
			return registration.NewTimeoutError(fmt.Sprintf("%s timed out", op))
		} else {
			return registration.NewFailedToWriteError(fmt.Sprintf("Failed %s call", op), err)
		}
	}

	return nil
}

// ListRegistrations returns registrations newest first. A status filter is
// applied after DynamoDB reads each page, so several pages may be read to fill
// one response.
func (d *DB) ListRegistrations(ctx context.Context, filter registration.ListFilter, limit int32, cursor *string) (registration.ListRegistrationsResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*callTimeout)
	defer cancel()

	if limit <= 0 {
		limit = defaultPageSize
	}

	builder := expression.NewBuilder().WithKeyCondition(
		expression.Key("GSI1PK").Equal(expression.Value(registrationEntityName)).
			And(expression.Key("GSI1SK").BeginsWith(registrationEntityName)))
	if filter.Status != nil {
		builder = builder.WithFilter(expression.Name("PaymentStatus").Equal(expression.Value(*filter.Status)))
	}
	expr := exprMustBuild(builder)

	var startKey map[string]types.AttributeValue
	if cursor != nil {
		var err error
		startKey, err = cursorToLastEval(*cursor)
		if err != nil {
			return registration.ListRegistrationsResponse{}, registration.NewInvalidCursorError("Invalid cursor", err)
		}
	}

	var items []map[string]types.AttributeValue
	for {
		result, err := d.dynamoClient.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(d.tableName),
			IndexName:                 aws.String(gsi1),
			KeyConditionExpression:    expr.KeyCondition(),
			FilterExpression:          expr.Filter(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ScanIndexForward:          aws.Bool(false),
			// Fetch 1 more than limit to check if there is another page or not
			Limit:             aws.Int32(limit + 1),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return registration.ListRegistrationsResponse{}, registration.NewTimeoutError("ListRegistrations timed out")
			}
			return registration.ListRegistrationsResponse{}, registration.NewFailedToFetchError("Failed to fetch registrations from dynamo", err)
		}

		items = append(items, result.Items...)
		if len(items) > int(limit) || len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	hasNextPage := len(items) > int(limit)

	var newCursor *string
	if hasNextPage {
		items = items[:limit]
		// The extra item was only read to detect the next page, so the cursor
		// points at the last item handed back.
		c, err := lastEvalKeyToCursor(keyFromItem(items[len(items)-1]))
		if err != nil {
			return registration.ListRegistrationsResponse{}, registration.NewFailedToTranslateToDBModelError("Failed to make cursor", err)
		}
		newCursor = &c
	}

	var dynamoItems []registrationDynamo
	err := attributevalue.UnmarshalListOfMaps(items, &dynamoItems)
	if err != nil {
		return registration.ListRegistrationsResponse{}, registration.NewFailedToTranslateToDBModelError("Failed to read registrations from dynamo", err)
	}

	return registration.ListRegistrationsResponse{
		Data:        slices.Map(dynamoItems, dynamoToRegistration),
		Cursor:      newCursor,
		HasNextPage: hasNextPage,
	}, nil
}
