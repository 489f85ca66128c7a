package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultGigsTableName          = "gigs"
	defaultApplicationsTableName  = "applications"
	defaultPaymentsTableName      = "payments"
	defaultHistoryTableName       = "payment_history"
	defaultWebhookEventsTableName = "webhook_events"

	applicationsGigIDIndex       = "gig_id-index"
	applicationsApplicantIDIndex = "applicant_id-index"
	paymentsGigIDIndex           = "gig_id-index"
	paymentsUserIDIndex          = "user_id-index"
	historyPaymentIDIndex        = "payment_id-index"

	// Guard items share a table with the rows they protect and carry none of
	// the GSI key attributes, so indexes never see them.
	pairGuardPrefix    = "pair#"
	sessionGuardPrefix = "session#"
	pendingGuardPrefix = "pending#"

	// transactMaxItems is the TransactWriteItems item limit.
	transactMaxItems = 100
)

// DynamoAPI is the subset of the DynamoDB client used by the repositories.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoTables names the Ledger Store tables.
//
// Table requirements:
//   - gigs: PK id
//   - applications: PK id, GSI gig_id-index, GSI applicant_id-index
//   - payments: PK id, GSI gig_id-index, GSI user_id-index
//   - payment_history: PK id, GSI payment_id-index
//   - webhook_events: PK id
type DynamoTables struct {
	Gigs          string
	Applications  string
	Payments      string
	History       string
	WebhookEvents string
}

func (t DynamoTables) withDefaults() DynamoTables {
	if t.Gigs == "" {
		t.Gigs = defaultGigsTableName
	}
	if t.Applications == "" {
		t.Applications = defaultApplicationsTableName
	}
	if t.Payments == "" {
		t.Payments = defaultPaymentsTableName
	}
	if t.History == "" {
		t.History = defaultHistoryTableName
	}
	if t.WebhookEvents == "" {
		t.WebhookEvents = defaultWebhookEventsTableName
	}
	return t
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func isConditionalCheckFailed(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	return errors.As(err, &cfe)
}

// transactionCancelledAt reports whether a TransactWriteItems call was
// cancelled because the condition of the item at index failed.
func transactionCancelledAt(err error, index int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if index < 0 || index >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[index].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

func isTransactionConditionFailure(err error) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	for _, r := range tce.CancellationReasons {
		if r.Code != nil && *r.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(v string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, v)
	return t.UTC()
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(v string) *time.Time {
	if v == "" {
		return nil
	}
	t := parseTime(v)
	return &t
}

func numberValue(n int) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: strconv.Itoa(n)}
}
