package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"quickgigs/internal/domain/entities"
	"quickgigs/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	UserID            string `dynamodbav:"user_id,omitempty"`
	GigID             string `dynamodbav:"gig_id,omitempty"`
	Amount            string `dynamodbav:"amount,omitempty"`
	Currency          string `dynamodbav:"currency,omitempty"`
	ExternalSessionID string `dynamodbav:"external_session_id,omitempty"`
	Provider          string `dynamodbav:"provider,omitempty"`
	CheckoutURL       string `dynamodbav:"checkout_url,omitempty"`
	PaymentType       string `dynamodbav:"payment_type,omitempty"`
	Status            string `dynamodbav:"status,omitempty"`
	Description       string `dynamodbav:"description,omitempty"`
	GatewayPayloadRaw string `dynamodbav:"gateway_payload_raw,omitempty"`
	CreatedAt         string `dynamodbav:"created_at,omitempty"`
	UpdatedAt         string `dynamodbav:"updated_at,omitempty"`
}

type historyItem struct {
	ID        string `dynamodbav:"id"`
	PaymentID string `dynamodbav:"payment_id"`
	OldStatus string `dynamodbav:"old_status"`
	NewStatus string `dynamodbav:"new_status"`
	ChangedBy string `dynamodbav:"changed_by,omitempty"`
	Actor     string `dynamodbav:"actor"`
	Notes     string `dynamodbav:"notes"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists payments in DynamoDB. A status change, the
// gig featured counter and the history row go through one TransactWriteItems
// call; external_session_id uniqueness is held by "session#<id>" guard items.
// A "pending#<gig>" guard admits one pending featured_gig payment per gig and
// is released by the transition that leaves pending.
type PaymentDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tables DynamoTables) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tables: tables.withDefaults()}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	notExists := aws.String("attribute_not_exists(#id)")
	names := map[string]string{"#id": "id"}
	items := []types.TransactWriteItem{
		{Put: &types.Put{TableName: aws.String(r.tables.Payments), Item: av, ConditionExpression: notExists, ExpressionAttributeNames: names}},
	}
	if sid := p.SessionID(); sid != "" {
		guard, err := attributevalue.MarshalMap(guardItem{ID: sessionGuardPrefix + sid, OwnerID: p.ID})
		if err != nil {
			return entities.Payment{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tables.Payments), Item: guard, ConditionExpression: notExists, ExpressionAttributeNames: names},
		})
	}
	if holdsPendingSlot(p) {
		guard, err := attributevalue.MarshalMap(guardItem{ID: pendingGuardID(*p.GigID), OwnerID: p.ID})
		if err != nil {
			return entities.Payment{}, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tables.Payments), Item: guard, ConditionExpression: notExists, ExpressionAttributeNames: names},
		})
	}

	if _, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items}); err != nil {
		if isTransactionConditionFailure(err) {
			return entities.Payment{}, interfaces.ErrDuplicateKey
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Payments),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	if it.Status == "" {
		return entities.Payment{}, nil
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetBySessionID(ctx context.Context, sessionID string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tables.Payments),
		Key:            idKey(sessionGuardPrefix + sessionID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}
	var g guardItem
	if err := attributevalue.UnmarshalMap(out.Item, &g); err != nil {
		return entities.Payment{}, err
	}
	return r.GetByID(ctx, g.OwnerID)
}

func (r *PaymentDynamoRepository) LatestPendingForGig(ctx context.Context, gigID string, paymentType entities.PaymentType) (entities.Payment, error) {
	payments, err := r.listForGig(ctx, gigID)
	if err != nil {
		return entities.Payment{}, err
	}
	for _, p := range payments {
		if p.Type == paymentType && p.Status == entities.PaymentStatusPending {
			return p, nil
		}
	}
	return entities.Payment{}, nil
}

func (r *PaymentDynamoRepository) ListByUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Payments),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodePayments(raws, newestFirst)
}

func (r *PaymentDynamoRepository) ListHistory(ctx context.Context, paymentID string) ([]entities.PaymentHistory, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.History),
		IndexName:              aws.String(historyPaymentIDIndex),
		KeyConditionExpression: aws.String("payment_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	})
	if err != nil {
		return nil, err
	}
	out := make([]entities.PaymentHistory, 0, len(raws))
	for _, raw := range raws {
		var it historyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		out = append(out, fromHistoryItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Transition writes the payment compare-and-set, the gig counter, the history
// row and the pending slot release atomically. When the gig write cannot
// apply (gig deleted, or counter already zero on clear) or the slot belongs to
// another payment, the transition is retried without that item.
func (r *PaymentDynamoRepository) Transition(ctx context.Context, t entities.PaymentTransition) (entities.Payment, bool, error) {
	current, err := r.GetByID(ctx, t.PaymentID)
	if err != nil || current.ID == "" {
		return current, false, err
	}
	if current.Status != t.From {
		return current, false, nil
	}

	at := t.At.UTC()
	if t.At.IsZero() {
		at = nowUTC()
	}
	hist := t.NewHistoryEntry(uuid.NewString())
	hist.CreatedAt = at
	histAV, err := attributevalue.MarshalMap(toHistoryItem(hist))
	if err != nil {
		return entities.Payment{}, false, err
	}

	withGig := current.GigID != nil && current.Type == entities.PaymentTypeFeaturedGig && t.Featured != entities.FeaturedUnchanged
	withSlot := holdsPendingSlot(current) && t.To != entities.PaymentStatusPending
	for {
		gigAt, slotAt := -1, -1
		items := []types.TransactWriteItem{
			{Update: &types.Update{
				TableName:           aws.String(r.tables.Payments),
				Key:                 idKey(t.PaymentID),
				ConditionExpression: aws.String("#status = :from"),
				UpdateExpression:    aws.String("SET #status = :to, #updated_at = :updated_at"),
				ExpressionAttributeNames: map[string]string{
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":from":       &types.AttributeValueMemberS{Value: string(t.From)},
					":to":         &types.AttributeValueMemberS{Value: string(t.To)},
					":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
				},
			}},
			{Put: &types.Put{TableName: aws.String(r.tables.History), Item: histAV}},
		}
		if withGig {
			gigAt = len(items)
			items = append(items, types.TransactWriteItem{Update: r.featuredCounterUpdate(*current.GigID, t.Featured, at)})
		}
		if withSlot {
			slotAt = len(items)
			items = append(items, types.TransactWriteItem{Delete: r.pendingSlotRelease(*current.GigID, current.ID)})
		}

		_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
		if err == nil {
			break
		}
		if transactionCancelledAt(err, 0) {
			latest, gerr := r.GetByID(ctx, t.PaymentID)
			return latest, false, gerr
		}
		retry := false
		if gigAt >= 0 && transactionCancelledAt(err, gigAt) {
			withGig, retry = false, true
		}
		if slotAt >= 0 && transactionCancelledAt(err, slotAt) {
			withSlot, retry = false, true
		}
		if retry {
			continue
		}
		return entities.Payment{}, false, err
	}

	current.Status = t.To
	current.UpdatedAt = at
	return current, true, nil
}

// pendingSlotRelease deletes the gig's pending guard if this payment holds it.
// A missing guard is not an error.
func (r *PaymentDynamoRepository) pendingSlotRelease(gigID, paymentID string) *types.Delete {
	return &types.Delete{
		TableName:                aws.String(r.tables.Payments),
		Key:                      idKey(pendingGuardID(gigID)),
		ConditionExpression:      aws.String("attribute_not_exists(#id) OR #owner_id = :pid"),
		ExpressionAttributeNames: map[string]string{"#id": "id", "#owner_id": "owner_id"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: paymentID},
		},
	}
}

func (r *PaymentDynamoRepository) featuredCounterUpdate(gigID string, effect entities.FeaturedEffect, at time.Time) *types.Update {
	u := &types.Update{
		TableName: aws.String(r.tables.Gigs),
		Key:       idKey(gigID),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#featured_payments": "featured_payments",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(at)},
		},
	}
	if effect == entities.FeaturedSet {
		u.ConditionExpression = aws.String("attribute_exists(#id)")
		u.UpdateExpression = aws.String("SET #updated_at = :updated_at ADD #featured_payments :one")
		u.ExpressionAttributeValues[":one"] = numberValue(1)
		return u
	}
	u.ConditionExpression = aws.String("attribute_exists(#id) AND #featured_payments > :zero")
	u.UpdateExpression = aws.String("SET #updated_at = :updated_at ADD #featured_payments :minus")
	u.ExpressionAttributeValues[":zero"] = numberValue(0)
	u.ExpressionAttributeValues[":minus"] = numberValue(-1)
	return u
}

func (r *PaymentDynamoRepository) ListStalePending(ctx context.Context, createdBefore time.Time) ([]entities.Payment, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tables.Payments),
		FilterExpression:         aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{"#status": "status"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPending)},
		},
	})
	if err != nil {
		return nil, err
	}
	all, err := decodePayments(raws, oldestFirst)
	if err != nil {
		return nil, err
	}
	stale := make([]entities.Payment, 0, len(all))
	for _, p := range all {
		if p.CreatedAt.Before(createdBefore) {
			stale = append(stale, p)
		}
	}
	return stale, nil
}

func (r *PaymentDynamoRepository) ListFeaturedDrift(ctx context.Context) ([]entities.Gig, error) {
	raws, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tables.Gigs),
		FilterExpression:         aws.String("#featured_payments > :zero"),
		ExpressionAttributeNames: map[string]string{"#featured_payments": "featured_payments"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero": numberValue(0),
		},
	})
	if err != nil {
		return nil, err
	}
	var drifted []entities.Gig
	for _, raw := range raws {
		var it gigItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		backed, err := r.hasCompletedFeatured(ctx, it.ID)
		if err != nil {
			return nil, err
		}
		if !backed {
			drifted = append(drifted, fromGigItem(it))
		}
	}
	sort.Slice(drifted, func(i, j int) bool { return drifted[i].ID < drifted[j].ID })
	return drifted, nil
}

func (r *PaymentDynamoRepository) ClearFeatured(ctx context.Context, gigID string) (bool, error) {
	backed, err := r.hasCompletedFeatured(ctx, gigID)
	if err != nil || backed {
		return false, err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tables.Gigs),
		Key:                 idKey(gigID),
		ConditionExpression: aws.String("attribute_exists(#id) AND #featured_payments > :zero"),
		UpdateExpression:    aws.String("SET #featured_payments = :zero, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":                "id",
			"#featured_payments": "featured_payments",
			"#updated_at":        "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":zero":       numberValue(0),
			":updated_at": &types.AttributeValueMemberS{Value: formatTime(nowUTC())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *PaymentDynamoRepository) hasCompletedFeatured(ctx context.Context, gigID string) (bool, error) {
	payments, err := r.listForGig(ctx, gigID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.Type == entities.PaymentTypeFeaturedGig && p.Status == entities.PaymentStatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *PaymentDynamoRepository) listForGig(ctx context.Context, gigID string) ([]entities.Payment, error) {
	raws, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Payments),
		IndexName:              aws.String(paymentsGigIDIndex),
		KeyConditionExpression: aws.String("gig_id = :gid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gid": &types.AttributeValueMemberS{Value: gigID},
		},
	})
	if err != nil {
		return nil, err
	}
	return decodePayments(raws, newestFirst)
}

func newestFirst(a, b entities.Payment) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func oldestFirst(a, b entities.Payment) bool {
	return newestFirst(b, a)
}

func decodePayments(raws []map[string]types.AttributeValue, less func(a, b entities.Payment) bool) ([]entities.Payment, error) {
	out := make([]entities.Payment, 0, len(raws))
	for _, raw := range raws {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		if it.Status == "" {
			continue
		}
		out = append(out, fromPaymentItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	gigID := ""
	if p.GigID != nil {
		gigID = *p.GigID
	}
	return paymentItem{
		ID:                p.ID,
		UserID:            p.UserID,
		GigID:             gigID,
		Amount:            p.Amount.String(),
		Currency:          p.Currency,
		ExternalSessionID: p.SessionID(),
		Provider:          p.Provider,
		CheckoutURL:       p.CheckoutURL,
		PaymentType:       string(p.Type),
		Status:            string(p.Status),
		Description:       p.Description,
		GatewayPayloadRaw: string(p.GatewayPayloadRaw),
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	amount, _ := decimal.NewFromString(it.Amount)
	p := entities.Payment{
		ID:          it.ID,
		UserID:      it.UserID,
		Amount:      amount,
		Currency:    it.Currency,
		Provider:    it.Provider,
		CheckoutURL: it.CheckoutURL,
		Type:        entities.PaymentType(it.PaymentType),
		Status:      entities.PaymentStatus(it.Status),
		Description: it.Description,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
	if it.GigID != "" {
		gigID := it.GigID
		p.GigID = &gigID
	}
	if it.ExternalSessionID != "" {
		sid := it.ExternalSessionID
		p.ExternalSessionID = &sid
	}
	if it.GatewayPayloadRaw != "" {
		p.GatewayPayloadRaw = json.RawMessage(it.GatewayPayloadRaw)
	}
	return p
}

func toHistoryItem(h entities.PaymentHistory) historyItem {
	changedBy := ""
	if h.ChangedBy != nil {
		changedBy = *h.ChangedBy
	}
	return historyItem{
		ID:        h.ID,
		PaymentID: h.PaymentID,
		OldStatus: string(h.OldStatus),
		NewStatus: string(h.NewStatus),
		ChangedBy: changedBy,
		Actor:     h.Actor,
		Notes:     h.Notes,
		CreatedAt: formatTime(h.CreatedAt),
	}
}

func fromHistoryItem(it historyItem) entities.PaymentHistory {
	h := entities.PaymentHistory{
		ID:        it.ID,
		PaymentID: it.PaymentID,
		OldStatus: entities.PaymentStatus(it.OldStatus),
		NewStatus: entities.PaymentStatus(it.NewStatus),
		Actor:     it.Actor,
		Notes:     it.Notes,
		CreatedAt: parseTime(it.CreatedAt),
	}
	if it.ChangedBy != "" {
		by := it.ChangedBy
		h.ChangedBy = &by
	}
	return h
}

func pendingGuardID(gigID string) string {
	return pendingGuardPrefix + gigID
}

func holdsPendingSlot(p entities.Payment) bool {
	return p.Status == entities.PaymentStatusPending && p.Type == entities.PaymentTypeFeaturedGig && p.GigID != nil && *p.GigID != ""
}
