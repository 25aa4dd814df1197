// Package dynamostore persists each collection as a DynamoDB table, one
// document per record. Listings use a full table scan with pagination and
// the shared in-memory filter helpers, matching the other backends.
package dynamostore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/founditapp/foundit/internal/model"
	"github.com/founditapp/foundit/internal/store"
)

// credentialsKey is the partition key of the single credential document in
// the settings table.
const credentialsKey = "admin_credentials"

// Store is the hosted DynamoDB persistence backend.
type Store struct {
	client *dynamodb.Client
	prefix string
}

// New builds a store using the default AWS credential chain. Tables are
// named <prefix>-items, <prefix>-claims, <prefix>-lost-items and
// <prefix>-settings, each keyed by the string attribute "id".
func New(ctx context.Context, region, prefix string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Store{client: dynamodb.NewFromConfig(cfg), prefix: prefix}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *dynamodb.Client, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Items returns the item collection.
func (s *Store) Items() store.ItemStore { return &Items{s: s} }

// Claims returns the claim collection.
func (s *Store) Claims() store.ClaimStore { return &Claims{s: s} }

// LostReports returns the lost-report collection.
func (s *Store) LostReports() store.LostReportStore { return &LostReports{s: s} }

// Credentials returns the admin credential document.
func (s *Store) Credentials() store.CredentialStore { return &Credentials{s: s} }

// Close is a no-op; the SDK client holds no persistent connection state.
func (s *Store) Close() error { return nil }

func (s *Store) table(name string) *string {
	return aws.String(s.prefix + "-" + name)
}

// Records share the wire shape of the JSON file backend, so the encoder is
// pinned to json struct tags.
func marshalRecord(v any) (map[string]dynamodbtypes.AttributeValue, error) {
	return attributevalue.MarshalMapWithOptions(v, func(o *attributevalue.EncoderOptions) {
		o.TagKey = "json"
	})
}

func unmarshalRecord(m map[string]dynamodbtypes.AttributeValue, v any) error {
	return attributevalue.UnmarshalMapWithOptions(m, v, func(o *attributevalue.DecoderOptions) {
		o.TagKey = "json"
	})
}

// scanAll reads every document in a table, following pagination.
func (s *Store) scanAll(ctx context.Context, table *string) ([]map[string]dynamodbtypes.AttributeValue, error) {
	var docs []map[string]dynamodbtypes.AttributeValue
	var startKey map[string]dynamodbtypes.AttributeValue

	for {
		input := &dynamodb.ScanInput{TableName: table}
		if startKey != nil {
			input.ExclusiveStartKey = startKey
		}
		result, err := s.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", *table, err)
		}
		docs = append(docs, result.Items...)
		if result.LastEvaluatedKey == nil {
			return docs, nil
		}
		startKey = result.LastEvaluatedKey
	}
}

// getByID fetches one document into target; reports whether it existed.
func (s *Store) getByID(ctx context.Context, table *string, id string, target any) (bool, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: table,
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return false, fmt.Errorf("getting record from %s: %w", *table, err)
	}
	if result.Item == nil {
		return false, nil
	}
	if err := unmarshalRecord(result.Item, target); err != nil {
		return false, fmt.Errorf("decoding record from %s: %w", *table, err)
	}
	return true, nil
}

// put writes one document.
func (s *Store) put(ctx context.Context, table *string, record any) error {
	doc, err := marshalRecord(record)
	if err != nil {
		return fmt.Errorf("encoding record for %s: %w", *table, err)
	}
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: table,
		Item:      doc,
	})
	if err != nil {
		return fmt.Errorf("putting record to %s: %w", *table, err)
	}
	return nil
}

// requireExisting replays put semantics as an update: the document must
// already exist.
func (s *Store) requireExisting(ctx context.Context, table *string, id string) error {
	var probe map[string]any
	found, err := s.getByID(ctx, table, id, &probe)
	if err != nil {
		return err
	}
	if !found {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, table *string, id string) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: table,
		Key: map[string]dynamodbtypes.AttributeValue{
			"id": &dynamodbtypes.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return fmt.Errorf("deleting record from %s: %w", *table, err)
	}
	return nil
}

// Items is the DynamoDB item collection.
type Items struct {
	s *Store
}

func (c *Items) List(ctx context.Context, filter store.ItemFilter) ([]model.Item, error) {
	docs, err := c.s.scanAll(ctx, c.s.table("items"))
	if err != nil {
		return nil, err
	}
	items := make([]model.Item, 0, len(docs))
	for _, doc := range docs {
		var item model.Item
		if err := unmarshalRecord(doc, &item); err != nil {
			return nil, fmt.Errorf("decoding item: %w", err)
		}
		items = append(items, item)
	}
	return store.FilterItems(items, filter), nil
}

func (c *Items) Get(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	found, err := c.s.getByID(ctx, c.s.table("items"), id, &item)
	if err != nil || !found {
		return nil, err
	}
	return &item, nil
}

func (c *Items) Create(ctx context.Context, item *model.Item) error {
	return c.s.put(ctx, c.s.table("items"), item)
}

func (c *Items) Update(ctx context.Context, item *model.Item) error {
	table := c.s.table("items")
	if err := c.s.requireExisting(ctx, table, item.ID); err != nil {
		return err
	}
	return c.s.put(ctx, table, item)
}

func (c *Items) Delete(ctx context.Context, id string) error {
	table := c.s.table("items")
	if err := c.s.requireExisting(ctx, table, id); err != nil {
		return err
	}
	return c.s.deleteByID(ctx, table, id)
}

// Claims is the DynamoDB claim collection.
type Claims struct {
	s *Store
}

func (c *Claims) List(ctx context.Context) ([]model.Claim, error) {
	docs, err := c.s.scanAll(ctx, c.s.table("claims"))
	if err != nil {
		return nil, err
	}
	claims := make([]model.Claim, 0, len(docs))
	for _, doc := range docs {
		var claim model.Claim
		if err := unmarshalRecord(doc, &claim); err != nil {
			return nil, fmt.Errorf("decoding claim: %w", err)
		}
		claims = append(claims, claim)
	}
	store.SortClaims(claims)
	return claims, nil
}

func (c *Claims) Get(ctx context.Context, id string) (*model.Claim, error) {
	var claim model.Claim
	found, err := c.s.getByID(ctx, c.s.table("claims"), id, &claim)
	if err != nil || !found {
		return nil, err
	}
	return &claim, nil
}

func (c *Claims) Create(ctx context.Context, claim *model.Claim) error {
	return c.s.put(ctx, c.s.table("claims"), claim)
}

func (c *Claims) Update(ctx context.Context, claim *model.Claim) error {
	table := c.s.table("claims")
	if err := c.s.requireExisting(ctx, table, claim.ID); err != nil {
		return err
	}
	return c.s.put(ctx, table, claim)
}

func (c *Claims) DeleteByItem(ctx context.Context, itemID string) (int, error) {
	claims, err := c.List(ctx)
	if err != nil {
		return 0, err
	}
	removed := 0
	table := c.s.table("claims")
	for _, claim := range claims {
		if claim.ItemID != itemID {
			continue
		}
		if err := c.s.deleteByID(ctx, table, claim.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// LostReports is the DynamoDB lost-report collection.
type LostReports struct {
	s *Store
}

func (c *LostReports) List(ctx context.Context) ([]model.LostReport, error) {
	docs, err := c.s.scanAll(ctx, c.s.table("lost-items"))
	if err != nil {
		return nil, err
	}
	reports := make([]model.LostReport, 0, len(docs))
	for _, doc := range docs {
		var report model.LostReport
		if err := unmarshalRecord(doc, &report); err != nil {
			return nil, fmt.Errorf("decoding lost report: %w", err)
		}
		reports = append(reports, report)
	}
	store.SortLostReports(reports)
	return reports, nil
}

func (c *LostReports) Get(ctx context.Context, id string) (*model.LostReport, error) {
	var report model.LostReport
	found, err := c.s.getByID(ctx, c.s.table("lost-items"), id, &report)
	if err != nil || !found {
		return nil, err
	}
	return &report, nil
}

func (c *LostReports) Create(ctx context.Context, report *model.LostReport) error {
	return c.s.put(ctx, c.s.table("lost-items"), report)
}

func (c *LostReports) Update(ctx context.Context, report *model.LostReport) error {
	table := c.s.table("lost-items")
	if err := c.s.requireExisting(ctx, table, report.ID); err != nil {
		return err
	}
	return c.s.put(ctx, table, report)
}

// Credentials is the DynamoDB admin credential document, a single record in
// the settings table.
type Credentials struct {
	s *Store
}

type credentialsDoc struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

func (c *Credentials) Get(ctx context.Context) (*model.Credentials, error) {
	var doc credentialsDoc
	found, err := c.s.getByID(ctx, c.s.table("settings"), credentialsKey, &doc)
	if err != nil || !found {
		return nil, err
	}
	return &model.Credentials{Username: doc.Username, PasswordHash: doc.PasswordHash}, nil
}

func (c *Credentials) Set(ctx context.Context, creds *model.Credentials) error {
	doc := credentialsDoc{
		ID:           credentialsKey,
		Username:     creds.Username,
		PasswordHash: creds.PasswordHash,
	}
	return c.s.put(ctx, c.s.table("settings"), doc)
}
