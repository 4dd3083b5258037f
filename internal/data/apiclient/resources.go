package apiclient

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// ResourceAPI is the generic CRUD client behind the admin screens. Every
// admin entity follows the same list/get/create/update/delete shape upstream,
// so one client covers all of them; payloads stay raw JSON and are validated
// at the service boundary where the shape is known.
type ResourceAPI interface {
	List(ctx context.Context, token, resource string) (json.RawMessage, error)
	Get(ctx context.Context, token, resource, id string) (json.RawMessage, error)
	Create(ctx context.Context, token, resource string, payload json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, token, resource, id string, payload json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, token, resource, id string) error
}

type resourceAPI struct {
	client *Client
	log    *zap.Logger
}

func NewResourceAPI(client *Client, log *zap.Logger) ResourceAPI {
	return &resourceAPI{
		client: client,
		log:    log.With(zap.String("api", "resource")),
	}
}

func (a *resourceAPI) List(ctx context.Context, token, resource string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.client.Get(ctx, "/"+resource+"/", token, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}
	return out, nil
}

func (a *resourceAPI) Get(ctx context.Context, token, resource, id string) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.client.Get(ctx, "/"+resource+"/"+id, token, &out); err != nil {
		return nil, fmt.Errorf("get %s %s: %w", resource, id, err)
	}
	return out, nil
}

func (a *resourceAPI) Create(ctx context.Context, token, resource string, payload json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.client.Post(ctx, "/"+resource+"/", token, payload, &out); err != nil {
		return nil, fmt.Errorf("create %s: %w", resource, err)
	}
	return out, nil
}

func (a *resourceAPI) Update(ctx context.Context, token, resource, id string, payload json.RawMessage) (json.RawMessage, error) {
	var out json.RawMessage
	if err := a.client.Put(ctx, "/"+resource+"/"+id, token, payload, &out); err != nil {
		return nil, fmt.Errorf("update %s %s: %w", resource, id, err)
	}
	return out, nil
}

func (a *resourceAPI) Delete(ctx context.Context, token, resource, id string) error {
	if err := a.client.Delete(ctx, "/"+resource+"/"+id, token); err != nil {
		return fmt.Errorf("delete %s %s: %w", resource, id, err)
	}
	return nil
}
