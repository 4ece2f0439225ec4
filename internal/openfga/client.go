// Copyright 2025 Nexusdev Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"reflect"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/nexusdev/nexus-service/internal/logging"
	"github.com/nexusdev/nexus-service/internal/monitoring"
	"github.com/nexusdev/nexus-service/internal/tracing"
)

type Client struct {
	c *client.OpenFgaClient

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(contextualTuples) > 0 {
		cts := make([]client.ClientContextualTupleKey, len(contextualTuples))
		for i, t := range contextualTuples {
			cts[i] = client.ClientContextualTupleKey{
				User:     t.User,
				Relation: t.Relation,
				Object:   t.Object,
			}
		}
		body.ContextualTuples = cts
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("failed check call: %v", err)
		return false, err
	}

	return r.GetAllowed(), nil
}

// BatchCheck returns true only when every tuple in the batch is allowed.
func (c *Client) BatchCheck(ctx context.Context, tuples ...TupleWithContext) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.BatchCheck")
	defer span.End()

	for _, t := range tuples {
		allowed, err := c.Check(ctx, t.User, t.Relation, t.Object, t.ContextualTuples...)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}

	return true, nil
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).Body(
		client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("failed list objects call: %v", err)
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	_, err := c.c.WriteTuples(ctx).Body(
		[]client.ClientTupleKey{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("failed to write tuple: %v", err)
	}

	return err
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	_, err := c.c.DeleteTuples(ctx).Body(
		[]client.ClientTupleKeyWithoutCondition{
			{User: user, Relation: relation, Object: object},
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("failed to delete tuple: %v", err)
	}

	return err
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	ts := make([]client.ClientTupleKeyWithoutCondition, len(tuples))
	for i, t := range tuples {
		ts[i] = client.ClientTupleKeyWithoutCondition{
			User:     t.User,
			Relation: t.Relation,
			Object:   t.Object,
		}
	}

	_, err := c.c.DeleteTuples(ctx).Body(ts).Execute()
	if err != nil {
		c.logger.Errorf("failed to delete tuples: %v", err)
	}

	return err
}

func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	r, err := c.c.Read(ctx).Body(body).Options(
		client.ClientReadOptions{
			ContinuationToken: &continuationToken,
		},
	).Execute()

	if err != nil {
		c.logger.Errorf("failed to read tuples: %v", err)
		return nil, err
	}

	return r, nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("failed to read authorization model: %v", err)
		return nil, err
	}

	return r.AuthorizationModel, nil
}

// CompareModel reports whether the model deployed on the store matches the
// given one. Schema version and type definitions participate, model id does
// not.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	authModel, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if authModel.SchemaVersion != model.SchemaVersion {
		c.logger.Error("schema version mismatch")
		return false, nil
	}

	if !reflect.DeepEqual(authModel.TypeDefinitions, model.TypeDefinitions) {
		c.logger.Error("type definitions mismatch")
		return false, nil
	}

	return true, nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		c.logger.Errorf("failed to write authorization model: %v", err)
		return "", err
	}

	return r.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).Body(
		client.ClientCreateStoreRequest{Name: name},
	).Execute()

	if err != nil {
		c.logger.Errorf("failed to create store: %v", err)
		return "", err
	}

	return r.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	c.c.SetStoreId(storeID)
}

func NewClient(cfg *Config) *Client {
	c := new(Client)

	if cfg == nil {
		panic("OpenFGA config missing")
	}

	fgaClient, err := client.NewSdkClient(
		&client.ClientConfiguration{
			ApiScheme: cfg.ApiScheme,
			ApiHost:   cfg.ApiHost,
			StoreId:   cfg.StoreID,
			Credentials: &credentials.Credentials{
				Method: credentials.CredentialsMethodApiToken,
				Config: &credentials.Config{
					ApiToken: cfg.ApiToken,
				},
			},
			AuthorizationModelId: cfg.AuthModelID,
			Debug:                cfg.Debug,
		},
	)
	if err != nil {
		cfg.Logger.Fatalf("failed to create OpenFGA client: %v", err)
	}

	c.c = fgaClient

	c.tracer = cfg.Tracer
	c.monitor = cfg.Monitor
	c.logger = cfg.Logger

	return c
}
