package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/grammatica/grammatica-server/internal/domain"
	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/logger"
	"github.com/grammatica/grammatica-server/internal/service"
)

// ListInput holds the list query. Every other query parameter becomes a
// column equality filter; unknown columns are ignored by the store.
type ListInput struct {
	Skip  int `query:"skip" minimum:"0" doc:"Rows to skip"`
	Limit int `query:"limit" minimum:"0" doc:"Maximum rows to return. Paged resources use a fixed page size."`
	Page  int `query:"page" minimum:"0" doc:"Page number. On paged resources the offset becomes page size times page."`

	filters map[string]string
}

// Resolve captures the filter parameters.
func (i *ListInput) Resolve(ctx huma.Context) []error {
	u := ctx.URL()
	for key, values := range u.Query() {
		switch key {
		case "skip", "limit", "page":
			continue
		}
		if len(values) == 0 {
			continue
		}
		if i.filters == nil {
			i.filters = make(map[string]string)
		}
		i.filters[key] = values[0]
	}
	return nil
}

// IDInput identifies one row. Ids that are not positive integers are
// answered with the resource's not-found error.
type IDInput struct {
	ID string `path:"id" doc:"Row id"`
}

// CreateInput carries the new row. Body only checks for a JSON object;
// RawBody is decoded so absent fields can be told apart from zero values.
type CreateInput struct {
	Body    map[string]any
	RawBody []byte
}

// UpdateInput carries a partial row.
type UpdateInput struct {
	ID      string `path:"id" doc:"Row id"`
	Body    map[string]any
	RawBody []byte
}

// ListOutput wraps a list envelope for Huma.
type ListOutput[T any] struct {
	Body ListEnvelope[T]
}

// RowOutput wraps a single row envelope for Huma.
type RowOutput[T any] struct {
	Body Envelope[*T]
}

// MessageOutput wraps a data-less envelope for Huma.
type MessageOutput struct {
	Body MessageEnvelope
}

// registerResource wires the five actions of one resource. Update is
// reachable through both PUT and PATCH.
func registerResource[T any, PT domain.Model[T]](s *Server, r *service.Resource[T, PT]) {
	single := operationSlug(r.Name)
	plural := operationSlug(r.Plural)
	item := r.Path + "/{id}"
	tags := []string{r.Tag}
	notFound := []int{http.StatusNotFound}

	huma.Register(s.api, huma.Operation{
		OperationID:   "list-" + plural,
		Method:        http.MethodGet,
		Path:          r.Path,
		Summary:       "List " + strings.ToLower(r.Plural),
		Tags:          tags,
		DefaultStatus: http.StatusOK,
	}, func(ctx context.Context, input *ListInput) (*ListOutput[T], error) {
		page, err := r.List(ctx, service.ListParams{
			Skip:    input.Skip,
			Limit:   input.Limit,
			Page:    input.Page,
			Filters: input.filters,
		})
		if err != nil {
			return nil, s.fail(ctx, err)
		}

		body := ListEnvelope[T]{Success: true, Data: page.Rows, Message: r.ListMessage()}
		if body.Data == nil {
			body.Data = []*T{}
		}
		if page.Paginated {
			body.Total, body.Limit, body.Page = &page.Total, &page.Limit, &page.Page
		}
		return &ListOutput[T]{Body: body}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID:   "create-" + single,
		Method:        http.MethodPost,
		Path:          r.Path,
		Summary:       "Create " + article(r.Name),
		Tags:          tags,
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusUnprocessableEntity, http.StatusConflict},
	}, func(ctx context.Context, input *CreateInput) (*RowOutput[T], error) {
		row, err := r.Create(ctx, input.RawBody)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		return &RowOutput[T]{Body: ok(row, r.Message("saved"))}, nil
	})
	rowSchema := s.api.OpenAPI().Components.Schemas.Schema(reflect.TypeFor[T](), true, r.Name)
	documentRowBody(s.api.OpenAPI().Paths[r.Path].Post, rowSchema)

	huma.Register(s.api, huma.Operation{
		OperationID:   "get-" + single,
		Method:        http.MethodGet,
		Path:          item,
		Summary:       "Get " + article(r.Name),
		Tags:          tags,
		DefaultStatus: http.StatusOK,
		Errors:        notFound,
	}, func(ctx context.Context, input *IDInput) (*RowOutput[T], error) {
		row, err := r.Get(ctx, rowID(input.ID))
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		return &RowOutput[T]{Body: ok(row, r.Message("retrieved"))}, nil
	})

	update := func(ctx context.Context, input *UpdateInput) (*RowOutput[T], error) {
		row, err := r.Update(ctx, rowID(input.ID), input.RawBody)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		return &RowOutput[T]{Body: ok(row, r.Message("updated"))}, nil
	}
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		huma.Register(s.api, huma.Operation{
			OperationID:   fmt.Sprintf("%s-%s", strings.ToLower(method), single),
			Method:        method,
			Path:          item,
			Summary:       "Update " + article(r.Name),
			Description:   "Only the supplied fields change.",
			Tags:          tags,
			DefaultStatus: http.StatusOK,
			Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusConflict},
		}, update)
	}
	documentRowBody(s.api.OpenAPI().Paths[item].Put, rowSchema)
	documentRowBody(s.api.OpenAPI().Paths[item].Patch, rowSchema)

	huma.Register(s.api, huma.Operation{
		OperationID:   "delete-" + single,
		Method:        http.MethodDelete,
		Path:          item,
		Summary:       "Delete " + article(r.Name),
		Tags:          tags,
		DefaultStatus: http.StatusOK,
		Errors:        []int{http.StatusNotFound, http.StatusConflict},
	}, func(ctx context.Context, input *IDInput) (*MessageOutput, error) {
		if err := r.Delete(ctx, rowID(input.ID)); err != nil {
			return nil, s.fail(ctx, err)
		}
		return &MessageOutput{Body: MessageEnvelope{Success: true, Message: r.Message("deleted")}}, nil
	})
}

//nolint:funlen // one line per resource
func (s *Server) registerResourceRoutes() {
	c := s.services.Catalog

	registerResource(s, c.Books)
	registerResource(s, c.Reviews)

	registerResource(s, c.Adressen)
	registerResource(s, c.Afbeeldingen)
	registerResource(s, c.Locaties)
	registerResource(s, c.Politiebureaus)
	registerResource(s, c.PolitiebureausLocaties)

	registerResource(s, c.Rules)
	registerResource(s, c.Adds)
	registerResource(s, c.Replaces)
	registerResource(s, c.Results)
	registerResource(s, c.References)
	registerResource(s, c.RuleReferences)

	registerResource(s, c.Adjectives)
	registerResource(s, c.NormalNouns)
	registerResource(s, c.IrregularNouns)
	registerResource(s, c.CompositionNouns)
	registerResource(s, c.PolymorphicNouns)
	registerResource(s, c.IrregularProxyNouns)
	registerResource(s, c.NonCompositionProxyNouns)
	registerResource(s, c.AdjectiveNouns)

	registerResource(s, c.NormalNounReferences)
	registerResource(s, c.IrregularNounReferences)
	registerResource(s, c.IrregularProxyNounReferences)
	registerResource(s, c.CompositionNounReferences)
}

// fail logs errors that are not domain errors, which end up as 500s.
func (s *Server) fail(ctx context.Context, err error) error {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) {
		logger.FromContext(ctx).Error("request failed", "error", err)
	}
	return err
}

// rowID parses a path id. Anything that is not a positive integer becomes
// 0, which matches no row.
func rowID(raw string) int64 {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// documentRowBody describes the request body in the OpenAPI document with
// the row schema. Request validation keeps the object schema the operation
// was registered with.
func documentRowBody(op *huma.Operation, schema *huma.Schema) {
	if op == nil || op.RequestBody == nil {
		return
	}
	op.RequestBody.Content = map[string]*huma.MediaType{
		"application/json": {Schema: schema},
	}
}

// operationSlug turns "Adjective Noun" into "adjective-noun".
func operationSlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func article(name string) string {
	switch strings.ToLower(name[:1]) {
	case "a", "e", "i", "o", "u":
		return "an " + strings.ToLower(name)
	}
	return "a " + strings.ToLower(name)
}
