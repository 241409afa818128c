package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/grammatica/grammatica-server/internal/domain"
	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/metrics"
	"github.com/grammatica/grammatica-server/internal/store"
	"github.com/grammatica/grammatica-server/internal/validation"
)

// Operation names reported to the OperationRecorder.
const (
	OpList   = "list"
	OpCreate = "create"
	OpShow   = "show"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Descriptor names a resource and says where it is served.
type Descriptor struct {
	// Name is the singular display name, e.g. "Adjective Noun".
	Name string
	// Plural is used in list messages, e.g. "Adjective Nouns".
	Plural string
	// Path is the collection route, e.g. "/api/adjectiveNouns".
	Path string
	// Tag groups the operations in the OpenAPI document.
	Tag string
}

// Paging turns a list into a fixed-size page with a total.
type Paging struct {
	PageSize int
	// DefaultPage is reported when the caller sends no page.
	DefaultPage int
}

// ListParams are the caller's list options. Zero means "not given".
type ListParams struct {
	Skip    int
	Limit   int
	Page    int
	Filters map[string]string
}

// Page is a list result. Total, Limit and Page are only meaningful when
// Paginated is set.
type Page[T any] struct {
	Rows      []*T
	Paginated bool
	Total     int
	Limit     int
	Page      int
}

// OperationRecorder observes resource operations.
type OperationRecorder interface {
	RecordOperation(resource, operation, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordOperation(string, string, string) {}

// Resource implements list/create/show/update/delete for one row type.
type Resource[T any, PT domain.Model[T]] struct {
	Descriptor

	repo      store.Repository[T]
	paging    *Paging
	validator *validation.Validator
	recorder  OperationRecorder
	logger    *slog.Logger
}

// ResourceOption configures a Resource.
type ResourceOption func(*resourceOptions)

type resourceOptions struct {
	paging   *Paging
	recorder OperationRecorder
	logger   *slog.Logger
}

// WithPaging enables paged listing.
func WithPaging(p Paging) ResourceOption {
	return func(o *resourceOptions) { o.paging = &p }
}

// WithRecorder reports every operation to r.
func WithRecorder(r OperationRecorder) ResourceOption {
	return func(o *resourceOptions) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) ResourceOption {
	return func(o *resourceOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// NewResource creates a resource service over repo.
func NewResource[T any, PT domain.Model[T]](d Descriptor, repo store.Repository[T], v *validation.Validator, opts ...ResourceOption) *Resource[T, PT] {
	o := resourceOptions{recorder: noopRecorder{}, logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Resource[T, PT]{
		Descriptor: d,
		repo:       repo,
		paging:     o.paging,
		validator:  v,
		recorder:   o.recorder,
		logger:     o.logger,
	}
}

// Paged reports whether List returns pagination metadata.
func (r *Resource[T, PT]) Paged() bool {
	return r.paging != nil
}

// List returns rows. Paged resources use a fixed limit; a non-zero page
// sets the offset to limit*page, otherwise the caller's skip stands. A page
// whose offset would overflow is a validation error.
func (r *Resource[T, PT]) List(ctx context.Context, p ListParams) (page *Page[T], err error) {
	defer func() { r.record(OpList, err) }()

	q := store.Query{Filters: p.Filters, Skip: p.Skip, Limit: p.Limit}
	if r.paging == nil {
		rows, err := r.repo.List(ctx, q)
		if err != nil {
			return nil, r.translate(err)
		}
		return &Page[T]{Rows: rows}, nil
	}

	result := &Page[T]{Paginated: true, Limit: r.paging.PageSize, Page: p.Page}
	q.Limit = r.paging.PageSize
	if p.Page != 0 {
		if p.Page < 0 || p.Page > math.MaxInt/r.paging.PageSize {
			return nil, domainerrors.ValidationWithDetails("validation failed", map[string]string{
				"page": "is out of range",
			})
		}
		q.Skip = r.paging.PageSize * p.Page
	} else {
		result.Page = r.paging.DefaultPage
	}

	if result.Rows, err = r.repo.List(ctx, q); err != nil {
		return nil, r.translate(err)
	}
	// Total is the size of the whole table, whatever the filters.
	if result.Total, err = r.repo.Count(ctx, store.Query{}); err != nil {
		return nil, r.translate(err)
	}
	return result, nil
}

// Create decodes body into a new row, validates and inserts it.
func (r *Resource[T, PT]) Create(ctx context.Context, body []byte) (row *T, err error) {
	defer func() { r.record(OpCreate, err) }()

	row = new(T)
	if err := decode(body, row); err != nil {
		return nil, err
	}
	*PT(row).Base() = domain.Record{}

	if err := r.validator.Validate(row); err != nil {
		return nil, err
	}
	if err := r.repo.Create(ctx, row); err != nil {
		return nil, r.translate(err)
	}

	r.logger.Debug("row created", "resource", r.Name, "id", PT(row).Base().ID)
	return row, nil
}

// Get returns one row or a not-found error.
func (r *Resource[T, PT]) Get(ctx context.Context, id int64) (row *T, err error) {
	defer func() { r.record(OpShow, err) }()

	row, err = r.repo.Get(ctx, id)
	if err != nil {
		return nil, r.translate(err)
	}
	return row, nil
}

// Update applies a partial JSON patch: fields absent from patch keep
// their stored values. id and timestamps cannot be changed by the caller.
func (r *Resource[T, PT]) Update(ctx context.Context, id int64, patch []byte) (row *T, err error) {
	defer func() { r.record(OpUpdate, err) }()

	row, err = r.repo.Get(ctx, id)
	if err != nil {
		return nil, r.translate(err)
	}

	base := *PT(row).Base()
	if err := decode(patch, row); err != nil {
		return nil, err
	}
	*PT(row).Base() = base

	if err := r.validator.Validate(row); err != nil {
		return nil, err
	}
	if err := r.repo.Update(ctx, row); err != nil {
		return nil, r.translate(err)
	}
	return row, nil
}

// Delete removes a row after checking it exists.
func (r *Resource[T, PT]) Delete(ctx context.Context, id int64) (err error) {
	defer func() { r.record(OpDelete, err) }()

	if _, err := r.repo.Get(ctx, id); err != nil {
		return r.translate(err)
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		return r.translate(err)
	}

	r.logger.Debug("row deleted", "resource", r.Name, "id", id)
	return nil
}

// Message builds the envelope message for action, e.g. "Book saved successfully".
func (d Descriptor) Message(action string) string {
	return fmt.Sprintf("%s %s successfully", d.Name, action)
}

// ListMessage is the envelope message for index.
func (d Descriptor) ListMessage() string {
	return d.Plural + " retrieved successfully"
}

// NotFoundMessage is the message of a not-found error.
func (d Descriptor) NotFoundMessage() string {
	return d.Name + " not found"
}

func (r *Resource[T, PT]) translate(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domainerrors.NotFound(r.NotFoundMessage())
	case errors.Is(err, store.ErrForeignKey):
		return domainerrors.Conflict(r.Name + " references a missing row or is still referenced").WithCause(err)
	case errors.Is(err, store.ErrAlreadyExists):
		return domainerrors.AlreadyExists(r.Name + " already exists").WithCause(err)
	default:
		return fmt.Errorf("%s: %w", r.Name, err)
	}
}

func (r *Resource[T, PT]) record(op string, err error) {
	r.recorder.RecordOperation(r.Name, op, outcomeOf(err))
}

func outcomeOf(err error) string {
	var de *domainerrors.Error
	if err == nil {
		return metrics.OutcomeOK
	}
	if !errors.As(err, &de) {
		return metrics.OutcomeError
	}
	switch de.Code {
	case domainerrors.CodeNotFound:
		return metrics.OutcomeNotFound
	case domainerrors.CodeValidation:
		return metrics.OutcomeInvalid
	case domainerrors.CodeConflict, domainerrors.CodeAlreadyExists:
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}

// decode unmarshals a JSON object onto dst, leaving absent fields alone.
func decode(body []byte, dst any) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if body[0] != '{' {
		return domainerrors.Validation("request body must be a JSON object")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return domainerrors.ValidationWithDetails("validation failed", map[string]string{
				typeErr.Field: "must be a " + jsonKind(typeErr.Type.Kind().String()),
			})
		}
		return domainerrors.Validation("malformed JSON body")
	}
	return nil
}

func jsonKind(goKind string) string {
	switch goKind {
	case "string":
		return "string"
	case "bool":
		return "boolean"
	default:
		return "number"
	}
}
