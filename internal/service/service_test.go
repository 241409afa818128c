package service

import (
	"context"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatica/grammatica-server/internal/auth"
	"github.com/grammatica/grammatica-server/internal/domain"
	domainerrors "github.com/grammatica/grammatica-server/internal/errors"
	"github.com/grammatica/grammatica-server/internal/metrics"
	"github.com/grammatica/grammatica-server/internal/store"
	"github.com/grammatica/grammatica-server/internal/store/sqldb"
	"github.com/grammatica/grammatica-server/internal/validation"
)

type recordedOp struct{ resource, op, outcome string }

type fakeRecorder struct {
	mu  sync.Mutex
	ops []recordedOp
}

func (f *fakeRecorder) RecordOperation(resource, op, outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ops = append(f.ops, recordedOp{resource, op, outcome})
}

func (f *fakeRecorder) last() recordedOp {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ops[len(f.ops)-1]
}

// spyRepo records the query each List call receives.
type spyRepo struct {
	store.Repository[domain.Book]
	lastQuery store.Query
}

func (s *spyRepo) List(ctx context.Context, q store.Query) ([]*domain.Book, error) {
	s.lastQuery = q
	return s.Repository.List(ctx, q)
}

func setupTestStore(t *testing.T) *sqldb.Store {
	t.Helper()
	db, err := sqldb.Open(context.Background(), sqldb.Options{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "service.db"),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupCatalog(t *testing.T) (*Catalog, *fakeRecorder) {
	t.Helper()
	rec := &fakeRecorder{}
	return NewCatalog(setupTestStore(t), validation.New(), CatalogOptions{PageSize: 2, Recorder: rec}), rec
}

func seedBooks(t *testing.T, c *Catalog, n int) {
	t.Helper()
	for i := range n {
		_, err := c.Books.Create(context.Background(), []byte(`{"title":"Boek `+string(rune('A'+i))+`","author":"Auteur"}`))
		require.NoError(t, err)
	}
}

func TestResource_CreateGet(t *testing.T) {
	c, rec := setupCatalog(t)
	ctx := context.Background()

	book, err := c.Books.Create(ctx, []byte(`{"title":"De Avonden","author":"Gerard Reve","published_year":1947}`))
	require.NoError(t, err)
	assert.Positive(t, book.ID)
	assert.Equal(t, recordedOp{"Book", OpCreate, metrics.OutcomeOK}, rec.last())

	got, err := c.Books.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "De Avonden", got.Title)
	assert.Equal(t, "Gerard Reve", got.Author)
	assert.Equal(t, 1947, got.PublishedYear)
}

func TestResource_CreateIgnoresClientID(t *testing.T) {
	c, _ := setupCatalog(t)

	rule, err := c.Rules.Create(context.Background(), []byte(`{"id":999,"name":"meervoud","created_at":"2000-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.NotEqual(t, int64(999), rule.ID)
	assert.Greater(t, rule.CreatedAt.Year(), 2000)
}

func TestResource_CreateValidation(t *testing.T) {
	c, rec := setupCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"missing required", `{"author":"x"}`, "title"},
		{"bad article", `{"singular":"huis","plural":"huizen","article":"den"}`, "article"},
		{"wrong type", `{"title":"x","author":"y","published_year":"nineteen"}`, "published_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if strings.Contains(tt.body, "singular") {
				_, err = c.NormalNouns.Create(ctx, []byte(tt.body))
			} else {
				_, err = c.Books.Create(ctx, []byte(tt.body))
			}

			var de *domainerrors.Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, domainerrors.CodeValidation, de.Code)
			assert.Contains(t, de.Details, tt.wantField)
			assert.Equal(t, metrics.OutcomeInvalid, rec.last().outcome)
		})
	}

	_, err := c.Books.Create(ctx, []byte(`[1,2]`))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	_, err = c.Books.Create(ctx, []byte(`{"title":`))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestResource_NotFound(t *testing.T) {
	c, rec := setupCatalog(t)
	ctx := context.Background()

	_, err := c.AdjectiveNouns.Get(ctx, 404)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, "Adjective Noun not found", err.Error())
	assert.Equal(t, recordedOp{"Adjective Noun", OpShow, metrics.OutcomeNotFound}, rec.last())

	_, err = c.AdjectiveNouns.Update(ctx, 404, []byte(`{}`))
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = c.AdjectiveNouns.Delete(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestResource_UpdateIsPartial(t *testing.T) {
	c, _ := setupCatalog(t)
	ctx := context.Background()

	noun, err := c.NormalNouns.Create(ctx, []byte(`{"singular":"huis","plural":"huizen","article":"het","diminutive":"huisje"}`))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)

	updated, err := c.NormalNouns.Update(ctx, noun.ID, []byte(`{"diminutive":"huisjes","id":77}`))
	require.NoError(t, err)

	assert.Equal(t, noun.ID, updated.ID)
	assert.Equal(t, "huisjes", updated.Diminutive)
	assert.Equal(t, "huis", updated.Singular)
	assert.Equal(t, "huizen", updated.Plural)
	assert.Equal(t, "het", updated.Article)
	assert.True(t, noun.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(noun.UpdatedAt))

	stored, err := c.NormalNouns.Get(ctx, noun.ID)
	require.NoError(t, err)
	assert.Equal(t, "huisjes", stored.Diminutive)
	assert.Equal(t, "huis", stored.Singular)
}

func TestResource_UpdateRevalidates(t *testing.T) {
	c, _ := setupCatalog(t)
	ctx := context.Background()

	review := createReview(t, c)

	_, err := c.Reviews.Update(ctx, review.ID, []byte(`{"rating":9}`))
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	stored, err := c.Reviews.Get(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
}

func createReview(t *testing.T, c *Catalog) *domain.Review {
	t.Helper()
	ctx := context.Background()
	book, err := c.Books.Create(ctx, []byte(`{"title":"Het Achterhuis","author":"Anne Frank"}`))
	require.NoError(t, err)
	review, err := c.Reviews.Create(ctx, []byte(`{"book_id":`+strconv.FormatInt(book.ID, 10)+`,"reviewer":"Lex","rating":4}`))
	require.NoError(t, err)
	return review
}

func TestResource_Delete(t *testing.T) {
	c, rec := setupCatalog(t)
	ctx := context.Background()

	adj, err := c.Adjectives.Create(ctx, []byte(`{"word":"groot","comparative":"groter","superlative":"grootst"}`))
	require.NoError(t, err)

	require.NoError(t, c.Adjectives.Delete(ctx, adj.ID))
	assert.Equal(t, recordedOp{"Adjective", OpDelete, metrics.OutcomeOK}, rec.last())

	_, err = c.Adjectives.Get(ctx, adj.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestResource_ForeignKeyConflicts(t *testing.T) {
	c, rec := setupCatalog(t)
	ctx := context.Background()

	_, err := c.Reviews.Create(ctx, []byte(`{"book_id":12345,"reviewer":"Lex","rating":3}`))
	require.ErrorIs(t, err, domainerrors.ErrConflict)
	assert.Equal(t, metrics.OutcomeConflict, rec.last().outcome)

	review := createReview(t, c)
	err = c.Books.Delete(ctx, review.BookID)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestResource_ListUnpaged(t *testing.T) {
	c, _ := setupCatalog(t)
	ctx := context.Background()

	for _, w := range []string{"groot", "klein", "mooi"} {
		_, err := c.Adjectives.Create(ctx, []byte(`{"word":"`+w+`"}`))
		require.NoError(t, err)
	}

	page, err := c.Adjectives.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.False(t, page.Paginated)
	assert.Len(t, page.Rows, 3)

	page, err = c.Adjectives.List(ctx, ListParams{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "klein", page.Rows[0].Word)

	page, err = c.Adjectives.List(ctx, ListParams{Filters: map[string]string{"word": "mooi"}})
	require.NoError(t, err)
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "mooi", page.Rows[0].Word)
}

func TestResource_PagedOffsetIsLimitTimesPage(t *testing.T) {
	db := setupTestStore(t)
	spy := &spyRepo{Repository: db.Books}
	books := NewResource[domain.Book](
		Descriptor{Name: "Book", Plural: "Books"}, spy, validation.New(),
		WithPaging(Paging{PageSize: 2, DefaultPage: BookDefaultPage}),
	)
	ctx := context.Background()

	for _, title := range []string{"a", "b", "c", "d", "e", "f"} {
		_, err := books.Create(ctx, []byte(`{"title":"`+title+`","author":"x"}`))
		require.NoError(t, err)
	}

	page, err := books.List(ctx, ListParams{Page: 2, Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, 4, spy.lastQuery.Skip)
	assert.Equal(t, 2, spy.lastQuery.Limit, "caller limit is overridden")
	assert.True(t, page.Paginated)
	assert.Equal(t, 6, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "e", page.Rows[0].Title)
}

func TestResource_PagedDefaults(t *testing.T) {
	c, _ := setupCatalog(t)
	ctx := context.Background()
	seedBooks(t, c, 3)

	page, err := c.Books.List(ctx, ListParams{Skip: 1})
	require.NoError(t, err)
	assert.Equal(t, BookDefaultPage, page.Page)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "Boek B", page.Rows[0].Title)

	_, err = c.Politiebureaus.Create(ctx, []byte(`{"naam":"Bureau Centrum","email":"centrum@politie.nl"}`))
	require.NoError(t, err)

	page2, err := c.Politiebureaus.List(ctx, ListParams{})
	require.NoError(t, err)
	assert.Equal(t, PolitiebureauDefaultPage, page2.Page)
	assert.Equal(t, 1, page2.Total)
	assert.Len(t, page2.Rows, 1)
}

func TestResource_PagedTotalCountsWholeTable(t *testing.T) {
	c, _ := setupCatalog(t)
	ctx := context.Background()
	seedBooks(t, c, 3)
	_, err := c.Books.Create(ctx, []byte(`{"title":"Ander","author":"Iemand"}`))
	require.NoError(t, err)

	page, err := c.Books.List(ctx, ListParams{Filters: map[string]string{"author": "Auteur"}})
	require.NoError(t, err)
	assert.Len(t, page.Rows, 2)
	assert.Equal(t, 4, page.Total)
}

func TestResource_PagedRejectsOverflowingPage(t *testing.T) {
	c, rec := setupCatalog(t)
	seedBooks(t, c, 3)

	for _, p := range []int{math.MaxInt/2 + 1, math.MaxInt, -1} {
		_, err := c.Books.List(context.Background(), ListParams{Page: p})
		require.Error(t, err, "page %d", p)

		var domainErr *domainerrors.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
		assert.Equal(t, map[string]string{"page": "is out of range"}, domainErr.Details)
	}
	assert.Equal(t, metrics.OutcomeInvalid, rec.last().outcome)
}

func TestDescriptorMessages(t *testing.T) {
	d := Descriptor{Name: "Politiebureaus Locatie", Plural: "Politiebureaus Locaties"}

	assert.Equal(t, "Politiebureaus Locaties retrieved successfully", d.ListMessage())
	assert.Equal(t, "Politiebureaus Locatie saved successfully", d.Message("saved"))
	assert.Equal(t, "Politiebureaus Locatie not found", d.NotFoundMessage())
}

func TestCatalog_Paths(t *testing.T) {
	c, _ := setupCatalog(t)

	assert.Equal(t, "/api/books", c.Books.Path)
	assert.True(t, c.Books.Paged())
	assert.True(t, c.Politiebureaus.Paged())
	assert.False(t, c.Reviews.Paged())
	assert.Equal(t, "/api/v1/politiebureaus_locaties", c.PolitiebureausLocaties.Path)
	assert.Equal(t, "/api/compositionNounReferences", c.CompositionNounReferences.Path)
}

type loginCounter struct{ outcomes []string }

func (l *loginCounter) RecordLogin(outcome string) { l.outcomes = append(l.outcomes, outcome) }

func setupAuth(t *testing.T) (*AuthService, *loginCounter) {
	t.Helper()
	tokens, err := auth.NewTokenService([]byte(strings.Repeat("s", 32)), time.Hour)
	require.NoError(t, err)

	counter := &loginCounter{}
	svc := NewAuthService(setupTestStore(t), tokens, validation.New(), counter, nil)
	svc.hasher = auth.Argon2Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	return svc, counter
}

func TestAuthService_LoginFlow(t *testing.T) {
	svc, counter := setupAuth(t)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, CreateUserRequest{Email: "lex@example.nl", Name: "Lex", Password: "woordenboek"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, "usr-"))

	res, err := svc.Login(ctx, LoginRequest{Email: "LEX@example.nl", Password: "woordenboek"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", res.TokenType)
	assert.Equal(t, user.ID, res.User.ID)

	me, err := svc.VerifyAccessToken(ctx, res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "lex@example.nl", me.Email)

	assert.Equal(t, []string{metrics.OutcomeOK}, counter.outcomes)
}

func TestAuthService_LoginFailures(t *testing.T) {
	svc, counter := setupAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Email: "lex@example.nl", Password: "woordenboek"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "lex@example.nl", Password: "fout-wachtwoord"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.nl", Password: "woordenboek"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "not-an-email", Password: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	assert.Equal(t, []string{metrics.OutcomeInvalid, metrics.OutcomeInvalid, metrics.OutcomeInvalid}, counter.outcomes)
}

func TestAuthService_DuplicateUser(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{Email: "lex@example.nl", Password: "woordenboek"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Email: "Lex@Example.nl", Password: "woordenboek"})
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyExists)

	_, err = svc.CreateUser(ctx, CreateUserRequest{Email: "kort@example.nl", Password: "kort"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestAuthService_VerifyRejectsGarbage(t *testing.T) {
	svc, _ := setupAuth(t)

	_, err := svc.VerifyAccessToken(context.Background(), "v4.local.nope")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
