package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func base[T any, PT Model[T]](row PT) *Record {
	return row.Base()
}

func TestRecord_BaseIsEmbedded(t *testing.T) {
	book := &Book{Title: "Max Havelaar"}
	book.ID = 7

	r := base[Book](book)
	require.Same(t, &book.Record, r)

	r.ID = 8
	assert.Equal(t, int64(8), book.ID)
}

func TestRecord_Timestamps(t *testing.T) {
	var r Record
	r.InitTimestamps()
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, r.CreatedAt, r.UpdatedAt)

	created := r.CreatedAt
	time.Sleep(time.Millisecond)
	r.Touch()
	assert.Equal(t, created, r.CreatedAt)
	assert.True(t, r.UpdatedAt.After(created))
}

func TestRecord_JSONIsFlat(t *testing.T) {
	noun := NormalNoun{Singular: "huis", Plural: "huizen", Article: ArticleHet}
	noun.ID = 3

	data, err := json.Marshal(noun)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.InDelta(t, 3, decoded["id"], 0)
	assert.Equal(t, "huis", decoded["singular"])
	assert.Contains(t, decoded, "created_at")
	assert.NotContains(t, decoded, "Record")
}

func TestUser_PasswordHashHidden(t *testing.T) {
	data, err := json.Marshal(User{ID: "usr-1", Email: "a@b.nl", PasswordHash: "secret"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
}
