package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailList_UnmarshalJSON(t *testing.T) {
	t.Run("single string", func(t *testing.T) {
		var e EmailList
		require.NoError(t, json.Unmarshal([]byte(`"a@x.com"`), &e))
		assert.Equal(t, EmailList{"a@x.com"}, e)
	})

	t.Run("array of strings", func(t *testing.T) {
		var e EmailList
		require.NoError(t, json.Unmarshal([]byte(`["a@x.com","b@x.com"]`), &e))
		assert.Equal(t, EmailList{"a@x.com", "b@x.com"}, e)
	})

	t.Run("null yields empty list", func(t *testing.T) {
		var e EmailList
		require.NoError(t, json.Unmarshal([]byte(`null`), &e))
		assert.Equal(t, EmailList{}, e)
	})

	t.Run("invalid input", func(t *testing.T) {
		var e EmailList
		assert.Error(t, json.Unmarshal([]byte(`42`), &e))
	})
}

func TestAccount_JSONOmitsPasswordHash(t *testing.T) {
	account := Account{
		ID:           "id-1",
		UserName:     "alice",
		PasswordHash: "$2a$10$hash",
	}

	data, err := json.Marshal(account)
	require.NoError(t, err)

	assert.Contains(t, string(data), "alice")
	assert.NotContains(t, string(data), "password")
	assert.NotContains(t, string(data), "$2a$")
}
