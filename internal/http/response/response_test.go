package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ai-advantage/resources-api/internal/models"
)

func TestSubscribed(t *testing.T) {
	data, err := json.Marshal(Subscribed("Thank you for subscribing!", "a@b.com"))
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"success":true,"message":"Thank you for subscribing!","email":"a@b.com"}`,
		string(data))
}

func TestConflict_KeepsSuccessFalseWithoutError(t *testing.T) {
	data, err := json.Marshal(Conflict("Email already subscribed"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"message":"Email already subscribed"}`, string(data))
}

func TestSubscriberList_EmptyKeepsCountAndArray(t *testing.T) {
	data, err := json.Marshal(SubscriberList(nil))
	require.NoError(t, err)

	// count и пустой массив присутствуют даже без подписчиков
	assert.Contains(t, string(data), `"count":0`)

	var decoded struct {
		Subscribers []models.Subscriber `json:"subscribers"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotNil(t, decoded.Subscribers)
}

func TestSubscriberList_Counts(t *testing.T) {
	resp := SubscriberList([]models.Subscriber{
		{Email: "a@b.com", SubscribedAt: "2025-03-01T00:00:00Z"},
	})

	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
	assert.True(t, resp.Success)
}

func TestErr(t *testing.T) {
	data, err := json.Marshal(Err("Email is required"))
	require.NoError(t, err)

	assert.JSONEq(t, `{"success":false,"error":"Email is required"}`, string(data))
}
