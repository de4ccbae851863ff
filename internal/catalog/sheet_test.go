package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type valuesReaderStub struct {
	rows [][]string
	err  error
}

func (s valuesReaderStub) Values(_ context.Context, _ string) ([][]string, error) {
	return s.rows, s.err
}

func TestSheetSource_LoadAll(t *testing.T) {
	reader := valuesReaderStub{rows: [][]string{
		{"1", "ChatGPT", "https://chat.openai.com", "Assistant", "", "Foundational AI", "", "personal"},
		{"5", "WSC Sports", "https://wsc-sports.com", "Highlights", "/screenshots/wsc.jpg", "", "Creative & Personalization", "enterprise"},
		{""},
		{"bad-id", "No Numeric ID", "https://example.com"},
	}}

	tools, err := SheetSource{Reader: reader, Range: "Tools!A2:H"}.LoadAll(context.Background())
	require.NoError(t, err)

	require.Len(t, tools, 3)
	assert.Equal(t, 1, tools[0].ID)
	assert.Equal(t, "Foundational AI", tools[0].Category)
	assert.Equal(t, "Creative & Personalization", tools[1].Sector)
	// нечисловой id маппится в ноль, запись не теряется
	assert.Equal(t, 0, tools[2].ID)
	assert.Equal(t, "No Numeric ID", tools[2].Name)
}

func TestSheetSource_ReaderFailure(t *testing.T) {
	reader := valuesReaderStub{err: errors.New("quota exceeded")}

	_, err := SheetSource{Reader: reader, Range: "Tools!A2:H"}.LoadAll(context.Background())
	require.Error(t, err)
}
