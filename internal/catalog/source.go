// Package catalog содержит источники данных каталога инструментов:
// JSON-файл на диске, лист Google Sheets и встроенный резервный список.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/ai-advantage/resources-api/internal/models"
)

// Source поставляет полный список записей каталога.
type Source interface {
	LoadAll(ctx context.Context) ([]models.ToolRecord, error)
}

// StaticSource отдает фиксированный список записей, обычно встроенный
// резервный каталог.
type StaticSource []models.ToolRecord

// LoadAll возвращает список как есть.
func (s StaticSource) LoadAll(_ context.Context) ([]models.ToolRecord, error) {
	return s, nil
}

// FileSource читает каталог из JSON-файла.
type FileSource struct {
	Path string
}

// LoadAll читает и разбирает файл целиком. Порядок записей — порядок в файле.
func (f FileSource) LoadAll(_ context.Context) ([]models.ToolRecord, error) {
	const op = "catalog.FileSource.LoadAll"

	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var tools []models.ToolRecord
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return tools, nil
}
