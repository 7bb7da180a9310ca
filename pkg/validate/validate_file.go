package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — валидирует файл со снимками корзины как JSON или JSONL и пишет валидный вывод в writer.
func ValidateFile(ctx context.Context, validator *SnapshotValidator, filePath string, format InputFormat, ow io.Writer) (string, error) {
	resSummary := ""

	// auto по расширению
	if format == FormatAuto {
		switch strings.ToLower(filepath.Ext(filePath)) {
		case ".jsonl":
			format = FormatJSONL
		default:
			// по умолчанию считаем JSON (так лежат файлы хранилища)
			format = FormatJSON
		}
	}

	if format != FormatJSON && format != FormatJSONL {
		return resSummary, fmt.Errorf("unsupported format: %s", format)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return resSummary, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	if format == FormatJSONL {
		result, err := ValidateJSONLStream(ctx, validator, file, ow)
		if err != nil {
			return resSummary, err
		}
		return fmt.Sprintf("%d valid / %d invalid", result.ValidLinesCount, result.InvalidLinesCount), nil
	}

	raw, err := io.ReadAll(file)
	if err != nil {
		return resSummary, fmt.Errorf("read file: %w", err)
	}
	items, err := ValidateSnapshotFromJSON(ctx, validator, raw)
	if err != nil {
		return "0 valid / 1 invalid", err
	}
	if err := writeSnapshot(ow, items); err != nil {
		return resSummary, err
	}
	return "1 valid / 0 invalid", nil
}
