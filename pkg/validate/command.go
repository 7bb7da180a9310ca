package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Gunvolt24/swiftcart/internal/domain"
	"github.com/Gunvolt24/swiftcart/internal/ports"
)

// ErrInvalidCommand — сообщение с командой корзины нельзя обработать (повтор не поможет).
var ErrInvalidCommand = errors.New("cart command validation failed")

// CommandFromJSON — строгий разбор команды: неизвестные поля и хвост после объекта запрещены.
func CommandFromJSON(ctx context.Context, validator ports.CandidateValidator, raw []byte) (*domain.Command, error) {
	var cmd domain.Command
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(&cmd); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %w", ErrInvalidCommand, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidCommand)
	}
	if err := ValidateCommand(ctx, validator, &cmd); err != nil {
		return nil, err
	}
	return &cmd, nil
}

// ValidateCommand — проверка операции и её аргументов.
func ValidateCommand(ctx context.Context, validator ports.CandidateValidator, cmd *domain.Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: команда не может быть nil", ErrInvalidCommand)
	}

	switch cmd.Op {
	case domain.OpAdd:
		if cmd.Product == nil {
			return fmt.Errorf("%w: для add нужен product", ErrInvalidCommand)
		}
		if err := validator.Validate(ctx, cmd.Product); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidCommand, err)
		}
	case domain.OpRemove, domain.OpIncrease, domain.OpDecrease:
		if !scalarID(cmd.ID) || strings.TrimSpace(domain.NormalizeID(cmd.ID)) == "" {
			return fmt.Errorf("%w: для %s нужен id (строка или число)", ErrInvalidCommand, cmd.Op)
		}
	case domain.OpClear:
	default:
		return fmt.Errorf("%w: неизвестная операция %q", ErrInvalidCommand, cmd.Op)
	}
	return nil
}

// scalarID — id из JSON допускается только строкой или числом.
func scalarID(id any) bool {
	switch id.(type) {
	case string, json.Number, int, int64, float64:
		return true
	default:
		return false
	}
}
