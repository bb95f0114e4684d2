package helpers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type contextKey string

const (
	ContextKeySessionKey contextKey = "sessionKey"
)

var Validate = validator.New()

func SessionKeyFromContext(ctx context.Context) string {
	key, _ := ctx.Value(ContextKeySessionKey).(string)
	return key
}

func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}
	return nil
}

// ValidationMessage flattens validator errors into one shopper-readable line.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			fields = append(fields, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "email":
			fields = append(fields, "email address is not valid")
		case "min", "gt", "gte":
			fields = append(fields, fmt.Sprintf("%s is too small", strings.ToLower(fe.Field())))
		default:
			fields = append(fields, fmt.Sprintf("%s is not valid", strings.ToLower(fe.Field())))
		}
	}
	return strings.Join(fields, ", ")
}
