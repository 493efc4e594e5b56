package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"vocab_drill/internal/model"

	"github.com/google/uuid"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディをデコードします。未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil || r.Body == http.NoBody {
		return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.Is(err, io.EOF):
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディが空です。", "", model.ErrInvalidInput)
		case errors.As(err, &typeErr):
			return model.NewAppError("INVALID_REQUEST_BODY", "フィールドの型が正しくありません。", typeErr.Field, model.ErrInvalidInput)
		case strings.HasPrefix(err.Error(), "json: unknown field"):
			field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
			return model.NewAppError("INVALID_REQUEST_BODY", "不明なフィールドが含まれています。", field, model.ErrInvalidInput)
		default:
			return model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディのJSON形式が正しくありません。", "", model.ErrInvalidInput)
		}
	}
	return nil
}

// ParseUUIDParam はパスパラメータのUUIDを解析します。
func ParseUUIDParam(value, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, model.NewAppError("INVALID_PATH_PARAM", "IDの形式が正しくありません。", field, model.ErrInvalidInput)
	}
	return id, nil
}
