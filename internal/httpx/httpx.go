package httpx

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// DecodeJSON decodes a request body strictly: unknown fields and trailing
// content are rejected. Used for admin requests where the payload shape is
// fully under our control.
func DecodeJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain a single JSON object")
	}
	return nil
}

// DecodeJSONLenient ignores unknown fields. The public booking intake uses
// it so a caller smuggling id/status/createdAt is silently ignored rather
// than rejected.
func DecodeJSONLenient(body io.Reader, v interface{}) error {
	return json.NewDecoder(io.LimitReader(body, maxBodyBytes)).Decode(v)
}

func ValidationDetails(errs validator.ValidationErrors) map[string]string {
	if len(errs) == 0 {
		return nil
	}
	details := make(map[string]string, len(errs))
	for _, err := range errs {
		details[err.Field()] = err.Tag()
	}
	return details
}
