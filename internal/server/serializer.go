package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"bedrock-bridge/internal/codec"
)

// jsonSerializer routes echo's JSON handling through the shared codec.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := codec.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	if err := codec.DecodeSingle(c.Request().Body, i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid JSON payload: %v", err)).SetInternal(err)
	}
	return nil
}
