// Package docs registers the HTTP contract with swag so that echo-swagger can
// serve it under /swagger/.
package docs

import (
	"encoding/json"

	"orderflow/api"

	"github.com/swaggo/swag"
)

// @title Orderflow API
// @version 1.0
// @description Order lifecycle engine for a single-restaurant ordering system.
// @BasePath /api/v1
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "Orderflow API",
	Description:      "Order lifecycle engine for a single-restaurant ordering system.",
	InfoInstanceName: swag.Name,
}

func init() {
	if doc, err := api.Load(); err == nil {
		if raw, err := json.Marshal(doc); err == nil {
			SwaggerInfo.SwaggerTemplate = string(raw)
		}
	}
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
