// Package gen holds the server interface, models and chi wiring generated
// from spec/openapi.yaml. Regenerate with `go generate ./...` after editing
// the document; never edit api.gen.go by hand.
package gen

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.0 -config cfg.yaml ../../../spec/openapi.yaml
