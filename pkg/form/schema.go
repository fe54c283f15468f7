package form

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

var (
	payloadSchemaOnce sync.Once
	payloadSchema     *openapi3.Schema
)

// PayloadSchema describes the submit payload as an OpenAPI schema so the
// receiving transport can publish the same contract. Callers must not mutate
// the returned schema.
func PayloadSchema() *openapi3.Schema {
	payloadSchemaOnce.Do(func() {
		noExtra := false
		schema := openapi3.NewObjectSchema().
			WithProperty("name", openapi3.NewStringSchema().WithMinLength(1)).
			WithProperty("email", openapi3.NewStringSchema().WithMinLength(1)).
			WithProperty("phone", openapi3.NewStringSchema().WithMinLength(1).WithNullable())
		schema.Required = []string{"name", "email"}
		schema.AdditionalProperties = openapi3.AdditionalProperties{Has: &noExtra}
		schema.Title = "SignupPayload"
		payloadSchema = schema
	})
	return payloadSchema
}

// ValidatePayload checks p against PayloadSchema.
func ValidatePayload(p Payload) error {
	value, err := p.Map()
	if err != nil {
		return fmt.Errorf("form: encode payload: %w", err)
	}
	if err := PayloadSchema().VisitJSON(value); err != nil {
		return fmt.Errorf("form: payload contract: %w", err)
	}
	return nil
}
