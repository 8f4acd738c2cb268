package llmclient

import "context"

type ctxKeyOperation struct{}
type ctxKeySchema struct{}

// WithOperation tags the context with the logical operation name used by
// logging and the fake provider.
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, ctxKeyOperation{}, op)
}

// OperationFrom returns the operation stored in the context.
func OperationFrom(ctx context.Context) string {
	if v := ctx.Value(ctxKeyOperation{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return "unknown"
}

// WithResponseSchema asks providers that support it to constrain the JSON
// output to schema.
func WithResponseSchema(ctx context.Context, schema *Schema) context.Context {
	return context.WithValue(ctx, ctxKeySchema{}, schema)
}

// ResponseSchemaFrom returns the schema stored in the context, or nil.
func ResponseSchemaFrom(ctx context.Context) *Schema {
	if v := ctx.Value(ctxKeySchema{}); v != nil {
		if s, ok := v.(*Schema); ok {
			return s
		}
	}
	return nil
}
