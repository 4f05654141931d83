package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment so business context (listing_id,
// organization_id, etc.) is included in every log statement without manual plumbing.
type LogFields struct {
	ListingID      *int64  // Inventory listing ID
	OrganizationID *int64  // Owning organization ID
	UserID         *string // Authenticated user identity
	RequestID      *string // HTTP request ID
	Component      string  // Component name (e.g., "inventory.service.listing")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ListingID != nil {
		result.ListingID = next.ListingID
	}
	if next.OrganizationID != nil {
		result.OrganizationID = next.OrganizationID
	}
	if next.UserID != nil {
		result.UserID = next.UserID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ListingID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
