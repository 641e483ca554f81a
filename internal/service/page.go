package service

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"loremserver/internal/content"
)

const tracerName = "loremserver/internal/service"

// PageService defines the use cases behind the public routes.
type PageService interface {
	// Hello returns the root page body.
	Hello(ctx context.Context) string

	// Lorem returns the page for id: the id followed by the constant filler text.
	Lorem(ctx context.Context, id string) string
}

// pageService is a concrete implementation of PageService.
type pageService struct {
	tracer trace.Tracer
}

// NewPageService constructs a new PageService that reports spans to the global tracer provider.
func NewPageService() PageService {
	return &pageService{tracer: otel.Tracer(tracerName)}
}

func (s *pageService) Hello(ctx context.Context) string {
	_, span := s.tracer.Start(ctx, "service.Hello")
	defer span.End()
	return content.Hello
}

// Lorem renders the page without validating id. The caller owns id; it must
// not alias a buffer that is reused after the request ends, since the span
// attribute outlives the call.
func (s *pageService) Lorem(ctx context.Context, id string) string {
	_, span := s.tracer.Start(ctx, "service.Lorem",
		trace.WithAttributes(attribute.String("page.id", id)),
	)
	defer span.End()
	return content.Render(id)
}
