package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlink/internal/events"
	"github.com/serroba/shortlink/internal/messaging"
	"github.com/serroba/shortlink/internal/qr"
	"github.com/serroba/shortlink/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	strategy          shortener.Strategy
	store             shortener.Repository
	renderer          qr.Renderer
	baseURL           string
	publishURLCreated messaging.Publish[events.URLCreatedEvent]
	logger            *zap.Logger
}

// NewURLHandler creates a new URL handler. Short URLs are built as baseURL + "/" + code.
func NewURLHandler(
	strategy shortener.Strategy,
	store shortener.Repository,
	renderer qr.Renderer,
	baseURL string,
	publishURLCreated messaging.Publish[events.URLCreatedEvent],
	logger *zap.Logger,
) *URLHandler {
	return &URLHandler{
		strategy:          strategy,
		store:             store,
		renderer:          renderer,
		baseURL:           baseURL,
		publishURLCreated: publishURLCreated,
		logger:            logger,
	}
}

type requestMetaKey struct{}

// RequestMeta holds HTTP request metadata attached to creation events.
type RequestMeta struct {
	ClientIP  string
	UserAgent string
}

// ContextWithRequestMeta adds request metadata to context.
func ContextWithRequestMeta(ctx context.Context, meta RequestMeta) context.Context {
	return context.WithValue(ctx, requestMetaKey{}, meta)
}

// RequestMetaFromContext extracts request metadata from context.
func RequestMetaFromContext(ctx context.Context) RequestMeta {
	if v, ok := ctx.Value(requestMetaKey{}).(RequestMeta); ok {
		return v
	}

	return RequestMeta{}
}

// requestedURL extracts the url field of a shorten body. Bodies that are not
// objects, and url values that are absent, null, false, 0 or empty, count as
// missing. Malformed JSON and any other non-string url are invalid.
func requestedURL(raw []byte) (string, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return "", shortener.ErrURLRequired
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", shortener.ErrInvalidURL
	}

	fields, ok := body.(map[string]any)
	if !ok {
		return "", shortener.ErrURLRequired
	}

	switch v := fields["url"].(type) {
	case nil:
		return "", shortener.ErrURLRequired
	case bool:
		if !v {
			return "", shortener.ErrURLRequired
		}
	case float64:
		if v == 0 {
			return "", shortener.ErrURLRequired
		}
	case string:
		if err := shortener.ValidateURL(v); err != nil {
			return "", err
		}

		return v, nil
	}

	return "", shortener.ErrInvalidURL
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	longURL, err := requestedURL(req.RawBody)
	if err != nil {
		if errors.Is(err, shortener.ErrURLRequired) {
			return nil, huma.Error400BadRequest(MsgURLRequired)
		}

		return nil, huma.Error400BadRequest(MsgInvalidURL)
	}

	shortURL, err := h.strategy.Shorten(ctx, longURL)
	if err != nil {
		h.logger.Error("failed to shorten url", zap.Error(err))

		return nil, huma.Error500InternalServerError(MsgInternalError)
	}

	link := shortener.Link(h.baseURL, shortURL.Code)

	meta := RequestMetaFromContext(ctx)
	event := &events.URLCreatedEvent{
		ShortID:     string(shortURL.Code),
		OriginalURL: shortURL.OriginalURL,
		ShortURL:    link,
		CreatedAt:   shortURL.CreatedAt,
		ClientIP:    meta.ClientIP,
		UserAgent:   meta.UserAgent,
	}

	if err := h.publishURLCreated(ctx, event); err != nil {
		h.logger.Error("failed to publish url created event",
			zap.String("shortId", event.ShortID),
			zap.Error(err),
		)
	}

	resp := &ShortenResponse{}
	resp.Body.ShortID = string(shortURL.Code)
	resp.Body.ShortURL = link
	resp.Body.OriginalURL = shortURL.OriginalURL

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *ShortIDRequest) (*RedirectResponse, error) {
	shortURL, err := h.lookup(ctx, req.ShortID)
	if err != nil {
		return nil, err
	}

	return &RedirectResponse{
		Status:   http.StatusFound,
		Location: shortURL.OriginalURL,
	}, nil
}

// QRCode renders the short URL, rebuilt the same way as in Shorten, on every request.
func (h *URLHandler) QRCode(ctx context.Context, req *ShortIDRequest) (*QRResponse, error) {
	shortURL, err := h.lookup(ctx, req.ShortID)
	if err != nil {
		return nil, err
	}

	png, err := h.renderer.Render(shortener.Link(h.baseURL, shortURL.Code))
	if err != nil {
		h.logger.Error("failed to render qr code",
			zap.String("shortId", req.ShortID),
			zap.Error(err),
		)

		return nil, huma.Error500InternalServerError(MsgQRFailed)
	}

	return &QRResponse{
		ContentType:  qr.ContentType,
		CacheControl: "no-store",
		Body:         png,
	}, nil
}

// ListURLs exposes every mapping without authentication. It is a debugging aid.
func (h *URLHandler) ListURLs(ctx context.Context, _ *struct{}) (*ListURLsResponse, error) {
	urls, err := h.store.List(ctx)
	if err != nil {
		h.logger.Error("failed to list urls", zap.Error(err))

		return nil, huma.Error500InternalServerError(MsgInternalError)
	}

	h.logger.Warn("debug url listing served", zap.Int("count", len(urls)))

	resp := &ListURLsResponse{Body: make([]URLEntry, 0, len(urls))}

	for _, u := range urls {
		resp.Body = append(resp.Body, URLEntry{
			ShortID:  string(u.Code),
			LongURL:  u.OriginalURL,
			ShortURL: shortener.Link(h.baseURL, u.Code),
		})
	}

	return resp, nil
}

func (h *URLHandler) lookup(ctx context.Context, shortID string) (*shortener.ShortURL, error) {
	shortURL, err := h.store.GetByCode(ctx, shortener.Code(shortID))
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound(MsgNotFound)
		}

		h.logger.Error("failed to get url", zap.String("shortId", shortID), zap.Error(err))

		return nil, huma.Error500InternalServerError(MsgInternalError)
	}

	return shortURL, nil
}
