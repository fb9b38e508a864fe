package handlers

import (
	"net/http"
	"reflect"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/shortlink/internal/qr"
)

// RouteOptions toggles optional routes.
type RouteOptions struct {
	// DebugListing registers GET /urls, which discloses every mapping to
	// unauthenticated callers.
	DebugListing bool
}

// RegisterRoutes registers all URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler, opts RouteOptions) {
	huma.Register(api, huma.Operation{
		OperationID:   "shorten",
		Method:        http.MethodPost,
		Path:          "/shorten",
		Summary:       "Create short URL",
		Description:   "Stores the URL under a new random 7-character identifier.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusOK,
		RequestBody: &huma.RequestBody{
			Content: map[string]*huma.MediaType{
				"application/json": {
					Schema: api.OpenAPI().Components.Schemas.Schema(
						reflect.TypeOf(ShortenRequestBody{}), true, "ShortenRequestBody"),
				},
			},
		},
	}, urlHandler.Shorten)

	huma.Register(api, huma.Operation{
		OperationID: "qr",
		Method:      http.MethodGet,
		Path:        "/qr/{shortId}",
		Summary:     "Render QR code",
		Description: "Renders the short URL as a 200x200 PNG QR code.",
		Tags:        []string{"URLs"},
		Responses: map[string]*huma.Response{
			"200": {
				Description: "QR code image",
				Content: map[string]*huma.MediaType{
					qr.ContentType: {},
				},
			},
		},
	}, urlHandler.QRCode)

	if opts.DebugListing {
		huma.Register(api, huma.Operation{
			OperationID: "urls",
			Method:      http.MethodGet,
			Path:        "/urls",
			Summary:     "List all URLs",
			Description: "Debugging aid. Lists every mapping without authentication; disable in production.",
			Tags:        []string{"Debug"},
		}, urlHandler.ListURLs)
	}

	huma.Register(api, huma.Operation{
		OperationID:   "redirect",
		Method:        http.MethodGet,
		Path:          "/{shortId}",
		Summary:       "Redirect to original URL",
		Description:   "Redirects to the original URL associated with the short identifier.",
		Tags:          []string{"URLs"},
		DefaultStatus: http.StatusFound,
	}, urlHandler.Redirect)
}
