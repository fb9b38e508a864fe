package handlers

// ShortenRequest carries the undecoded body of a shorten call. The body is
// decoded by the handler so every malformed shape is answered with a 400.
type ShortenRequest struct {
	RawBody []byte
}

// ShortenRequestBody documents the shorten body in the OpenAPI spec.
type ShortenRequestBody struct {
	URL string `doc:"The URL to shorten" example:"https://example.com/page" json:"url"`
}

// ShortenResponse is the response for a successfully created short URL.
type ShortenResponse struct {
	Body struct {
		ShortID     string `doc:"The short identifier" example:"aB3xY9z"                       json:"shortId"`
		ShortURL    string `doc:"The full short URL"   example:"http://localhost:3000/aB3xY9z" json:"shortUrl"`
		OriginalURL string `doc:"The original URL"     example:"https://example.com/page"      json:"originalUrl"`
	}
}

// ShortIDRequest carries the short identifier from the path.
type ShortIDRequest struct {
	ShortID string `doc:"The short identifier" example:"aB3xY9z" path:"shortId"`
}

// RedirectResponse sends the client to the original URL.
type RedirectResponse struct {
	Status   int
	Location string `doc:"The original URL" header:"Location"`
}

// QRResponse is a PNG image encoding the short URL.
type QRResponse struct {
	ContentType  string `header:"Content-Type"`
	CacheControl string `header:"Cache-Control"`
	Body         []byte
}

// URLEntry is a single mapping in the debug listing.
type URLEntry struct {
	ShortID  string `doc:"The short identifier" json:"shortId"`
	LongURL  string `doc:"The original URL"     json:"longUrl"`
	ShortURL string `doc:"The full short URL"   json:"shortUrl"`
}

// ListURLsResponse lists every stored mapping.
type ListURLsResponse struct {
	Body []URLEntry
}
