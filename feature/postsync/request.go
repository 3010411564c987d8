package postsync

import (
	"encoding/base64"
	"net/url"
	"strings"

	"post-sync/core/payload"
	"post-sync/core/transport"
	"post-sync/feature/postsync/models"
)

// BuildRequest translates stored API settings into a ready-to-send request.
// It is pure construction; the transport client performs the actual call.
func BuildRequest(settings models.ApiSettings) (*transport.Request, error) {
	req := &transport.Request{
		Method:  strings.ToUpper(settings.Method),
		URL:     appendParams(settings.URL, prepareParameters(settings.Params)),
		Timeout: settings.Timeout(),
	}
	if req.Method == "" {
		req.Method = models.MethodGet
	}

	if headers := prepareParameters(settings.Headers); len(headers) > 0 {
		req.Headers = make(map[string]string, len(headers))
		for _, h := range headers {
			req.Headers[h.Name] = h.Value
		}
	}

	if req.Method == models.MethodPost {
		body := prepareParameters(settings.Body)
		if len(body) > 0 {
			if err := encodeBody(req, body, settings.BodyEncoding); err != nil {
				return nil, err
			}
		}
	}

	return req, nil
}

// prepareParameters filters name/value pairs down to usable entries: both
// sides trimmed, name and value non-empty. The literal value "0" survives.
// Declared order is preserved.
func prepareParameters(pairs []models.NameValue) []models.NameValue {
	prepared := make([]models.NameValue, 0, len(pairs))
	for _, p := range pairs {
		name := strings.TrimSpace(p.Name)
		value := strings.TrimSpace(p.Value)
		if name == "" || value == "" {
			continue
		}
		prepared = append(prepared, models.NameValue{Name: name, Value: value})
	}
	return prepared
}

// appendParams adds percent-encoded query parameters to the URL in declared
// order, joining onto an existing query string when present.
func appendParams(apiURL string, params []models.NameValue) string {
	if len(params) == 0 {
		return apiURL
	}
	query := encodePairs(params)
	if strings.Contains(apiURL, "?") {
		return apiURL + "&" + query
	}
	return apiURL + "?" + query
}

// encodePairs renders pairs as application/x-www-form-urlencoded text,
// ampersand-joined, preserving declared order.
func encodePairs(pairs []models.NameValue) string {
	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// encodeBody applies the configured body encoding to the prepared pairs.
func encodeBody(req *transport.Request, body []models.NameValue, encoding string) error {
	switch encoding {
	case models.EncodingJSON:
		data, err := encodeBodyJSON(body)
		if err != nil {
			return err
		}
		req.Body = data
		req.ContentType = "application/json"
	case models.EncodingURL:
		req.Body = []byte(encodePairs(body))
	case models.EncodingBase64:
		data, err := encodeBodyJSON(body)
		if err != nil {
			return err
		}
		req.Body = []byte(base64.StdEncoding.EncodeToString(data))
	default:
		// No encoding: pass through as a form body.
		req.Body = []byte(encodePairs(body))
		req.ContentType = "application/x-www-form-urlencoded"
	}
	return nil
}

// encodeBodyJSON serializes pairs as a JSON object in declared order.
func encodeBodyJSON(body []models.NameValue) ([]byte, error) {
	fields := make([]payload.Field, 0, len(body))
	for _, p := range body {
		fields = append(fields, payload.Field{Key: p.Name, Value: payload.Scalar(p.Value)})
	}
	return payload.EncodeJSON(payload.Mapping(fields...))
}
