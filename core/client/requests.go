package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// readBody drains the response body so the connection can be reused.
func readBody(resp *http.Response) ([]byte, error) {
	return io.ReadAll(resp.Body)
}

// Get issues a GET for path with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, Envelope{Method: http.MethodGet, Path: path, Query: query}, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Envelope{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Envelope{Method: http.MethodPut, Path: path, Body: body}, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, Envelope{Method: http.MethodPatch, Path: path, Body: body}, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, Envelope{Method: http.MethodDelete, Path: path}, nil)
}

// PostMultipart issues a POST with a pre-encoded multipart body. The
// content type must carry the encoder's boundary; the content-type stage
// passes it through untouched.
func (c *Client) PostMultipart(ctx context.Context, path string, body io.Reader, contentType string, out any) error {
	return c.Do(ctx, Envelope{
		Method:      http.MethodPost,
		Path:        path,
		Reader:      body,
		ContentType: contentType,
		Multipart:   true,
	}, out)
}
