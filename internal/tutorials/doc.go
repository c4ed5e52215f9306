// Package tutorials provides an HTTP client for the tutorials REST API.
//
// # Overview
//
// The client covers the whole collection surface rooted at /api/tutorials:
//
//   - GET /api/tutorials: every record
//   - GET /api/tutorials?title=<substr>: records whose title contains substr
//   - GET /api/tutorials/published: published records only
//   - POST /api/tutorials: create
//   - PUT /api/tutorials/{id}: update
//   - DELETE /api/tutorials/{id}: delete one
//   - DELETE /api/tutorials: delete all
//
// # Client Usage
//
//	client, err := tutorials.NewClient("http://127.0.0.1:8080", 5*time.Second)
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	list, err := client.List(ctx, tutorials.Query{Title: "go"})
//	if err != nil {
//		log.Printf("list failed: %v", err)
//	}
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Send Content-Type and Accept: application/json
//   - Include User-Agent: tutordesk/0.1 and a fresh X-Request-ID
//   - Treat 204 No Content and empty bodies as "no value"
//
// # Error Handling
//
// Any status outside 2xx becomes a *RequestError whose message is the
// response body text, or the status reason phrase when the body is blank or
// unreadable. Transport and decoding failures are wrapped with fmt.Errorf:
//
//   - "execute request: dial tcp: connection refused"
//   - "decode response: unexpected end of JSON input"
//
// Callers never retry; the UI turns every error into a failure toast.
//
// # URL Construction
//
// NewClient accepts a bare host:port or a full URL. The scheme defaults to
// http:// and any path, query or fragment is dropped.
//
// # Thread Safety
//
// The Client is safe for concurrent use.
package tutorials
