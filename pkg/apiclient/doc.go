// Package apiclient is the authenticated-fetch primitive used for every call
// to the primary identity service and the resource service.
//
// A [Client] is bound to one service. It resolves the base URL at request time
// (explicit override, then the runtime value, then the static fallback),
// forwards cookies through a shared jar, disables caching and normalizes
// failures into [*Error].
//
// # Usage
//
//	jar, _ := cookie.NewJar()
//	api := apiclient.New(
//		apiclient.WithJar(jar),
//		apiclient.WithRuntimeBaseURL(func() string { return loader.Get().APIBaseURL }),
//		apiclient.WithFallbackBaseURL("http://localhost:8080"),
//		apiclient.WithCSRF(apiclient.DefaultCSRF),
//	)
//
//	cats, err := apiclient.Request[[]Category](ctx, api, "/categories/list")
//	if apiclient.IsNotFound(err) {
//		// resource absent
//	}
//
// # CSRF
//
// A client created with [WithCSRF] reads the CSRF cookie for the request URL
// from the jar and echoes it in the paired header on POST, PUT, PATCH and
// DELETE. A missing cookie is not an error. Clients without a CSRF binding
// never send the header, so the resource token cannot reach another service.
//
// # Response Handling
//
//   - non-2xx: [*Error] with Status and the JSON body (if any) as Details
//   - 204: nil value, nil error
//   - 2xx JSON: decoded value
//   - 2xx with a non-JSON or malformed body: nil value, nil error
//
// Transport failures are [*Error] values with Status 0 that match [ErrNetwork].
// The client never retries.
package apiclient
