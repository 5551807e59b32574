// Package loxo provides an HTTP client for the Loxo recruiting API.
//
// The client wraps [github.com/go-resty/resty/v2] with bearer-token
// authentication, a bounded fixed-delay retry loop and typed errors. Resource
// methods such as [Client.GetJobs] are thin forwarders to [Client.Execute].
//
// # Basic Usage
//
//	c, err := loxo.New("app.loxo.co", "my-agency", apiKey,
//	    loxo.WithRetryAttempts(5),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	jobs, err := c.GetJobs(ctx, loxo.Params{"per_page": 25, "published": true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// Domain, agency slug and API key are required; [New] returns a
// [*ConfigurationError] naming the first one that is missing. Everything else
// is supplied as [Option] functions: invalid values are silently ignored and
// the default is retained. Defaults are a 30s timeout, 3 attempts, a 1s retry
// delay and the base address template [DefaultBaseURLTemplate].
//
// Settings can also be read from any [ConfigProvider] (a *viper.Viper works
// as is) with [NewFromProvider].
//
// # Retry Behaviour
//
// Each call is attempted up to the configured number of times. A 2xx response
// ends the call with a decoded [Result]. A 4xx response ends it with an
// [*APIError] at once. Any other status, or a failure to receive a response,
// is retried after a constant delay until the attempts are used up. The HTTP
// method is not considered: a POST whose response was lost is sent again,
// which can create a duplicate record on the Loxo side. Use [WithRetryAttempts]
// set to 1 for calls that must not be repeated.
//
// # Errors
//
// [*APIError] carries the status code (0 when no response was received) and
// the decoded error body. errors.Is matches [ErrUnauthorized], [ErrNotFound],
// [ErrUnprocessable] and friends by status. Requests that cannot be built
// fail with [ErrInvalidRequest] or [ErrInvalidArgument] before any network call.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. The API key is never passed to the logger.
package loxo
