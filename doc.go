// Package authy provides a Go client for the Authy two-factor
// authentication API: user registration and removal, one-time token
// verification, and delivery of one-time codes over SMS or phone call.
//
// The client is stateless beyond its immutable configuration and is
// safe for concurrent use. Remote failures are mapped into typed
// results rather than returned as errors; only configuration, local
// validation and transport failures surface as Go errors.
//
// Basic usage:
//
//	client, err := authy.New(apiKey, authy.WithSandbox())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reg, err := client.RegisterUser(ctx, "user@example.com", "555-123-4567")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	verification, err := client.VerifyToken(ctx, reg.UserID, token)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if verification.Success {
//	    fmt.Println("token accepted")
//	}
package authy
