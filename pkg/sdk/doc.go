// Package sdk provides a typed Go client for the spendlog service together
// with the response envelope, request/response payloads and fixed messages
// the server itself uses. Keeping both sides in one package guarantees the
// wire contract cannot drift between server and client.
//
// Usage:
//
//	client := sdk.NewClient("http://localhost:8080")
//	session, err := client.Login(ctx, "user@example.com", "password")
//	if err != nil {
//		// *sdk.APIError carries the status code and fixed message
//	}
//	expenses, err := session.ListExpenses(ctx, 0, 20, "spent_at", "desc")
package sdk
