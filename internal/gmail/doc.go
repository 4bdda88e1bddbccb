// Package gmail provides a read-only client for the Gmail API.
//
// The client covers exactly what the archiving pipeline needs:
//   - Searching messages with a Gmail query string
//   - Fetching a full message (MIME part tree, headers, internal date)
//   - Fetching and decoding attachment bytes
//
// The client supports multi-account authentication using the Google OAuth2
// flow; tokens come from the google package, one file per account. Every
// remote call runs through the retry package.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := gmail.NewClient(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := client.SearchMessages(ctx, "factura in:inbox has:attachment")
//	if err != nil {
//	    log.Fatal(err)
//	}
package gmail
