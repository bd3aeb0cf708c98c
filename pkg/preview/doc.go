// Package preview serves personalized campaign renderings over HTTP so
// the content can be proofread with real roster data before sending.
//
// The server pages through the roster in order: GET / redirects to
// /preview/1, and each /preview/{n} page shows recipient n's address,
// subject, and the rendered message with prev/next navigation. HTML
// messages render inside a sandboxed iframe; text-mode messages render
// verbatim. Rendered pages are cached in memory with a TTL.
//
// # Usage
//
//	srv, err := preview.New(tmpl, r,
//	    preview.WithRegistry(reg),
//	    preview.WithAddress("localhost:8025"),
//	    preview.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Blocks until ctx cancel or SIGINT/SIGTERM.
//	return srv.Run(ctx)
//
// To mount the preview routes inside an existing server, use Router
// directly and release the page cache yourself:
//
//	defer srv.Close()
//	mux.Mount("/", srv.Router())
//
// # Health
//
// GET /healthz runs the same template and roster checks as a campaign
// preflight; GET /livez always answers OK.
package preview
