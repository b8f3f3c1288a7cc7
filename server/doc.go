// Package server is the dispatch frontend for page trees: an http.Handler
// that resolves each request against the publisher route table, injects
// contextual objects into aware pages, invokes the page entry point and
// writes the corresponding HTTP response.
//
//	root := publisher.NewTree(&HomePage{})
//	root.Child("about", &AboutPage{})
//
//	srv, err := server.New(server.Config{Addr: ":8000"}, root)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := srv.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Status mapping: a rendered GET is 200 with Content-type text/html; a
// completed POST is 303 See Other back to the request URL; redirect results
// carry their own status and Location; resolution failures are 404 or 405;
// page errors and panics are 500.
//
// Sessions are identified by the SESSIONID cookie (configurable). When a
// session-aware page is hit without one, a fresh random identifier is minted
// and set on the response. The backing store is injected through Config and
// defaults to an in-memory store.
package server
