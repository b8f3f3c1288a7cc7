// Package publisher maps URL paths to a tree of application page objects and
// resolves incoming HTTP requests against that tree, following the object
// publisher pattern: path segments address live objects rather than
// string-registered routes.
//
// # Pages
//
// A page is any value implementing Index (renders GET requests), Action
// (handles POST requests), or both:
//
//	type HelloPage struct{}
//
//	func (p *HelloPage) Index(args publisher.Args) (publisher.Result, error) {
//		return publisher.Rendered("hello"), nil
//	}
//
// Pages declare their parameters with a Signature. Required parameters are
// bound positionally from leftover URL path segments; optional parameters are
// bound by name from the query string (GET) or the form body (POST):
//
//	type GreetPage struct{}
//
//	func (p *GreetPage) Index(args publisher.Args) (publisher.Result, error) {
//		who := args.Pos(0)
//		greeting := args.Opt("greeting", "Hello")
//		return publisher.Rendered(greeting + " " + who), nil
//	}
//
//	func (p *GreetPage) IndexSignature() publisher.Signature {
//		return publisher.Required("who").Optional("greeting")
//	}
//
// A page without a signature descriptor declares no parameters at all.
//
// # The page tree
//
// Pages are arranged in an explicit tree. Each child edge carries the path
// segment under which the child is published:
//
//	root := publisher.NewTree(&HelloPage{})
//	sub := root.Child("sub", &HelloPage{})
//	sub.Child("another", &GreetPage{})
//
//	table := publisher.BuildTable(root)
//
// BuildTable walks the tree once and produces an immutable Table mapping URL
// path prefixes to pages: "" (the root), "/sub" and "/sub/another" in the
// example above. The Table is safe for concurrent use.
//
// # Resolution
//
// Table.Resolve finds the page owning a request path by longest-prefix match,
// picks the entry point for the HTTP method, and binds arguments:
//
//	req, err := table.Resolve("/sub/another/world?greeting=Hi", "GET", "")
//	// req.Args.Pos(0) == "world"
//	// req.Args.Opt("greeting", "Hello") == "Hi"
//
// The number of leftover path segments must equal the number of required
// parameters exactly; any mismatch resolves to ErrNotFound, since positional
// segments identify a resource and a bad count means no such resource exists.
// A page lacking the entry point demanded by the verb resolves to
// ErrMethodNotAllowed (405 per RFC 9110 Section 15.5.6).
//
// # Awareness interfaces
//
// A page may implement any of the one-method awareness interfaces URLAware,
// RequestAware, CookieAware and SessionAware to receive contextual objects.
// SetURL is called once at table construction with the page's resolved URL;
// the remaining setters are called per request by the dispatch frontend.
// The embeddable helpers URLed, Requested, Cookied and Sessioned implement
// storage for each.
package publisher
