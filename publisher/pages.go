package publisher

import "github.com/confeitaria/confeitaria/session"

// URLed implements URLAware with plain storage. Embed it to give a page
// access to the URL it is published under:
//
//	type AboutPage struct {
//		publisher.URLed
//	}
//
//	func (p *AboutPage) Index(args publisher.Args) (publisher.Result, error) {
//		return publisher.Rendered("you are at " + p.URL()), nil
//	}
type URLed struct {
	url string
}

// SetURL stores the page's resolved URL.
func (p *URLed) SetURL(url string) {
	p.url = url
}

// URL returns the URL set at table construction, "" before that.
func (p *URLed) URL() string {
	return p.url
}

// Requested implements RequestAware with plain storage.
type Requested struct {
	request *Request
}

// SetRequest stores the resolved request.
func (p *Requested) SetRequest(req *Request) {
	p.request = req
}

// Request returns the request set by the frontend, nil outside handling.
func (p *Requested) Request() *Request {
	return p.request
}

// Cookied implements CookieAware with plain storage.
type Cookied struct {
	cookies *Cookies
}

// SetCookies stores the request's cookie container.
func (p *Cookied) SetCookies(cookies *Cookies) {
	p.cookies = cookies
}

// Cookies returns the container set by the frontend, nil outside handling.
func (p *Cookied) Cookies() *Cookies {
	return p.cookies
}

// Sessioned implements SessionAware with plain storage.
type Sessioned struct {
	session *session.Session
}

// SetSession stores the requesting client's session.
func (p *Sessioned) SetSession(s *session.Session) {
	p.session = s
}

// Session returns the session set by the frontend, nil outside handling.
func (p *Sessioned) Session() *session.Session {
	return p.session
}
