package router

// Status line values used by the fixed page table.
const (
	StatusOK       = "200 OK"
	StatusNotFound = "404 Not Found"
)

// Router maps a request path to a canned page. Paths are compared as
// opaque strings, query suffix included: "/about?x=1" does not match
// "/about". Anything outside the table resolves to the 404 page.
type Router struct {
	pages    map[string]string
	notFound string
}

// New builds the page table for one server variant. The secure variant
// serves a different home page and an additional /encryption page
// describing the TLS layer the connection arrived over.
func New(secure bool) *Router {
	if secure {
		return &Router{
			pages: map[string]string{
				"/":           secureHomePage,
				"/about":      secureAboutPage,
				"/encryption": encryptionPage,
			},
			notFound: secureNotFoundPage,
		}
	}
	return &Router{
		pages: map[string]string{
			"/":      homePage,
			"/about": aboutPage,
		},
		notFound: notFoundPage,
	}
}

// Route resolves a path to a status line and page body.
func (r *Router) Route(path string) (status string, body []byte) {
	if page, ok := r.pages[path]; ok {
		return StatusOK, []byte(page)
	}
	return StatusNotFound, []byte(r.notFound)
}

// Paths returns the configured paths, for startup logging.
func (r *Router) Paths() []string {
	paths := make([]string, 0, len(r.pages))
	for p := range r.pages {
		paths = append(paths, p)
	}
	return paths
}
