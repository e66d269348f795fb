package page

// Controller renders the static page shells. Rendering is deliberately
// thin: pages are placeholders for the real frontend, the interesting work
// happens in the access middleware before a handler ever runs.
type Controller struct{}

func NewController() *Controller {
	return &Controller{}
}
