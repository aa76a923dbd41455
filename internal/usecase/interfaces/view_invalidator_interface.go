package interfaces

// IViewInvalidator bumps the cached representation of read views after a
// write, so subsequent reads reflect the new data.

type IViewInvalidator interface {
	Invalidate(views ...string)
}
