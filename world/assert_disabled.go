//go:build !assert_enabled

package world

// Assert is compiled out unless the assert_enabled tag is set. Build the
// frontends with -tags assert_enabled while debugging a playthrough.
func Assert(condition bool) {}
