// Package errors provides structured, coded errors for viewspec.
//
// Every failure the render engine reports is built from a registered code
// (e.g. "V010") that maps to:
//   - a category (structure, context, config)
//   - a short message
//   - a longer explanation
//
// # Usage
//
//	err := errors.New("V011").
//	    WithDetailf("tag %q", tag).
//	    WithLocation("app/view.go", 42, 0).
//	    Wrap(ErrTagName)
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR V011: Unexpected space in tag name
//	//
//	//   app/view.go:42
//	//
//	//   tag "tag with space"
//
// Wrapped sentinels keep working with errors.Is, and two coded errors compare
// equal under errors.Is when their codes match.
package errors
