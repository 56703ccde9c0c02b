package render

import (
	"errors"

	verrors "github.com/vango-dev/viewspec/internal/errors"
	"github.com/vango-dev/viewspec/pkg/spec"
)

// Sentinels for errors.Is. Render returns them wrapped in coded errors.
var (
	// ErrObservableRoot is returned when the root of a Render call is a stream.
	ErrObservableRoot = errors.New("cannot render an observable root")

	// ErrTagName is returned for a tag name containing a space.
	ErrTagName = errors.New("unexpected space in tag name")

	// ErrTagType is returned for a node that is neither text, element,
	// component, stream nor realized node.
	ErrTagType = errors.New("expected a string tag name or a component function")

	// ErrNestedStream is returned when a stream emits a stream node.
	ErrNestedStream = errors.New("stream emitted a stream")

	// ErrStyleConflict is returned when $style and a streamed style are
	// combined on one element.
	ErrStyleConflict = errors.New("cannot combine $style property with an observable style property")

	// ErrStyleType is returned for a style value of an unsupported type.
	ErrStyleType = errors.New("unexpected type for style")
)

func structuralError(code string, sentinel error, n *spec.Node) *verrors.Error {
	err := verrors.New(code).Wrap(sentinel)
	if n != nil && n.Dev != nil {
		err.WithLocation(n.Dev.File, n.Dev.Line, 0)
	}
	return err
}
