package ptr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openkcm/uaa-client/pkg/utils/ptr"
)

func TestPointTo(t *testing.T) {
	t.Run("Should return pointer", func(t *testing.T) {
		pointer := ptr.PointTo(42)

		assert.NotNil(t, pointer)
		assert.Equal(t, 42, *pointer)
	})
}
