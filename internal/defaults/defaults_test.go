// SPDX-License-Identifier: Apache-2.0

package defaults

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeb_Eligible(t *testing.T) {
	web := NewWeb()

	assert.True(t, web.Eligible("omero.web.server_list"))
	assert.True(t, web.Eligible("omero.web.this.key.doesnt.exist"))
	assert.False(t, web.Eligible("omero.data.dir"))
	assert.False(t, web.Eligible("omero.webx"))
}

func TestWeb_Lookup_KnownKey(t *testing.T) {
	web := NewWeb()

	value, ok, err := web.Lookup("omero.web.server_list")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []any{[]any{"localhost", 4064, "omero"}}, value)
}

func TestWeb_Lookup_UnknownKey(t *testing.T) {
	web := NewWeb()

	_, ok, err := web.Lookup("omero.web.this.key.doesnt.exist")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWeb_Lookup_ReturnsFreshCopies(t *testing.T) {
	web := NewWeb()

	first, _, err := web.Lookup("omero.web.server_list")
	require.NoError(t, err)
	list := first.([]any)
	_ = append(list, []any{"mutated", 1, "x"})
	list[0] = "clobbered"

	second, _, err := web.Lookup("omero.web.server_list")
	require.NoError(t, err)
	assert.Equal(t, []any{[]any{"localhost", 4064, "omero"}}, second)
}
