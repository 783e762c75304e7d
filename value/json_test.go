package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsatke/xmlrpc/protocol"
)

func TestFromJSON(t *testing.T) {
	got, err := FromJSON([]byte(`{
		"name": "caller",
		"count": 3,
		"ratio": 0.25,
		"big": 1e3,
		"flags": [true, false, null],
		"nested": {"empty": {}}
	}`))
	require.NoError(t, err)

	expected := NewStruct().
		With("name", String("caller")).
		With("count", Int(3)).
		With("ratio", Double(0.25)).
		With("big", Double(1000)).
		With("flags", Array{True, False, Nil}).
		With("nested", NewStruct().With("empty", NewStruct()))
	if !cmp.Equal(expected, got) {
		t.Errorf("not equal:\n%s", cmp.Diff(expected, got))
	}
}

func TestFromJSON_Overflow(t *testing.T) {
	_, err := FromJSON([]byte(`[2147483648]`))
	var overflow *protocol.IntegerOverflowError
	assert.ErrorAs(t, err, &overflow)
}

func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte(`{"a":`))
	assert.Error(t, err)
}
