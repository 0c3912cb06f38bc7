package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumbersAcceptStrings(t *testing.T) {
	var doc struct {
		Over FlexFloat `json:"over"`
		Age  FlexInt   `json:"age"`
		Runs FlexInt   `json:"runs"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"over":"15.3","age":"34","runs":null}`), &doc))
	assert.Equal(t, FlexFloat(15.3), doc.Over)
	assert.Equal(t, FlexInt(34), doc.Age)
	assert.Equal(t, FlexInt(0), doc.Runs)

	require.NoError(t, json.Unmarshal([]byte(`{"over":7,"age":29.0,"runs":""}`), &doc))
	assert.Equal(t, FlexFloat(7), doc.Over)
	assert.Equal(t, FlexInt(29), doc.Age)

	assert.Error(t, json.Unmarshal([]byte(`{"over":"seven"}`), &doc))
}

func TestRawJSONScan(t *testing.T) {
	var r RawJSON
	require.NoError(t, r.Scan([]byte(`{"a":1}`)))
	assert.JSONEq(t, `{"a":1}`, string(r))

	require.NoError(t, r.Scan(`[1,2]`))
	assert.Equal(t, `[1,2]`, string(r))

	assert.Error(t, r.Scan(42))

	v, err := RawJSON(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "null", v)
}

func TestFlexString(t *testing.T) {
	var doc struct {
		High FlexString `json:"high"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"high":112}`), &doc))
	assert.Equal(t, FlexString("112"), doc.High)

	require.NoError(t, json.Unmarshal([]byte(`{"high":"183*"}`), &doc))
	assert.Equal(t, FlexString("183*"), doc.High)

	assert.Error(t, json.Unmarshal([]byte(`{"high":true}`), &doc))
}
