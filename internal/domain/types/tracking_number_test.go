package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracknum/internal/domain/types"
)

func TestRemoveWhitespace(t *testing.T) {
	assert.Equal(t, "RB123456785GB", types.RemoveWhitespace("RB 12 3456 785 GB"))
	assert.Equal(t, "AB12", types.RemoveWhitespace("\tA B 1 2\n"))
	assert.Equal(t, "", types.RemoveWhitespace("   "))
	assert.Equal(t, "ABC", types.RemoveWhitespace("ABC"))
}

func TestSerialNumberMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(types.SerialNumber("12345678"))
	require.NoError(t, err)
	assert.Equal(t, `"12345678"`, string(data))
}

func TestCourierInfoOverlay(t *testing.T) {
	tn := &types.TrackingNumber{
		Courier: types.Courier{Code: "s10", Name: "S10 International Standard"},
		Additional: map[string]types.Info{
			"Courier": {
				"courier":     "Royal Mail Group plc",
				"courier_url": "http://www.royalmail.com",
				"country":     "Great Britain",
				"stale":       nil,
			},
		},
	}

	assert.Equal(t, types.Info{
		"code":    "s10",
		"name":    "Royal Mail Group plc",
		"url":     "http://www.royalmail.com",
		"country": "Great Britain",
	}, tn.CourierInfo(), "nil values are dropped, courier/courier_url are renamed")
}

func TestCourierInfoWithoutOverlay(t *testing.T) {
	tn := &types.TrackingNumber{
		Courier: types.Courier{Code: "dhl", Name: "DHL Express"},
	}
	assert.Equal(t, types.Info{"code": "dhl", "name": "DHL Express"}, tn.CourierInfo())
}

func TestServiceType(t *testing.T) {
	t.Run("capture plus overlay", func(t *testing.T) {
		tn := &types.TrackingNumber{
			MatchData: map[string]string{"ServiceType": "RB"},
			Additional: map[string]types.Info{
				"Service Type": {"name": "Letter Post Registered"},
			},
		}
		assert.Equal(t, types.Info{
			"code": "RB",
			"name": "Letter Post Registered",
		}, tn.ServiceType())
	})

	t.Run("no capture", func(t *testing.T) {
		tn := &types.TrackingNumber{}
		assert.Equal(t, types.Info{"code": nil}, tn.ServiceType())
	})
}

func TestValid(t *testing.T) {
	tn := &types.TrackingNumber{}
	assert.True(t, tn.Valid())

	tn.ValidationErrors = []types.ValidationError{{Kind: "checksum", Message: "Checksum validation failed"}}
	assert.False(t, tn.Valid())
}
