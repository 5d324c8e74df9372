package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanIdentifier(t *testing.T) {
	t.Run("strips spaces and hyphens and uppercases", func(t *testing.T) {
		assert.Equal(t, "MAEU123456789", CleanIdentifier(" maeu-123 456 789 "))
	})

	t.Run("folds full-width characters", func(t *testing.T) {
		assert.Equal(t, "MAEU1234567", CleanIdentifier("ＭＡＥＵ１２３４５６７"))
	})

	t.Run("keeps plain input unchanged", func(t *testing.T) {
		assert.Equal(t, "1Z999AA10123456784", CleanIdentifier("1Z999AA10123456784"))
	})
}

func TestDetector_Detect(t *testing.T) {
	d := NewDetector(DefaultDirectory())

	t.Run("maersk bill of lading", func(t *testing.T) {
		det := d.Detect("MAEU123456789")
		require.Equal(t, StatusDetected, det.Status)
		require.NotNil(t, det.Carrier)
		assert.Equal(t, "MAEU", det.Carrier.Code)
		assert.Equal(t, CategoryContainer, det.Category)
		assert.Equal(t, "https://www.maersk.com/tracking/MAEU123456789", det.TrackingURL)
	})

	t.Run("maersk alias prefix resolves to same carrier", func(t *testing.T) {
		det := d.Detect("SEAU8871234")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "MAEU", det.Carrier.Code)
	})

	t.Run("three letter prefix fallback", func(t *testing.T) {
		det := d.Detect("ONE1234567890")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "ONEY", det.Carrier.Code)
	})

	t.Run("container shaped but unknown prefix", func(t *testing.T) {
		det := d.Detect("XXXU1234567")
		assert.Equal(t, StatusUnregistered, det.Status)
		assert.Equal(t, CategoryContainer, det.Category)
		assert.Equal(t, "XXXU", det.Prefix)
		assert.Nil(t, det.Carrier)
	})

	t.Run("korean air waybill with hyphen", func(t *testing.T) {
		det := d.Detect("180-12345678")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "KE", det.Carrier.Code)
		assert.Equal(t, CategoryAir, det.Category)
		assert.Equal(t, "180", det.Prefix)
		assert.Contains(t, det.TrackingURL, "180-12345678")
	})

	t.Run("asiana air waybill", func(t *testing.T) {
		det := d.Detect("98812345678")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "OZ", det.Carrier.Code)
	})

	t.Run("awb with unknown airline prefix", func(t *testing.T) {
		det := d.Detect("99912345678")
		assert.Equal(t, StatusUnregistered, det.Status)
		assert.Equal(t, CategoryAir, det.Category)
		assert.Equal(t, "999", det.Prefix)
	})

	t.Run("ups tracking number", func(t *testing.T) {
		det := d.Detect("1Z999AA10123456784")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "UPS", det.Carrier.Code)
		assert.Equal(t, CategoryCourier, det.Category)
	})

	t.Run("fedex fifteen digits", func(t *testing.T) {
		det := d.Detect("123456789012345")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "FEDEX", det.Carrier.Code)
	})

	t.Run("ten digits match dhl", func(t *testing.T) {
		// Ten digits is ambiguous in the wild but the ruleset attributes
		// it to DHL once every narrower rule has declined.
		det := d.Detect("1234567890")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "DHL", det.Carrier.Code)
	})

	t.Run("korea post registered mail", func(t *testing.T) {
		det := d.Detect("RR123456789KR")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "KRPOST", det.Carrier.Code)
		assert.Equal(t, CategoryPost, det.Category)
	})

	t.Run("ems item", func(t *testing.T) {
		det := d.Detect("EE123456789KR")
		require.Equal(t, StatusDetected, det.Status)
		assert.Equal(t, "KRPOST", det.Carrier.Code)
	})

	t.Run("upu shape with unmapped country", func(t *testing.T) {
		det := d.Detect("RR123456789FR")
		assert.Equal(t, StatusUnregistered, det.Status)
		assert.Equal(t, CategoryPost, det.Category)
		assert.Equal(t, "FR", det.Prefix)
	})

	t.Run("hangul input", func(t *testing.T) {
		det := d.Detect("운송장번호 1234")
		assert.Equal(t, StatusNativeScript, det.Status)
		assert.Empty(t, det.Cleaned)
	})

	t.Run("too short", func(t *testing.T) {
		det := d.Detect("AB")
		assert.Equal(t, StatusInvalid, det.Status)
	})

	t.Run("empty input", func(t *testing.T) {
		det := d.Detect("   ")
		assert.Equal(t, StatusInvalid, det.Status)
	})

	t.Run("well formed but unmatchable", func(t *testing.T) {
		det := d.Detect("12AB34CD56")
		assert.Equal(t, StatusUndetected, det.Status)
	})
}

func TestDetector_AWBBeforeCourierRules(t *testing.T) {
	d := NewDetector(DefaultDirectory())

	// Eleven digits is AWB territory even though it sits between the DHL
	// ten-digit and FedEx fifteen-digit rules.
	det := d.Detect("18012345678")
	require.Equal(t, CategoryAir, det.Category)
	assert.Equal(t, "KE", det.Carrier.Code)
}
