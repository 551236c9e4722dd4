package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {

	t.Run("LowercasesAndStripsPunctuation", func(t *testing.T) {
		assert.Equal(t, "rodriguez family practice", Name("Rodriguez, Family Practice!"))
	})

	t.Run("KeepsHyphens", func(t *testing.T) {
		assert.Equal(t, "smith-jones dermatology", Name("Smith-Jones Dermatology"))
	})

	t.Run("StripsHonorific", func(t *testing.T) {
		assert.Equal(t, "emily chen", Name("Dr. Emily Chen"))
	})

	t.Run("StripsTrailingDegrees", func(t *testing.T) {
		assert.Equal(t, "emily chen", Name("Dr. Emily Chen, MD, FACS"))
	})

	t.Run("StripsBusinessDescriptors", func(t *testing.T) {
		assert.Equal(t, "blooming beauty", Name("Blooming Beauty Med Spa"))
		assert.Equal(t, "blooming beauty", Name("Blooming Beauty"))
		assert.Equal(t, "radiance", Name("Radiance Aesthetics LLC"))
	})

	t.Run("NeverStripsToEmpty", func(t *testing.T) {
		// Token stripping always leaves at least one token behind.
		assert.Equal(t, "the", Name("The Spa"))
		assert.Equal(t, "medspa", Name("MedSpa"))
		assert.Equal(t, "dr", Name("Dr."))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Equal(t, "", Name(""))
		assert.Equal(t, "", Name("  !!  "))
	})
}

func TestAddress(t *testing.T) {

	assert.Equal(t, "123 main st suite 4", Address("123 Main St., Suite #4"))
	assert.Equal(t, "", Address(""))
}

func TestPhone(t *testing.T) {

	assert.Equal(t, "5551234567", Phone("(555) 123-4567"))
	assert.Equal(t, "5551234567", Phone("555-123-4567"))
	assert.Equal(t, "15551234567", Phone("+1 555 123 4567"))
	assert.Equal(t, "", Phone("call us"))
}

func TestDomain(t *testing.T) {

	assert.Equal(t, "example.com", Domain("https://www.example.com/contact?x=1"))
	assert.Equal(t, "example.com", Domain("http://example.com"))
	assert.Equal(t, "example.com", Domain("EXAMPLE.COM"))
	assert.Equal(t, "example.com", Domain("example.com:8443/about"))
	assert.Equal(t, "", Domain(""))
	assert.Equal(t, "", Domain("not a url"))
}

func TestNormalizeDispatch(t *testing.T) {

	assert.Equal(t, Name("Dr. Emily Chen"), Normalize(FieldName, "Dr. Emily Chen"))
	assert.Equal(t, Phone("(555) 123-4567"), Normalize(FieldPhone, "(555) 123-4567"))
	assert.Equal(t, Domain("https://example.com"), Normalize(FieldURL, "https://example.com"))
	assert.Equal(t, "plain text", Normalize(FieldKind("other"), "Plain, Text"))
}
