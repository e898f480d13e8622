package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKnown(t *testing.T) {
	assert.True(t, Known("Organization"))
	assert.True(t, Known("LocalBusiness"))
	assert.True(t, Known("Restaurant"))
	assert.False(t, Known("FlyingSaucerDealer"))
	assert.False(t, Known(""))
}

func TestParent(t *testing.T) {
	assert.Equal(t, "FoodEstablishment", Parent("Restaurant"))
	assert.Equal(t, "LocalBusiness", Parent("FoodEstablishment"))
	assert.Equal(t, "", Parent("Organization"))
	assert.Equal(t, "", Parent("FlyingSaucerDealer"))
}

func TestIsDescendantOf(t *testing.T) {
	tests := []struct {
		typ, ancestor string
		want          bool
	}{
		{"Restaurant", "FoodEstablishment", true},
		{"Restaurant", "LocalBusiness", true},
		{"Restaurant", "Organization", true},
		{"Restaurant", "Restaurant", true},
		{"FoodEstablishment", "Restaurant", false},
		{"Airline", "LocalBusiness", false},
		{"FlyingSaucerDealer", "LocalBusiness", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsDescendantOf(tt.typ, tt.ancestor),
			"IsDescendantOf(%q, %q)", tt.typ, tt.ancestor)
	}
}

func TestIsLocalBusinessSubtype(t *testing.T) {
	assert.True(t, IsLocalBusinessSubtype("LocalBusiness"))
	assert.True(t, IsLocalBusinessSubtype("Restaurant"))
	assert.True(t, IsLocalBusinessSubtype("Plumber"))
	assert.False(t, IsLocalBusinessSubtype("Organization"))
	assert.False(t, IsLocalBusinessSubtype("Airline"))
	assert.False(t, IsLocalBusinessSubtype("FlyingSaucerDealer"))
}
