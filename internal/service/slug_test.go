package service_test

import (
	"testing"

	"eats-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Fast Food", want: "fast-food"},
		{name: "extra whitespace collapses", in: "  Fast    Food  ", want: "fast-food"},
		{name: "case folds", in: "FAST FOOD", want: "fast-food"},
		{name: "single word", in: "Korean", want: "korean"},
		{name: "tabs and newlines", in: "fine\tdining\nexperience", want: "fine-dining-experience"},
		{name: "empty", in: "", want: ""},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, service.Slugify(testCase.in))
		})
	}
}

func TestSlugify_EquivalentNamesShareSlug(t *testing.T) {
	variants := []string{"Fast Food", "fast food", " FAST   FOOD ", "fast\tfood"}
	for _, v := range variants {
		assert.Equal(t, "fast-food", service.Slugify(v))
	}
}
