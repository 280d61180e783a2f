package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spaceshare-landing/pkg/utils"
)

func TestLeadID(t *testing.T) {
	a := utils.LeadID("jordan@example.com")
	b := utils.LeadID("jordan@example.com")
	c := utils.LeadID("casey@example.com")

	assert.Len(t, a, 12)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
