package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeBucket(t *testing.T) {
	assert.Equal(t, TypeVacation, TypeVacation.Bucket())
	assert.Equal(t, TypeSick, TypeSick.Bucket())
	assert.Equal(t, TypeCasual, TypeCasual.Bucket())
	assert.Equal(t, TypeUnpaid, TypeUnpaid.Bucket())

	// Retired or unknown names land in the casual bucket.
	assert.Equal(t, TypeCasual, Type("paid").Bucket())
	assert.Equal(t, TypeCasual, Type("sabbatical").Bucket())
}

func TestDeductsBalance(t *testing.T) {
	for _, typ := range []Type{TypeVacation, TypeSick, TypeCasual} {
		assert.True(t, (&Request{Type: typ}).DeductsBalance(), string(typ))
	}
	assert.False(t, (&Request{Type: TypeUnpaid}).DeductsBalance())
}
