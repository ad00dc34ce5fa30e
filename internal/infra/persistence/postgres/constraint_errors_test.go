package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolations(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCheck bool
		wantNull  bool
	}{
		{
			name:      "check violation from driver",
			err:       errors.New(`ERROR: new row for relation "promotions" violates check constraint "promotions_date_range_check" (SQLSTATE 23514)`),
			wantCheck: true,
		},
		{
			name:      "translated check violation",
			err:       errors.Wrap(gorm.ErrCheckConstraintViolated, "insert"),
			wantCheck: true,
		},
		{
			name:     "not null violation",
			err:      errors.New(`ERROR: null value in column "target_type" violates not-null constraint (SQLSTATE 23502)`),
			wantNull: true,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCheck, isCheckConstraintViolation(tt.err))
			assert.Equal(t, tt.wantNull, isNotNullConstraintViolation(tt.err))
		})
	}
}
