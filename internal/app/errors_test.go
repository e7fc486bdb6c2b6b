package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fyyur/internal/forms"
	"fyyur/internal/models"
	"fyyur/internal/store"
)

func TestWrapClassifiesErrors(t *testing.T) {
	invalid := forms.Validate(models.VenueInput{})

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"not found", store.ErrVenueNotFound, KindNotFound},
		{"wrapped not found", fmt.Errorf("get venue: %w", store.ErrArtistNotFound), KindNotFound},
		{"validation", invalid, KindValidation},
		{"constraint", store.ErrVenueHasShows, KindConstraint},
		{"unknown reference", store.ErrUnknownArtist, KindConstraint},
		{"persistence", errors.New("connection reset"), KindPersistence},
		{"cancelled", context.Canceled, KindPersistence},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Wrap(OpCreate, tc.err)
			var appErr *Error
			if assert.ErrorAs(t, err, &appErr) {
				assert.Equal(t, OpCreate, appErr.Op)
				assert.Equal(t, tc.want, appErr.Kind)
			}
			assert.ErrorIs(t, err, tc.err)
			assert.Equal(t, tc.want, KindOf(err))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(OpDelete, nil))
}

func TestWrapRetagsOperation(t *testing.T) {
	inner := Wrap(OpGet, store.ErrVenueNotFound)
	outer := Wrap(OpUpdate, inner)

	var appErr *Error
	if assert.ErrorAs(t, outer, &appErr) {
		assert.Equal(t, OpUpdate, appErr.Op)
		assert.Equal(t, KindNotFound, appErr.Kind)
	}
	assert.True(t, IsNotFound(outer))
	assert.Contains(t, outer.Error(), "update failed (not_found)")
}
