package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrForbidden.WithDetails("require role Admin")

	assert.ErrorIs(t, detailed, ErrForbidden)
	assert.NotErrorIs(t, detailed, ErrTokenMissing)
	assert.Equal(t, "require role Admin", detailed.Details())
	assert.Empty(t, ErrForbidden.Details())
	assert.Equal(t, http.StatusForbidden, detailed.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrTokenInvalid.WrapMessage("verify session")

	assert.ErrorIs(t, err, ErrTokenInvalid)
	assert.Equal(t, "verify session: "+ErrTokenInvalid.Error(), err.Error())

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, ErrTokenInvalid.ErrorCode(), appErr.ErrorCode())
}
