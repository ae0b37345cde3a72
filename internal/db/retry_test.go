package db

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func duplicateKeyError() error {
	return mongo.WriteException{WriteErrors: []mongo.WriteError{{
		Code:    11000,
		Message: "E11000 duplicate key error collection: test.counters",
	}}}
}

func TestTrySucceedsFirstAttempt(t *testing.T) {
	var calls int
	err := Try(func() error {
		calls++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestTryDoesNotRetryOtherErrors(t *testing.T) {
	var calls int
	boom := errors.New("some other error")
	err := Try(func() error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestTryRetriesDuplicateKeyThenSucceeds(t *testing.T) {
	var calls int
	err := Try(func() error {
		calls++
		if calls < 3 {
			return duplicateKeyError()
		}
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestTryExhaustsRetries(t *testing.T) {
	var calls int
	err := Try(func() error {
		calls++
		return duplicateKeyError()
	})
	assert.Error(t, err)
	assert.True(t, IsDuplicateKeyError(err))
	assert.Equal(t, defaultMaxRetries+1, calls)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, IsDuplicateKeyError(duplicateKeyError()))
	assert.True(t, IsDuplicateKeyError(mongo.CommandError{Code: 11000}))
	assert.False(t, IsDuplicateKeyError(errors.New("nope")))
	assert.False(t, IsDuplicateKeyError(nil))
}
