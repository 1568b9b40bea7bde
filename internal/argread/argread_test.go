package argread

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst(t *testing.T) {
	got, err := First([]string{"prog", "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", got)
}

func TestFirst_IgnoresExtraArguments(t *testing.T) {
	got, err := First([]string{"prog", "one", "two", "three"})
	require.NoError(t, err)
	assert.Equal(t, "one", got)
}

func TestFirst_EmptyStringIsAnArgument(t *testing.T) {
	got, err := First([]string{"prog", ""})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFirst_Missing(t *testing.T) {
	for _, args := range [][]string{{"prog"}, {}, nil} {
		got, err := First(args)
		require.Error(t, err)
		assert.Empty(t, got)
		assert.Equal(t, "Did not pass in a string to be converted", err.Error())
		assert.True(t, errors.Is(err, ErrMissingArgument))

		var missing *MissingArgumentError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, 1, missing.ExitCode())
	}
}
